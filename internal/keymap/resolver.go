package keymap

import "github.com/samber/lo"

// Resolver looks up the action of a key within a set of bindings.
type Resolver struct {
	bindings []Binding
	byKey    map[string]Action
}

// NewResolver indexes bindings by key. A key bound twice resolves to the
// later binding.
func NewResolver(bindings []Binding) *Resolver {
	byKey := make(map[string]Action)
	for _, b := range bindings {
		for _, k := range b.Keys {
			byKey[k] = b.Action
		}
	}
	return &Resolver{bindings: bindings, byKey: byKey}
}

// Resolve returns the action for a key, or "" if the key is unbound.
func (r *Resolver) Resolve(key string) Action {
	return r.byKey[key]
}

// KeysFor returns the distinct keys bound to action in binding order, or
// nil when it has none.
func (r *Resolver) KeysFor(action Action) []string {
	keys := lo.Uniq(lo.FlatMap(r.bindings, func(b Binding, _ int) []string {
		if b.Action != action {
			return nil
		}
		return b.Keys
	}))
	if len(keys) == 0 {
		return nil
	}
	return keys
}
