//go:build !linux

package mpris

// Adapter is a no-op on non-Linux platforms.
type Adapter struct {
	*relay
}

// New returns a no-op adapter on non-Linux platforms.
func New() (*Adapter, error) {
	return &Adapter{relay: &relay{}}, nil
}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
