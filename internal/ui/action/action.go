// Package action carries what a control did back to the app. Controls never
// touch the transport themselves.
package action

// Sources of action messages.
const (
	SourcePrompt = "prompt"
	SourceSlider = "slider"
)

// Action is a result emitted by a control. ActionType names it in logs.
type Action interface {
	ActionType() string
}

// Msg is the tea.Msg wrapping an Action.
type Msg struct {
	Source string
	Action Action
}
