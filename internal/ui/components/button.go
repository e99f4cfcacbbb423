package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/studydrill/drill/internal/ui/theme"
)

// Button renders a focusable action button. Screens track focus
// themselves and rebuild the button each frame with the current state.
type Button struct {
	Label   string
	Active  bool
	OnPress func() tea.Cmd
}

func NewButton(label string, active bool, onPress func() tea.Cmd) Button {
	return Button{Label: label, Active: active, OnPress: onPress}
}

// Update fires OnPress on enter while the button has focus.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !b.Active || b.OnPress == nil {
		return b, nil
	}
	if key.String() == "enter" {
		return b, b.OnPress()
	}
	return b, nil
}

func (b Button) View() string {
	label := "  â–¸ " + b.Label + " "
	if !b.Active {
		return theme.ButtonInactive.Render(label)
	}
	return theme.ButtonActive.Render(label)
}
