package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/snowin/snowin/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// ModalScreen is implemented by screens that can show a popup. While a
// popup is open the shell forwards every key to the screen, including the
// tab and back keys.
type ModalScreen interface {
	ModalOpen() bool
}
