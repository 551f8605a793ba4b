package viewstate

import (
	"errors"
	"fmt"
	"slices"
)

// DefaultResort is selected when the home screen mounts, if available.
const DefaultResort = "Whistler Blackcomb"

// ErrUnknownResort is returned when selecting a resort that is not listed.
var ErrUnknownResort = errors.New("unknown resort")

// HomeState tracks the selected resort. Exactly one resort is selected.
type HomeState struct {
	SelectedResort *Cell[string]
	resorts        []string
}

var _ Notifier = (*HomeState)(nil)

// NewHomeState selects DefaultResort, or the first resort when it is not
// among resorts.
func NewHomeState(resorts []string) *HomeState {
	initial := ""
	if slices.Contains(resorts, DefaultResort) {
		initial = DefaultResort
	} else if len(resorts) > 0 {
		initial = resorts[0]
	}
	return &HomeState{
		SelectedResort: NewCell("home.selectedResort", initial),
		resorts:        slices.Clone(resorts),
	}
}

// Resorts returns the selectable resorts in display order.
func (h *HomeState) Resorts() []string {
	return slices.Clone(h.resorts)
}

// SelectResort marks name as the selected resort.
func (h *HomeState) SelectResort(name string) error {
	if !slices.Contains(h.resorts, name) {
		return fmt.Errorf("%w: %q", ErrUnknownResort, name)
	}
	h.SelectedResort.Set(name)
	return nil
}

// IsSelected reports whether name is the selected resort.
func (h *HomeState) IsSelected(name string) bool {
	return h.SelectedResort.Get() == name
}

// SelectNext moves the selection one resort right, stopping at the end.
func (h *HomeState) SelectNext() {
	h.step(1)
}

// SelectPrev moves the selection one resort left, stopping at the start.
func (h *HomeState) SelectPrev() {
	h.step(-1)
}

func (h *HomeState) step(delta int) {
	if len(h.resorts) == 0 {
		return
	}
	i := slices.Index(h.resorts, h.SelectedResort.Get()) + delta
	i = max(0, min(i, len(h.resorts)-1))
	h.SelectedResort.Set(h.resorts[i])
}

func (h *HomeState) OnChange(fn func()) {
	onAny(fn, watch(h.SelectedResort))
}
