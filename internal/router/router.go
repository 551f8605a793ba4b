package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/snowin/snowin/internal/screen"
)

// PushScreenMsg requests the router to push a new screen onto the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg requests the router to pop the current screen off the stack.
type PopScreenMsg struct{}

// RoutedMsg is a navigation message addressed to the router whose screen
// produced it. It reaches that router even if another tab is active by the
// time it is delivered.
type RoutedMsg struct {
	target *Router
	Msg    tea.Msg
}

// Deliver applies the navigation message to its router.
func (m RoutedMsg) Deliver() tea.Cmd {
	return m.target.Update(m.Msg)
}

// Router manages a stack of screens. The root screen is never popped.
type Router struct {
	stack []screen.Screen
}

// New creates a new Router with the given initial screen.
func New(initial screen.Screen) *Router {
	return &Router{
		stack: []screen.Screen{initial},
	}
}

// Init runs the root screen's Init.
func (r *Router) Init() tea.Cmd {
	return r.bind(r.stack[0].Init())
}

// Push adds a screen on top of the stack and calls its Init().
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return r.bind(s.Init())
}

// Pop removes the top screen. No-op if stack depth would become 0.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	return nil
}

// PopToRoot drops every screen above the root.
func (r *Router) PopToRoot() {
	r.stack = r.stack[:1]
}

// Active returns the top screen on the stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update forwards a message to the active screen and handles navigation messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return r.bind(cmd)
}

// bind wraps cmd so the navigation messages it produces come back as
// RoutedMsg addressed to r.
func (r *Router) bind(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		switch msg := cmd().(type) {
		case PushScreenMsg, PopScreenMsg:
			return RoutedMsg{target: r, Msg: msg}
		case tea.BatchMsg:
			bound := make(tea.BatchMsg, len(msg))
			for i, c := range msg {
				bound[i] = r.bind(c)
			}
			return bound
		default:
			return msg
		}
	}
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
