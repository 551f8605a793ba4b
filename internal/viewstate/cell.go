package viewstate

import "log/slog"

// Cell is an observable value. Every Set notifies the subscribers, even when
// the value did not change, so the owning screen re-renders on each write.
type Cell[T any] struct {
	name      string
	value     T
	listeners []func(old, new T)
}

// NewCell creates a cell holding initial. name is used only for logging.
func NewCell[T any](name string, initial T) *Cell[T] {
	return &Cell[T]{name: name, value: initial}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	return c.value
}

// Set stores v and notifies subscribers in subscription order.
func (c *Cell[T]) Set(v T) {
	old := c.value
	c.value = v
	slog.Debug("state set", "cell", c.name, "old", old, "new", v)
	for _, fn := range c.listeners {
		fn(old, v)
	}
}

// Subscribe registers fn to run after every Set.
func (c *Cell[T]) Subscribe(fn func(old, new T)) {
	c.listeners = append(c.listeners, fn)
}

// Name returns the cell's log name.
func (c *Cell[T]) Name() string {
	return c.name
}

// Notifier is implemented by every state container in this package.
type Notifier interface {
	// OnChange registers fn to run after any cell in the container is set.
	OnChange(fn func())
}

func onAny(fn func(), subscribe ...func(func())) {
	for _, s := range subscribe {
		s(fn)
	}
}

func watch[T any](c *Cell[T]) func(func()) {
	return func(fn func()) {
		c.Subscribe(func(T, T) { fn() })
	}
}
