package screen

// BodyCache holds a screen's composed body between renders. Screens
// invalidate it from their state subscriptions, so View only re-composes
// after a state change or a resize.
type BodyCache struct {
	body  string
	width int
	valid bool
}

// Invalidate marks the cached body stale.
func (c *BodyCache) Invalidate() {
	c.valid = false
}

// Render returns the cached body for width, composing it with fn when the
// cache is stale or was built for another width.
func (c *BodyCache) Render(width int, fn func(width int) string) string {
	if !c.valid || c.width != width {
		c.body = fn(width)
		c.width = width
		c.valid = true
	}
	return c.body
}
