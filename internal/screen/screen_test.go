package screen

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBodyCache(t *testing.T) {
	var c BodyCache
	calls := 0
	compose := func(w int) string {
		calls++
		return strconv.Itoa(w)
	}

	assert.Equal(t, "80", c.Render(80, compose))
	assert.Equal(t, "80", c.Render(80, compose))
	assert.Equal(t, 1, calls)

	assert.Equal(t, "100", c.Render(100, compose))
	assert.Equal(t, 2, calls)

	c.Invalidate()
	c.Render(100, compose)
	assert.Equal(t, 3, calls)
}
