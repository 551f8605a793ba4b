package route

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/x/ansi"
)

// Palette colours the three layers of a rendered scene.
type Palette struct {
	Slope, Path, Marker color.Color
}

const (
	brailleBlank = '⠀'
	brailleLast  = '⣿'
)

// Render draws the scene as braille line art in a width x height cell
// area. Layers are stacked markers over path over slope; where two layers
// share a cell their dots are merged and the upper layer's colour wins.
func Render(s Scene, width, height int, p Palette) string {
	if width < 1 || height < 1 || s.Width <= 0 || s.Height <= 0 {
		return ""
	}

	layers := []struct {
		segs  []Segment
		style lipgloss.Style
	}{
		{s.MarkerSegments(), lipgloss.NewStyle().Foreground(p.Marker)},
		{s.PathSegments(), lipgloss.NewStyle().Foreground(p.Path)},
		{s.SlopeSegments(), lipgloss.NewStyle().Foreground(p.Slope)},
	}

	grids := make([][][]rune, len(layers))
	for i, l := range layers {
		grids[i] = plot(s, l.segs, width, height)
	}

	var b strings.Builder
	for y := range height {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := range width {
			r, owner := ' ', -1
			for i := len(grids) - 1; i >= 0; i-- {
				c := cell(grids[i], x, y)
				if c == ' ' || c == brailleBlank {
					continue
				}
				r, owner = merge(r, c), i
			}
			if owner < 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteString(layers[owner].style.Render(string(r)))
		}
	}
	return b.String()
}

// plot draws segs on a fresh chart and returns the uncoloured cell grid.
// Diagram Y grows downwards, chart Y grows upwards.
func plot(s Scene, segs []Segment, width, height int) [][]rune {
	lc := linechart.New(width, height, 0, s.Width, 0, s.Height)
	lc.Clear()
	for _, seg := range segs {
		lc.DrawBrailleLine(
			canvas.Float64Point{X: seg.From.X, Y: s.Height - seg.From.Y},
			canvas.Float64Point{X: seg.To.X, Y: s.Height - seg.To.Y},
		)
	}
	lines := strings.Split(ansi.Strip(lc.View()), "\n")
	grid := make([][]rune, len(lines))
	for i, line := range lines {
		grid[i] = []rune(line)
	}
	return grid
}

func cell(grid [][]rune, x, y int) rune {
	if y >= len(grid) || x >= len(grid[y]) {
		return ' '
	}
	return grid[y][x]
}

// merge overlays c on r. Braille cells combine their dot patterns, anything
// else is replaced.
func merge(r, c rune) rune {
	if isBraille(r) && isBraille(c) {
		return brailleBlank + ((r - brailleBlank) | (c - brailleBlank))
	}
	return c
}

func isBraille(r rune) bool {
	return r >= brailleBlank && r <= brailleLast
}
