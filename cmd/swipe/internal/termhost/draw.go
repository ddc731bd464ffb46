package termhost

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-drift/swipe/pkg/geometry"
	"github.com/go-drift/swipe/pkg/label"
	"github.com/go-drift/swipe/pkg/swipe"
)

var (
	itemStyle    = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	currentStyle = tcell.StyleDefault.Background(tcell.ColorTeal).Foreground(tcell.ColorBlack).Bold(true)
	textStyle    = tcell.StyleDefault
	dimStyle     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// cellRect is a rectangle in terminal cells, right and bottom exclusive.
type cellRect struct {
	x0, y0, x1, y1 int
}

func toCells(r geometry.Rect) cellRect {
	return cellRect{
		x0: int(math.Floor(r.Left / CellWidth)),
		y0: int(math.Floor(r.Top / CellHeight)),
		x1: int(math.Ceil(r.Right / CellWidth)),
		y1: int(math.Ceil(r.Bottom / CellHeight)),
	}
}

func (r cellRect) intersect(o cellRect) cellRect {
	return cellRect{max(r.x0, o.x0), max(r.y0, o.y0), min(r.x1, o.x1), min(r.y1, o.y1)}
}

// Draw paints the subviews onto screen. origin is the pixel position of
// the container's top-left corner, clip the container's own bounds in
// cells. highlight is drawn in the current-item style.
func (s *ScrollView) Draw(screen tcell.Screen, origin geometry.Offset, clip cellRect, highlight swipe.View) {
	dx := origin.X + s.frame.Left - s.contentOffset.X
	dy := origin.Y + s.frame.Top - s.contentOffset.Y

	for _, v := range s.subviews {
		frame := v.Frame()
		text := ""
		if l, ok := v.(*label.Label); ok {
			frame = l.VisualFrame()
			text = l.Text
		}
		style := itemStyle
		if v == highlight {
			style = currentStyle
		}

		box := toCells(frame.Translate(dx, dy))
		area := box.intersect(clip)
		for y := area.y0; y < area.y1; y++ {
			for x := area.x0; x < area.x1; x++ {
				screen.SetContent(x, y, ' ', nil, style)
			}
		}

		center := frame.Center()
		row := int(math.Floor((center.Y + dy) / CellHeight))
		runes := []rune(text)
		col := int(math.Floor((center.X+dx)/CellWidth)) - len(runes)/2
		if row < area.y0 || row >= area.y1 {
			continue
		}
		for i, r := range runes {
			if x := col + i; x >= area.x0 && x < area.x1 {
				screen.SetContent(x, row, r, nil, style)
			}
		}
	}
}

// drawText writes s at row y starting at column x, clipped to width.
func drawText(screen tcell.Screen, x, y, width int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		if x+i >= width {
			return
		}
		screen.SetContent(x+i, y, r, nil, style)
	}
}
