// Package label provides a text item view sized from font metrics.
//
// Labels are the item views used by the swipe command: a [Source] serves
// them to a swipe container, measuring every item's text with the
// fixed-width 7x13 face so that all items share the widest item's size.
package label

import (
	"fmt"

	"github.com/go-drift/swipe/pkg/geometry"
	"github.com/go-drift/swipe/pkg/swipe"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face is the font every label is measured with. Its 7x13 pixel cell maps
// one glyph to one terminal cell.
var Face font.Face = basicfont.Face7x13

// Measure returns the size of text set in Face, with padding on every side.
func Measure(text string, padding float64) geometry.Size {
	advance := font.MeasureString(Face, text)
	height := Face.Metrics().Height
	return geometry.Size{
		Width:  float64(advance.Ceil()) + 2*padding,
		Height: float64(height.Ceil()) + 2*padding,
	}
}

// Label is a text view. The zero value is an empty, non-interactive label
// at the origin.
type Label struct {
	Text string
	// Item is the data index the label currently shows.
	Item int

	center      geometry.Offset
	size        geometry.Size
	interactive bool
	translation geometry.Offset
}

// New returns a label showing text, sized to fit it.
func New(text string, padding float64) *Label {
	return &Label{Text: text, size: Measure(text, padding)}
}

// Frame implements swipe.View.
func (l *Label) Frame() geometry.Rect {
	return geometry.RectFromCenter(l.center, l.size)
}

// Center implements swipe.View.
func (l *Label) Center() geometry.Offset {
	return l.center
}

// SetCenter implements swipe.View.
func (l *Label) SetCenter(center geometry.Offset) {
	l.center = center
}

// SetBounds implements swipe.View.
func (l *Label) SetBounds(size geometry.Size) {
	l.size = size
}

// SetInteractive implements swipe.View.
func (l *Label) SetInteractive(enabled bool) {
	l.interactive = enabled
}

// Interactive reports whether the label currently accepts touches.
func (l *Label) Interactive() bool {
	return l.interactive
}

// SetTranslation shifts the label visually without moving its layout
// position. It implements pager.Translatable.
func (l *Label) SetTranslation(t geometry.Offset) {
	l.translation = t
}

// VisualFrame is the frame including the current translation.
func (l *Label) VisualFrame() geometry.Rect {
	return l.Frame().Translate(l.translation.X, l.translation.Y)
}

func (l *Label) String() string {
	return fmt.Sprintf("label(%d %q)", l.Item, l.Text)
}

// Source serves labels for a list of strings. It implements
// swipe.DataSource and pager.DataSource.
type Source struct {
	Items   []string
	Padding float64

	size     geometry.Size
	measured bool
}

// NewSource returns a source for items.
func NewSource(items []string, padding float64) *Source {
	return &Source{Items: items, Padding: padding}
}

// SetItems replaces the items. The container must be reloaded afterwards.
func (s *Source) SetItems(items []string) {
	s.Items = items
	s.measured = false
}

// ItemSize is the size shared by every label: the widest and tallest
// measured item.
func (s *Source) ItemSize() geometry.Size {
	if s.measured {
		return s.size
	}
	s.size = Measure("", s.Padding)
	for _, text := range s.Items {
		m := Measure(text, s.Padding)
		s.size.Width = max(s.size.Width, m.Width)
		s.size.Height = max(s.size.Height, m.Height)
	}
	s.measured = true
	return s.size
}

// ItemCount implements swipe.DataSource.
func (s *Source) ItemCount() int {
	return len(s.Items)
}

// ViewForItem implements swipe.DataSource, reconfiguring reusable when it
// is a label.
func (s *Source) ViewForItem(index int, reusable swipe.View) swipe.View {
	l, ok := reusable.(*Label)
	if !ok {
		l = &Label{}
	}
	s.configure(l, index)
	return l
}

// Page is the pager.DataSource form of ViewForItem; pages are never reused.
func (s *Source) Page(index int) swipe.View {
	l := &Label{}
	s.configure(l, index)
	return l
}

func (s *Source) configure(l *Label, index int) {
	l.Item = index
	l.Text = ""
	if index >= 0 && index < len(s.Items) {
		l.Text = s.Items[index]
	}
	l.translation = geometry.Offset{}
	l.SetBounds(s.ItemSize())
}

// Pages adapts a Source to pager.DataSource.
type Pages struct {
	*Source
}

// ViewForItem implements pager.DataSource.
func (p Pages) ViewForItem(index int) swipe.View {
	return p.Source.Page(index)
}
