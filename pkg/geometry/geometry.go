// Package geometry provides the value types shared by the swipe engine and
// its hosts: points, sizes, rectangles and the scroll axis.
package geometry

import (
	"fmt"
	"math"
)

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in host units.
type Offset struct {
	X float64
	Y float64
}

// Equal reports whether two offsets match within epsilon.
func (o Offset) Equal(other Offset) bool {
	return floatEqual(o.X, other.X) && floatEqual(o.Y, other.Y)
}

// Size represents width and height dimensions in host units.
type Size struct {
	Width  float64
	Height float64
}

// Equal reports whether two sizes match within epsilon.
func (s Size) Equal(other Size) bool {
	return floatEqual(s.Width, other.Width) && floatEqual(s.Height, other.Height)
}

// IsZero reports whether both dimensions are (near) zero.
func (s Size) IsZero() bool {
	return s.Equal(Size{})
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromCenter constructs a Rect of the given size centred on center.
func RectFromCenter(center Offset, size Size) Rect {
	return RectFromLTWH(center.X-size.Width/2, center.Y-size.Height/2, size.Width, size.Height)
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// Equal reports whether two rectangles match within epsilon.
func (r Rect) Equal(other Rect) bool {
	return floatEqual(r.Left, other.Left) &&
		floatEqual(r.Top, other.Top) &&
		floatEqual(r.Right, other.Right) &&
		floatEqual(r.Bottom, other.Bottom)
}

// Contains reports whether p lies inside the rectangle (right/bottom exclusive).
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

// Axis is the direction a container scrolls in.
// AxisHorizontal is the zero value, matching the carousel default.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Axis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Axis) UnmarshalText(text []byte) error {
	switch string(text) {
	case "horizontal", "h", "":
		*a = AxisHorizontal
	case "vertical", "v":
		*a = AxisVertical
	default:
		return fmt.Errorf("unknown axis %q", text)
	}
	return nil
}

// Main returns the component of o along the axis.
func (a Axis) Main(o Offset) float64 {
	if a == AxisVertical {
		return o.Y
	}
	return o.X
}

// Cross returns the component of o across the axis.
func (a Axis) Cross(o Offset) float64 {
	if a == AxisVertical {
		return o.X
	}
	return o.Y
}

// MainExtent returns the dimension of s along the axis.
func (a Axis) MainExtent(s Size) float64 {
	if a == AxisVertical {
		return s.Height
	}
	return s.Width
}

// CrossExtent returns the dimension of s across the axis.
func (a Axis) CrossExtent(s Size) float64 {
	if a == AxisVertical {
		return s.Width
	}
	return s.Height
}

// Point builds an Offset from main and cross components.
func (a Axis) Point(main, cross float64) Offset {
	if a == AxisVertical {
		return Offset{X: cross, Y: main}
	}
	return Offset{X: main, Y: cross}
}

// Extent builds a Size from main and cross dimensions.
func (a Axis) Extent(main, cross float64) Size {
	if a == AxisVertical {
		return Size{Width: cross, Height: main}
	}
	return Size{Width: main, Height: cross}
}

// MainOrigin returns the rect's leading edge along the axis.
func (a Axis) MainOrigin(r Rect) float64 {
	if a == AxisVertical {
		return r.Top
	}
	return r.Left
}
