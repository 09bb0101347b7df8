package shapes

import (
	"fmt"

	"github.com/vovakirdan/shapematch/internal/core"
)

// DefaultShear is the horizontal slant of a parallelogram, in canvas units.
const DefaultShear = 20

// Kind names a drawable shape.
type Kind string

const (
	KindCircle        Kind = "circle"
	KindSquare        Kind = "square"
	KindTriangle      Kind = "triangle"
	KindTrapezium     Kind = "trapezium"
	KindRhombus       Kind = "rhombus"
	KindParallelogram Kind = "parallelogram"
)

// Kinds lists every supported shape kind.
func Kinds() []Kind {
	return []Kind{KindCircle, KindSquare, KindTriangle, KindTrapezium, KindRhombus, KindParallelogram}
}

// TextStyle controls how HUD text is drawn.
type TextStyle struct {
	Size  float64 // Relative font size; 1.0 and above renders bold
	Color core.Color
}

// Surface is anything shapes and text can be drawn onto.
type Surface interface {
	Fill(r Region, c core.Color)
	Text(at core.Point, text string, style TextStyle)
}

// DrawFunc draws a filled shape of half-size size centered at center.
type DrawFunc func(dst Surface, center core.Point, size int, c core.Color)

// DrawCircle draws a disc of radius size.
func DrawCircle(dst Surface, center core.Point, size int, c core.Color) {
	dst.Fill(Circle{Center: vec(center), Radius: float64(size)}, c)
}

// DrawSquare draws an axis-aligned square of half-width size.
func DrawSquare(dst Surface, center core.Point, size int, c core.Color) {
	x, y, s := vecXYS(center, size)
	dst.Fill(Polygon{Points: []Vec2{
		{x - s, y - s},
		{x + s, y - s},
		{x + s, y + s},
		{x - s, y + s},
	}}, c)
}

// DrawTriangle draws an upward-pointing triangle.
func DrawTriangle(dst Surface, center core.Point, size int, c core.Color) {
	x, y, s := vecXYS(center, size)
	dst.Fill(Polygon{Points: []Vec2{
		{x, y - s},
		{x + s, y + s},
		{x - s, y + s},
	}}, c)
}

// DrawTrapezium draws a trapezium whose bottom edge is half as wide as the top.
func DrawTrapezium(dst Surface, center core.Point, size int, c core.Color) {
	x, y, s := vecXYS(center, size)
	half := float64(size / 2)
	dst.Fill(Polygon{Points: []Vec2{
		{x - s, y - s},
		{x + s, y - s},
		{x + half, y + s},
		{x - half, y + s},
	}}, c)
}

// DrawRhombus draws a diamond with vertices on the axes.
func DrawRhombus(dst Surface, center core.Point, size int, c core.Color) {
	x, y, s := vecXYS(center, size)
	dst.Fill(Polygon{Points: []Vec2{
		{x, y - s},
		{x + s, y},
		{x, y + s},
		{x - s, y},
	}}, c)
}

// Parallelogram returns a DrawFunc for a parallelogram slanted by shear units.
func Parallelogram(shear int) DrawFunc {
	sh := float64(shear)
	return func(dst Surface, center core.Point, size int, c core.Color) {
		x, y, s := vecXYS(center, size)
		dst.Fill(Polygon{Points: []Vec2{
			{x - s + sh, y - s},
			{x + s + sh, y - s},
			{x + s - sh, y + s},
			{x - s - sh, y + s},
		}}, c)
	}
}

// DrawParallelogram draws a parallelogram with the default shear.
var DrawParallelogram = Parallelogram(DefaultShear)

// Drawer returns the DrawFunc for a kind. shear only affects parallelograms.
func Drawer(kind Kind, shear int) (DrawFunc, error) {
	switch kind {
	case KindCircle:
		return DrawCircle, nil
	case KindSquare:
		return DrawSquare, nil
	case KindTriangle:
		return DrawTriangle, nil
	case KindTrapezium:
		return DrawTrapezium, nil
	case KindRhombus:
		return DrawRhombus, nil
	case KindParallelogram:
		return Parallelogram(shear), nil
	default:
		return nil, fmt.Errorf("shapes: unknown kind %q", kind)
	}
}

func vec(p core.Point) Vec2 {
	return Vec2{float64(p.X), float64(p.Y)}
}

func vecXYS(p core.Point, size int) (x, y, s float64) {
	return float64(p.X), float64(p.Y), float64(size)
}
