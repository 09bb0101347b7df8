// Package shapes draws the game's filled shapes onto a terminal canvas.
// Shapes are described in canvas units and rasterized by sampling the
// center of every screen cell they cover.
package shapes

import "math"

// Vec2 is a point in canvas space with sub-unit precision.
type Vec2 struct {
	X, Y float64
}

// Region is a filled area in canvas space.
type Region interface {
	// Contains reports whether (x, y) lies inside or on the region.
	Contains(x, y float64) bool
	// Bounds returns the axis-aligned box enclosing the region.
	Bounds() (min, max Vec2)
}

// Circle is a filled disc.
type Circle struct {
	Center Vec2
	Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c Circle) Contains(x, y float64) bool {
	dx := x - c.Center.X
	dy := y - c.Center.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// Bounds returns the square enclosing the circle.
func (c Circle) Bounds() (Vec2, Vec2) {
	return Vec2{c.Center.X - c.Radius, c.Center.Y - c.Radius},
		Vec2{c.Center.X + c.Radius, c.Center.Y + c.Radius}
}

// Polygon is a convex polygon in either winding order.
type Polygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p Polygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	// The point must be on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]

		cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// Bounds returns the box enclosing all vertices.
func (p Polygon) Bounds() (Vec2, Vec2) {
	if len(p.Points) == 0 {
		return Vec2{}, Vec2{}
	}
	lo := Vec2{math.Inf(1), math.Inf(1)}
	hi := Vec2{math.Inf(-1), math.Inf(-1)}
	for _, pt := range p.Points {
		lo.X = math.Min(lo.X, pt.X)
		lo.Y = math.Min(lo.Y, pt.Y)
		hi.X = math.Max(hi.X, pt.X)
		hi.Y = math.Max(hi.Y, pt.Y)
	}
	return lo, hi
}
