// Package geom provides the small 2D vector and rectangle types shared by
// the combat and loot systems. Coordinates are in pixels with Y increasing
// downward, matching the render layer.
package geom

// Vec is a 2D point or direction in pixel space.
type Vec struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns the vector scaled by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Rect is an axis-aligned rectangle. X,Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// NewRectCentered builds a rect of the given size centered on a point.
func NewRectCentered(center Vec, w, h float64) Rect {
	return Rect{X: center.X - w/2, Y: center.Y - h/2, W: w, H: h}
}

// Intersects reports whether two rectangles overlap. Touching edges do not
// count as overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Center returns the rectangle's center point.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Translate returns the rectangle shifted by the given offsets.
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Inflate returns the rectangle grown by dx and dy on each side, keeping
// the same center. Used for forgiving interaction and pickup boxes.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{X: r.X - dx, Y: r.Y - dy, W: r.W + 2*dx, H: r.H + 2*dy}
}
