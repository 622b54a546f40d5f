package domain

// Contact is a selectable entity in a directory
type Contact struct {
	Name      string `json:"name" yaml:"name" toml:"name"`
	AvatarURL string `json:"avatar" yaml:"avatar" toml:"avatar"`
}

// Point is a cell position on screen
type Point struct {
	X int
	Y int
}

// Rect is a cell-based bounding box
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Contains reports whether p lies inside the rect
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Bottom returns the first row below the rect
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Union returns the smallest rect covering both r and o.
// Empty rects are ignored.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1, y1 := max(r.X+r.W, o.X+o.W), max(r.Y+r.H, o.Y+o.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Empty reports whether the rect has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
