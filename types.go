package layout

import "math"

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Axis selects one component of a Vec2 or one dimension of a Rect.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// Get returns the component of v along the axis.
func (v Vec2) Get(a Axis) float32 {
	if a == AxisX {
		return v.X
	}
	return v.Y
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// InvalidRect is returned for entries that must not be drawn: every
// measurement-phase query, culled entries and entries of groups without room.
var InvalidRect = Rect{W: -1, H: -1}

// Valid reports whether the rectangle has a nonzero positive extent.
func (r Rect) Valid() bool {
	return r.W > 0 && r.H > 0
}

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 {
	return Vec2{X: r.X + r.W, Y: r.Y + r.H}
}

// Pos returns the top-left corner.
func (r Rect) Pos() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// Size returns the extent of the rectangle.
func (r Rect) Size() Vec2 {
	return Vec2{X: r.W, Y: r.H}
}

// Near returns the leading edge along an axis (left or top).
func (r Rect) Near(a Axis) float32 {
	if a == AxisX {
		return r.X
	}
	return r.Y
}

// Far returns the trailing edge along an axis (right or bottom).
func (r Rect) Far(a Axis) float32 {
	if a == AxisX {
		return r.X + r.W
	}
	return r.Y + r.H
}

// Extent returns the size along an axis.
func (r Rect) Extent(a Axis) float32 {
	if a == AxisX {
		return r.W
	}
	return r.H
}

// Translate returns the rectangle moved by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Intersect returns the overlapping region of two rectangles.
// Disjoint rectangles yield a rectangle with non-positive extent.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.X+r.W, other.X+other.W)
	y1 := min(r.Y+r.H, other.Y+other.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Insets is a four-sided box used for margins, borders and padding.
type Insets struct {
	Left   float32 `toml:"left"`
	Top    float32 `toml:"top"`
	Right  float32 `toml:"right"`
	Bottom float32 `toml:"bottom"`
}

// Uniform returns insets with the same value on every side.
func Uniform(v float32) Insets {
	return Insets{Left: v, Top: v, Right: v, Bottom: v}
}

// Horizontal returns Left+Right.
func (in Insets) Horizontal() float32 {
	return in.Left + in.Right
}

// Vertical returns Top+Bottom.
func (in Insets) Vertical() float32 {
	return in.Top + in.Bottom
}

// Add returns the side-wise sum of two insets.
func (in Insets) Add(other Insets) Insets {
	return Insets{
		Left:   in.Left + other.Left,
		Top:    in.Top + other.Top,
		Right:  in.Right + other.Right,
		Bottom: in.Bottom + other.Bottom,
	}
}

// Size returns the total space the insets occupy on both axes.
func (in Insets) Size() Vec2 {
	return Vec2{X: in.Horizontal(), Y: in.Vertical()}
}

// Inset shrinks the rectangle by the insets.
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		X: r.X + in.Left,
		Y: r.Y + in.Top,
		W: r.W - in.Horizontal(),
		H: r.H - in.Vertical(),
	}
}

// Outset grows the rectangle by the insets.
func (r Rect) Outset(in Insets) Rect {
	return Rect{
		X: r.X - in.Left,
		Y: r.Y - in.Top,
		W: r.W + in.Horizontal(),
		H: r.H + in.Vertical(),
	}
}

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorGray        uint32 = 0xFF808080
	ColorDarkGray    uint32 = 0xFF404040
	ColorLightGray   uint32 = 0xFFC0C0C0
	ColorTransparent uint32 = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

func clampf(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}

// clamp01 clamps a normalized value to [0,1].
func clamp01(v float32) float32 {
	return clampf(v, 0, 1)
}

// lerpf interpolates between a and b by t.
func lerpf(a, b, t float32) float32 {
	return a + (b-a)*t
}

func floorf(v float32) float32 {
	return float32(math.Floor(float64(v)))
}

func ceilf(v float32) float32 {
	return float32(math.Ceil(float64(v)))
}
