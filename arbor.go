package arbor

import "math"

// Vec2 is a 2D vector used for positions, scales, and offsets throughout the
// API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// EventType identifies a kind of platform event.
type EventType uint8

const (
	EventQuit   EventType = iota // window closed, interrupt, or quit key
	EventKey                     // key press; Event.Key holds the key name
	EventResize                  // display resized; Event.Width/Height hold the new size
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventQuit:
		return "quit"
	case EventKey:
		return "key"
	case EventResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Event is a platform event delivered by Platform.PollEvents. The game loop
// only acts on EventQuit; the rest are exposed to components via Game.Events.
type Event struct {
	Type          EventType
	Key           string
	Width, Height int
}
