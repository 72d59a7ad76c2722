package entity

const (
	// DefaultWindowWidth is used when no geometry has been stored yet.
	DefaultWindowWidth = 640
	// DefaultWindowHeight is used when no geometry has been stored yet.
	DefaultWindowHeight = 800

	// MinWindowWidth and MinWindowHeight bound restored sizes.
	MinWindowWidth  = 320
	MinWindowHeight = 240
)

// Geometry is the persisted placement of the main window.
// X and Y are nil when the position is unknown (first run, or a compositor
// that does not expose window positions).
type Geometry struct {
	X          *int
	Y          *int
	Width      int
	Height     int
	Maximized  bool
	Fullscreen bool
}

// DefaultGeometry returns the geometry used on first start.
func DefaultGeometry() Geometry {
	return Geometry{
		Width:  DefaultWindowWidth,
		Height: DefaultWindowHeight,
	}
}

// Normalized returns a copy with the size clamped to the minimum bounds.
func (g Geometry) Normalized() Geometry {
	if g.Width < MinWindowWidth {
		g.Width = MinWindowWidth
	}
	if g.Height < MinWindowHeight {
		g.Height = MinWindowHeight
	}
	return g
}

// Equal reports whether two geometries describe the same placement.
func (g Geometry) Equal(o Geometry) bool {
	return intPtrEqual(g.X, o.X) &&
		intPtrEqual(g.Y, o.Y) &&
		g.Width == o.Width &&
		g.Height == o.Height &&
		g.Maximized == o.Maximized &&
		g.Fullscreen == o.Fullscreen
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
