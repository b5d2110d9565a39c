// Package display provides display enumeration and the unified screen
// geometry spanning every active display.
package display

import (
	"fmt"
	"math"
)

// Point is a position in the global display coordinate space.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle in the global display coordinate space.
// The origin is the top-left corner.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxX() float64 { return r.X + r.Width }
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Union returns the smallest rectangle containing both r and other.
// An empty rectangle does not contribute to the result.
func (r Rect) Union(other Rect) Rect {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	minX := math.Min(r.MinX(), other.MinX())
	minY := math.Min(r.MinY(), other.MinY())
	maxX := math.Max(r.MaxX(), other.MaxX())
	maxY := math.Max(r.MaxY(), other.MaxY())
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive, matching how adjacent displays share an edge.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X < r.MaxX() && p.Y >= r.MinY() && p.Y < r.MaxY()
}

// ApproxEqual reports whether every component of a and b differs by less
// than tolerance.
func ApproxEqual(a, b Rect, tolerance float64) bool {
	return math.Abs(a.X-b.X) < tolerance &&
		math.Abs(a.Y-b.Y) < tolerance &&
		math.Abs(a.Width-b.Width) < tolerance &&
		math.Abs(a.Height-b.Height) < tolerance
}

func (r Rect) String() string {
	return fmt.Sprintf("(%.1f,%.1f %.1fx%.1f)", r.X, r.Y, r.Width, r.Height)
}

// Display represents an active display
type Display struct {
	ID     uint32
	Bounds Rect
}

// Provider queries the platform for display geometry.
type Provider interface {
	// Active returns every active display. An empty slice is not an error.
	Active() ([]Display, error)

	// Primary returns the main display.
	Primary() (Display, error)
}

// NewProvider creates the platform display provider.
func NewProvider() (Provider, error) {
	return newProvider()
}

// Unified returns the union of the bounds of all active displays. With no
// active displays it falls back to the primary display's bounds.
func Unified(p Provider) (Rect, error) {
	displays, err := p.Active()
	if err != nil {
		return Rect{}, fmt.Errorf("list active displays: %w", err)
	}
	if len(displays) == 0 {
		primary, err := p.Primary()
		if err != nil {
			return Rect{}, fmt.Errorf("primary display: %w", err)
		}
		return primary.Bounds, nil
	}

	combined := displays[0].Bounds
	for _, d := range displays[1:] {
		combined = combined.Union(d.Bounds)
	}
	return combined, nil
}

// Locate returns the active display whose bounds contain pt, falling back
// to the primary display when none does.
func Locate(p Provider, pt Point) (Display, error) {
	displays, err := p.Active()
	if err != nil {
		return Display{}, fmt.Errorf("list active displays: %w", err)
	}
	for _, d := range displays {
		if d.Bounds.Contains(pt) {
			return d, nil
		}
	}
	primary, err := p.Primary()
	if err != nil {
		return Display{}, fmt.Errorf("primary display: %w", err)
	}
	return primary, nil
}
