package panel

import "fyne.io/fyne/v2"

// Region is an axis-aligned rectangle in canvas coordinates.
type Region struct {
	Position fyne.Position
	Size     fyne.Size
}

// NewRegion builds a region from its top-left corner and size
func NewRegion(x, y, width, height float32) Region {
	return Region{Position: fyne.NewPos(x, y), Size: fyne.NewSize(width, height)}
}

// Contains reports whether p lies inside r. Edges count as inside.
func (r Region) Contains(p fyne.Position) bool {
	return p.X >= r.Position.X && p.X <= r.Position.X+r.Size.Width &&
		p.Y >= r.Position.Y && p.Y <= r.Position.Y+r.Size.Height
}

// BoundaryFunc reports the current regions of a panel, typically its trigger
// and its content. It is evaluated on every pointer-down so it follows layout
// changes.
type BoundaryFunc func() []Region

// Fixed returns a BoundaryFunc for regions that never move
func Fixed(regions ...Region) BoundaryFunc {
	return func() []Region { return regions }
}
