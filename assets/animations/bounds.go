package animations

import (
	"image"
	"log"
)

// VisibleBounds is the tightest box around the non-transparent pixels of a
// reference frame. Rect is relative to the frame's top-left.
type VisibleBounds struct {
	Rect       image.Rectangle
	Width      int
	Height     int
	CellWidth  int
	CellHeight int
}

// DetectVisibleBounds scans the alpha channel of cell in src. A frame with no
// opaque pixel, or one that cannot be read, reports the full cell.
func DetectVisibleBounds(src image.Image, cell image.Rectangle) (vb VisibleBounds) {
	full := VisibleBounds{
		Rect:       image.Rect(0, 0, cell.Dx(), cell.Dy()),
		Width:      cell.Dx(),
		Height:     cell.Dy(),
		CellWidth:  cell.Dx(),
		CellHeight: cell.Dy(),
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Warning: could not scan visible bounds: %v", r)
			vb = full
		}
	}()

	origin := src.Bounds().Min.Add(cell.Min)
	area := image.Rectangle{Min: origin, Max: origin.Add(cell.Size())}.Intersect(src.Bounds())

	minX, minY := area.Max.X, area.Max.Y
	maxX, maxY := area.Min.X-1, area.Min.Y-1
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			if _, _, _, a := src.At(x, y).RGBA(); a == 0 {
				continue
			}
			minX = min(minX, x)
			minY = min(minY, y)
			maxX = max(maxX, x)
			maxY = max(maxY, y)
		}
	}
	if maxX < minX || maxY < minY {
		return full
	}

	r := image.Rect(minX, minY, maxX+1, maxY+1).Sub(origin)
	return VisibleBounds{
		Rect:       r,
		Width:      r.Dx(),
		Height:     r.Dy(),
		CellWidth:  cell.Dx(),
		CellHeight: cell.Dy(),
	}
}
