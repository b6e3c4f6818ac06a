package animations

import (
	"image"
	"log"

	"github.com/furamon/svbattler/config"
)

// Layout is the grid geometry of a sheet. It is derived once from the image
// size and never changes for the lifetime of the sheet.
type Layout struct {
	Mode       config.LayoutMode // always Fixed or Variable once resolved
	Width      int
	Height     int
	CellWidth  int
	CellHeight int
	Columns    int
	Rows       int
	Blocks     int // column blocks, one per group of Rows motions
}

// ResolveMode turns LayoutAuto into a concrete mode for a sheet of the given
// size. A square-celled sheet that is not 9 cells wide and splits evenly into
// the motion blocks is treated as a variable grid.
func ResolveMode(width, height int, mode config.LayoutMode) config.LayoutMode {
	if mode != config.LayoutAuto {
		return mode
	}
	rows := config.Sheet.MotionsPerBlock
	if width <= 0 || height <= 0 || rows <= 0 {
		return config.LayoutFixed
	}
	cell := height / rows
	if cell <= 0 || width%cell != 0 {
		return config.LayoutFixed
	}
	cols := width / cell
	if cols != config.Sheet.FixedColumns && cols%config.MotionBlocks() == 0 {
		return config.LayoutVariable
	}
	return config.LayoutFixed
}

// NewLayout computes the grid of a width x height sheet.
func NewLayout(width, height int, mode config.LayoutMode) Layout {
	l := Layout{
		Mode:   ResolveMode(width, height, mode),
		Width:  width,
		Height: height,
		Rows:   config.Sheet.MotionsPerBlock,
		Blocks: config.MotionBlocks(),
	}
	if width <= 0 || height <= 0 || l.Rows <= 0 {
		return l
	}

	switch l.Mode {
	case config.LayoutVariable:
		l.CellHeight = height / l.Rows
		l.CellWidth = l.CellHeight
		if l.CellHeight > 0 {
			l.Columns = width / l.CellHeight
		}
	default:
		l.Columns = config.Sheet.FixedColumns
		l.CellWidth = width / l.Columns
		l.CellHeight = height / l.Rows
	}
	return l
}

// Valid reports whether the layout can address frames.
func (l Layout) Valid() bool {
	return l.CellWidth > 0 && l.CellHeight > 0 && l.Columns > 0 && l.Rows > 0 && l.Blocks > 0
}

// FramesPerBlock is the frame capacity of one motion slot.
func (l Layout) FramesPerBlock() int {
	if l.Blocks <= 0 {
		return 0
	}
	return l.Columns / l.Blocks
}

// Cell returns the grid column and row of a motion slot's frame.
func (l Layout) Cell(slot, pattern int) (col, row int) {
	block := slot / l.Rows
	row = slot % l.Rows
	col = block*l.FramesPerBlock() + pattern
	return col, row
}

// FrameRect returns the source rectangle of a motion slot's frame. Frames
// outside the grid fall back to the origin frame.
func (l Layout) FrameRect(slot, pattern int) image.Rectangle {
	if !l.Valid() {
		return image.Rectangle{}
	}
	col, row := l.Cell(slot, pattern)
	if slot < 0 || pattern < 0 || col >= l.Columns || row >= l.Rows ||
		(col+1)*l.CellWidth > l.Width || (row+1)*l.CellHeight > l.Height {
		log.Printf("Warning: frame %d of slot %d is outside the %dx%d grid, using origin frame", pattern, slot, l.Columns, l.Rows)
		return image.Rect(0, 0, l.CellWidth, l.CellHeight)
	}
	x := col * l.CellWidth
	y := row * l.CellHeight
	return image.Rect(x, y, x+l.CellWidth, y+l.CellHeight)
}
