package animations

import (
	"image"
	"image/color"

	"github.com/furamon/svbattler/config"
)

// Variable test sheets: 128px square cells, 18 columns, 3 blocks of 6 frames.
const (
	testCell        = 128
	testVarWidth    = testCell * 18
	testVarHeight   = testCell * 6
	testFixedWidth  = 216
	testFixedHeight = 384
)

// countingImage records how often pixels are sampled.
type countingImage struct {
	image.Image
	calls int
}

func (c *countingImage) At(x, y int) color.Color {
	c.calls++
	return c.Image.At(x, y)
}

// unreadableImage panics on access like a GPU image read before the game
// loop starts.
type unreadableImage struct {
	image.Rectangle
}

func (u unreadableImage) ColorModel() color.Model { return color.NRGBAModel }
func (u unreadableImage) Bounds() image.Rectangle { return u.Rectangle }
func (u unreadableImage) At(x, y int) color.Color { panic("pixels are not readable yet") }

func newVariableImage() *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, testVarWidth, testVarHeight))
}

// markFrame paints the sampling pixel of a slot's frame.
func markFrame(img *image.NRGBA, slot, frame int, c color.NRGBA) {
	l := NewLayout(img.Bounds().Dx(), img.Bounds().Dy(), config.LayoutVariable)
	col, row := l.Cell(slot, frame)
	img.SetNRGBA(col*l.CellWidth+config.Sheet.SampleOffsetX, row*l.CellHeight+config.Sheet.SampleOffsetY, c)
}

func fillRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}
