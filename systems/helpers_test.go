package systems

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/furamon/svbattler/assets"
	"github.com/furamon/svbattler/components"
	"github.com/furamon/svbattler/config"
	"github.com/furamon/svbattler/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// The hero sheet is a fixed 9x6 grid of 64px cells. Its wait frame holds an
// 11x31 body at (10,30) of the cell.
var heroBody = image.Rect(10, 30, 21, 61)

var slimeBody = image.Rect(20, 64, 60, 128)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func fill(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

func testSheets(t *testing.T) fstest.MapFS {
	hero := image.NewNRGBA(image.Rect(0, 0, 576, 384))
	fill(hero, heroBody.Add(image.Pt(0, 64)), color.NRGBA{R: 200, G: 160, B: 120, A: 255})

	// 128px cells, 18 columns: 3 blocks of 6 frames. The body is off
	// center so mirroring moves it.
	slime := image.NewNRGBA(image.Rect(0, 0, 2304, 768))
	fill(slime, slimeBody.Add(image.Pt(0, 128)), color.NRGBA{G: 200, A: 255})

	return fstest.MapFS{
		"sv_actors/Actor1_1.png": {Data: encodePNG(t, hero)},
		"sv_actors/Slime.png":    {Data: encodePNG(t, slime)},
	}
}

// newTestECS returns a headless battle world with a loader over in-memory
// sheets. Actor1_8 and Dragon are missing on purpose.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 816, 624, 16, 16)
	factory.CreateSheets(e, assets.NewSheetLoader(testSheets(t)))
	GetOrCreateSettings(e)
	return e
}

func place(kind string, side config.Side, x, y float64) assets.Placement {
	return assets.Placement{Kind: kind, Side: side, X: x, Y: y}
}

// spawn creates a battler with its substitute.
func spawn(e *ecs.ECS, p assets.Placement) (battler, sub *donburi.Entry) {
	battler = factory.CreateBattler(e, p)
	sub = factory.CreateSubstitute(e, battler)
	return battler, sub
}

// tick runs the battle systems once, in scene order.
func tick(e *ecs.ECS) {
	UpdateMotionRequests(e)
	UpdateAnimations(e)
	UpdateCollapses(e)
	UpdateEffects(e)
	UpdateSubstitutes(e)
	UpdateHitProxies(e)
}

func ticks(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		tick(e)
	}
}

func animationOf(sub *donburi.Entry) *components.AnimationData {
	return components.Animation.Get(sub)
}

func motionOf(sub *donburi.Entry) config.MotionID {
	st := animationOf(sub).State
	if !st.Playing() {
		return config.MotionNone
	}
	return st.Motion.ID
}
