package animations

import (
	"image"
	"testing"

	"github.com/furamon/svbattler/config"
)

func TestFixedLayoutAttackRects(t *testing.T) {
	l := NewLayout(testFixedWidth, testFixedHeight, config.LayoutFixed)
	if l.CellWidth != 24 || l.CellHeight != 64 || l.Columns != 9 {
		t.Fatalf("expected 24x64 cells over 9 columns, got %dx%d over %d", l.CellWidth, l.CellHeight, l.Columns)
	}

	attack := config.MotionByName("attack")
	if attack.Slot != 6 {
		t.Fatalf("expected attack in slot 6, got %d", attack.Slot)
	}

	want := []image.Rectangle{
		image.Rect(3*24, 0, 4*24, 64),
		image.Rect(4*24, 0, 5*24, 64),
		image.Rect(5*24, 0, 6*24, 64),
	}
	for pattern, w := range want {
		if got := l.FrameRect(attack.Slot, pattern); got != w {
			t.Errorf("pattern %d: expected %v, got %v", pattern, w, got)
		}
	}
}

func TestVariableLayoutGeometry(t *testing.T) {
	l := NewLayout(testVarWidth, testVarHeight, config.LayoutVariable)
	if l.CellWidth != testCell || l.CellHeight != testCell {
		t.Fatalf("expected square %d cells, got %dx%d", testCell, l.CellWidth, l.CellHeight)
	}
	if l.Columns != 18 || l.Blocks != 3 || l.FramesPerBlock() != 6 {
		t.Fatalf("expected 18 columns in 3 blocks of 6, got %d/%d/%d", l.Columns, l.Blocks, l.FramesPerBlock())
	}

	// skill: slot 9 is block 1, row 3
	got := l.FrameRect(config.Skill.Definition().Slot, 2)
	want := image.Rect(8*testCell, 3*testCell, 9*testCell, 4*testCell)
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		mode          config.LayoutMode
		want          config.LayoutMode
	}{
		{"standard 9x6 sheet", 576, 384, config.LayoutAuto, config.LayoutFixed},
		{"wide square grid", testVarWidth, testVarHeight, config.LayoutAuto, config.LayoutVariable},
		{"non-square cells", testFixedWidth, testFixedHeight, config.LayoutAuto, config.LayoutFixed},
		{"columns not divisible by blocks", 128 * 10, 768, config.LayoutAuto, config.LayoutFixed},
		{"explicit mode wins", 576, 384, config.LayoutVariable, config.LayoutVariable},
		{"empty image", 0, 0, config.LayoutAuto, config.LayoutFixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveMode(tt.width, tt.height, tt.mode); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestFrameRectOutsideGridFallsBackToOrigin(t *testing.T) {
	l := NewLayout(testFixedWidth, testFixedHeight, config.LayoutFixed)
	origin := image.Rect(0, 0, 24, 64)

	if got := l.FrameRect(config.Dead.Definition().Slot, 5); got != origin {
		t.Errorf("expected origin frame for a pattern past the grid, got %v", got)
	}
	if got := l.FrameRect(-1, 0); got != origin {
		t.Errorf("expected origin frame for a negative slot, got %v", got)
	}
}

func TestFrameRectIsIdempotent(t *testing.T) {
	l := NewLayout(testVarWidth, testVarHeight, config.LayoutVariable)
	a := l.FrameRect(14, 3)
	b := l.FrameRect(14, 3)
	if a != b {
		t.Errorf("expected identical rects, got %v and %v", a, b)
	}
}

func TestInvalidLayout(t *testing.T) {
	l := NewLayout(0, 0, config.LayoutFixed)
	if l.Valid() {
		t.Fatal("expected a zero-sized layout to be invalid")
	}
	if got := l.FrameRect(0, 0); !got.Empty() {
		t.Errorf("expected no rect from an invalid layout, got %v", got)
	}
}
