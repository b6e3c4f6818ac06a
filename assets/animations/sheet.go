package animations

import (
	"image"

	"github.com/furamon/svbattler/config"
)

// SheetID identifies a loaded sheet. IDs are never reused, so a replaced
// sheet never hits stale decoder entries.
type SheetID uint32

// Sheet is one battler image plus the geometry derived from it.
type Sheet struct {
	ID     SheetID
	Name   string
	Source image.Image
	Layout Layout

	ready  bool
	bounds *VisibleBounds
}

// NewSheet wraps a decoded image. The sheet is ready when the image has a
// usable grid.
func NewSheet(id SheetID, name string, src image.Image, mode config.LayoutMode) *Sheet {
	s := &Sheet{ID: id, Name: name, Source: src}
	if src == nil {
		return s
	}
	b := src.Bounds()
	s.Layout = NewLayout(b.Dx(), b.Dy(), mode)
	s.ready = s.Layout.Valid()
	return s
}

// NewPlaceholderSheet returns a never-ready sheet backed by a 1x1
// transparent image.
func NewPlaceholderSheet(id SheetID, name string) *Sheet {
	return &Sheet{ID: id, Name: name, Source: image.NewNRGBA(image.Rect(0, 0, 1, 1))}
}

// Ready reports whether the image loaded and its layout is known.
func (s *Sheet) Ready() bool {
	return s != nil && s.ready
}

// Fixed reports whether the sheet uses the 9x6 convention without metadata.
func (s *Sheet) Fixed() bool {
	return s.Layout.Mode != config.LayoutVariable
}

// VisibleBounds returns the opaque area of the sheet's reference frame,
// computed the first time it is asked for after the sheet is ready.
func (s *Sheet) VisibleBounds() VisibleBounds {
	if !s.Ready() {
		return VisibleBounds{}
	}
	if s.bounds == nil {
		cell := s.Layout.FrameRect(config.Wait.Definition().Slot, 0)
		vb := DetectVisibleBounds(s.Source, cell)
		s.bounds = &vb
	}
	return *s.bounds
}
