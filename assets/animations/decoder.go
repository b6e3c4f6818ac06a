package animations

import (
	"image/color"
	"log"

	"github.com/furamon/svbattler/config"
)

// PlaybackType is how a motion's frames are stepped through.
type PlaybackType int

const (
	PlaybackNormal PlaybackType = iota
	PlaybackFreeze
	PlaybackLoop
	PlaybackPingPong
)

func (p PlaybackType) String() string {
	switch p {
	case PlaybackFreeze:
		return "freeze"
	case PlaybackLoop:
		return "loop"
	case PlaybackPingPong:
		return "pingpong"
	default:
		return "normal"
	}
}

// FrameInfo is what a sheet says about one motion slot.
type FrameInfo struct {
	FrameCount int
	Playback   PlaybackType
	Speed      int // ticks per frame override, 0 = none
}

// HasSpeed reports whether the sheet overrides the motion's speed.
func (f FrameInfo) HasSpeed() bool {
	return f.Speed > 0
}

// FixedFrameInfo is the convention used when a sheet carries no metadata.
func FixedFrameInfo(l Layout) FrameInfo {
	return FrameInfo{
		FrameCount: max(1, l.FramesPerBlock()),
		Playback:   PlaybackNormal,
	}
}

// FrameKey addresses a decoded motion slot.
type FrameKey struct {
	Sheet SheetID
	Slot  int
}

// Decoder reads pixel-encoded motion metadata and remembers the result for
// every (sheet, slot) it has seen.
type Decoder struct {
	cache map[FrameKey]*FrameInfo
}

func NewDecoder() *Decoder {
	return &Decoder{cache: make(map[FrameKey]*FrameInfo)}
}

// FrameInfo returns the metadata of a motion slot. Results for ready sheets
// are cached and the same pointer is returned on every later call.
func (d *Decoder) FrameInfo(s *Sheet, slot int) *FrameInfo {
	if !s.Ready() {
		info := FixedFrameInfo(s.safeLayout())
		return &info
	}

	key := FrameKey{Sheet: s.ID, Slot: slot}
	if info, ok := d.cache[key]; ok {
		return info
	}

	info := detectFrameInfo(s, slot)
	if config.Debug.LogDecoder {
		log.Printf("decoder: %s slot %d -> %d frames, %s, speed %d", s.Name, slot, info.FrameCount, info.Playback, info.Speed)
	}
	d.cache[key] = &info
	return &info
}

// Forget drops every cached entry of a sheet.
func (d *Decoder) Forget(id SheetID) {
	for key := range d.cache {
		if key.Sheet == id {
			delete(d.cache, key)
		}
	}
}

// Len is the number of cached entries.
func (d *Decoder) Len() int {
	return len(d.cache)
}

func (s *Sheet) safeLayout() Layout {
	if s == nil {
		return Layout{}
	}
	return s.Layout
}

func detectFrameInfo(s *Sheet, slot int) (info FrameInfo) {
	l := s.Layout
	fallback := FixedFrameInfo(l)
	if s.Fixed() {
		return fallback
	}

	// Image surfaces that cannot be read yet panic on access.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Warning: could not sample %s slot %d: %v", s.Name, slot, r)
			info = fallback
		}
	}()

	capacity := l.FramesPerBlock()
	if capacity <= 0 || slot < 0 {
		return fallback
	}

	origin := s.Source.Bounds().Min
	for i := 1; i < capacity; i++ {
		col, row := l.Cell(slot, i)
		x := origin.X + col*l.CellWidth + config.Sheet.SampleOffsetX
		y := origin.Y + row*l.CellHeight + config.Sheet.SampleOffsetY
		c := color.NRGBAModel.Convert(s.Source.At(x, y)).(color.NRGBA)
		if !isTerminator(c) {
			continue
		}
		playback, speed := ClassifyTerminator(c)
		return FrameInfo{FrameCount: i, Playback: playback, Speed: speed}
	}

	return FrameInfo{FrameCount: capacity, Playback: PlaybackNormal}
}

// isTerminator reports whether a sampled pixel marks the end of a motion.
func isTerminator(c color.NRGBA) bool {
	if c.A == 0 {
		return false
	}
	return c.R != 0 || c.G != 0 || c.B != 0
}

// ClassifyTerminator reads the playback type and speed override encoded in a
// terminator pixel.
func ClassifyTerminator(c color.NRGBA) (PlaybackType, int) {
	playback := PlaybackNormal
	switch {
	case c.R == 255 && c.G == 255 && c.B < 255:
		playback = PlaybackPingPong
	case c.R == 255 && c.G < 255 && c.B < 255:
		playback = PlaybackFreeze
	case c.R < 255 && c.G == 255 && c.B < 255:
		playback = PlaybackLoop
	}

	speed := 0
	if c.B > 0 && c.B < 255 {
		speed = int(c.B)
	}
	return playback, speed
}
