package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"github.com/furamon/svbattler/assets/animations"
	"github.com/furamon/svbattler/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// ErrSheetNotFound is returned when a battler sheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// SheetAsset is a loaded sheet plus its GPU copy. The texture is created on
// first draw so sheets can be loaded and decoded before the game loop runs.
type SheetAsset struct {
	*animations.Sheet
	Path string

	texture *ebiten.Image
	frames  map[image.Rectangle]*ebiten.Image
}

// Texture returns the GPU image of the sheet, or nil while the sheet is not
// ready.
func (a *SheetAsset) Texture() *ebiten.Image {
	if a == nil || !a.Ready() {
		return nil
	}
	if a.texture == nil {
		a.texture = ebiten.NewImageFromImage(a.Source)
	}
	return a.texture
}

// Frame returns a cached sub-image of the sheet texture.
// This prevents creating a new *ebiten.Image per draw for the same frame.
func (a *SheetAsset) Frame(r image.Rectangle) *ebiten.Image {
	tex := a.Texture()
	if tex == nil || r.Empty() {
		return nil
	}
	if img, ok := a.frames[r]; ok {
		return img
	}
	img := tex.SubImage(r).(*ebiten.Image)
	a.frames[r] = img
	return img
}

// Release frees the GPU copy of the sheet.
func (a *SheetAsset) Release() {
	if a.texture != nil {
		a.texture.Deallocate()
	}
	a.texture = nil
	a.frames = make(map[image.Rectangle]*ebiten.Image)
}

type sheetKey struct {
	path string
	mode config.LayoutMode
}

// SheetLoader reads battler sheets from a file system. Every path is loaded
// once per layout mode; a sheet that fails to load is replaced by a placeholder which stays
// cached so the failure is only reported once.
type SheetLoader struct {
	fsys    fs.FS
	dir     string
	ext     string
	nextID  animations.SheetID
	cache   map[sheetKey]*SheetAsset
	decoder *animations.Decoder
}

func NewSheetLoader(fsys fs.FS) *SheetLoader {
	return &SheetLoader{
		fsys:    fsys,
		dir:     config.Sheet.Directory,
		ext:     config.Sheet.Extension,
		cache:   make(map[sheetKey]*SheetAsset),
		decoder: animations.NewDecoder(),
	}
}

// Decoder returns the frame info decoder shared by every sheet of the loader.
func (l *SheetLoader) Decoder() *animations.Decoder {
	return l.decoder
}

// Path maps a sheet name onto its location in the loader's file system.
func (l *SheetLoader) Path(name string) string {
	if path.Ext(name) == "" {
		name += l.ext
	}
	if l.dir == "" || strings.Contains(name, "/") {
		return name
	}
	return path.Join(l.dir, name)
}

// Load returns the sheet called name. On failure the returned asset is a
// never-ready placeholder and the error says why.
func (l *SheetLoader) Load(name string, mode config.LayoutMode) (*SheetAsset, error) {
	p := l.Path(name)
	key := sheetKey{path: p, mode: mode}
	if a, ok := l.cache[key]; ok {
		return a, nil
	}

	a, err := l.load(name, p, mode)
	l.cache[key] = a
	return a, err
}

// Reload drops a cached sheet and its decoded frame info and loads it again
// under a new id.
func (l *SheetLoader) Reload(name string, mode config.LayoutMode) (*SheetAsset, error) {
	key := sheetKey{path: l.Path(name), mode: mode}
	if old, ok := l.cache[key]; ok {
		l.decoder.Forget(old.ID)
		old.Release()
		delete(l.cache, key)
	}
	return l.Load(name, mode)
}

// Preload loads every named sheet and decodes all motion slots, so the first
// battle frame does not stall on pixel reads.
func (l *SheetLoader) Preload(kinds map[string]config.BattlerKindConfig) {
	keys := make([]string, 0, len(kinds))
	for k := range kinds {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		kind := kinds[k]
		a, err := l.Load(kind.SheetName, kind.Layout)
		if err != nil {
			log.Printf("Warning: Failed to preload sheet for %s: %v", k, err)
			continue
		}
		for _, m := range config.Motions {
			l.decoder.FrameInfo(a.Sheet, m.Slot)
		}
	}
}

// Len returns the number of cached sheets, placeholders included. A sheet
// loaded under two layout modes counts twice.
func (l *SheetLoader) Len() int {
	return len(l.cache)
}

// Stats returns the number of loaded sheets and the bytes their decoded
// pixels take. Placeholders are not counted.
func (l *SheetLoader) Stats() (sheets int, bytes int64) {
	for _, a := range l.cache {
		if !a.Ready() {
			continue
		}
		b := a.Source.Bounds()
		sheets++
		bytes += int64(b.Dx()) * int64(b.Dy()) * 4
	}
	return sheets, bytes
}

func (l *SheetLoader) load(name, p string, mode config.LayoutMode) (*SheetAsset, error) {
	l.nextID++
	id := l.nextID

	f, err := l.fsys.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %s", ErrSheetNotFound, p)
		} else {
			err = fmt.Errorf("open sheet %s: %w", p, err)
		}
		return l.placeholder(id, name, p), err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return l.placeholder(id, name, p), fmt.Errorf("decode sheet %s: %w", p, err)
	}

	sheet := animations.NewSheet(id, name, img, mode)
	if !sheet.Ready() {
		b := img.Bounds()
		return l.placeholder(id, name, p), fmt.Errorf("sheet %s has no usable grid (%dx%d)", p, b.Dx(), b.Dy())
	}
	return &SheetAsset{
		Sheet:  sheet,
		Path:   p,
		frames: make(map[image.Rectangle]*ebiten.Image),
	}, nil
}

func (l *SheetLoader) placeholder(id animations.SheetID, name, p string) *SheetAsset {
	return &SheetAsset{
		Sheet:  animations.NewPlaceholderSheet(id, name),
		Path:   p,
		frames: make(map[image.Rectangle]*ebiten.Image),
	}
}
