package state

import (
	"image"
	"sync"

	"MemeBoard/internal/logger"
)

// Scene holds the base image, the ordered sticker sequence, both captions
// and the caption style. Sticker order is paint order.
type Scene struct {
	base     image.Image
	stickers []Sticker
	top      string
	bottom   string
	style    Style
	clock    revisionClock
	log      *logger.Logger
	mu       sync.RWMutex
}

func NewScene(log *logger.Logger) *Scene {
	if log == nil {
		log = logger.Discard()
	}
	return &Scene{
		stickers: make([]Sticker, 0),
		log:      log,
	}
}

// SetBase replaces the base image. The surface takes its size. A nil image
// is ignored.
func (s *Scene) SetBase(img image.Image) {
	if img == nil {
		s.log.Warning("[SCENE] Ignoring nil base image")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.base = img
	s.clock.Tick()
	b := img.Bounds()
	s.log.Info("[SCENE] Base image replaced: %dx%d", b.Dx(), b.Dy())
}

// AddSticker appends a sticker with the default geometry and returns it.
func (s *Scene) AddSticker(img image.Image) Sticker {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Sticker{
		ID:     newStickerID(),
		Image:  img,
		X:      DefaultStickerX,
		Y:      DefaultStickerY,
		Width:  DefaultStickerWidth,
		Height: DefaultStickerHeight,
	}
	s.stickers = append(s.stickers, st)
	s.clock.Tick()
	s.log.Info("[SCENE] Sticker added: %s (index %d)", st.ID, len(s.stickers)-1)
	return st
}

// RemoveSticker deletes the sticker at index. Stickers above it move down one
// index; callers holding indices must refresh them.
func (s *Scene) RemoveSticker(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.stickers) {
		return false
	}
	id := s.stickers[index].ID
	s.stickers = append(s.stickers[:index], s.stickers[index+1:]...)
	s.clock.Tick()
	s.log.Info("[SCENE] Sticker removed: %s (index %d)", id, index)
	return true
}

func (s *Scene) SetTopText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.top = text
	s.clock.Tick()
}

func (s *Scene) SetBottomText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bottom = text
	s.clock.Tick()
}

func (s *Scene) SetStyle(style Style) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.style = style
	s.clock.Tick()
}

func (s *Scene) Style() Style {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.style
}

// SurfaceSize is the base image size, or the default surface size when no
// base image has been loaded.
func (s *Scene) SurfaceSize() (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.surfaceSize()
}

func (s *Scene) surfaceSize() (int, int) {
	if s.base == nil {
		return DefaultSurfaceWidth, DefaultSurfaceHeight
	}
	b := s.base.Bounds()
	return b.Dx(), b.Dy()
}

// Snapshot copies the scene for rendering.
func (s *Scene) Snapshot() Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, h := s.surfaceSize()
	stickers := make([]Sticker, len(s.stickers))
	copy(stickers, s.stickers)
	return Frame{
		Base:     s.base,
		Width:    w,
		Height:   h,
		Top:      s.top,
		Bottom:   s.bottom,
		Style:    s.style,
		Stickers: stickers,
	}
}

// HitTest returns the index of the topmost sticker whose box contains the
// point, or NoSelection. The scan runs in insertion order and every match
// overwrites the previous one, so the last match wins.
func (s *Scene) HitTest(x, y float64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hit := NoSelection
	for i, st := range s.stickers {
		if st.Bounds().Contains(x, y) {
			hit = i
		}
	}
	return hit
}

func (s *Scene) Sticker(index int) (Sticker, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.stickers) {
		return Sticker{}, false
	}
	return s.stickers[index], true
}

func (s *Scene) StickerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.stickers)
}

// MoveSticker sets the sticker's top-left corner.
func (s *Scene) MoveSticker(index int, x, y float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.stickers) {
		return false
	}
	s.stickers[index].X = x
	s.stickers[index].Y = y
	s.clock.Tick()
	return true
}

// ResizeSticker sets the sticker's display size. Negative values are kept.
func (s *Scene) ResizeSticker(index int, width, height float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.stickers) {
		return false
	}
	s.stickers[index].Width = width
	s.stickers[index].Height = height
	s.clock.Tick()
	return true
}

// Revision increases on every mutation.
func (s *Scene) Revision() uint64 {
	return s.clock.Now()
}
