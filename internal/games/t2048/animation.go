package t2048

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/grid"
)

// easings maps config names to easing curves.
var easings = map[string]ease.TweenFunc{
	"linear":      ease.Linear,
	"out-quad":    ease.OutQuad,
	"in-out-quad": ease.InOutQuad,
	"out-cubic":   ease.OutCubic,
	"out-back":    ease.OutBack,
}

// EasingFor returns the named easing, falling back to out-quad.
func EasingFor(name string) ease.TweenFunc {
	if fn, ok := easings[name]; ok {
		return fn
	}
	return ease.OutQuad
}

// slideAnim eases one moved tile from its source to its destination cell.
type slideAnim struct {
	move  grid.Move
	tween *gween.Tween
	t     float32
}

// popAnim grows a newly spawned tile to full size.
type popAnim struct {
	tween *gween.Tween
	scale float32
}

// animator owns the running tweens. Each tile is settled when its tween
// ends, which is what lets the controller finish the turn.
type animator struct {
	easing   ease.TweenFunc
	slideSec float32
	popSec   float32

	slides map[*grid.Tile]*slideAnim
	pops   map[*grid.Tile]*popAnim
}

func newAnimator(opts Options) *animator {
	a := &animator{
		easing: EasingFor(opts.Easing),
		slides: make(map[*grid.Tile]*slideAnim),
		pops:   make(map[*grid.Tile]*popAnim),
	}
	if opts.Animate {
		a.slideSec = float32(opts.SlideDuration.Seconds())
		a.popSec = float32(opts.PopDuration.Seconds())
	}
	return a
}

func (a *animator) startSlide(moves []grid.Move) {
	for _, m := range moves {
		if a.slideSec <= 0 {
			m.Tile.Settle()
			continue
		}
		a.slides[m.Tile] = &slideAnim{
			move:  m,
			tween: gween.New(0, 1, a.slideSec, a.easing),
		}
	}
}

func (a *animator) startPop(t *grid.Tile) {
	if a.popSec <= 0 {
		t.Settle()
		return
	}
	a.pops[t] = &popAnim{
		tween: gween.New(0, 1, a.popSec, ease.OutBack),
	}
}

// update advances every tween by dt seconds.
func (a *animator) update(dt float32) {
	for tile, s := range a.slides {
		cur, done := s.tween.Update(dt)
		s.t = cur
		if done {
			delete(a.slides, tile)
			tile.Settle()
		}
	}
	// Pops wait for the slide to clear so a new tile never appears mid-slide.
	if len(a.slides) > 0 {
		return
	}
	for tile, p := range a.pops {
		cur, done := p.tween.Update(dt)
		p.scale = cur
		if done {
			delete(a.pops, tile)
			tile.Settle()
		}
	}
}

func (a *animator) busy() bool {
	return len(a.slides) > 0 || len(a.pops) > 0
}

// position returns the tile's interpolated board position while it slides.
func (a *animator) position(t *grid.Tile) (x, y float32, ok bool) {
	s, ok := a.slides[t]
	if !ok {
		return 0, 0, false
	}
	m := s.move
	x = float32(m.FromX) + float32(m.ToX-m.FromX)*s.t
	y = float32(m.FromY) + float32(m.ToY-m.FromY)*s.t
	return x, y, true
}

// scale returns the pop scale in [0, 1+] for a spawning tile.
func (a *animator) scale(t *grid.Tile) (float32, bool) {
	p, ok := a.pops[t]
	if !ok {
		return 1, false
	}
	return p.scale, true
}
