// Package invaders implements a fixed-timestep space invaders game:
// a player ship defending against a marching formation, with destructible
// shields, a bonus saucer, scoring, lives and win/lose outcomes.
//
// All positions are logical canvas units (600×600 by default). Game logic
// never touches the terminal; it renders through the Surface interface.
package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Entity is anything on the canvas that can be struck and destroyed.
type Entity interface {
	Bounds() core.Rect
	Alive() bool
	Hit()
}

// body is the shared box + liveness of destructible entities.
type body struct {
	rect core.Rect
	dead bool
}

// Bounds returns the entity's box.
func (b *body) Bounds() core.Rect { return b.rect }

// Alive reports whether the entity has not been destroyed.
func (b *body) Alive() bool { return !b.dead }

// Hit destroys the entity. Hitting a destroyed entity is a no-op.
func (b *body) Hit() { b.dead = true }

// overlapping returns the live targets whose boxes intersect probe.
func overlapping[E Entity](probe core.Rect, targets []E) []E {
	var hits []E
	for _, t := range targets {
		if t.Alive() && t.Bounds().Intersects(probe) {
			hits = append(hits, t)
		}
	}
	return hits
}

// strike destroys every live target overlapping probe and returns them.
func strike[E Entity](probe core.Rect, targets []E) []E {
	hits := overlapping(probe, targets)
	for _, t := range hits {
		t.Hit()
	}
	return hits
}

// sweep drops destroyed entities, reusing the backing array.
func sweep[E Entity](list []E) []E {
	kept := list[:0]
	for _, e := range list {
		if e.Alive() {
			kept = append(kept, e)
		}
	}
	clear(list[len(kept):])
	return kept
}
