package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Owner tells who fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Projectile is a shot travelling vertically at constant speed.
// Player shots move up (negative VY), enemy shots move down.
type Projectile struct {
	body
	VY    int
	Owner Owner
}

// newProjectile centers a w×h shot on (cx, cy).
func newProjectile(cx, cy, w, h, vy int, owner Owner) *Projectile {
	return &Projectile{
		body:  body{rect: core.RectAtCenter(cx, cy, w, h)},
		VY:    vy,
		Owner: owner,
	}
}

// Advance moves the shot by VY per frame.
func (p *Projectile) Advance(frames int) {
	p.rect.Y += p.VY * frames
}

// OffCanvas reports whether the shot has left [0, height].
func (p *Projectile) OffCanvas(height int) bool {
	return p.rect.Y < 0 || p.rect.Y > height
}

// advanceShots moves every shot one frame and drops the ones that left the canvas.
func advanceShots(shots []*Projectile, height int) []*Projectile {
	for _, s := range shots {
		s.Advance(1)
		if s.OffCanvas(height) {
			s.Hit()
		}
	}
	return sweep(shots)
}
