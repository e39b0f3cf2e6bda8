package invaders

import (
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Formation moves the enemy grid as one body: a lateral march that reverses
// and drops whenever a unit touches a canvas edge.
type Formation struct {
	Units     []*FormationUnit
	Direction int // +1 right, -1 left
	Speed     int
	Descent   int

	width     int
	unitW     int
	unitH     int
	values    config.TierValues
	shotW     int
	shotH     int
	shotSpeed int
	sink      audio.Sink
}

// NewFormation returns an empty formation marching right.
func NewFormation(cfg config.InvadersConfig, sink audio.Sink) *Formation {
	f := cfg.Formation
	return &Formation{
		Direction: 1,
		Speed:     f.Speed,
		Descent:   f.Descent,
		width:     cfg.Canvas.Width,
		unitW:     f.UnitWidth,
		unitH:     f.UnitHeight,
		values:    f.Values,
		shotW:     cfg.Shots.Width,
		shotH:     cfg.Shots.Height,
		shotSpeed: cfg.Shots.EnemySpeed,
		sink:      sink,
	}
}

// Spawn fills the grid row by row. Unit (row, col) sits at
// (col*xSpacing + xOffset, row*ySpacing + yOffset).
func (f *Formation) Spawn(rows, cols, xSpacing, ySpacing, xOffset, yOffset int) {
	f.Units = make([]*FormationUnit, 0, rows*cols)
	for row := range rows {
		tier := tierForRow(row)
		for col := range cols {
			f.Units = append(f.Units, &FormationUnit{
				body:  body{rect: core.NewRect(col*xSpacing+xOffset, row*ySpacing+yOffset, f.unitW, f.unitH)},
				Tier:  tier,
				Value: valueOf(tier, f.values),
			})
		}
	}
}

// Step shifts every unit by Direction*Speed.
func (f *Formation) Step() {
	dx := f.Direction * f.Speed
	for _, u := range f.Units {
		u.Shift(dx)
	}
}

// CheckEdges reverses the march when any unit touches an edge. Both edges
// are tested against the positions at call time, so a formation touching
// both in one pass descends twice and ends up heading right.
func (f *Formation) CheckEdges() {
	hitRight, hitLeft := false, false
	for _, u := range f.Units {
		if u.rect.Right() >= f.width {
			hitRight = true
		}
		if u.rect.X <= 0 {
			hitLeft = true
		}
	}
	if hitRight {
		f.Direction = -1
		f.descend()
	}
	if hitLeft {
		f.Direction = 1
		f.descend()
	}
}

func (f *Formation) descend() {
	for _, u := range f.Units {
		u.Descend(f.Descent)
	}
}

// Fire picks a live unit uniformly at random and returns a shot from its
// center. It returns nil when the formation is empty.
func (f *Formation) Fire(rng *rand.Rand) *Projectile {
	if f.Empty() {
		return nil
	}
	u := f.Units[rng.Intn(len(f.Units))]
	cx, cy := u.rect.Center()
	f.sink.Play(audio.SoundEnemyShot)
	return newProjectile(cx, cy, f.shotW, f.shotH, f.shotSpeed, OwnerEnemy)
}

// Empty reports whether every unit has been destroyed.
func (f *Formation) Empty() bool {
	return len(f.Units) == 0
}

// Sweep drops destroyed units.
func (f *Formation) Sweep() {
	f.Units = sweep(f.Units)
}
