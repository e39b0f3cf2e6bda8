package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Tier is a formation row class. It decides sprite and value.
type Tier int

const (
	TierTop Tier = iota
	TierMid
	TierBottom
)

func (t Tier) String() string {
	switch t {
	case TierTop:
		return "top"
	case TierMid:
		return "mid"
	case TierBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// tierForRow maps a grid row to its tier: row 0 is top, rows 1-2 mid.
func tierForRow(row int) Tier {
	switch {
	case row == 0:
		return TierTop
	case row <= 2:
		return TierMid
	default:
		return TierBottom
	}
}

// valueOf returns the points a tier is worth.
func valueOf(t Tier, v config.TierValues) int {
	switch t {
	case TierTop:
		return v.Top
	case TierMid:
		return v.Mid
	default:
		return v.Bottom
	}
}

// FormationUnit is one enemy of the marching grid.
type FormationUnit struct {
	body
	Tier  Tier
	Value int
}

// Shift moves the unit by dx units horizontally.
func (u *FormationUnit) Shift(dx int) { u.rect.X += dx }

// Descend moves the unit down by dy units.
func (u *FormationUnit) Descend(dy int) { u.rect.Y += dy }

// Side is the edge a bonus unit enters from.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// BonusUnit crosses the top of the canvas once, worth extra points.
type BonusUnit struct {
	body
	VX    int
	Value int
}

// newBonus places a bonus unit just outside the given side, heading inward.
func newBonus(side Side, cfg config.InvadersConfig) *BonusUnit {
	b := cfg.Bonus
	x, vx := -b.EntryMargin, b.Speed
	if side == SideRight {
		x, vx = cfg.Canvas.Width+b.EntryMargin, -b.Speed
	}
	return &BonusUnit{
		body:  body{rect: core.NewRect(x, b.Y, b.Width, b.Height)},
		VX:    vx,
		Value: b.Points,
	}
}

// Advance moves the bonus unit one frame.
func (b *BonusUnit) Advance() { b.rect.X += b.VX }

// Exited reports whether the unit has crossed the far edge of a w-wide canvas.
func (b *BonusUnit) Exited(w int) bool {
	if b.VX > 0 {
		return b.rect.X > w
	}
	return b.rect.Right() < 0
}
