package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Assets holds the images a session draws with. They are built once and
// handed to every session.
type Assets struct {
	Player      *core.Sprite
	Life        *core.Sprite
	AlienTop    *core.Sprite
	AlienMid    *core.Sprite
	AlienBottom *core.Sprite
	Bonus       *core.Sprite
	PlayerShot  *core.Sprite
	EnemyShot   *core.Sprite
	Block       *core.Sprite
}

// DefaultAssets returns the glyph sprites for a terminal canvas.
func DefaultAssets(cfg config.InvadersConfig) Assets {
	ship := &core.Sprite{Rows: []string{"  ▲  ", "▟███▙"}, Color: core.ColorBrightGreen}
	return Assets{
		Player:      ship,
		Life:        &core.Sprite{Rows: ship.Rows, Color: ship.Color},
		AlienTop:    &core.Sprite{Rows: []string{"▄▀██▀▄", "▀▄  ▄▀"}, Color: core.ColorYellow},
		AlienMid:    &core.Sprite{Rows: []string{"▐▀██▀▌", "▝▘  ▝▘"}, Color: core.ColorGreen},
		AlienBottom: &core.Sprite{Rows: []string{"▄████▄", "▀▄▀▀▄▀"}, Color: core.ColorRed},
		Bonus:       &core.Sprite{Rows: []string{"▗▄██▄▖", "▀▀▀▀▀▀"}, Color: core.ColorBrightRed},
		PlayerShot:  &core.Sprite{Rows: []string{"│"}, Color: core.ColorWhite},
		EnemyShot:   &core.Sprite{Rows: []string{"¦"}, Color: core.ColorWhite},
		Block:       &core.Sprite{Color: core.ColorByName(cfg.Obstacles.Color)},
	}
}

// alienSprite returns the sprite for a formation tier.
func (a Assets) alienSprite(t Tier) *core.Sprite {
	switch t {
	case TierTop:
		return a.AlienTop
	case TierMid:
		return a.AlienMid
	default:
		return a.AlienBottom
	}
}
