package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Surface is what the game draws on, in logical canvas units.
// *core.Canvas implements it. A terminal can only dim a cell row, so the
// canvas ignores the HLine color and treats any non-zero alpha as "dim".
type Surface interface {
	Blit(s *core.Sprite, r core.Rect)
	Text(text string, x, y int, align core.Align, c core.Color)
	HLine(y int, c core.Color, alpha uint8)
	Panel(r core.Rect)
}

const (
	livesY     = 8
	livesGap   = 10
	scoreX     = 10
	scoreY     = 8
	loseText   = "You loose"
	winText    = "You won"
	overlayPad = 40
)

// Render draws the session. It reads state only, so repeated calls
// without Advance draw the same frame.
func (s *Session) Render(dst Surface) {
	for _, shot := range s.player.Shots {
		dst.Blit(s.assets.PlayerShot, shot.Bounds())
	}
	dst.Blit(s.assets.Player, s.player.Bounds())
	for _, u := range s.formation.Units {
		dst.Blit(s.assets.alienSprite(u.Tier), u.Bounds())
	}
	for _, b := range s.blocks {
		dst.Blit(s.assets.Block, b.Bounds())
	}
	for _, shot := range s.enemyShots {
		dst.Blit(s.assets.EnemyShot, shot.Bounds())
	}
	if s.bonus != nil {
		dst.Blit(s.assets.Bonus, s.bonus.Bounds())
	}

	s.renderLives(dst)
	dst.Text(fmt.Sprintf("score: %d", s.score), scoreX, scoreY, core.AlignLeft, core.ColorWhite)

	switch s.outcome {
	case OutcomeGameOver:
		s.renderOverlay(dst, loseText)
	case OutcomeVictory:
		s.renderOverlay(dst, winText)
	}
}

// renderLives draws one icon per life beyond the current one.
func (s *Session) renderLives(dst Surface) {
	w, h := s.cfg.Player.Width, s.cfg.Player.Height
	x0 := s.cfg.Canvas.Width - (w*2 + 20)
	for i := range max(s.lives-1, 0) {
		dst.Blit(s.assets.Life, core.NewRect(x0+i*(w+livesGap), livesY, w, h))
	}
}

func (s *Session) renderOverlay(dst Surface, text string) {
	cx, cy := s.cfg.Canvas.Width/2, s.cfg.Canvas.Height/2
	dst.Panel(core.RectAtCenter(cx, cy, s.cfg.Canvas.Width/2, overlayPad*2))
	dst.Text(text, cx, cy, core.AlignCenter, core.ColorWhite)
}
