package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Player is the ship at the bottom of the canvas. It owns its shots.
type Player struct {
	rect     core.Rect
	speed    int
	maxX     int
	ready    bool
	lastFire int64 // ms
	cooldown int64 // ms
	Shots    []*Projectile

	shotW, shotH, shotSpeed int
	canvasH                 int
	sink                    audio.Sink
}

// NewPlayer places the ship mid-bottom on the canvas, ready to fire.
func NewPlayer(cfg config.InvadersConfig, sink audio.Sink) *Player {
	w, h := cfg.Canvas.Width, cfg.Canvas.Height
	return &Player{
		rect:      core.RectAtMidBottom(w/2, h, cfg.Player.Width, cfg.Player.Height),
		speed:     cfg.Player.Speed,
		maxX:      w,
		ready:     true,
		cooldown:  int64(cfg.Player.CooldownMS),
		shotW:     cfg.Shots.Width,
		shotH:     cfg.Shots.Height,
		shotSpeed: cfg.Shots.PlayerSpeed,
		canvasH:   h,
		sink:      sink,
	}
}

// Bounds returns the ship's box.
func (p *Player) Bounds() core.Rect { return p.rect }

// Ready reports whether the weapon has recharged.
func (p *Player) Ready() bool { return p.ready }

// ApplyInput moves the ship and fires. Right wins over left.
func (p *Player) ApplyInput(in core.InputFrame, now int64) {
	if in.Has(core.ActionRight) {
		p.rect.X += p.speed
	} else if in.Has(core.ActionLeft) {
		p.rect.X -= p.speed
	}

	if in.Has(core.ActionFire) && p.ready {
		cx, _ := p.rect.Center()
		p.Shots = append(p.Shots, newProjectile(cx, p.rect.Y, p.shotW, p.shotH, -p.shotSpeed, OwnerPlayer))
		p.ready = false
		p.lastFire = now
		p.sink.Play(audio.SoundPlayerShot)
	}
}

// Recharge re-arms the weapon once the cooldown has elapsed.
func (p *Player) Recharge(now int64) {
	if !p.ready && now-p.lastFire >= p.cooldown {
		p.ready = true
	}
}

// Clamp keeps the ship inside [0, maxX].
func (p *Player) Clamp() {
	p.rect.X = core.Clamp(p.rect.X, 0, p.maxX-p.rect.W)
}

// Update runs one frame: input, clamp, recharge, then the ship's own shots.
func (p *Player) Update(now int64, in core.InputFrame) {
	p.ApplyInput(in, now)
	p.Clamp()
	p.Recharge(now)
	p.Shots = advanceShots(p.Shots, p.canvasH)
}
