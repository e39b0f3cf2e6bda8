package invaders

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

func init() {
	registry.Register("invaders", func(env registry.Env) registry.Game {
		var opts []Option
		if env.Config != nil {
			opts = append(opts, WithConfig(*env.Config))
		}
		if env.Audio != nil {
			opts = append(opts, WithAudio(env.Audio))
		}
		if env.Logger != nil {
			opts = append(opts, WithLogger(env.Logger))
		}
		return New(opts...)
	})
}

// Phase is a stage of the outer game loop.
type Phase int

const (
	PhaseStart  Phase = iota // Title screen, waiting for confirm
	PhaseActive              // A session is being played
	PhaseEnding              // Session over, holding the last frame
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseActive:
		return "active"
	case PhaseEnding:
		return "ending"
	default:
		return "unknown"
	}
}

// Game is the outer loop: title screen, play, hold on the result, and
// back to the title with a fresh session.
type Game struct {
	cfg    config.InvadersConfig
	assets Assets
	sink   audio.Sink
	logger *log.Logger

	rng      *rand.Rand
	session  *Session
	phase    Phase
	prev     core.InputFrame
	paused   bool
	endedAt  int64 // ms
	crtAlpha uint8
}

// Option configures a Game.
type Option func(*Game)

// WithConfig sets the game configuration. It should already be validated.
func WithConfig(cfg config.InvadersConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithAudio sets the sound sink.
func WithAudio(sink audio.Sink) Option {
	return func(g *Game) { g.sink = sink }
}

// WithLogger sets the logger for session events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// New creates an invaders game. Without options it uses the builtin
// configuration, no sound and no logging.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:    config.DefaultInvadersConfig(),
		sink:   audio.Nop{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.assets = DefaultAssets(g.cfg)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Reset seeds the game and returns to the title screen with a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.prev = core.NewInputFrame()
	g.paused = false
	g.endedAt = 0
	g.crtAlpha = 0
	g.newSession()
}

// newSession replaces the session wholesale and shows the title screen.
func (g *Game) newSession() {
	g.session = NewSession(g.cfg, g.assets, g.sink, rand.New(rand.NewSource(g.rng.Int63())))
	g.sink.SetVolume(audio.SoundEnemyShot, 0)
	g.phase = PhaseStart
	g.logger.Debug("session ready", "id", g.session.ID)
}

// Step advances the loop by one tick.
func (g *Game) Step(t core.Tick) core.StepResult {
	if g.session == nil {
		g.Reset(core.DefaultConfig())
	}

	confirm := t.Input.Has(core.ActionConfirm) && !g.prev.Has(core.ActionConfirm)
	pause := t.Input.Has(core.ActionPause) && !g.prev.Has(core.ActionPause)
	g.prev = t.Input.Clone()

	g.rollCRT()

	switch g.phase {
	case PhaseStart:
		g.session.PurgeEnemyShots()
		if confirm {
			g.sink.SetVolume(audio.SoundEnemyShot, g.cfg.Audio.ShotVolume)
			g.phase = PhaseActive
			g.logger.Info("session started", "id", g.session.ID)
		}

	case PhaseActive:
		if pause {
			g.paused = !g.paused
			g.logger.Debug("pause toggled", "paused", g.paused)
		}
		if g.paused {
			break
		}
		g.session.Advance(t.Now, t.Input, t.FireDue)
		if g.session.Over() {
			g.sink.Stop(audio.SoundMusic)
			g.endedAt = t.Now
			g.phase = PhaseEnding
			g.logger.Info("session ended",
				"id", g.session.ID,
				"outcome", g.session.Outcome(),
				"score", g.session.Score(),
				"lives", g.session.Lives())
		}

	case PhaseEnding:
		if t.Now-g.endedAt >= int64(g.cfg.Timing.RestartPauseMS) {
			g.newSession()
		}
	}

	return core.StepResult{State: g.State()}
}

// rollCRT picks this frame's scanline opacity.
func (g *Game) rollCRT() {
	c := g.cfg.CRT
	if !c.Enabled {
		return
	}
	g.crtAlpha = uint8(c.AlphaMin + g.rng.Intn(c.AlphaMax-c.AlphaMin+1)) //#nosec G115 -- validated to [0,255]
}

// Render draws the current frame onto a terminal screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	g.Draw(core.NewCanvas(dst, g.cfg.Canvas.Width, g.cfg.Canvas.Height))
}

// Draw renders the current frame onto any surface.
func (g *Game) Draw(dst Surface) {
	w, h := g.cfg.Canvas.Width, g.cfg.Canvas.Height

	switch g.phase {
	case PhaseStart:
		dst.Text(g.Title(), w/2, h/3, core.AlignCenter, core.ColorWhite)
		dst.Text("Press Enter to START", w/2, h/2, core.AlignCenter, core.ColorWhite)
	default:
		g.session.Render(dst)
		if g.paused {
			dst.Panel(core.RectAtCenter(w/2, h/2, w/2, 80))
			dst.Text("PAUSED", w/2, h/2, core.AlignCenter, core.ColorYellow)
		}
	}

	if g.cfg.CRT.Enabled && g.cfg.CRT.LineHeight > 0 {
		for line := range h / g.cfg.CRT.LineHeight {
			dst.HLine(line*g.cfg.CRT.LineHeight, core.ColorBlack, g.crtAlpha)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Phase: g.phase.String()}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Lives:    g.session.Lives(),
		Phase:    g.phase.String(),
		GameOver: g.session.Over(),
		Paused:   g.paused,
	}
}

// Phase returns the loop stage.
func (g *Game) Phase() Phase { return g.phase }

// Session returns the current session.
func (g *Game) Session() *Session { return g.session }

// CRTAlpha returns the scanline opacity rolled for the current frame.
func (g *Game) CRTAlpha() uint8 { return g.crtAlpha }
