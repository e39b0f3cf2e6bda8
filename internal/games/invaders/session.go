package invaders

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Outcome is the result of a session.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeGameOver
	OutcomeVictory
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeGameOver:
		return "game_over"
	case OutcomeVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Session is one playthrough, from formation spawn to a terminal outcome.
// It owns every entity; a new playthrough gets a new Session.
type Session struct {
	ID string

	cfg    config.InvadersConfig
	assets Assets
	sink   audio.Sink
	rng    *rand.Rand

	player     *Player
	formation  *Formation
	blocks     []*Block
	bonus      *BonusUnit
	enemyShots []*Projectile
	bonusTimer int // Frames until the next bonus unit

	score   int
	lives   int
	outcome Outcome
	frame   uint64
}

// NewSession spawns the player, shields and formation, and starts the
// background music.
func NewSession(cfg config.InvadersConfig, assets Assets, sink audio.Sink, rng *rand.Rand) *Session {
	s := &Session{
		cfg:    cfg,
		assets: assets,
		sink:   sink,
		rng:    rng,
		lives:  cfg.Player.Lives,
	}

	// rand.Rand is an io.Reader, so IDs replay with the seed.
	if id, err := uuid.NewRandomFromReader(rng); err == nil {
		s.ID = id.String()
	}

	s.player = NewPlayer(cfg, sink)
	s.blocks = BuildObstacles(cfg)

	f := cfg.Formation
	s.formation = NewFormation(cfg, sink)
	s.formation.Spawn(f.Rows, f.Cols, f.XSpacing, f.YSpacing, f.XOffset, f.YOffset)

	s.bonusTimer = s.nextBonusInterval()

	sink.SetVolume(audio.SoundMusic, cfg.Audio.MusicVolume)
	sink.SetVolume(audio.SoundExplosion, cfg.Audio.ExplosionVolume)
	sink.SetVolume(audio.SoundPlayerShot, cfg.Audio.ShotVolume)
	sink.SetVolume(audio.SoundEnemyShot, cfg.Audio.ShotVolume)
	sink.Loop(audio.SoundMusic)

	return s
}

// Score returns the points earned so far.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Outcome returns the session result, OutcomeNone while playing.
func (s *Session) Outcome() Outcome { return s.outcome }

// Over reports whether the session reached a terminal outcome.
func (s *Session) Over() bool { return s.outcome != OutcomeNone }

// Player returns the player's ship.
func (s *Session) Player() *Player { return s.player }

// Formation returns the enemy formation.
func (s *Session) Formation() *Formation { return s.formation }

// Blocks returns the surviving shield blocks.
func (s *Session) Blocks() []*Block { return s.blocks }

// Bonus returns the bonus unit currently crossing, or nil.
func (s *Session) Bonus() *BonusUnit { return s.bonus }

// EnemyShots returns the enemy projectiles in flight.
func (s *Session) EnemyShots() []*Projectile { return s.enemyShots }

// Advance runs one frame. The order is fixed: updates, collisions, edge
// bounce, enemy fire, bonus timer, victory check. A finished session
// ignores further frames.
func (s *Session) Advance(now int64, in core.InputFrame, fireDue bool) {
	if s.Over() {
		return
	}
	s.frame++

	s.player.Update(now, in)
	s.enemyShots = advanceShots(s.enemyShots, s.cfg.Canvas.Height)
	s.formation.Step()
	s.advanceBonus()

	s.resolveCollisions()
	s.formation.CheckEdges()

	if fireDue {
		if shot := s.formation.Fire(s.rng); shot != nil {
			s.enemyShots = append(s.enemyShots, shot)
		}
	}

	s.tickBonusTimer()

	if s.formation.Empty() {
		s.end(OutcomeVictory)
	}
}

// PurgeEnemyShots removes every enemy projectile.
func (s *Session) PurgeEnemyShots() {
	s.enemyShots = nil
}

func (s *Session) advanceBonus() {
	if s.bonus == nil {
		return
	}
	s.bonus.Advance()
	if s.bonus.Exited(s.cfg.Canvas.Width) {
		s.bonus = nil
	}
}

func (s *Session) tickBonusTimer() {
	s.bonusTimer--
	if s.bonusTimer > 0 {
		return
	}
	s.bonus = newBonus(Side(s.rng.Intn(2)), s.cfg)
	s.bonusTimer = s.nextBonusInterval()
}

// nextBonusInterval draws uniformly from [MinInterval, MaxInterval].
func (s *Session) nextBonusInterval() int {
	b := s.cfg.Bonus
	return b.MinInterval + s.rng.Intn(b.MaxInterval-b.MinInterval+1)
}

// resolveCollisions applies every hit for this frame. A projectile stops at
// the first thing it hits.
func (s *Session) resolveCollisions() {
	for _, shot := range s.player.Shots {
		s.resolvePlayerShot(shot)
	}
	s.player.Shots = sweep(s.player.Shots)

	for _, shot := range s.enemyShots {
		s.resolveEnemyShot(shot)
	}
	s.enemyShots = sweep(s.enemyShots)

	for _, u := range s.formation.Units {
		if !u.Alive() {
			continue
		}
		strike(u.Bounds(), s.blocks)
		if u.Bounds().Intersects(s.player.Bounds()) {
			s.end(OutcomeGameOver)
		}
	}

	s.blocks = sweep(s.blocks)
	s.formation.Sweep()
}

func (s *Session) resolvePlayerShot(shot *Projectile) {
	r := shot.Bounds()

	if len(strike(r, s.blocks)) > 0 {
		shot.Hit()
		return
	}

	if killed := strike(r, s.formation.Units); len(killed) > 0 {
		for _, u := range killed {
			s.score += u.Value
		}
		s.sink.Play(audio.SoundExplosion)
		shot.Hit()
		return
	}

	if s.bonus != nil && s.bonus.Bounds().Intersects(r) {
		s.score += s.bonus.Value
		s.bonus = nil
		shot.Hit()
	}
}

func (s *Session) resolveEnemyShot(shot *Projectile) {
	r := shot.Bounds()

	if len(strike(r, s.blocks)) > 0 {
		shot.Hit()
		return
	}

	if r.Intersects(s.player.Bounds()) {
		shot.Hit()
		s.sink.Play(audio.SoundExplosion)
		s.lives--
		if s.lives <= 0 {
			s.end(OutcomeGameOver)
		}
	}
}

// end records the first terminal outcome of the session.
func (s *Session) end(o Outcome) {
	if s.outcome == OutcomeNone {
		s.outcome = o
	}
}
