// Package audio provides fire-and-forget sound playback for the game.
// Game code talks to a Sink; the beep-backed Engine synthesizes every
// sound at runtime so no audio assets are needed.
package audio

// SoundID identifies one of the game's sounds.
type SoundID int

const (
	SoundPlayerShot SoundID = iota
	SoundEnemyShot
	SoundExplosion
	SoundMusic
)

// String returns a human-readable name for the sound.
func (id SoundID) String() string {
	switch id {
	case SoundPlayerShot:
		return "player_shot"
	case SoundEnemyShot:
		return "enemy_shot"
	case SoundExplosion:
		return "explosion"
	case SoundMusic:
		return "music"
	default:
		return "unknown"
	}
}

// Sink receives sound commands. Calls never block and never report back.
type Sink interface {
	Play(id SoundID)
	SetVolume(id SoundID, level float64)
	Loop(id SoundID)
	Stop(id SoundID)
}

// Nop is a Sink that discards everything.
type Nop struct{}

func (Nop) Play(SoundID)               {}
func (Nop) SetVolume(SoundID, float64) {}
func (Nop) Loop(SoundID)               {}
func (Nop) Stop(SoundID)               {}
