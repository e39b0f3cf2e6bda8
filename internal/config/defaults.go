package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultObstacleShape is the classic shield silhouette.
var DefaultObstacleShape = []string{
	"  xxxxxxx",
	" xxxxxxxxx",
	"xxxxxxxxxxx",
	"xxxxxxxxxxx",
	"xxxxxxxxxxx",
	"xxx     xxx",
	"xx       xx",
}

// DefaultInvadersConfig returns the hardcoded invaders configuration.
// The embedded YAML mirrors these values.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Canvas: CanvasConfig{
			Width:  600,
			Height: 600,
		},
		Player: PlayerConfig{
			Speed:      5,
			CooldownMS: 600,
			Lives:      3,
			Width:      52,
			Height:     26,
		},
		Formation: FormationConfig{
			Rows:       6,
			Cols:       8,
			XSpacing:   60,
			YSpacing:   40,
			XOffset:    70,
			YOffset:    100,
			Speed:      1,
			Descent:    2,
			UnitWidth:  40,
			UnitHeight: 24,
			Values: TierValues{
				Top:    300,
				Mid:    200,
				Bottom: 100,
			},
		},
		Shots: ShotConfig{
			PlayerSpeed: 8,
			EnemySpeed:  6,
			Width:       4,
			Height:      20,
		},
		Bonus: BonusConfig{
			Points:      500,
			MinInterval: 400,
			MaxInterval: 800,
			Speed:       3,
			Y:           80,
			EntryMargin: 50,
			Width:       64,
			Height:      28,
		},
		Obstacles: ObstacleConfig{
			Count:     4,
			BlockSize: 6,
			XStart:    40, // canvas width / 15
			YStart:    480,
			Color:     "red",
			Shape:     append([]string(nil), DefaultObstacleShape...),
		},
		Timing: TimingConfig{
			TickRate:       60,
			EnemyFireMS:    800,
			RestartPauseMS: 1500,
		},
		Audio: AudioConfig{
			MusicVolume:     0.1,
			ShotVolume:      0.1,
			ExplosionVolume: 0.2,
		},
		CRT: CRTConfig{
			Enabled:    true,
			LineHeight: 3,
			AlphaMin:   75,
			AlphaMax:   90,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultInvadersYAML
}
