// Package config provides YAML-based configuration loading for the
// invaders game. Every tunable of a session lives here; the game package
// only reads a validated InvadersConfig.
package config

// InvadersConfig contains all configuration for a game of invaders.
type InvadersConfig struct {
	Canvas    CanvasConfig    `yaml:"canvas"`
	Player    PlayerConfig    `yaml:"player"`
	Formation FormationConfig `yaml:"formation"`
	Shots     ShotConfig      `yaml:"shots"`
	Bonus     BonusConfig     `yaml:"bonus"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Timing    TimingConfig    `yaml:"timing"`
	Audio     AudioConfig     `yaml:"audio"`
	CRT       CRTConfig       `yaml:"crt"`
}

// CanvasConfig defines the fixed logical canvas all positions live on.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player's ship.
type PlayerConfig struct {
	Speed      int `yaml:"speed"`       // Units per frame
	CooldownMS int `yaml:"cooldown_ms"` // Minimum time between shots
	Lives      int `yaml:"lives"`
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
}

// FormationConfig defines the enemy grid and its march.
type FormationConfig struct {
	Rows       int        `yaml:"rows"`
	Cols       int        `yaml:"cols"`
	XSpacing   int        `yaml:"x_spacing"`
	YSpacing   int        `yaml:"y_spacing"`
	XOffset    int        `yaml:"x_offset"`
	YOffset    int        `yaml:"y_offset"`
	Speed      int        `yaml:"speed"`   // Lateral units per frame
	Descent    int        `yaml:"descent"` // Units dropped per edge bounce
	UnitWidth  int        `yaml:"unit_width"`
	UnitHeight int        `yaml:"unit_height"`
	Values     TierValues `yaml:"values"`
}

// TierValues are the points awarded per formation tier.
type TierValues struct {
	Top    int `yaml:"top"`
	Mid    int `yaml:"mid"`
	Bottom int `yaml:"bottom"`
}

// ShotConfig defines projectile speeds and size.
type ShotConfig struct {
	PlayerSpeed int `yaml:"player_speed"` // Magnitude, travels up
	EnemySpeed  int `yaml:"enemy_speed"`  // Magnitude, travels down
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
}

// BonusConfig defines the bonus unit crossing the top of the canvas.
type BonusConfig struct {
	Points      int `yaml:"points"`
	MinInterval int `yaml:"min_interval"` // Frames
	MaxInterval int `yaml:"max_interval"` // Frames
	Speed       int `yaml:"speed"`
	Y           int `yaml:"y"`
	EntryMargin int `yaml:"entry_margin"` // Spawn distance outside the canvas
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
}

// ObstacleConfig defines the destructible shields.
type ObstacleConfig struct {
	Count     int      `yaml:"count"`
	BlockSize int      `yaml:"block_size"`
	XStart    int      `yaml:"x_start"`
	YStart    int      `yaml:"y_start"`
	Color     string   `yaml:"color"`
	Shape     []string `yaml:"shape"` // 'x' marks a block
}

// TimingConfig defines the clocks driving the loop.
type TimingConfig struct {
	TickRate       int `yaml:"tick_rate"`
	EnemyFireMS    int `yaml:"enemy_fire_ms"`
	RestartPauseMS int `yaml:"restart_pause_ms"`
}

// AudioConfig defines per-sound volume levels in [0, 1].
type AudioConfig struct {
	MusicVolume     float64 `yaml:"music_volume"`
	ShotVolume      float64 `yaml:"shot_volume"`
	ExplosionVolume float64 `yaml:"explosion_volume"`
}

// CRTConfig defines the scanline post-process.
type CRTConfig struct {
	Enabled    bool `yaml:"enabled"`
	LineHeight int  `yaml:"line_height"`
	AlphaMin   int  `yaml:"alpha_min"`
	AlphaMax   int  `yaml:"alpha_max"`
}
