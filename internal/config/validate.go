package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the configuration describes a playable session.
func (c InvadersConfig) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.Canvas.Width > 0 && c.Canvas.Height > 0, "canvas dimensions must be positive"},
		{c.Player.Speed > 0, "player.speed must be positive"},
		{c.Player.CooldownMS >= 0, "player.cooldown_ms must not be negative"},
		{c.Player.Lives > 0, "player.lives must be positive"},
		{c.Player.Width > 0 && c.Player.Width <= c.Canvas.Width, "player.width must fit the canvas"},
		{c.Player.Height > 0 && c.Player.Height <= c.Canvas.Height, "player.height must fit the canvas"},
		{c.Formation.Rows > 0 && c.Formation.Cols > 0, "formation needs at least one row and column"},
		{c.Formation.Speed > 0, "formation.speed must be positive"},
		{c.Formation.Descent >= 0, "formation.descent must not be negative"},
		{c.Formation.UnitWidth > 0 && c.Formation.UnitHeight > 0, "formation unit size must be positive"},
		{c.Shots.PlayerSpeed > 0 && c.Shots.EnemySpeed > 0, "shot speeds must be positive"},
		{c.Shots.Width > 0 && c.Shots.Height > 0, "shot size must be positive"},
		{c.Bonus.MinInterval > 0, "bonus.min_interval must be positive"},
		{c.Bonus.MaxInterval >= c.Bonus.MinInterval, "bonus.max_interval must not be below min_interval"},
		{c.Bonus.Speed > 0, "bonus.speed must be positive"},
		{c.Bonus.Width > 0 && c.Bonus.Height > 0, "bonus size must be positive"},
		{c.Obstacles.Count >= 0, "obstacles.count must not be negative"},
		{c.Obstacles.BlockSize > 0, "obstacles.block_size must be positive"},
		{c.Timing.TickRate > 0, "timing.tick_rate must be positive"},
		{c.Timing.EnemyFireMS > 0, "timing.enemy_fire_ms must be positive"},
		{c.Timing.RestartPauseMS >= 0, "timing.restart_pause_ms must not be negative"},
		{volumeOK(c.Audio.MusicVolume) && volumeOK(c.Audio.ShotVolume) && volumeOK(c.Audio.ExplosionVolume), "audio volumes must be within [0, 1]"},
		{!c.CRT.Enabled || c.CRT.LineHeight > 0, "crt.line_height must be positive"},
		{c.CRT.AlphaMin >= 0 && c.CRT.AlphaMax <= 255 && c.CRT.AlphaMin <= c.CRT.AlphaMax, "crt alpha range must be within [0, 255]"},
	}

	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, check.msg)
		}
	}
	return nil
}

func volumeOK(v float64) bool {
	return v >= 0 && v <= 1
}
