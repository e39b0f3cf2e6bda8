package invaders

// Snapshot contains the gameplay state of a session using primitive types
// only, for determinism checks.
type Snapshot struct {
	Frame   uint64
	Score   int
	Lives   int
	Outcome int

	PlayerX   int
	Ready     bool
	Direction int

	// Each unit is 3 ints: X, Y, Tier
	UnitCount int
	UnitData  []int

	BlockCount int

	// Each shot is 3 ints: X, Y, Owner
	ShotData []int

	BonusActive bool
	BonusX      int
	BonusTimer  int
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	units := s.formation.Units
	unitData := make([]int, 0, len(units)*3)
	for _, u := range units {
		unitData = append(unitData, u.rect.X, u.rect.Y, int(u.Tier))
	}

	shotData := make([]int, 0, (len(s.player.Shots)+len(s.enemyShots))*3)
	for _, list := range [][]*Projectile{s.player.Shots, s.enemyShots} {
		for _, p := range list {
			shotData = append(shotData, p.rect.X, p.rect.Y, int(p.Owner))
		}
	}

	snap := Snapshot{
		Frame:      s.frame,
		Score:      s.score,
		Lives:      s.lives,
		Outcome:    int(s.outcome),
		PlayerX:    s.player.rect.X,
		Ready:      s.player.ready,
		Direction:  s.formation.Direction,
		UnitCount:  len(units),
		UnitData:   unitData,
		BlockCount: len(s.blocks),
		ShotData:   shotData,
		BonusTimer: s.bonusTimer,
	}
	if s.bonus != nil {
		snap.BonusActive = true
		snap.BonusX = s.bonus.rect.X
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Outcome)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Direction)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.UnitCount)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BlockCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BonusX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BonusTimer) //#nosec G115 -- hash computation
	if snap.Ready {
		h = h*31 + 1
	}
	if snap.BonusActive {
		h = h*31 + 1
	}

	for _, v := range snap.UnitData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.ShotData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
