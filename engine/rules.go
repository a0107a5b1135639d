package engine

import "fmt"

// Rules holds the tunable match constants. Durations are counted in time
// units; the match controller decides how long a unit is.
type Rules struct {
	MatchUnits   int // countdown length
	CadenceUnits int // gap between emitted events
	LockUnits    int // human misclick penalty

	BombChance   float64
	ShieldChance float64

	BasePoints        int
	JackpotMultiplier int
	ClusterBonus      int
	FortBonus         int

	LogCapacity int
}

// DefaultRules returns the standard Conquest Arena rules.
func DefaultRules() Rules {
	return Rules{
		MatchUnits:        180,
		CadenceUnits:      4,
		LockUnits:         2,
		BombChance:        0.05,
		ShieldChance:      0.05,
		BasePoints:        10,
		JackpotMultiplier: 5,
		ClusterBonus:      20,
		FortBonus:         100,
		LogCapacity:       12,
	}
}

// Validate rejects rule sets the match controller cannot run.
func (r Rules) Validate() error {
	switch {
	case r.MatchUnits <= 0:
		return fmt.Errorf("match length must be positive, got %d", r.MatchUnits)
	case r.CadenceUnits <= 0:
		return fmt.Errorf("event cadence must be positive, got %d", r.CadenceUnits)
	case r.LockUnits < 0:
		return fmt.Errorf("lock penalty must not be negative, got %d", r.LockUnits)
	case r.BombChance < 0 || r.ShieldChance < 0 || r.BombChance+r.ShieldChance > 1:
		return fmt.Errorf("bomb/shield chances out of range: %v/%v", r.BombChance, r.ShieldChance)
	case r.BasePoints < 0 || r.JackpotMultiplier < 0 || r.ClusterBonus < 0 || r.FortBonus < 0:
		return fmt.Errorf("point values must not be negative")
	case r.LogCapacity <= 0:
		return fmt.Errorf("log capacity must be positive, got %d", r.LogCapacity)
	}
	return nil
}
