package arena

import (
	"math/rand/v2"
	"time"

	"github.com/WTuneSeeker/Pingo-Release-sub000/engine"
)

// HumanID is the seat of the human player.
const HumanID engine.AgentID = 0

// AgentSpec configures a seat. Speeds are in time units and only matter for
// AI rivals.
type AgentSpec struct {
	Name       string  `yaml:"name"`
	SpeedFloor float64 `yaml:"speed_floor"`
	Jitter     float64 `yaml:"jitter"`
}

// DefaultHuman is the human seat used when Options leaves it empty.
func DefaultHuman() AgentSpec { return AgentSpec{Name: "You"} }

// DefaultRivals returns the three AI skill tiers, fastest first.
func DefaultRivals() []AgentSpec {
	return []AgentSpec{
		{Name: "Blitz", SpeedFloor: 0.8, Jitter: 1.2},
		{Name: "Tactician", SpeedFloor: 1.5, Jitter: 1.2},
		{Name: "Rookie", SpeedFloor: 2.5, Jitter: 1.2},
	}
}

// Agent is one seat in a match.
type Agent struct {
	ID      engine.AgentID
	Name    string
	IsHuman bool

	SpeedFloor time.Duration // AI only
	Jitter     time.Duration // AI only

	lockedUntil time.Time   // human misclick penalty
	reaction    *time.Timer // pending reaction for the current event
}

func newAgent(id engine.AgentID, spec AgentSpec, human bool, unit time.Duration) *Agent {
	a := &Agent{ID: id, Name: spec.Name, IsHuman: human}
	if !human {
		a.SpeedFloor = time.Duration(spec.SpeedFloor * float64(unit))
		a.Jitter = time.Duration(spec.Jitter * float64(unit))
	}
	return a
}

// reactionDelay samples a delay uniformly from [SpeedFloor, SpeedFloor+Jitter].
func (a *Agent) reactionDelay(rng *rand.Rand) time.Duration {
	if a.Jitter <= 0 {
		return a.SpeedFloor
	}
	return a.SpeedFloor + time.Duration(rng.Int64N(int64(a.Jitter)+1))
}

// isLocked reports whether the human is still inside a misclick penalty.
func (a *Agent) isLocked(now time.Time) bool {
	return now.Before(a.lockedUntil)
}
