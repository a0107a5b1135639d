package engine

import "math/rand/v2"

// DrawEvent draws the next scheduled event: Bomb with r.BombChance, Shield
// with r.ShieldChance, otherwise a Number uniform in [MinValue, MaxValue].
func DrawEvent(rng *rand.Rand, id uint64, r Rules) Event {
	roll := rng.Float64()
	switch {
	case roll < r.BombChance:
		return Event{ID: id, Kind: EventBomb}
	case roll < r.BombChance+r.ShieldChance:
		return Event{ID: id, Kind: EventShield}
	}
	return Event{ID: id, Kind: EventNumber, Value: MinValue + rng.IntN(MaxValue-MinValue+1)}
}
