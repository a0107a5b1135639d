package arena

import (
	"fmt"
	"time"

	"github.com/WTuneSeeker/Pingo-Release-sub000/engine"
)

// emitNext draws and emits the next event, then re-arms the cadence timer.
func (m *Match) emitNext() {
	m.mu.Lock()
	defer m.unlock()

	if m.phase != PhasePlaying {
		return
	}
	m.emit(engine.DrawEvent(m.rng, m.nextEventID(), m.Rules))
	m.cadenceTimer = time.AfterFunc(m.units(m.Rules.CadenceUnits), m.emitNext)
}

// emit makes ev the active event, surfaces it to the human and schedules
// one reaction per AI seat.
// Assumes lock is held by caller.
func (m *Match) emit(ev engine.Event) {
	m.active = ev
	m.record(LogEvent, engine.NoAgent, -1, describeEvent(ev))

	if m.OnEvent != nil {
		cb := m.OnEvent
		m.queue(func() { cb(ev) })
	}
	for _, a := range m.agents {
		if !a.IsHuman {
			m.scheduleReaction(a, ev)
		}
	}
}

// consumeEvent resets the active event to Idle after a bomb or shield has
// been used up. The fresh id makes every other pending reaction stale.
// Assumes lock is held by caller.
func (m *Match) consumeEvent() {
	m.active = engine.IdleEvent(m.nextEventID())
}

func describeEvent(ev engine.Event) string {
	switch ev.Kind {
	case engine.EventNumber:
		return fmt.Sprintf("number %d called", ev.Value)
	case engine.EventBomb:
		return "bomb incoming"
	case engine.EventShield:
		return "shield available"
	}
	return "idle"
}
