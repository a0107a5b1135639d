package arena

import (
	"time"

	"github.com/WTuneSeeker/Pingo-Release-sub000/engine"
	"github.com/sirupsen/logrus"
)

// scheduleReaction arms a's private reaction to ev. A reaction still pending
// for an older event is stopped first; it would be stale anyway.
// Assumes lock is held by caller.
func (m *Match) scheduleReaction(a *Agent, ev engine.Event) {
	if a.reaction != nil {
		a.reaction.Stop()
	}
	delay := a.reactionDelay(m.rng)
	agentID, eventID := a.ID, ev.ID
	a.reaction = time.AfterFunc(delay, func() {
		m.react(agentID, eventID)
	})
}

// react runs an AI seat's decision for eventID. Reactions whose event is no
// longer active, or that fire after the match finished, do nothing.
func (m *Match) react(id engine.AgentID, eventID uint64) SubmitResult {
	m.mu.Lock()
	defer m.unlock()

	if m.phase != PhasePlaying {
		return rejected(-1, ReasonPhase)
	}
	if m.active.ID != eventID {
		m.log.WithFields(logrus.Fields{"agent": id, "event": eventID, "active": m.active.ID}).Debug("stale reaction dropped")
		return rejected(-1, ReasonStaleEvent)
	}
	a := m.agent(id)
	if a == nil || a.IsHuman {
		return rejected(-1, ReasonInvalidTarget)
	}

	switch m.active.Kind {
	case engine.EventNumber:
		idx, ok := engine.ChooseNumberTarget(&m.board, id, m.active.Value)
		if !ok {
			return rejected(-1, ReasonCellTaken)
		}
		return m.claim(id, idx, m.active.Value)
	case engine.EventBomb:
		idx, ok := engine.ChooseBombTarget(&m.board, id, m.rng)
		if !ok {
			return rejected(-1, ReasonNothingToBomb)
		}
		return m.bomb(id, idx)
	case engine.EventShield:
		idx, ok := engine.ChooseShieldTarget(&m.board, id)
		if !ok {
			return rejected(-1, ReasonNothingToShield)
		}
		return m.shield(id, idx)
	}
	return rejected(-1, ReasonEventMismatch)
}
