package arena

import (
	"fmt"

	"github.com/WTuneSeeker/Pingo-Release-sub000/engine"
	"github.com/sirupsen/logrus"
)

// HumanSubmitClaim claims idx for the human under the active Number event.
// A cell whose value does not match the called number locks the human out
// for Rules.LockUnits.
func (m *Match) HumanSubmitClaim(idx int) SubmitResult {
	m.mu.Lock()
	defer m.unlock()
	return m.humanClaim(idx)
}

// HumanSubmitBomb drops the active Bomb on idx.
func (m *Match) HumanSubmitBomb(idx int) SubmitResult {
	m.mu.Lock()
	defer m.unlock()
	return m.humanBomb(idx)
}

// HumanSubmitShield uses the active Shield on the human's most recently
// claimed unshielded cell.
func (m *Match) HumanSubmitShield() SubmitResult {
	m.mu.Lock()
	defer m.unlock()
	return m.humanShield()
}

// submitForEvent runs a human submission only if eventID is still the
// active event, checked under the same lock as the submission itself.
func (m *Match) submitForEvent(eventID uint64, submit func() SubmitResult) SubmitResult {
	m.mu.Lock()
	defer m.unlock()

	if m.phase == PhasePlaying && m.active.ID != eventID {
		return m.rejectHuman(-1, ReasonStaleEvent)
	}
	return submit()
}

// Assumes lock is held by caller.
func (m *Match) humanClaim(idx int) SubmitResult {
	human, res, ok := m.admitHuman(idx)
	if !ok {
		return res
	}
	if m.active.Kind != engine.EventNumber {
		return m.rejectHuman(idx, ReasonEventMismatch)
	}
	if !engine.InBounds(idx) {
		return m.rejectHuman(idx, ReasonOutOfRange)
	}
	if int(m.board.Cells[idx].Value) != m.active.Value {
		human.lockedUntil = m.now().Add(m.units(m.Rules.LockUnits))
		m.record(LogLock, human.ID, idx, fmt.Sprintf("%s misclicked cell %d, locked for %d", human.Name, idx, m.Rules.LockUnits))
		return m.rejectHuman(idx, ReasonValueMismatch)
	}

	res = m.claim(human.ID, idx, m.active.Value)
	if !res.Accepted {
		return m.rejectHuman(idx, res.Reason)
	}
	return res
}

// Assumes lock is held by caller.
func (m *Match) humanBomb(idx int) SubmitResult {
	human, res, ok := m.admitHuman(idx)
	if !ok {
		return res
	}
	if m.active.Kind != engine.EventBomb {
		return m.rejectHuman(idx, ReasonEventMismatch)
	}
	res = m.bomb(human.ID, idx)
	if !res.Accepted {
		return m.rejectHuman(idx, res.Reason)
	}
	return res
}

// Assumes lock is held by caller.
func (m *Match) humanShield() SubmitResult {
	human, res, ok := m.admitHuman(-1)
	if !ok {
		return res
	}
	if m.active.Kind != engine.EventShield {
		return m.rejectHuman(-1, ReasonEventMismatch)
	}
	idx, found := engine.ChooseShieldTarget(&m.board, human.ID)
	if !found {
		return m.rejectHuman(-1, ReasonNothingToShield)
	}
	res = m.shield(human.ID, idx)
	if !res.Accepted {
		return m.rejectHuman(idx, res.Reason)
	}
	return res
}

// admitHuman applies the checks shared by every human submission: the match
// must be Playing and the human must not be locked.
// Assumes lock is held by caller.
func (m *Match) admitHuman(idx int) (*Agent, SubmitResult, bool) {
	if m.phase != PhasePlaying {
		return nil, m.rejectHuman(idx, ReasonPhase), false
	}
	human := m.agent(HumanID)
	if human == nil {
		return nil, m.rejectHuman(idx, ReasonInvalidTarget), false
	}
	if human.isLocked(m.now()) {
		return nil, m.rejectHuman(idx, ReasonLocked), false
	}
	return human, SubmitResult{}, true
}

// rejectHuman logs and builds a rejection.
// Assumes lock is held by caller.
func (m *Match) rejectHuman(idx int, reason Reason) SubmitResult {
	m.log.WithFields(logrus.Fields{
		"cell":   idx,
		"reason": reason,
		"event":  m.active.ID,
	}).Debug("human submission rejected")
	return rejected(idx, reason)
}
