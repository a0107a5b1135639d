package arena

import (
	"fmt"

	"github.com/WTuneSeeker/Pingo-Release-sub000/engine"
	"github.com/sirupsen/logrus"
)

// claimKey identifies one (event, cell) commit.
type claimKey struct {
	event uint64
	cell  int
}

// claim resolves a Number claim on idx for agent and scores it.
// Assumes lock is held by caller.
func (m *Match) claim(agent engine.AgentID, idx int, expected int) SubmitResult {
	res := m.board.TryClaim(idx, agent, expected, m.Rules.BasePoints)
	if !res.Accepted {
		return rejected(idx, claimReason(res.Reason))
	}
	m.checkCommit(agent, idx)

	isJackpot := idx == m.jackpot
	cluster := engine.HasAdjacentSameOwner(&m.board, idx, agent)
	newForts := engine.DetectNewForts(&m.board, idx, agent, m.forts)
	for _, f := range newForts {
		m.forts.Add(f)
		m.fortOwners[f] = agent
	}
	pts := m.ledger.AwardClaim(agent, idx, res.PointsBase, isJackpot, cluster, newForts)

	name := m.agentName(agent)
	m.record(LogClaim, agent, idx, fmt.Sprintf("%s claimed cell %d (%d) for %d pts", name, idx, m.board.Cells[idx].Value, pts))
	for _, f := range newForts {
		m.record(LogFort, agent, idx, fmt.Sprintf("%s built fort %s", name, f))
	}
	if isJackpot {
		m.jackpot = engine.PickJackpot(&m.board, m.rng)
		m.record(LogJackpot, agent, idx, fmt.Sprintf("%s hit the jackpot, new jackpot at cell %d", name, m.jackpot))
	}
	return SubmitResult{Accepted: true, Cell: idx, Points: pts}
}

// checkCommit enforces one accepted claim per (event, cell).
// Assumes lock is held by caller.
func (m *Match) checkCommit(agent engine.AgentID, idx int) {
	key := claimKey{event: m.active.ID, cell: idx}
	if prev, ok := m.commits[key]; ok {
		err := &InvariantBreachError{EventID: key.event, Cell: idx, First: prev, Second: agent}
		m.log.WithError(err).Error("claim invariant breached")
		panic(err)
	}
	m.commits[key] = agent
}

// bomb clears an opponent's unshielded cell and consumes the Bomb event.
// Assumes lock is held by caller.
func (m *Match) bomb(agent engine.AgentID, idx int) SubmitResult {
	if !engine.InBounds(idx) {
		return rejected(idx, ReasonOutOfRange)
	}
	c := m.board.Cell(idx)
	switch {
	case !c.IsOwned():
		return rejected(idx, ReasonNothingToBomb)
	case c.Owner == agent:
		return rejected(idx, ReasonInvalidTarget)
	case c.Shielded:
		m.record(LogBomb, agent, idx, fmt.Sprintf("%s's bomb bounced off the shield on cell %d", m.agentName(agent), idx))
		return rejected(idx, ReasonShielded)
	}
	if !m.board.ApplyBomb(idx) {
		return rejected(idx, ReasonInvalidTarget)
	}
	m.record(LogBomb, agent, idx, fmt.Sprintf("%s bombed cell %d from %s", m.agentName(agent), idx, m.agentName(c.Owner)))
	m.consumeEvent()
	return SubmitResult{Accepted: true, Cell: idx}
}

// shield protects one of agent's cells and consumes the Shield event.
// Assumes lock is held by caller.
func (m *Match) shield(agent engine.AgentID, idx int) SubmitResult {
	if !m.board.ApplyShield(idx, agent) {
		m.log.WithFields(logrus.Fields{"agent": agent, "cell": idx}).Debug("shield rejected")
		return rejected(idx, ReasonInvalidTarget)
	}
	m.record(LogShield, agent, idx, fmt.Sprintf("%s shielded cell %d", m.agentName(agent), idx))
	m.consumeEvent()
	return SubmitResult{Accepted: true, Cell: idx}
}
