// internal/arena/sync_state.go
package arena

import (
	"github.com/WTuneSeeker/Pingo-Release-sub000/engine"
	"github.com/google/uuid"
)

// CellState is one board cell as seen by the presentation layer.
type CellState struct {
	Index    int            `json:"index"`
	Value    int            `json:"value"`
	Owner    engine.AgentID `json:"owner"` // -1 when unclaimed
	Shielded bool           `json:"shielded"`
	Seq      uint32         `json:"seq,omitempty"` // claim order, 0 when unclaimed
	Jackpot  bool           `json:"jackpot"`
}

// AgentState is one seat with its running score.
type AgentState struct {
	ID      engine.AgentID `json:"id"`
	Name    string         `json:"name"`
	IsHuman bool           `json:"isHuman"`
	Score   int            `json:"score"`
	Cells   int            `json:"cells"`
	Locked  bool           `json:"locked"`
}

// EventState describes the active event.
type EventState struct {
	ID    uint64 `json:"id"`
	Kind  string `json:"kind"`
	Value int    `json:"value,omitempty"`
}

// MatchState is an immutable snapshot of a match. Every slice is a fresh
// copy owned by the caller.
type MatchState struct {
	MatchID        uuid.UUID    `json:"matchId"`
	Phase          Phase        `json:"phase"`
	RemainingUnits int          `json:"remainingUnits"`
	Jackpot        int          `json:"jackpot"`
	ActiveEvent    EventState   `json:"activeEvent"`
	Board          []CellState  `json:"board,omitempty"`
	Agents         []AgentState `json:"agents,omitempty"`
	Forts          []string     `json:"forts,omitempty"`
	Logs           []LogEntry   `json:"logs,omitempty"`
}

// GetState returns a snapshot of the match.
func (m *Match) GetState() MatchState {
	m.mu.Lock()
	defer m.unlock()
	return m.stateLocked()
}

// stateLocked builds the snapshot.
// Assumes lock is held by caller.
func (m *Match) stateLocked() MatchState {
	st := MatchState{
		MatchID:        m.ID,
		Phase:          m.phase,
		RemainingUnits: m.remaining,
		Jackpot:        m.jackpot,
		ActiveEvent: EventState{
			ID:    m.active.ID,
			Kind:  m.active.Kind.String(),
			Value: m.active.Value,
		},
		Logs: m.logs.snapshot(),
	}
	if m.phase == PhaseLobby {
		return st
	}

	st.Board = make([]CellState, engine.NumCells)
	for i, c := range m.board.Cells {
		st.Board[i] = CellState{
			Index:    i,
			Value:    int(c.Value),
			Owner:    c.Owner,
			Shielded: c.Shielded,
			Seq:      c.Seq,
			Jackpot:  i == m.jackpot,
		}
	}

	now := m.now()
	st.Agents = make([]AgentState, len(m.agents))
	for i, a := range m.agents {
		st.Agents[i] = AgentState{
			ID:      a.ID,
			Name:    a.Name,
			IsHuman: a.IsHuman,
			Score:   m.ledger.Score(a.ID),
			Cells:   m.board.CountOwned(a.ID),
			Locked:  a.IsHuman && m.phase == PhasePlaying && a.isLocked(now),
		}
	}

	for _, f := range m.forts.Sorted() {
		st.Forts = append(st.Forts, f.String())
	}
	return st
}

// EngineBoard rebuilds an engine board from the snapshot so callers can run
// the engine's target-selection helpers against it.
func (st MatchState) EngineBoard() engine.Board {
	var values [engine.NumCells]uint8
	for _, c := range st.Board {
		values[c.Index] = uint8(c.Value)
	}
	b := engine.BoardFromValues(values)
	for _, c := range st.Board {
		b.Cells[c.Index].Owner = c.Owner
		b.Cells[c.Index].Shielded = c.Shielded
		b.Cells[c.Index].Seq = c.Seq
	}
	return b
}
