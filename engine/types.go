package engine

import "fmt"

// Board geometry and the range of called numbers.
const (
	BoardSize = 10
	NumCells  = BoardSize * BoardSize

	MinValue = 1
	MaxValue = 90
)

// AgentID identifies the human player or one of the AI rivals.
type AgentID int8

// NoAgent marks an unowned cell.
const NoAgent AgentID = -1

// MaxAgents bounds the number of seats in a match (one human, three rivals).
const MaxAgents = 4

// Cell is a single board square.
type Cell struct {
	Value    uint8   // 1–90
	Owner    AgentID // NoAgent when unclaimed
	Shielded bool
	Seq      uint32 // board-wide claim order, 0 when unowned
}

// IsOwned reports whether any agent owns the cell.
func (c Cell) IsOwned() bool { return c.Owner != NoAgent }

// ---------------------------------------------------------------------------
// Events
// ---------------------------------------------------------------------------

// EventKind tags the variant of an Event.
type EventKind uint8

const (
	EventIdle   EventKind = iota // 0
	EventNumber                  // 1
	EventBomb                    // 2
	EventShield                  // 3
)

func (k EventKind) String() string {
	switch k {
	case EventIdle:
		return "idle"
	case EventNumber:
		return "number"
	case EventBomb:
		return "bomb"
	case EventShield:
		return "shield"
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event is a call-out broadcast to every agent. IDs strictly increase within
// a match so that reactions scheduled for an older event can be discarded.
type Event struct {
	ID    uint64
	Kind  EventKind
	Value int // called number, only for EventNumber
}

// IdleEvent returns an Idle event carrying id.
func IdleEvent(id uint64) Event { return Event{ID: id, Kind: EventIdle} }

func (e Event) String() string {
	if e.Kind == EventNumber {
		return fmt.Sprintf("#%d number(%d)", e.ID, e.Value)
	}
	return fmt.Sprintf("#%d %s", e.ID, e.Kind)
}
