// internal/arena/match.go
package arena

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/WTuneSeeker/Pingo-Release-sub000/engine"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Phase is the match lifecycle state.
type Phase uint8

const (
	PhaseLobby    Phase = iota // 0
	PhasePlaying               // 1
	PhaseFinished              // 2, terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseLobby:
		return "lobby"
	case PhasePlaying:
		return "playing"
	case PhaseFinished:
		return "finished"
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// MarshalText encodes the phase by name.
func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// OnMatchEndFunc is called once, outside the match lock, when a match finishes.
type OnMatchEndFunc func(res Result)

// Options configures a new match.
type Options struct {
	Rules    engine.Rules
	TimeUnit time.Duration // wall-clock length of one rules time unit
	Seed     uint64        // 0 seeds from the clock

	Human  AgentSpec
	Rivals []AgentSpec

	Logger logrus.FieldLogger
}

// DefaultOptions returns the standard one-human, three-rival setup with one
// second per time unit.
func DefaultOptions() Options {
	return Options{
		Rules:    engine.DefaultRules(),
		TimeUnit: time.Second,
		Human:    DefaultHuman(),
		Rivals:   DefaultRivals(),
	}
}

// Match is a single Conquest Arena match. It owns all board, score and
// timer state; every exported method is safe for concurrent use.
type Match struct {
	ID       uuid.UUID
	Rules    engine.Rules
	TimeUnit time.Duration

	// OnEvent surfaces each emitted event to the human's presentation layer.
	OnEvent func(ev engine.Event)
	// OnMatchEnd is executed when the countdown reaches zero.
	OnMatchEnd OnMatchEndFunc

	mu      sync.Mutex
	pending []func() // callbacks to run once mu is released

	phase       Phase
	board       engine.Board
	agents      []*Agent
	forts       engine.FortSet
	fortOwners  map[engine.FortID]engine.AgentID
	ledger      *engine.Ledger
	commits     map[claimKey]engine.AgentID
	jackpot     int
	active      engine.Event
	lastEventID uint64
	remaining   int

	humanSpec  AgentSpec
	rivalSpecs []AgentSpec

	logs *logbook
	rng  *rand.Rand
	now  func() time.Time
	log  *logrus.Entry

	clockTimer   *time.Timer
	cadenceTimer *time.Timer

	startedAt  time.Time
	finishedAt time.Time
	result     *Result
	done       chan struct{}
}

// NewMatch creates a match in the Lobby phase.
func NewMatch(opts Options) (*Match, error) {
	if opts.Rules == (engine.Rules{}) {
		opts.Rules = engine.DefaultRules()
	}
	if err := opts.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	if opts.TimeUnit <= 0 {
		opts.TimeUnit = time.Second
	}
	if opts.Human.Name == "" {
		opts.Human = DefaultHuman()
	}
	if opts.Rivals == nil {
		opts.Rivals = DefaultRivals()
	}
	if len(opts.Rivals) > engine.MaxAgents-1 {
		return nil, fmt.Errorf("at most %d rivals supported, got %d", engine.MaxAgents-1, len(opts.Rivals))
	}
	for _, r := range opts.Rivals {
		if r.SpeedFloor < 0 || r.Jitter < 0 {
			return nil, fmt.Errorf("rival %q: reaction speeds must not be negative", r.Name)
		}
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	id := uuid.New()
	m := &Match{
		ID:         id,
		Rules:      opts.Rules,
		TimeUnit:   opts.TimeUnit,
		phase:      PhaseLobby,
		jackpot:    engine.NoJackpot,
		humanSpec:  opts.Human,
		rivalSpecs: append([]AgentSpec(nil), opts.Rivals...),
		logs:       newLogbook(opts.Rules.LogCapacity),
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now:        time.Now,
		log:        opts.Logger.WithField("match_id", id.String()),
		done:       make(chan struct{}),
	}
	return m, nil
}

// StartMatch moves the match from Lobby to Playing: it builds the board and
// seats, picks the jackpot cell, and starts the countdown and event cadence.
func (m *Match) StartMatch() (MatchState, error) {
	m.mu.Lock()
	defer m.unlock()

	if m.phase != PhaseLobby {
		m.log.Warnf("StartMatch called in phase %s", m.phase)
		return MatchState{}, fmt.Errorf("start match: %w", ErrPhase)
	}

	m.board = engine.NewBoard(m.rng)
	m.agents = []*Agent{newAgent(HumanID, m.humanSpec, true, m.TimeUnit)}
	for i, spec := range m.rivalSpecs {
		m.agents = append(m.agents, newAgent(engine.AgentID(i+1), spec, false, m.TimeUnit))
	}
	m.forts = engine.FortSet{}
	m.fortOwners = make(map[engine.FortID]engine.AgentID)
	m.ledger = engine.NewLedger(m.Rules)
	m.commits = make(map[claimKey]engine.AgentID)
	m.jackpot = engine.PickJackpot(&m.board, m.rng)
	m.remaining = m.Rules.MatchUnits
	m.active = engine.IdleEvent(m.nextEventID())
	m.phase = PhasePlaying
	m.startedAt = m.now()

	m.record(LogMatch, engine.NoAgent, -1, fmt.Sprintf("match started, %d seats, jackpot at cell %d", len(m.agents), m.jackpot))
	m.log.WithFields(logrus.Fields{
		"seats":     len(m.agents),
		"units":     m.Rules.MatchUnits,
		"time_unit": m.TimeUnit,
	}).Info("match started")

	m.clockTimer = time.AfterFunc(m.TimeUnit, m.tickClock)
	m.cadenceTimer = time.AfterFunc(m.units(m.Rules.CadenceUnits), m.emitNext)

	return m.stateLocked(), nil
}

// Close ends the match early. A running match finishes as if its clock had
// expired; a match still in the Lobby moves straight to Finished.
func (m *Match) Close() {
	m.mu.Lock()
	defer m.unlock()

	switch m.phase {
	case PhasePlaying:
		m.finish("closed")
	case PhaseLobby:
		m.phase = PhaseFinished
		close(m.done)
	}
}

// Phase returns the current lifecycle phase.
func (m *Match) Phase() Phase {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.phase
}

// Done is closed when the match reaches Finished.
func (m *Match) Done() <-chan struct{} { return m.done }

// Result returns the final standings once the match has finished.
func (m *Match) Result() (Result, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.result == nil {
		return Result{}, false
	}
	return *m.result, true
}

// OnLogEvent registers an observer for new log entries. Observers run
// outside the match lock, in the order entries were recorded.
func (m *Match) OnLogEvent(fn func(LogEntry)) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs.observers = append(m.logs.observers, fn)
}

// Logs returns the bounded log, newest first.
func (m *Match) Logs() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.logs.snapshot()
}

// ---------------------------------------------------------------------------
// Countdown
// ---------------------------------------------------------------------------

// tickClock advances the countdown by one time unit.
func (m *Match) tickClock() {
	m.mu.Lock()
	defer m.unlock()

	if m.phase != PhasePlaying {
		return
	}
	m.remaining--
	if m.remaining <= 0 {
		m.remaining = 0
		m.finish("clock expired")
		return
	}
	m.clockTimer = time.AfterFunc(m.TimeUnit, m.tickClock)
}

// finish moves the match to Finished. It runs at most once.
// Assumes lock is held by caller.
func (m *Match) finish(reason string) {
	if m.phase != PhasePlaying {
		return
	}
	m.phase = PhaseFinished
	m.finishedAt = m.now()
	m.active = engine.IdleEvent(m.nextEventID())

	// Pending AI reactions are left to fire; they see the phase and drop out.
	if m.clockTimer != nil {
		m.clockTimer.Stop()
	}
	if m.cadenceTimer != nil {
		m.cadenceTimer.Stop()
	}

	m.record(LogMatch, engine.NoAgent, -1, "match finished: "+reason)
	res := m.buildResult()
	m.result = &res
	close(m.done)

	m.log.WithFields(logrus.Fields{
		"reason":  reason,
		"winners": res.Winners,
		"claims":  res.Claims,
	}).Info("match finished")

	if m.OnMatchEnd != nil {
		cb := m.OnMatchEnd
		m.queue(func() { cb(res) })
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// queue defers fn until the lock is released.
// Assumes lock is held by caller.
func (m *Match) queue(fn func()) {
	m.pending = append(m.pending, fn)
}

// unlock releases the lock and then runs the queued callbacks.
func (m *Match) unlock() {
	fns := m.pending
	m.pending = nil
	m.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// record appends to the match log and notifies observers.
// Assumes lock is held by caller.
func (m *Match) record(kind LogKind, agent engine.AgentID, cell int, msg string) {
	e := m.logs.add(LogEntry{At: m.now(), Kind: kind, Agent: agent, Cell: cell, Message: msg})
	m.log.WithFields(logrus.Fields{"kind": kind, "agent": agent, "cell": cell}).Debug(msg)
	for _, obs := range m.logs.observers {
		fn := obs
		m.queue(func() { fn(e) })
	}
}

// nextEventID returns the next strictly increasing event id.
// Assumes lock is held by caller.
func (m *Match) nextEventID() uint64 {
	m.lastEventID++
	return m.lastEventID
}

func (m *Match) units(n int) time.Duration {
	return time.Duration(n) * m.TimeUnit
}

// agent returns the seat with the given id, or nil.
// Assumes lock is held by caller.
func (m *Match) agent(id engine.AgentID) *Agent {
	for _, a := range m.agents {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// agentName returns a display name for log lines.
// Assumes lock is held by caller.
func (m *Match) agentName(id engine.AgentID) string {
	if a := m.agent(id); a != nil {
		return a.Name
	}
	return "nobody"
}
