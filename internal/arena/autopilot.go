package arena

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/WTuneSeeker/Pingo-Release-sub000/engine"
	"github.com/sirupsen/logrus"
)

// Autopilot plays the human seat the way a presentation layer would: it
// listens to OnEvent, reads GetState and submits for the human. Each
// submission is bound to the event it answers, so a pick made for an event
// that has since been replaced is dropped instead of scored as a misclick.
type Autopilot struct {
	match *Match
	delay time.Duration
	log   logrus.FieldLogger

	mu  sync.Mutex // serializes Act; guards rng
	rng *rand.Rand
}

// NewAutopilot builds an autopilot that answers each event after delay.
func NewAutopilot(m *Match, delay time.Duration, seed uint64, logger logrus.FieldLogger) *Autopilot {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Autopilot{
		match: m,
		delay: delay,
		rng:   rand.New(rand.NewPCG(seed, seed+1)),
		log:   logger.WithField("seat", "autopilot"),
	}
}

// Attach installs the autopilot as the match's OnEvent handler. Call it
// before StartMatch.
func (p *Autopilot) Attach() {
	p.match.OnEvent = func(ev engine.Event) {
		time.AfterFunc(p.delay, func() { p.Act(ev) })
	}
}

// Act answers ev if it is still the active event.
func (p *Autopilot) Act(ev engine.Event) SubmitResult {
	p.mu.Lock()
	defer p.mu.Unlock()

	st := p.match.GetState()
	if st.Phase != PhasePlaying || st.ActiveEvent.ID != ev.ID {
		return rejected(-1, ReasonStaleEvent)
	}
	board := st.EngineBoard()

	var res SubmitResult
	switch ev.Kind {
	case engine.EventNumber:
		idx, ok := engine.ChooseNumberTarget(&board, HumanID, ev.Value)
		if !ok {
			return rejected(-1, ReasonCellTaken)
		}
		res = p.match.submitForEvent(ev.ID, func() SubmitResult { return p.match.humanClaim(idx) })
	case engine.EventBomb:
		idx, ok := engine.ChooseBombTarget(&board, HumanID, p.rng)
		if !ok {
			return rejected(-1, ReasonNothingToBomb)
		}
		res = p.match.submitForEvent(ev.ID, func() SubmitResult { return p.match.humanBomb(idx) })
	case engine.EventShield:
		res = p.match.submitForEvent(ev.ID, p.match.humanShield)
	default:
		return rejected(-1, ReasonEventMismatch)
	}

	p.log.WithFields(logrus.Fields{
		"event":    ev.ID,
		"cell":     res.Cell,
		"accepted": res.Accepted,
		"reason":   res.Reason,
	}).Debug("autopilot acted")
	return res
}
