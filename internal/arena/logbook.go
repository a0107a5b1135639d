package arena

import (
	"time"

	"github.com/WTuneSeeker/Pingo-Release-sub000/engine"
	"github.com/gammazero/deque"
)

// LogKind classifies a match log entry.
type LogKind string

const (
	LogMatch   LogKind = "match"
	LogEvent   LogKind = "event"
	LogClaim   LogKind = "claim"
	LogFort    LogKind = "fort"
	LogJackpot LogKind = "jackpot"
	LogBomb    LogKind = "bomb"
	LogShield  LogKind = "shield"
	LogLock    LogKind = "lock"
)

// LogEntry is one line of the match log.
type LogEntry struct {
	Seq     uint64         `json:"seq" yaml:"seq"`
	At      time.Time      `json:"at" yaml:"at"`
	Kind    LogKind        `json:"kind" yaml:"kind"`
	Agent   engine.AgentID `json:"agent" yaml:"agent"`
	Cell    int            `json:"cell" yaml:"cell"`
	Message string         `json:"message" yaml:"message"`
}

// logbook keeps the newest entries first, dropping the oldest beyond its
// capacity.
type logbook struct {
	capacity  int
	seq       uint64
	entries   deque.Deque[LogEntry]
	observers []func(LogEntry)
}

func newLogbook(capacity int) *logbook {
	return &logbook{capacity: capacity}
}

// add stamps e with the next sequence number and stores it.
func (l *logbook) add(e LogEntry) LogEntry {
	l.seq++
	e.Seq = l.seq
	l.entries.PushFront(e)
	for l.entries.Len() > l.capacity {
		l.entries.PopBack()
	}
	return e
}

// snapshot returns the retained entries, newest first.
func (l *logbook) snapshot() []LogEntry {
	out := make([]LogEntry, l.entries.Len())
	for i := range out {
		out[i] = l.entries.At(i)
	}
	return out
}
