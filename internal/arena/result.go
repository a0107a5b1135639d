package arena

import (
	"fmt"
	"sort"
	"time"

	"github.com/WTuneSeeker/Pingo-Release-sub000/engine"
	"gopkg.in/yaml.v2"
)

// Standing is one seat's final line.
type Standing struct {
	Agent   engine.AgentID `yaml:"agent"`
	Name    string         `yaml:"name"`
	IsHuman bool           `yaml:"human"`
	Score   int            `yaml:"score"`
	Cells   int            `yaml:"cells"`
	Forts   int            `yaml:"forts"`
	Claims  int            `yaml:"claims"`
}

// Result is the frozen outcome of a finished match.
type Result struct {
	MatchID    string     `yaml:"match_id"`
	StartedAt  time.Time  `yaml:"started_at"`
	FinishedAt time.Time  `yaml:"finished_at"`
	Standings  []Standing `yaml:"standings"`
	Winners    []string   `yaml:"winners"`
	Forts      []string   `yaml:"forts,flow"`
	Claims     int        `yaml:"claims"`
}

// buildResult computes standings: highest score first, ties broken by seat.
// Every seat sharing the top score is a winner.
// Assumes lock is held by caller.
func (m *Match) buildResult() Result {
	res := Result{
		MatchID:    m.ID.String(),
		StartedAt:  m.startedAt,
		FinishedAt: m.finishedAt,
	}

	fortCount := make(map[engine.AgentID]int)
	for _, f := range m.forts.Sorted() {
		res.Forts = append(res.Forts, f.String())
		fortCount[m.fortOwners[f]]++
	}

	totals := m.ledger.Totals()
	for _, a := range m.agents {
		claims := len(m.ledger.History(a.ID))
		res.Claims += claims
		res.Standings = append(res.Standings, Standing{
			Agent:   a.ID,
			Name:    a.Name,
			IsHuman: a.IsHuman,
			Score:   totals[a.ID],
			Cells:   m.board.CountOwned(a.ID),
			Forts:   fortCount[a.ID],
			Claims:  claims,
		})
	}
	sort.SliceStable(res.Standings, func(i, j int) bool {
		if res.Standings[i].Score != res.Standings[j].Score {
			return res.Standings[i].Score > res.Standings[j].Score
		}
		return res.Standings[i].Agent < res.Standings[j].Agent
	})

	if len(res.Standings) > 0 {
		top := res.Standings[0].Score
		for _, s := range res.Standings {
			if s.Score == top {
				res.Winners = append(res.Winners, s.Name)
			}
		}
	}
	return res
}

// EncodeResult serializes a result as YAML.
func EncodeResult(res Result) (string, error) {
	out, err := yaml.Marshal(res)
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}
	return string(out), nil
}

// DecodeResult parses a YAML result produced by EncodeResult.
func DecodeResult(in string) (*Result, error) {
	var res Result
	if err := yaml.Unmarshal([]byte(in), &res); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	return &res, nil
}
