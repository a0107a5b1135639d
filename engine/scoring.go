package engine

// Award is the scored outcome of one accepted claim.
type Award struct {
	Agent    AgentID
	Cell     int
	Base     int
	Jackpot  bool
	Cluster  bool
	NewForts []FortID
}

// Points computes the award value:
//
//	base × (JackpotMultiplier if jackpot) + ClusterBonus (if cluster) + FortBonus × |NewForts|
func (a Award) Points(r Rules) int {
	pts := a.Base
	if a.Jackpot {
		pts *= r.JackpotMultiplier
	}
	if a.Cluster {
		pts += r.ClusterBonus
	}
	pts += r.FortBonus * len(a.NewForts)
	return pts
}

// Ledger accumulates per-agent points from accepted claims.
type Ledger struct {
	rules   Rules
	scores  [MaxAgents]int
	history [MaxAgents][]Award
}

// NewLedger returns an empty ledger scoring with r.
func NewLedger(r Rules) *Ledger {
	return &Ledger{rules: r}
}

// AwardClaim scores one accepted claim for agent and returns the points added.
func (l *Ledger) AwardClaim(agent AgentID, cell int, basePoints int, isJackpot, hasCluster bool, newForts []FortID) int {
	if agent < 0 || int(agent) >= MaxAgents {
		return 0
	}
	a := Award{
		Agent:    agent,
		Cell:     cell,
		Base:     basePoints,
		Jackpot:  isJackpot,
		Cluster:  hasCluster,
		NewForts: append([]FortID(nil), newForts...),
	}
	pts := a.Points(l.rules)
	l.scores[agent] += pts
	l.history[agent] = append(l.history[agent], a)
	return pts
}

// Score returns agent's running total.
func (l *Ledger) Score(agent AgentID) int {
	if agent < 0 || int(agent) >= MaxAgents {
		return 0
	}
	return l.scores[agent]
}

// Totals returns every seat's running total.
func (l *Ledger) Totals() [MaxAgents]int { return l.scores }

// History returns a copy of agent's scored claims in award order.
func (l *Ledger) History(agent AgentID) []Award {
	if agent < 0 || int(agent) >= MaxAgents {
		return nil
	}
	return append([]Award(nil), l.history[agent]...)
}
