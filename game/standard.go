package game

import "copsrobber/meta"

type StandardRules struct {
	Hops   int
	Rounds int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		Hops:   meta.HOP_LIMIT,
		Rounds: meta.MAX_ROUNDS,
	}
}

// NewRules returns standard rules with the given limits.
func NewRules(hops, rounds int) (*StandardRules, error) {
	if hops < 1 {
		return nil, ErrInvalidHops
	}
	if rounds < 1 {
		return nil, ErrInvalidRounds
	}
	return &StandardRules{Hops: hops, Rounds: rounds}, nil
}

func (sr *StandardRules) HopLimit() int {
	return sr.Hops
}

func (sr *StandardRules) MaxRounds() int {
	return sr.Rounds
}
