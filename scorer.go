// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lexscore

package lexscore

// defaultScorer backs Complexity and is never mutated after init.
var defaultScorer = MustNewScorer(DefaultRules())

// Scorer evaluates string scores against compiled ordered rules.
type Scorer struct {
	compiled []compiledRule
}

// NewScorer compiles ordered rules into scorer.
func NewScorer(rules []Rule) (*Scorer, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, rule := range rules {
		cr, err := compileRule(rule)
		if err != nil {
			return nil, err
		}

		compiled = append(compiled, *cr)
	}

	return &Scorer{compiled: compiled}, nil
}

// MustNewScorer is like NewScorer but panics on invalid rules.
func MustNewScorer(rules []Rule) *Scorer {
	s, err := NewScorer(rules)
	if err != nil {
		panic(err)
	}

	return s
}

// Complexity scores input with DefaultRules.
func Complexity(input string) int {
	return defaultScorer.Score(input)
}

// Score returns the non-negative score of input.
func (s *Scorer) Score(input string) int {
	return s.Evaluate(input).Score
}

// Evaluate returns score of input with per-rule breakdown.
//
// Evaluation policy:
// - rules run in input order and their contributions are summed
// - empty input scores 0 without running rules
// - negative sums are clamped to 0
func (s *Scorer) Evaluate(input string) Result {
	if s == nil {
		return Result{}
	}

	res := Result{
		Contributions: make([]Contribution, len(s.compiled)),
	}

	for i := range s.compiled {
		res.Contributions[i] = Contribution{
			Name:      s.compiled[i].name,
			RuleIndex: i,
		}

		if input == "" {
			continue
		}

		points := s.compiled[i].weight(input)
		res.Contributions[i].Points = points
		res.Raw += points
	}

	res.Score = max(res.Raw, 0)
	return res
}

// Rules returns a copy of source rules in evaluation order.
func (s *Scorer) Rules() []Rule {
	if s == nil {
		return nil
	}

	out := make([]Rule, len(s.compiled))
	for i := range s.compiled {
		out[i] = s.compiled[i].source
	}

	return out
}

// Len returns number of compiled rules.
func (s *Scorer) Len() int {
	if s == nil {
		return 0
	}

	return len(s.compiled)
}
