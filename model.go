// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lexscore

package lexscore

import "fmt"

// Kind selects how one rule turns input into points.
type Kind uint8

const (
	// KindUnknown is unset/invalid kind placeholder.
	KindUnknown Kind = iota
	// KindLength adds Weight for every rune of input.
	KindLength
	// KindPresence adds Weight once when at least one rune belongs to Class.
	KindPresence
	// KindCount adds Weight for every rune that belongs to Class.
	KindCount
	// KindCustom delegates to Rule.Func.
	KindCustom
)

// kindNames maps kinds to their text form.
var kindNames = [...]string{
	KindUnknown:  "unknown",
	KindLength:   "length",
	KindPresence: "presence",
	KindCount:    "count",
	KindCustom:   "custom",
}

// WeightFunc is a pure function from the full input to a signed contribution.
type WeightFunc func(input string) int

// Rule is one user-visible scoring rule.
type Rule struct {
	// Func is the contribution function of KindCustom rules.
	Func WeightFunc `json:"-" yaml:"-"`
	// Name is a diagnostic label; empty value is derived from Kind and Class.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Class is a built-in class name or bracket expression, unused by length and custom rules.
	Class string `json:"class,omitempty" yaml:"class,omitempty"`
	// Weight is the signed number of points applied by the rule.
	Weight int `json:"weight" yaml:"weight"`
	// Kind selects rule evaluation strategy.
	Kind Kind `json:"kind" yaml:"kind"`
}

// Contribution is the part of a score produced by one rule.
type Contribution struct {
	// Name is the rule label.
	Name string `json:"name" yaml:"name"`
	// RuleIndex is the rule index in scorer input order.
	RuleIndex int `json:"rule_index" yaml:"rule_index"`
	// Points is the signed rule contribution.
	Points int `json:"points" yaml:"points"`
}

// Result is a deterministic score with its per-rule breakdown.
type Result struct {
	// Contributions lists every rule output in evaluation order.
	Contributions []Contribution `json:"contributions" yaml:"contributions"`
	// Score is the final non-negative score.
	Score int `json:"score" yaml:"score"`
	// Raw is the unclamped sum of contributions.
	Raw int `json:"raw" yaml:"raw"`
}

// DefaultRules returns the reference rule set used by Complexity.
//
// Returned slice is a fresh copy and can be extended by caller.
func DefaultRules() []Rule {
	return []Rule{
		{Kind: KindLength, Weight: 1},
		{Kind: KindPresence, Class: ClassUpper, Weight: 1},
		{Kind: KindPresence, Class: ClassSpecial, Weight: 3},
	}
}

// String returns text form of kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, fmt.Errorf("%w: unsupported kind %d", ErrInvalidRule, k)
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}

	*k = parsed
	return nil
}

// ParseKind converts kind name to Kind, ignoring ASCII case and surrounding spaces.
func ParseKind(s string) (Kind, error) {
	name := asciiLower(trimSpaces(s))
	for i := KindLength; int(i) < len(kindNames); i++ {
		if kindNames[i] == name {
			return i, nil
		}
	}

	return KindUnknown, fmt.Errorf("%w: unknown kind %q", ErrInvalidRule, s)
}

// valid reports whether kind value is supported.
func (k Kind) valid() bool {
	return k >= KindLength && k <= KindCustom
}

// label returns rule Name or derived "kind[:class]" label.
func (r Rule) label() string {
	if r.Name != "" {
		return r.Name
	}

	if r.Kind == KindPresence || r.Kind == KindCount {
		return r.Kind.String() + ":" + r.Class
	}

	return r.Kind.String()
}
