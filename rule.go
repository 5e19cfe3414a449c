// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lexscore

package lexscore

import (
	"fmt"
	"unicode/utf8"
)

// compiledRule is scorer-internal compiled representation of one rule.
type compiledRule struct {
	// class matches presence and count rules.
	class *charClass
	// fn is custom rule function.
	fn WeightFunc
	// name is resolved diagnostic label.
	name string
	// source is original source rule.
	source Rule
}

// compileRule validates one source rule and prepares its class matcher.
func compileRule(rule Rule) (*compiledRule, error) {
	if !rule.Kind.valid() {
		return nil, fmt.Errorf("%w: unsupported kind %d", ErrInvalidRule, rule.Kind)
	}

	cr := &compiledRule{
		source: rule,
		name:   rule.label(),
	}

	switch rule.Kind {
	case KindLength:
		if rule.Class != "" {
			return nil, fmt.Errorf("%w: length rule %q takes no class", ErrInvalidRule, cr.name)
		}

	case KindPresence, KindCount:
		class, err := compileClass(rule.Class)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %q: %w", ErrInvalidRule, cr.name, err)
		}

		cr.class = class

	case KindCustom:
		if rule.Func == nil {
			return nil, fmt.Errorf("%w: custom rule %q has no function", ErrInvalidRule, cr.name)
		}

		cr.fn = rule.Func
	}

	return cr, nil
}

// weight returns signed contribution of rule for input.
func (r *compiledRule) weight(input string) int {
	switch r.source.Kind {
	case KindLength:
		return r.source.Weight * utf8.RuneCountInString(input)
	case KindPresence:
		if r.class.containsAny(input) {
			return r.source.Weight
		}

		return 0
	case KindCount:
		return r.source.Weight * r.class.count(input)
	case KindCustom:
		return r.fn(input)
	default:
		return 0
	}
}
