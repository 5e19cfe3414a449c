// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lexscore

package lexscore

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// RuleSet is a YAML/JSON rules document.
type RuleSet struct {
	// Rules are scoring rules in evaluation order.
	Rules []Rule `json:"rules" yaml:"rules"`
}

// ParseRulesYAML decodes rules documents from reader.
//
// Multiple "---" separated documents are merged in order. Empty input
// yields no rules. Unknown fields and custom rules are rejected.
func ParseRulesYAML(r io.Reader) ([]Rule, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	rules := make([]Rule, 0, 8)
	for doc := 0; ; doc++ {
		var set RuleSet
		if err := dec.Decode(&set); err != nil {
			if errors.Is(err, io.EOF) {
				return rules, nil
			}

			return nil, fmt.Errorf("%w: decode yaml document %d: %w", ErrInvalidRule, doc, err)
		}

		for i, rule := range set.Rules {
			switch {
			case rule.Kind == KindCustom:
				return nil, fmt.Errorf("%w: document %d rule %d: custom rules cannot be declared in yaml", ErrInvalidRule, doc, i)
			case !rule.Kind.valid():
				return nil, fmt.Errorf("%w: document %d rule %d: missing kind", ErrInvalidRule, doc, i)
			}

			rule.Class = normalizeClass(rule.Class)
			rules = append(rules, rule)
		}
	}
}

// MarshalRulesYAML encodes rules as YAML document.
func MarshalRulesYAML(rules []Rule) ([]byte, error) {
	for _, rule := range rules {
		if rule.Kind == KindCustom {
			return nil, fmt.Errorf("%w: custom rule %q is not serializable", ErrInvalidRule, rule.label())
		}
	}

	b, err := yaml.Marshal(RuleSet{Rules: rules})
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}

	return b, nil
}
