// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lexscore

package lexscore

import "testing"

func TestMergeRules(t *testing.T) {
	t.Parallel()

	a := []Rule{
		{Kind: KindLength, Weight: 1},
	}
	b := []Rule{
		{Kind: KindPresence, Class: ClassUpper, Weight: 1},
		{Kind: KindPresence, Class: ClassSpecial, Weight: 3},
	}

	merged := MergeRules(a, nil, b)
	if len(merged) != 3 {
		t.Fatalf("len(merged)=%d, want 3", len(merged))
	}

	if merged[0].Kind != KindLength || merged[1].Class != ClassUpper || merged[2].Class != ClassSpecial {
		t.Fatalf("unexpected merged order: %+v", merged)
	}

	// Ensure result does not alias input backing arrays for appended tail.
	b[0].Class = "mutated"
	if merged[1].Class != ClassUpper {
		t.Fatalf("merged slice was unexpectedly aliased")
	}
}

func TestDefaultRulesReturnsCopy(t *testing.T) {
	t.Parallel()

	rules := DefaultRules()
	rules[0].Weight = 100

	if got := Complexity("password"); got != 8 {
		t.Fatalf("Complexity(password)=%d after mutating DefaultRules copy, want 8", got)
	}

	if DefaultRules()[0].Weight != 1 {
		t.Fatalf("DefaultRules must return a fresh slice")
	}
}
