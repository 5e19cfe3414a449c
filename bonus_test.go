// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lexscore

package lexscore

import (
	"errors"
	"testing"
)

func TestParseBonuses(t *testing.T) {
	t.Parallel()

	got, err := ParseBonuses([]string{
		"upper=1",
		" Special = 3 ",
		"[=!]=2",
		"",
		"   ",
		"digit=-1",
	})
	if err != nil {
		t.Fatalf("ParseBonuses: %v", err)
	}

	want := []Rule{
		{Kind: KindPresence, Class: ClassUpper, Weight: 1},
		{Kind: KindPresence, Class: ClassSpecial, Weight: 3},
		{Kind: KindPresence, Class: "[=!]", Weight: 2},
		{Kind: KindPresence, Class: ClassDigit, Weight: -1},
	}

	if len(got) != len(want) {
		t.Fatalf("len(got)=%d, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i].Kind != want[i].Kind || got[i].Class != want[i].Class || got[i].Weight != want[i].Weight {
			t.Fatalf("rule[%d]=%+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseBonuses_Empty(t *testing.T) {
	t.Parallel()

	got, err := ParseBonuses(nil)
	if err != nil {
		t.Fatalf("ParseBonuses: %v", err)
	}

	if len(got) != 0 {
		t.Fatalf("len(got)=%d, want 0", len(got))
	}
}

func TestParseBonuses_Invalid(t *testing.T) {
	t.Parallel()

	for _, item := range []string{"upper", "=1", "upper=x"} {
		if _, err := ParseBonuses([]string{item}); !errors.Is(err, ErrInvalidRule) {
			t.Fatalf("ParseBonuses(%q) err=%v, want ErrInvalidRule", item, err)
		}
	}
}
