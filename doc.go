// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lexscore

/*
Package lexscore implements a deterministic, rule-weighted string complexity score.

A score is the sum of ordered rule contributions. Each rule is a pure function of
the whole input string, so a compiled Scorer is immutable and safe for concurrent use.

Default rules (`DefaultRules`):
  - length: +1 per rune
  - presence of an upper-case ASCII letter: +1 once
  - presence of a rune outside [A-Za-z0-9]: +3 once

Digits are rewarded only through length.

Basic flow:
  - build rules in code, parse them from text (`ParseRules`) or YAML (`ParseRulesYAML`)
  - optionally load rules from files (`LoadRulesFile`, `LoadRulesFiles`)
  - optionally add presence bonuses from "class=weight" items (`ParseBonuses`)
  - compile scorer (`NewScorer`)
  - ask for score (`Score` / `Evaluate`), or use `Complexity` for default rules

Character classes are ASCII-only so scores do not drift with Unicode table updates:
non-ASCII letters count as special and never as upper-case.

For named rule profiles stored on disk, use `Provider`:
  - create provider with profiles directory
  - ask for scorer or score by profile name
  - provider caches compiled profile scorers, including load errors
*/
package lexscore
