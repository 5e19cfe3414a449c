// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lexscore

package lexscore

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

const (
	benchRuleCount  = 48
	benchInputCount = 512
)

var (
	benchScoreSink  int
	benchResultSink Result
)

func BenchmarkParseRules(b *testing.B) {
	src := buildBenchmarkRulesSource(benchRuleCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rules, err := ParseRulesString(src)
		if err != nil {
			b.Fatal(err)
		}

		if len(rules) == 0 {
			b.Fatal("empty rules")
		}
	}
}

func BenchmarkNewScorer(b *testing.B) {
	rules, err := ParseRulesString(buildBenchmarkRulesSource(benchRuleCount))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := NewScorer(rules)
		if err != nil {
			b.Fatal(err)
		}

		if s == nil {
			b.Fatal("nil scorer")
		}
	}
}

func BenchmarkComplexity(b *testing.B) {
	inputs := benchmarkInputs(benchInputCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchScoreSink = Complexity(inputs[i%len(inputs)])
	}
}

func BenchmarkScorerEvaluate(b *testing.B) {
	rules, err := ParseRulesString(buildBenchmarkRulesSource(benchRuleCount))
	if err != nil {
		b.Fatal(err)
	}

	s, err := NewScorer(rules)
	if err != nil {
		b.Fatal(err)
	}

	inputs := benchmarkInputs(benchInputCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchResultSink = s.Evaluate(inputs[i%len(inputs)])
	}
}

func BenchmarkProviderScoreCached(b *testing.B) {
	dir := b.TempDir()
	writeRulesFile(b, filepath.Join(dir, "bench.rules"), buildBenchmarkRulesSource(benchRuleCount))

	p, err := NewProvider(dir, ProviderOptions{})
	if err != nil {
		b.Fatal(err)
	}

	inputs := benchmarkInputs(benchInputCount)

	// Warm provider cache before timed loop.
	if _, err := p.Scorer("bench"); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		score, err := p.Score("bench", inputs[i%len(inputs)])
		if err != nil {
			b.Fatal(err)
		}

		benchScoreSink = score
	}
}

func buildBenchmarkRulesSource(n int) string {
	classes := []string{ClassUpper, ClassLower, ClassDigit, ClassSpecial, "[a-f]", "[!0-9a-z]"}

	var b strings.Builder
	b.WriteString("length 1\n")
	for i := 0; i < n; i++ {
		kind := "presence"
		if i%2 == 1 {
			kind = "count"
		}

		fmt.Fprintf(&b, "%s %s %d rule_%03d\n", kind, classes[i%len(classes)], i%5+1, i)
	}

	return b.String()
}

func benchmarkInputs(n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, fmt.Sprintf("Pass_%04d-word!%s", i, strings.Repeat("x", i%32)))
	}

	return out
}
