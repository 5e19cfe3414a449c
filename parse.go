// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lexscore

package lexscore

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseRules parses line-oriented rules from reader.
//
// Line syntax is "<kind> [class] <weight> [name]":
// - blank lines and "#" comments are ignored
// - "length" rules take no class
// - "presence" and "count" rules require a class
// - weight is a signed decimal integer
// - optional trailing name may contain spaces
func ParseRules(r io.Reader) ([]Rule, error) {
	s := bufio.NewScanner(r)
	rules := make([]Rule, 0, 8)

	lineNo := 0
	for s.Scan() {
		lineNo++

		line := trimSpaces(strings.TrimRight(s.Text(), "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		rule, err := parseRuleLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		rules = append(rules, rule)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan rules: %w", err)
	}

	return rules, nil
}

// ParseRulesString parses rules from string input.
func ParseRulesString(src string) ([]Rule, error) {
	return ParseRules(strings.NewReader(src))
}

// parseRuleLine parses one non-empty, non-comment rule line.
//
// Bracket classes are read up to their closing bracket, so they may contain spaces.
func parseRuleLine(line string) (Rule, error) {
	head, tail := line, ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		head, tail = line[:i], line[i+1:]
	}

	kind, err := ParseKind(head)
	if err != nil {
		return Rule{}, err
	}

	rule := Rule{Kind: kind}
	tail = trimSpaces(tail)

	switch kind {
	case KindLength:
	case KindPresence, KindCount:
		class, rest, err := cutClass(tail)
		if err != nil {
			return Rule{}, fmt.Errorf("%w: %s rule: %w", ErrInvalidRule, kind, err)
		}

		rule.Class = normalizeClass(class)
		tail = rest

	default:
		return Rule{}, fmt.Errorf("%w: %s rules cannot be declared in text", ErrInvalidRule, kind)
	}

	rest := strings.Fields(tail)
	if len(rest) == 0 {
		return Rule{}, fmt.Errorf("%w: %s rule requires weight", ErrInvalidRule, kind)
	}

	weight, err := strconv.Atoi(rest[0])
	if err != nil {
		return Rule{}, fmt.Errorf("%w: weight %q: %v", ErrInvalidRule, rest[0], err)
	}

	rule.Weight = weight
	if len(rest) > 1 {
		rule.Name = strings.Join(rest[1:], " ")
	}

	return rule, nil
}

// cutClass splits leading class token from s.
func cutClass(s string) (string, string, error) {
	if s == "" {
		return "", "", fmt.Errorf("%w: missing", ErrInvalidClass)
	}

	if s[0] == '[' {
		end := findCharClassEnd(s, 0)
		if end < 0 {
			return "", "", fmt.Errorf("%w: unterminated bracket expression %q", ErrInvalidClass, s)
		}

		rest := s[end+1:]
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
			return "", "", fmt.Errorf("%w: trailing text after %q", ErrInvalidClass, s[:end+1])
		}

		return s[:end+1], rest, nil
	}

	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], s[i:], nil
	}

	return s, "", nil
}

// representableClass reports whether class survives a FormatRules/ParseRules round trip.
func representableClass(class string) bool {
	if class == "" || strings.ContainsAny(class, "\r\n") {
		return false
	}

	if class[0] == '[' {
		return findCharClassEnd(class, 0) == len(class)-1
	}

	return !strings.ContainsAny(class, " \t")
}

// FormatRules renders rules in ParseRules syntax.
//
// Custom rules and rules whose class or name cannot be written on one line
// have no text form and are emitted as comments.
func FormatRules(rules []Rule) string {
	var b strings.Builder
	for _, rule := range rules {
		if !formattable(rule) {
			fmt.Fprintf(&b, "# %q: not representable\n", rule.label())
			continue
		}

		b.WriteString(rule.Kind.String())
		if rule.Kind != KindLength {
			b.WriteByte(' ')
			b.WriteString(rule.Class)
		}

		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(rule.Weight))
		if rule.Name != "" {
			b.WriteByte(' ')
			b.WriteString(rule.Name)
		}

		b.WriteByte('\n')
	}

	return b.String()
}

// formattable reports whether rule has ParseRules text form.
func formattable(rule Rule) bool {
	switch rule.Kind {
	case KindLength:
	case KindPresence, KindCount:
		if !representableClass(rule.Class) {
			return false
		}
	default:
		return false
	}

	return !strings.ContainsAny(rule.Name, "\r\n")
}
