// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lexscore

package lexscore

import (
	"fmt"
	"regexp"
	"strings"
)

// Built-in character class names.
const (
	// ClassAny matches every rune.
	ClassAny = "any"
	// ClassUpper matches ASCII A-Z.
	ClassUpper = "upper"
	// ClassLower matches ASCII a-z.
	ClassLower = "lower"
	// ClassLetter matches ASCII A-Z and a-z.
	ClassLetter = "letter"
	// ClassDigit matches ASCII 0-9.
	ClassDigit = "digit"
	// ClassAlnum matches ASCII letters and digits.
	ClassAlnum = "alnum"
	// ClassSpecial matches every rune outside ASCII letters and digits.
	ClassSpecial = "special"
	// ClassSpace matches ASCII space, tab, CR, LF, VT and FF.
	ClassSpace = "space"
)

// builtinClasses maps class names to rune predicates.
var builtinClasses = map[string]func(rune) bool{
	ClassAny:     func(rune) bool { return true },
	ClassUpper:   isUpper,
	ClassLower:   isLower,
	ClassLetter:  isLetter,
	ClassDigit:   isDigit,
	ClassAlnum:   isAlnum,
	ClassSpecial: func(r rune) bool { return !isAlnum(r) },
	ClassSpace:   isSpace,
}

// charClass is compiled character class.
type charClass struct {
	// pred matches built-in classes without regexp.
	pred func(rune) bool
	// re matches bracket expressions.
	re *regexp.Regexp
}

// compileClass compiles built-in class name or bracket expression.
func compileClass(raw string) (*charClass, error) {
	src := normalizeClass(raw)
	if src == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidClass)
	}

	if pred, ok := builtinClasses[src]; ok {
		return &charClass{pred: pred}, nil
	}

	if !strings.HasPrefix(src, "[") {
		return nil, fmt.Errorf("%w: unknown class %q", ErrInvalidClass, raw)
	}

	if findCharClassEnd(src, 0) != len(src)-1 {
		return nil, fmt.Errorf("%w: unterminated or trailing text in %q", ErrInvalidClass, raw)
	}

	var b strings.Builder
	if _, ok := appendCharClassRegex(src, 0, &b); !ok {
		return nil, fmt.Errorf("%w: malformed bracket expression %q", ErrInvalidClass, raw)
	}

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %v", ErrInvalidClass, raw, err)
	}

	return &charClass{re: re}, nil
}

// containsAny reports whether at least one rune of input belongs to class.
func (c *charClass) containsAny(input string) bool {
	if c.re != nil {
		return c.re.MatchString(input)
	}

	for _, r := range input {
		if c.pred(r) {
			return true
		}
	}

	return false
}

// count returns number of input runes that belong to class.
func (c *charClass) count(input string) int {
	if c.re != nil {
		return len(c.re.FindAllStringIndex(input, -1))
	}

	n := 0
	for _, r := range input {
		if c.pred(r) {
			n++
		}
	}

	return n
}

// appendCharClassRegex appends a parsed glob char class (`[...]`) as regex class.
func appendCharClassRegex(pat string, start int, b *strings.Builder) (int, bool) {
	if start < 0 || start >= len(pat) || pat[start] != '[' {
		return start, false
	}

	end := findCharClassEnd(pat, start)
	if end < 0 {
		return start, false
	}

	b.WriteByte('[')

	idx := start + 1
	if idx < end && (pat[idx] == '!' || pat[idx] == '^') {
		// Both "[!x]" and "[^x]" negate the class.
		b.WriteByte('^')
		idx++
	}

	if idx < end && pat[idx] == ']' {
		// Leading ']' is literal in both glob and regex classes.
		b.WriteString(`\]`)
		idx++
	}

	for ; idx < end; idx++ {
		switch pat[idx] {
		case '\\':
			b.WriteString(`\\`)
		case '[', '^':
			b.WriteByte('\\')
			b.WriteByte(pat[idx])
		default:
			b.WriteByte(pat[idx])
		}
	}

	b.WriteByte(']')
	return end, true
}

// findCharClassEnd locates closing bracket for a glob char class.
func findCharClassEnd(pat string, start int) int {
	if start < 0 || start >= len(pat) || pat[start] != '[' {
		return -1
	}

	idx := start + 1
	if idx < len(pat) && (pat[idx] == '!' || pat[idx] == '^') {
		idx++
	}

	if idx < len(pat) && pat[idx] == ']' {
		idx++
	}

	for ; idx < len(pat); idx++ {
		if pat[idx] == ']' {
			return idx
		}
	}

	return -1
}

func isUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isUpper(r) || isLower(r) }
func isAlnum(r rune) bool  { return isLetter(r) || isDigit(r) }

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
