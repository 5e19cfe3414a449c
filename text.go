// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lexscore

package lexscore

import "strings"

// trimSpaces trims ASCII spaces and tabs.
func trimSpaces(s string) string {
	return strings.Trim(s, " \t")
}

// asciiLower converts only ASCII A-Z to a-z and leaves all other bytes unchanged.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}

			return string(b)
		}
	}

	return s
}

// normalizeClass trims class source and lower-cases built-in class names.
//
// Bracket expressions keep their case, "[A-Z]" and "[a-z]" are different classes.
func normalizeClass(raw string) string {
	raw = trimSpaces(raw)
	if strings.HasPrefix(raw, "[") {
		return raw
	}

	return asciiLower(raw)
}
