// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lexscore

package lexscore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LoadRulesFile reads and parses rules from a file.
//
// Files with ".yaml" or ".yml" extension are decoded as YAML documents,
// everything else uses ParseRules text syntax.
func LoadRulesFile(path string) ([]Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rules file: %w", err)
	}
	defer func() { _ = f.Close() }()

	rules, err := parserFor(path)(f)
	if err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}

	return rules, nil
}

// LoadRulesFiles reads and merges rules from files in the given order.
//
// Returned rules preserve file order and rule order inside each file.
func LoadRulesFiles(paths ...string) ([]Rule, error) {
	out := make([]Rule, 0, len(paths)*4)
	for _, path := range paths {
		rules, err := LoadRulesFile(path)
		if err != nil {
			return nil, err
		}

		out = append(out, rules...)
	}

	return out, nil
}

// parserFor selects rules decoder by file extension.
func parserFor(path string) func(io.Reader) ([]Rule, error) {
	switch asciiLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseRulesYAML
	default:
		return ParseRules
	}
}
