// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lexscore

package lexscore

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseBonuses converts "class=weight" items to presence rules.
//
// Accepted item forms:
//   - "upper=1"
//   - "special = 3"
//   - "[0-9]=2"
//
// Empty items are skipped. Returned rules preserve input order.
// Weight is split at the last "=", so bracket classes may contain "=".
func ParseBonuses(items []string) ([]Rule, error) {
	rules := make([]Rule, 0, len(items))
	for _, item := range items {
		item = trimSpaces(item)
		if item == "" {
			continue
		}

		idx := strings.LastIndexByte(item, '=')
		if idx < 0 {
			return nil, fmt.Errorf("%w: bonus %q must be class=weight", ErrInvalidRule, item)
		}

		class := normalizeClass(item[:idx])
		if class == "" {
			return nil, fmt.Errorf("%w: bonus %q has empty class", ErrInvalidRule, item)
		}

		weight, err := strconv.Atoi(trimSpaces(item[idx+1:]))
		if err != nil {
			return nil, fmt.Errorf("%w: bonus %q weight: %v", ErrInvalidRule, item, err)
		}

		rules = append(rules, Rule{
			Kind:   KindPresence,
			Class:  class,
			Weight: weight,
		})
	}

	return rules, nil
}
