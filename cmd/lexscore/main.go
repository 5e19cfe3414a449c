// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lexscore

// Command lexscore prints deterministic complexity scores for strings.
package main

import "github.com/woozymasta/lexscore/internal/cli"

func main() {
	cli.Execute()
}
