// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lexscore

package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	urfave "github.com/urfave/cli/v3"
	"github.com/woozymasta/lexscore"
	"gopkg.in/yaml.v3"
)

// errUnknownFormat is returned for unsupported --format values.
var errUnknownFormat = errors.New("unknown output format")

const (
	rulesFileFlag  = "rules"
	profileDirFlag = "profile-dir"
	profileFlag    = "profile"
	bonusFlag      = "bonus"
	formatFlag     = "format"
	explainFlag    = "explain"
	hideInputFlag  = "hide-input"
)

// ruleSourceFlags returns fresh rule selection flags for one command.
func ruleSourceFlags() []urfave.Flag {
	return []urfave.Flag{
		&urfave.StringSliceFlag{
			Name:    rulesFileFlag,
			Aliases: []string{"r"},
			Usage:   "Rules file (text or .yaml), repeatable, merged in order",
		},
		&urfave.StringFlag{
			Name:  profileDirFlag,
			Usage: "Directory with named rule profiles",
			Value: ".",
		},
		&urfave.StringFlag{
			Name:    profileFlag,
			Aliases: []string{"p"},
			Usage:   "Profile name loaded from --profile-dir before --rules files",
		},
		&urfave.StringSliceFlag{
			Name:    bonusFlag,
			Aliases: []string{"b"},
			Usage:   "Extra presence bonus as class=weight, repeatable",
		},
		&urfave.StringFlag{
			Name:    formatFlag,
			Aliases: []string{"o"},
			Usage:   "Output format [text, json, yaml]",
			Value:   formatText,
		},
	}
}

// scoredInput is one output record of score command.
//
// Input is nil only when inputs are hidden, so empty lines keep an empty input field.
type scoredInput struct {
	Input         *string                 `json:"input,omitempty" yaml:"input,omitempty"`
	Contributions []lexscore.Contribution `json:"contributions,omitempty" yaml:"contributions,omitempty"`
	Score         int                     `json:"score" yaml:"score"`
}

func scoreCmd() *urfave.Command {
	return &urfave.Command{
		Name:      "score",
		Usage:     "Score inputs given as arguments or stdin lines",
		ArgsUsage: "[INPUT...]",
		Flags: append(ruleSourceFlags(),
			&urfave.BoolFlag{
				Name:  explainFlag,
				Usage: "Print per-rule contributions",
			},
			&urfave.BoolFlag{
				Name:  hideInputFlag,
				Usage: "Do not echo scored inputs",
			},
		),
		Action: runScore,
	}
}

func rulesCmd() *urfave.Command {
	return &urfave.Command{
		Name:   "rules",
		Usage:  "Print the effective rule set",
		Flags:  ruleSourceFlags(),
		Action: runRules,
	}
}

func runScore(ctx context.Context, cmd *urfave.Command) error {
	scorer, err := buildScorer(cmd)
	if err != nil {
		return err
	}

	inputs := cmd.Args().Slice()
	if len(inputs) == 0 {
		inputs, err = readLines(ctx, cmd.Root().Reader)
		if err != nil {
			return err
		}
	}

	slog.Debug("scoring", "inputs", len(inputs), "rules", scorer.Len())

	explain := cmd.Bool(explainFlag)
	hide := cmd.Bool(hideInputFlag)

	out := make([]scoredInput, 0, len(inputs))
	for _, input := range inputs {
		res := scorer.Evaluate(input)
		item := scoredInput{Score: res.Score}
		if !hide {
			item.Input = &input
		}

		if explain {
			item.Contributions = res.Contributions
		}

		out = append(out, item)
	}

	return writeScores(cmd.Root().Writer, cmd.String(formatFlag), out)
}

func runRules(_ context.Context, cmd *urfave.Command) error {
	scorer, err := buildScorer(cmd)
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	rules := scorer.Rules()

	switch strings.ToLower(cmd.String(formatFlag)) {
	case formatText:
		_, err = io.WriteString(w, lexscore.FormatRules(rules))
		return err
	case formatYAML, "yml":
		b, err := lexscore.MarshalRulesYAML(rules)
		if err != nil {
			return err
		}

		_, err = w.Write(b)
		return err
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(lexscore.RuleSet{Rules: rules})
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, cmd.String(formatFlag))
	}
}

// buildScorer assembles profile, file and bonus rules, falling back to defaults.
func buildScorer(cmd *urfave.Command) (*lexscore.Scorer, error) {
	var sets [][]lexscore.Rule

	if name := cmd.String(profileFlag); name != "" {
		p, err := lexscore.NewProvider(cmd.String(profileDirFlag), lexscore.ProviderOptions{})
		if err != nil {
			return nil, fmt.Errorf("open profiles: %w", err)
		}

		s, err := p.Scorer(name)
		if err != nil {
			return nil, err
		}

		slog.Debug("profile loaded", "profile", name, "rules", s.Len())
		sets = append(sets, s.Rules())
	}

	if paths := cmd.StringSlice(rulesFileFlag); len(paths) > 0 {
		rules, err := lexscore.LoadRulesFiles(paths...)
		if err != nil {
			return nil, err
		}

		slog.Debug("rules files loaded", "files", len(paths), "rules", len(rules))
		sets = append(sets, rules)
	}

	if len(sets) == 0 {
		sets = append(sets, lexscore.DefaultRules())
	}

	bonuses, err := lexscore.ParseBonuses(cmd.StringSlice(bonusFlag))
	if err != nil {
		return nil, err
	}

	return lexscore.NewScorer(lexscore.MergeRules(append(sets, bonuses)...))
}

// readLines reads newline separated inputs until EOF or context cancellation.
func readLines(ctx context.Context, r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lines := make([]string, 0, 16)
	for s.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		lines = append(lines, strings.TrimRight(s.Text(), "\r"))
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	return lines, nil
}

func writeScores(w io.Writer, format string, items []scoredInput) error {
	switch strings.ToLower(format) {
	case formatText:
		bw := bufio.NewWriter(w)
		for _, item := range items {
			if item.Input != nil {
				fmt.Fprintf(bw, "%d\t%s\n", item.Score, *item.Input)
			} else {
				fmt.Fprintf(bw, "%d\n", item.Score)
			}

			for _, c := range item.Contributions {
				fmt.Fprintf(bw, "  %+d\t%s\n", c.Points, c.Name)
			}
		}

		return bw.Flush()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	case formatYAML, "yml":
		b, err := yaml.Marshal(items)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		_, err = w.Write(b)
		return err
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}
