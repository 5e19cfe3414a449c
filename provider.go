// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lexscore

package lexscore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

const defaultProfileExtension = ".rules"

// ProviderOptions configures profile provider behavior.
type ProviderOptions struct {
	// Extension is the profile file extension including leading dot.
	// Empty value defaults to ".rules". ".yaml" and ".yml" profiles are decoded as YAML.
	Extension string `json:"extension,omitempty" yaml:"extension,omitempty"`
	// BaseRules are in-memory rules evaluated before profile rules.
	BaseRules []Rule `json:"base_rules,omitempty" yaml:"base_rules,omitempty"`
}

// Provider loads named rule profiles from a directory and caches compiled scorers.
type Provider struct {
	// cache stores compiled scorer by profile name.
	cache map[string]*cachedScorer
	// dir is absolute profiles directory path.
	dir string
	// extension is profile file extension.
	extension string
	// baseRules are prepended to every profile.
	baseRules []Rule

	// mu guards cache access.
	mu sync.Mutex
}

// cachedScorer stores one profile scorer or a cached load error.
type cachedScorer struct {
	// scorer is nil when load failed.
	scorer *Scorer
	// err stores read/parse/compile error for deterministic repeated calls.
	err error
	// loading reports whether scorer is currently being loaded by another goroutine.
	loading bool
	// wg coordinates concurrent waiters for one load attempt.
	wg sync.WaitGroup
}

// NewProvider creates a profile provider rooted at dir.
func NewProvider(dir string, opts ProviderOptions) (*Provider, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("abs dir: %w", err)
	}

	ext, err := cleanExtension(opts.Extension)
	if err != nil {
		return nil, err
	}

	// Compile once to fail fast on broken base rules.
	if _, err := NewScorer(opts.BaseRules); err != nil {
		return nil, fmt.Errorf("compile base rules: %w", err)
	}

	return &Provider{
		dir:       absDir,
		extension: ext,
		baseRules: MergeRules(opts.BaseRules),
		cache:     make(map[string]*cachedScorer),
	}, nil
}

// Scorer returns cached or newly loaded scorer for profile name.
func (p *Provider) Scorer(name string) (*Scorer, error) {
	if p == nil {
		return nil, ErrNilProvider
	}

	name, err := cleanProfileName(name)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	cached, ok := p.cache[name]
	if ok {
		loading := cached.loading
		p.mu.Unlock()
		if loading {
			cached.wg.Wait()
		}

		return unwrapCachedScorer(cached)
	}

	cached = &cachedScorer{
		loading: true,
	}
	cached.wg.Add(1)
	p.cache[name] = cached
	p.mu.Unlock()

	scorer, loadErr := p.loadAndCompile(name)

	p.mu.Lock()
	cached.scorer = scorer
	cached.err = loadErr
	cached.loading = false
	cached.wg.Done()
	p.mu.Unlock()

	return scorer, loadErr
}

// Score returns score of input using profile name.
func (p *Provider) Score(name string, input string) (int, error) {
	s, err := p.Scorer(name)
	if err != nil {
		return 0, err
	}

	return s.Score(input), nil
}

// Evaluate returns score breakdown of input using profile name.
func (p *Provider) Evaluate(name string, input string) (Result, error) {
	s, err := p.Scorer(name)
	if err != nil {
		return Result{}, err
	}

	return s.Evaluate(input), nil
}

// ScoreBatch returns scores for multiple inputs using one profile.
//
// The profile scorer is resolved once and reused for every input.
func (p *Provider) ScoreBatch(name string, inputs []string) ([]int, error) {
	s, err := p.Scorer(name)
	if err != nil {
		return nil, err
	}

	scores := make([]int, len(inputs))
	for i := range inputs {
		scores[i] = s.Score(inputs[i])
	}

	return scores, nil
}

// Profiles lists profile names available in provider directory, sorted.
func (p *Provider) Profiles() ([]string, error) {
	if p == nil {
		return nil, ErrNilProvider
	}

	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return nil, fmt.Errorf("read profiles dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name, ok := strings.CutSuffix(entry.Name(), p.extension)
		if !ok || name == "" {
			continue
		}

		if _, err := cleanProfileName(name); err != nil {
			continue
		}

		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

// loadAndCompile loads one profile file and compiles it behind base rules.
func (p *Provider) loadAndCompile(name string) (*Scorer, error) {
	path := filepath.Join(p.dir, name+p.extension)

	rules, err := LoadRulesFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
		}

		return nil, fmt.Errorf("load profile %s: %w", name, err)
	}

	scorer, err := NewScorer(MergeRules(p.baseRules, rules))
	if err != nil {
		return nil, fmt.Errorf("compile profile %s: %w", name, err)
	}

	return scorer, nil
}

// unwrapCachedScorer returns cached scorer state.
func unwrapCachedScorer(entry *cachedScorer) (*Scorer, error) {
	if entry.err != nil {
		return nil, entry.err
	}

	return entry.scorer, nil
}

// cleanExtension validates profile extension and applies default.
func cleanExtension(raw string) (string, error) {
	ext := trimSpaces(raw)
	if ext == "" {
		return defaultProfileExtension, nil
	}

	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	if ext == "." || strings.ContainsAny(ext, `/\`) {
		return "", fmt.Errorf("%w: extension %q", ErrInvalidProfileName, raw)
	}

	return ext, nil
}

// cleanProfileName validates profile name as one plain file name stem.
func cleanProfileName(raw string) (string, error) {
	name := trimSpaces(raw)
	if name == "" || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidProfileName, raw)
	}

	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return "", fmt.Errorf("%w: %q contains path separator", ErrInvalidProfileName, raw)
	}

	if filepath.VolumeName(name) != "" {
		return "", fmt.Errorf("%w: %q contains volume name", ErrInvalidProfileName, raw)
	}

	return name, nil
}
