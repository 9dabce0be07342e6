// Copyright 2026-2026 Hewlett Packard Enterprise Development LP

// Package ignore builds the exclusion rule set for a scan root from the
// optional .gitignore and .copyrightignore files.
package ignore

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// The ignore files consulted at the scan root, in order. Patterns from
// later files are additive, never a replacement.
var sourceFiles = []string{".gitignore", ".copyrightignore"}

// RuleSet is an ordered collection of gitignore-style patterns compiled
// into a matcher. Matching is pure: it never touches the filesystem.
type RuleSet struct {
	patterns []string
	matcher  *gitignore.GitIgnore
}

// Load reads the optional ignore files at root and appends extra patterns
// after them. A missing ignore file contributes nothing.
func Load(root string, extra []string) (*RuleSet, error) {
	var patterns []string
	for _, name := range sourceFiles {
		lines, err := readPatternFile(filepath.Join(root, name))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		patterns = append(patterns, lines...)
	}
	patterns = append(patterns, extra...)
	return Compile(patterns), nil
}

// Compile builds a RuleSet from an ordered pattern list. Later patterns
// override earlier ones for the same path, and "!" re-includes.
func Compile(patterns []string) *RuleSet {
	return &RuleSet{
		patterns: patterns,
		matcher:  gitignore.CompileIgnoreLines(patterns...),
	}
}

// Patterns returns the compiled pattern list in order.
func (r *RuleSet) Patterns() []string { return r.patterns }

// Match reports whether the root-relative slash path is excluded.
func (r *RuleSet) Match(rel string) bool {
	return r.matcher.MatchesPath(rel)
}

// MatchDir reports whether a directory, and so its entire subtree, is
// excluded. Directory patterns like "build/" match here.
func (r *RuleSet) MatchDir(rel string) bool {
	return r.matcher.MatchesPath(rel) || r.matcher.MatchesPath(rel+"/")
}

// readPatternFile returns the patterns in one ignore file, dropping blank
// lines and "#" comments. A missing file yields no patterns and no error.
func readPatternFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var patterns []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return patterns, nil
}
