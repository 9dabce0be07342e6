// Copyright 2026-2026 Hewlett Packard Enterprise Development LP

// Package walker produces the candidate file list for an audit run.
package walker

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hpe/copycheck/internal/ignore"
)

// Version-control metadata directories are pruned regardless of the
// ignore rule set.
var vcsDirs = map[string]bool{
	".git": true,
	".hg":  true,
	".svn": true,
	".bzr": true,
}

// Walker walks a directory tree applying ignore rules. Excluded
// directories are pruned, so their subtrees are never visited.
type Walker struct {
	root  string
	rules *ignore.RuleSet
	warn  func(path string, err error)
}

// New creates a Walker for root. warn, if non-nil, is invoked for
// unreadable entries encountered during the walk; the walk continues.
func New(root string, rules *ignore.RuleSet, warn func(path string, err error)) *Walker {
	return &Walker{root: root, rules: rules, warn: warn}
}

// Files returns the root-relative slash paths of every candidate file, in
// sorted order. Hidden entries are skipped, and symlinked directories are
// not followed. Only a failure to read the root itself is an error.
func (w *Walker) Files() ([]string, error) {
	var files []string

	err := filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == w.root {
				return err
			}
			if w.warn != nil {
				w.warn(path, err)
			}
			return nil
		}
		if path == w.root {
			return nil
		}

		rel, relErr := filepath.Rel(w.root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		name := d.Name()

		if d.IsDir() {
			if vcsDirs[name] || strings.HasPrefix(name, ".") || w.rules.MatchDir(rel) {
				return fs.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") || !d.Type().IsRegular() {
			return nil
		}
		if w.rules.Match(rel) {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
