// Copyright 2026-2026 Hewlett Packard Enterprise Development LP

package audit

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hpe/copycheck/internal/header"
	"github.com/hpe/copycheck/internal/ignore"
	"github.com/hpe/copycheck/internal/style"
	"github.com/hpe/copycheck/internal/walker"
)

// Auditor audits every candidate file under Root against Year. Styles and
// Rules are built once per invocation and read-only for the run.
type Auditor struct {
	Root   string
	Year   int
	Styles style.Table
	Rules  *ignore.RuleSet
}

// Run walks the tree and produces one finding per recognized file. When
// fix is true, MISSING and OUTDATED files are patched in place; patching
// is best-effort across the batch, a failed write becomes a finding and
// the run continues. The returned error covers only an unwalkable root.
func (a *Auditor) Run(fix bool) (*Report, error) {
	rep := &Report{}
	w := walker.New(a.Root, a.Rules, func(path string, err error) {
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("%s: %v", path, err))
	})

	files, err := w.Files()
	if err != nil {
		return nil, err
	}

	for _, rel := range files {
		st, ok := a.Styles.Resolve(rel)
		if !ok {
			// Not every file carries a header; unknown extensions are
			// passed over without a finding.
			continue
		}
		rep.Findings = append(rep.Findings, a.auditFile(rel, st, fix))
	}
	return rep, nil
}

func (a *Auditor) auditFile(rel string, st style.Style, fix bool) Finding {
	path := filepath.Join(a.Root, filepath.FromSlash(rel))

	content, err := os.ReadFile(path)
	if err != nil {
		return Finding{Path: rel, Status: StatusUnreadable, Detail: err.Error()}
	}
	if bytes.IndexByte(content, 0) >= 0 {
		return Finding{Path: rel, Status: StatusUnreadable, Detail: "binary content"}
	}

	rec := header.Parse(firstLine(content), st)
	status := Classify(rec, a.Year)

	switch status {
	case StatusOK:
		return Finding{Path: rel, Status: StatusOK, Detail: "header is current"}
	case StatusMalformed:
		return Finding{Path: rel, Status: StatusMalformed,
			Detail: fmt.Sprintf("unparseable header: %q", rec.Raw)}
	}

	var patched []byte
	var detail string
	switch status {
	case StatusMissing:
		patched = prependHeader(style.HeaderLine(st, a.Year, a.Year), content)
		detail = fmt.Sprintf("add header (%d-%d)", a.Year, a.Year)
	case StatusOutdated:
		patched, err = bumpEndYear(content, a.Year)
		if err != nil {
			return Finding{Path: rel, Status: StatusMalformed, Detail: err.Error()}
		}
		detail = fmt.Sprintf("update years %d-%d -> %d-%d",
			rec.StartYear, rec.EndYear, rec.StartYear, a.Year)
	}

	if fix {
		if err := atomicWrite(path, patched, fileMode(path)); err != nil {
			return Finding{Path: rel, Status: StatusWriteFailed, Detail: err.Error()}
		}
	}
	return Finding{Path: rel, Status: status, Detail: detail}
}

// firstLine returns the first line of content without its terminator.
func firstLine(content []byte) string {
	if i := bytes.IndexByte(content, '\n'); i >= 0 {
		return string(content[:i])
	}
	return string(content)
}

func fileMode(path string) fs.FileMode {
	if info, err := os.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return 0o644
}
