// Copyright 2026-2026 Hewlett Packard Enterprise Development LP

package audit

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

// yearSpanRE locates the year range inside an already well-formed header
// line so that only the end-year digits are spliced.
var yearSpanRE = regexp.MustCompile(`Copyright (\d{4})-(\d{4}) Hewlett Packard Enterprise Development LP`)

// prependHeader returns content with line prepended as the new first line.
// The original bytes, including their line-ending convention and trailing
// newline state, are untouched.
func prependHeader(line string, content []byte) []byte {
	out := make([]byte, 0, len(line)+1+len(content))
	out = append(out, line...)
	out = append(out, '\n')
	out = append(out, content...)
	return out
}

// bumpEndYear rewrites the end-year digits on the first line to year,
// leaving every other byte of the file as it was. The caller guarantees
// the first line carries a well-formed header.
func bumpEndYear(content []byte, year int) ([]byte, error) {
	lineEnd := bytes.IndexByte(content, '\n')
	if lineEnd < 0 {
		lineEnd = len(content)
	}
	loc := yearSpanRE.FindSubmatchIndex(content[:lineEnd])
	if loc == nil {
		return nil, fmt.Errorf("no year range found on first line")
	}

	// loc[4]:loc[5] is the end-year capture group.
	out := make([]byte, 0, len(content))
	out = append(out, content[:loc[4]]...)
	out = append(out, strconv.Itoa(year)...)
	out = append(out, content[loc[5]:]...)
	return out, nil
}

// atomicWrite replaces path's contents via a temp file and rename, keeping
// the original file mode. On failure the original file is untouched.
func atomicWrite(path string, content []byte, mode fs.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".copycheck-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("setting mode: %w", err)
	}
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("writing content: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
