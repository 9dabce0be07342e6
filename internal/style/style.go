// Copyright 2026-2026 Hewlett Packard Enterprise Development LP

// Package style maps file extensions to the comment delimiters used when
// reading and writing copyright header lines.
package style

import (
	"fmt"
	"path/filepath"
)

// Style describes the comment delimiters wrapping a header line.
// Suffix is empty for line-prefix styles.
type Style struct {
	Prefix string
	Suffix string
}

// The closed set of comment tokens the tool understands.
var (
	hash      = Style{Prefix: "#"}
	slash     = Style{Prefix: "//"}
	dash      = Style{Prefix: "--"}
	semicolon = Style{Prefix: ";"}
	percent   = Style{Prefix: "%"}
	htmlBlock = Style{Prefix: "<!--", Suffix: "-->"}
	cBlock    = Style{Prefix: "/*", Suffix: "*/"}
)

// Table maps a file extension (case-sensitive, with leading dot) to its
// comment style. Extensions absent from the table are skipped entirely.
type Table map[string]Style

// Default returns the built-in extension table. Callers may merge their own
// entries into the returned copy.
func Default() Table {
	return Table{
		// Hash comments
		".py": hash, ".sh": hash, ".bash": hash, ".zsh": hash,
		".rb": hash, ".pl": hash, ".pm": hash, ".r": hash, ".R": hash,
		".jl": hash, ".coffee": hash,

		// Double-slash comments
		".js": slash, ".ts": slash, ".jsx": slash, ".tsx": slash,
		".go": slash, ".c": slash, ".cpp": slash, ".cc": slash,
		".cxx": slash, ".h": slash, ".hpp": slash, ".hxx": slash,
		".cs": slash, ".java": slash, ".kt": slash, ".kts": slash,
		".scala": slash, ".swift": slash, ".rs": slash, ".dart": slash,
		".groovy": slash, ".gradle": slash, ".mm": slash, ".php": slash,
		".v": slash, ".sv": slash,
		".scss": slash, ".sass": slash, ".less": slash,

		// Dash-dash comments
		".sql": dash, ".lua": dash, ".hs": dash, ".elm": dash, ".ada": dash,

		// Semicolon comments
		".lisp": semicolon, ".cl": semicolon, ".clj": semicolon,
		".cljs": semicolon, ".edn": semicolon, ".scm": semicolon,
		".rkt": semicolon, ".el": semicolon, ".asm": semicolon, ".s": semicolon,

		// Percent comments (.m is MATLAB here, not Objective-C)
		".tex": percent, ".latex": percent, ".m": percent,
		".erl": percent, ".hrl": percent,

		// Block comments
		".html": htmlBlock, ".htm": htmlBlock, ".xml": htmlBlock,
		".xhtml": htmlBlock, ".svg": htmlBlock, ".vue": htmlBlock,
		".css": cBlock,
	}
}

// Resolve looks up the comment style for a path's extension.
func (t Table) Resolve(path string) (Style, bool) {
	st, ok := t[filepath.Ext(path)]
	return st, ok
}

// FromToken maps a comment opening token (as written in a config file)
// to its style. Block tokens imply their closing tokens.
func FromToken(token string) (Style, bool) {
	for _, st := range []Style{hash, slash, dash, semicolon, percent, htmlBlock, cBlock} {
		if st.Prefix == token {
			return st, true
		}
	}
	return Style{}, false
}

// HeaderLine renders the complete header line for a style and year range,
// without a trailing newline.
func HeaderLine(st Style, startYear, endYear int) string {
	line := fmt.Sprintf("%s Copyright %d-%d Hewlett Packard Enterprise Development LP", st.Prefix, startYear, endYear)
	if st.Suffix != "" {
		line += " " + st.Suffix
	}
	return line
}
