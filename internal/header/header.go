// Copyright 2026-2026 Hewlett Packard Enterprise Development LP

// Package header parses the copyright header line at the top of a source file.
package header

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hpe/copycheck/internal/style"
)

// Record is the parsed result of inspecting a file's first line.
// Absence of a header is a Record state, never an error.
type Record struct {
	Present    bool
	WellFormed bool
	StartYear  int
	EndYear    int
	Raw        string
}

// ownerRE matches the exact expected header text once comment tokens are
// stripped. Deviations in wording, spacing, or digit count do not match.
var ownerRE = regexp.MustCompile(`^Copyright (\d{4})-(\d{4}) Hewlett Packard Enterprise Development LP$`)

// Parse inspects the first line of a file against its expected comment style.
// Extra whitespace around the comment tokens is tolerated; a line carrying
// the tokens and the word "Copyright" but deviating from the exact format is
// Present but not WellFormed. A line without both tokens is not a header.
func Parse(line string, st style.Style) Record {
	rec := Record{Raw: line}

	inner := strings.TrimRight(line, "\r")
	if !strings.HasPrefix(inner, st.Prefix) {
		return rec
	}
	inner = strings.TrimSpace(strings.TrimPrefix(inner, st.Prefix))
	if st.Suffix != "" {
		if !strings.HasSuffix(inner, st.Suffix) {
			return rec
		}
		inner = strings.TrimSpace(strings.TrimSuffix(inner, st.Suffix))
	}

	m := ownerRE.FindStringSubmatch(inner)
	if m == nil {
		// Header-shaped but unparseable, e.g. a wrong company string.
		if strings.Contains(inner, "Copyright") {
			rec.Present = true
		}
		return rec
	}

	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])
	rec.Present = true
	rec.StartYear = start
	rec.EndYear = end
	rec.WellFormed = start <= end
	return rec
}
