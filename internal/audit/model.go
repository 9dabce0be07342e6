// Copyright 2026-2026 Hewlett Packard Enterprise Development LP

// Package audit drives the walk, classification, and patching of copyright
// headers under one scan root.
package audit

// Status classifies the audit outcome for a single file.
type Status string

const (
	// StatusOK means the header is present, well-formed, and current.
	StatusOK Status = "ok"
	// StatusMissing means no header line was found.
	StatusMissing Status = "missing"
	// StatusOutdated means the header's end year is behind the current year.
	StatusOutdated Status = "outdated"
	// StatusMalformed means a header-shaped line failed to parse. Such
	// files are reported for manual attention and never patched.
	StatusMalformed Status = "malformed"
	// StatusUnreadable means the file could not be read as text.
	StatusUnreadable Status = "unreadable"
	// StatusWriteFailed means patching the file failed; the original
	// bytes are intact.
	StatusWriteFailed Status = "write-failed"
)

// Finding is the audit result for one scanned, recognized file.
type Finding struct {
	Path   string `json:"path"`
	Status Status `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Report collects the findings and walk warnings of one run. Findings are
// in walk order; nothing persists beyond the run.
type Report struct {
	Findings []Finding
	Warnings []string
}

// Count returns the number of findings with the given status.
func (r *Report) Count(s Status) int {
	n := 0
	for _, f := range r.Findings {
		if f.Status == s {
			n++
		}
	}
	return n
}

// Flagged returns the findings whose status is not OK.
func (r *Report) Flagged() []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Status != StatusOK {
			out = append(out, f)
		}
	}
	return out
}

// Failed reports whether any file could not be read or written.
func (r *Report) Failed() bool {
	return r.Count(StatusUnreadable) > 0 || r.Count(StatusWriteFailed) > 0
}
