// Copyright 2026-2026 Hewlett Packard Enterprise Development LP

package audit

import "github.com/hpe/copycheck/internal/header"

// Classify maps a parsed header record to a status for the given year.
// An end year beyond currentYear is OK: regressing a year is more dangerous
// than leaving it alone, so future-dated headers are never flagged.
func Classify(rec header.Record, currentYear int) Status {
	switch {
	case !rec.Present:
		return StatusMissing
	case !rec.WellFormed:
		return StatusMalformed
	case rec.EndYear < currentYear:
		return StatusOutdated
	default:
		return StatusOK
	}
}
