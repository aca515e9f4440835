package scanner

import "time"

// Include reports whether a document modified at the given instant
// passes the temporal cutoff. Inclusive at the boundary: a document
// modified exactly at the cutoff passes. A nil cutoff disables
// filtering entirely rather than defaulting to "now", so clock skew
// can never hide a recently modified document when no cutoff was
// requested.
func Include(cutoff *time.Time, modifiedAt time.Time) bool {
	if cutoff == nil {
		return true
	}
	return !modifiedAt.After(*cutoff)
}
