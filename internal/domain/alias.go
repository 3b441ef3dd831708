package domain

// Alias links a free-text stakeholder name seen in media data to a Candidate.
// An alias with a nil CandidateID is unmatched: it is valid, but never
// attached to any organization.
type Alias struct {
	ID          int64
	Alias       string
	Normalized  string // NormalizeName(Alias), computed at write time
	CandidateID *int64
	Confidence  float64
	Verified    bool
}

// Matched reports whether the alias points at a candidate.
func (a Alias) Matched() bool {
	return a.CandidateID != nil
}
