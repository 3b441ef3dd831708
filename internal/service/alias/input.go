package alias

import (
	"strings"
	"unicode/utf8"

	"github.com/DAAT-RI/quipu/internal/domain"
)

const maxAliasLength = 200

// CreateInput holds the parameters for creating an alias. A nil Confidence
// defaults to 1.
type CreateInput struct {
	Alias       string
	CandidateID *int64
	Confidence  *float64
	Verified    bool
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	alias := strings.TrimSpace(i.Alias)
	switch {
	case alias == "":
		errs = append(errs, domain.FieldError{Field: "alias", Message: "required"})
	case utf8.RuneCountInString(alias) > maxAliasLength:
		errs = append(errs, domain.FieldError{Field: "alias", Message: "too long (max 200)"})
	case domain.NormalizeName(alias) == "":
		errs = append(errs, domain.FieldError{Field: "alias", Message: "has no letters after normalization"})
	}
	if i.CandidateID != nil && *i.CandidateID <= 0 {
		errs = append(errs, domain.FieldError{Field: "candidate_id", Message: "must be positive"})
	}
	if i.Confidence != nil && (*i.Confidence < 0 || *i.Confidence > 1) {
		errs = append(errs, domain.FieldError{Field: "confidence", Message: "must be between 0 and 1"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AssignInput holds the parameters for attaching an alias to a candidate.
// A nil CandidateID detaches the alias.
type AssignInput struct {
	ID          int64
	CandidateID *int64
	Verified    bool
}

// Validate checks all fields and collects all errors.
func (i *AssignInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must be positive"})
	}
	if i.CandidateID != nil && *i.CandidateID <= 0 {
		errs = append(errs, domain.FieldError{Field: "candidate_id", Message: "must be positive"})
	}
	if i.CandidateID == nil && i.Verified {
		errs = append(errs, domain.FieldError{Field: "verified", Message: "an unmatched alias cannot be verified"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
