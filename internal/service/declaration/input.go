package declaration

import (
	"unicode/utf8"

	"github.com/DAAT-RI/quipu/internal/domain"
)

const maxFilterLength = 200

// ListInput holds the parameters for listing declarations.
type ListInput struct {
	Search  string
	Topic   string
	Channel string
	Limit   int
	Offset  int
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}
	if utf8.RuneCountInString(i.Search) > maxFilterLength {
		errs = append(errs, domain.FieldError{Field: "q", Message: "too long (max 200)"})
	}
	if utf8.RuneCountInString(i.Topic) > maxFilterLength {
		errs = append(errs, domain.FieldError{Field: "topic", Message: "too long (max 200)"})
	}
	if utf8.RuneCountInString(i.Channel) > maxFilterLength {
		errs = append(errs, domain.FieldError{Field: "channel", Message: "too long (max 200)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
