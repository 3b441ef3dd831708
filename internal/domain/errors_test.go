package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("alias", "required")

	if got := err.Error(); got != "validation: alias: required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "limit", Message: "must not be negative"},
		{Field: "offset", Message: "must not be negative"},
	})

	if got := err.Error(); got != "validation: limit: must not be negative; offset: must not be negative" {
		t.Fatalf("unexpected Error(): %q", got)
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatal("errors.As(err, *ValidationError) = false")
	}
	if len(verr.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(verr.Errors))
	}
}

func TestNewValidationErrors_EmptyIsNil(t *testing.T) {
	t.Parallel()

	if err := NewValidationErrors(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestValidationError_SurvivesWrapping(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("alias.Create: %w", NewValidationError("confidence", "must be in [0, 1]"))
	if !errors.Is(err, ErrValidation) {
		t.Fatal("wrapped validation error should match ErrValidation")
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrNotFound, ErrAlreadyExists, ErrValidation,
		ErrUnauthorized, ErrForbidden,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel errors %d and %d should not match", i, j)
			}
		}
	}
}
