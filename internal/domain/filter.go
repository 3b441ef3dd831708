package domain

// DeclarationFilter contains filtering/pagination parameters for declaration listings.
type DeclarationFilter struct {
	// Variants are OR'd as ILIKE '%v%' over contenido and stakeholder.
	// Empty means no text filter.
	Variants []string

	// Topic matches tema case-insensitively or a categorias segment.
	Topic *string

	// Channel filters on medio equality.
	Channel *string

	// Limit defaults to 50 and is capped at the 1000-row request ceiling.
	Limit  int
	Offset int
}

// PromiseFilter contains filtering/pagination parameters for plan promise listings.
type PromiseFilter struct {
	// Variants are OR'd as ILIKE '%v%' over texto. Empty means no text filter.
	Variants []string

	// Category matches categoria case-insensitively.
	Category *string

	PartyID *int64

	Limit  int
	Offset int
}

// Page is a limited slice of rows plus the exact count of matching rows.
type Page[T any] struct {
	Items []T
	Total int
}
