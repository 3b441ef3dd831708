package domain

import (
	"time"

	"github.com/google/uuid"
)

// Organization is a client tenant. A superadmin organization implicitly owns
// every candidate; any other organization owns the candidates linked through
// the organizacion_candidatos junction.
type Organization struct {
	ID           uuid.UUID
	Name         string
	Slug         string
	IsSuperadmin bool
	Active       bool
	CreatedAt    time.Time
}
