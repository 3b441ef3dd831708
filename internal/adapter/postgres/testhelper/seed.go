package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DAAT-RI/quipu/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedParty inserts a party and returns it.
func SeedParty(t *testing.T, pool *pgxpool.Pool, name, officialName string) domain.Party {
	t.Helper()

	p := domain.Party{Name: name, OfficialName: officialName}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO partidos (nombre, nombre_oficial) VALUES ($1, $2) RETURNING id`,
		name, officialName,
	).Scan(&p.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedParty: %v", err)
	}
	return p
}

// SeedCandidate inserts a candidate, optionally affiliated to partyID.
func SeedCandidate(t *testing.T, pool *pgxpool.Pool, name string, partyID *int64) domain.Candidate {
	t.Helper()

	c := domain.Candidate{Name: name, PartyID: partyID}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO candidatos (nombre, partido_id) VALUES ($1, $2) RETURNING id`,
		name, partyID,
	).Scan(&c.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedCandidate: %v", err)
	}
	return c
}

// SeedOrganization inserts an active client organization. With superadmin
// set it returns the single superadmin organization instead, creating it on
// first use: the schema allows only one.
func SeedOrganization(t *testing.T, pool *pgxpool.Pool, superadmin bool) domain.Organization {
	t.Helper()

	suffix := UniqueSuffix()
	org := domain.Organization{
		ID:           uuid.New(),
		Name:         "Org " + suffix,
		Slug:         "org-" + suffix,
		IsSuperadmin: superadmin,
		Active:       true,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	if superadmin {
		err := pool.QueryRow(context.Background(),
			`INSERT INTO organizaciones (id, nombre, slug, es_superadmin, activo, created_at)
			 VALUES ($1, $2, $3, true, true, $4)
			 ON CONFLICT (es_superadmin) WHERE es_superadmin DO UPDATE SET activo = true
			 RETURNING id, nombre, slug, created_at`,
			org.ID, org.Name, org.Slug, org.CreatedAt,
		).Scan(&org.ID, &org.Name, &org.Slug, &org.CreatedAt)
		if err != nil {
			t.Fatalf("testhelper: SeedOrganization(superadmin): %v", err)
		}
		return org
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO organizaciones (id, nombre, slug, es_superadmin, activo, created_at)
		 VALUES ($1, $2, $3, false, $4, $5)`,
		org.ID, org.Name, org.Slug, org.Active, org.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedOrganization: %v", err)
	}
	return org
}

// LinkCandidates attaches candidates to an organization.
func LinkCandidates(t *testing.T, pool *pgxpool.Pool, orgID uuid.UUID, candidateIDs ...int64) {
	t.Helper()

	for _, id := range candidateIDs {
		_, err := pool.Exec(context.Background(),
			`INSERT INTO organizacion_candidatos (organizacion_id, candidato_id) VALUES ($1, $2)`,
			orgID, id,
		)
		if err != nil {
			t.Fatalf("testhelper: LinkCandidates: %v", err)
		}
	}
}

// SeedAlias inserts an alias normalized with domain.NormalizeName.
func SeedAlias(t *testing.T, pool *pgxpool.Pool, alias string, candidateID *int64) domain.Alias {
	t.Helper()

	a := domain.Alias{
		Alias:       alias,
		Normalized:  domain.NormalizeName(alias),
		CandidateID: candidateID,
		Confidence:  1,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO stakeholder_aliases (alias, alias_normalized, candidato_id, confidence, verified)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		a.Alias, a.Normalized, a.CandidateID, a.Confidence, a.Verified,
	).Scan(&a.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedAlias: %v", err)
	}
	return a
}

// SeedDeclaration inserts a declaration attributed to stakeholder.
func SeedDeclaration(t *testing.T, pool *pgxpool.Pool, stakeholder, content, topic, channel string) domain.Declaration {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	d := domain.Declaration{
		Stakeholder: stakeholder,
		Content:     content,
		Topic:       topic,
		Categories:  topic,
		Channel:     channel,
		PublishedAt: &now,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO declaraciones (stakeholder, contenido, tema, categorias, medio, fecha)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		d.Stakeholder, d.Content, d.Topic, d.Categories, d.Channel, d.PublishedAt,
	).Scan(&d.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedDeclaration: %v", err)
	}
	return d
}
