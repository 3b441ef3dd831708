package domain

import "time"

// Declaration is a media statement or interaction. Stakeholder is free text,
// not a foreign key; tenant visibility is evaluated per query.
type Declaration struct {
	ID          int64
	Stakeholder string
	Content     string
	Topic       string // tema
	Categories  string // categorias, multi-valued ("Salud; Educación")
	Channel     string // medio
	PublishedAt *time.Time
	URL         string
}

// DeclarationLabels is the projection used for topic aggregation.
type DeclarationLabels struct {
	Topic      string
	Categories string
}

// PlanPromise is one line item of a party's government plan.
type PlanPromise struct {
	ID       int64
	PartyID  *int64
	Category string
	Text     string
}
