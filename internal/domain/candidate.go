package domain

// Party is a political party (organización política).
type Party struct {
	ID           int64
	Name         string
	OfficialName string
}

// Candidate is an electoral candidate. Owned by the backend store; read-only here.
type Candidate struct {
	ID        int64
	Name      string
	PartyID   *int64
	PartyName string
}
