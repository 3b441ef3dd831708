package declaration

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/DAAT-RI/quipu/internal/domain"
)

// minTokenLength is the shortest candidate name token indexed on its own.
const minTokenLength = 4

// PartyMatcher maps free-text stakeholder names to parties through an index
// of normalized party names, candidate full names and candidate name tokens.
// It is immutable after construction.
type PartyMatcher struct {
	parties map[int64]domain.Party
	exact   map[string]int64
	terms   []string // longest first, then lexical
}

// NewPartyMatcher indexes party official names and names first, then
// candidate full names, then candidate name tokens of at least four runes.
// On a term collision the first indexed party keeps the term. Candidates
// without a party are skipped.
func NewPartyMatcher(parties []domain.Party, candidates []domain.Candidate) *PartyMatcher {
	m := &PartyMatcher{
		parties: make(map[int64]domain.Party, len(parties)),
		exact:   make(map[string]int64),
	}

	add := func(term string, partyID int64) {
		if term == "" {
			return
		}
		if _, taken := m.exact[term]; !taken {
			m.exact[term] = partyID
		}
	}

	for _, p := range parties {
		m.parties[p.ID] = p
		add(domain.NormalizeName(p.OfficialName), p.ID)
		add(domain.NormalizeName(p.Name), p.ID)
	}

	var tokens []domain.Candidate
	for _, c := range candidates {
		if c.PartyID == nil {
			continue
		}
		if _, known := m.parties[*c.PartyID]; !known {
			m.parties[*c.PartyID] = domain.Party{ID: *c.PartyID, Name: c.PartyName}
		}
		add(domain.NormalizeName(c.Name), *c.PartyID)
		tokens = append(tokens, c)
	}
	for _, c := range tokens {
		for _, tok := range strings.Fields(domain.NormalizeName(c.Name)) {
			if utf8.RuneCountInString(tok) >= minTokenLength {
				add(tok, *c.PartyID)
			}
		}
	}

	m.terms = make([]string, 0, len(m.exact))
	for term := range m.exact {
		m.terms = append(m.terms, term)
	}
	slices.SortFunc(m.terms, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})

	return m
}

// Match returns the party of a stakeholder: an exact match of the normalized
// name first, then the first indexed term contained in it.
func (m *PartyMatcher) Match(stakeholder string) (domain.Party, bool) {
	name := domain.NormalizeName(stakeholder)
	if name == "" {
		return domain.Party{}, false
	}
	if id, ok := m.exact[name]; ok {
		return m.parties[id], true
	}
	for _, term := range m.terms {
		if strings.Contains(name, term) {
			return m.parties[m.exact[term]], true
		}
	}
	return domain.Party{}, false
}

// Terms returns the number of indexed terms.
func (m *PartyMatcher) Terms() int {
	return len(m.terms)
}
