package domain

import "strings"

// TenantScope is the visibility boundary of a client organization over
// declarations. It has exactly two implementations, Unrestricted and
// Restricted; consumers are expected to type-switch over both.
type TenantScope interface {
	tenantScope()
}

// Unrestricted is the scope of the superadmin organization: every
// declaration is visible.
type Unrestricted struct{}

func (Unrestricted) tenantScope() {}

// Restricted limits visibility to declarations whose stakeholder contains one
// of Aliases (case-insensitive substring). An empty alias set denies all.
type Restricted struct {
	Aliases []string
}

func (Restricted) tenantScope() {}

// MatchAliases returns the first limit non-blank aliases in order. A blank
// alias would match every stakeholder and is never returned. limit <= 0
// means no cap.
func (r Restricted) MatchAliases(limit int) []string {
	out := make([]string, 0, len(r.Aliases))
	for _, a := range r.Aliases {
		if strings.TrimSpace(a) == "" {
			continue
		}
		out = append(out, a)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// DeniesAll reports whether the scope cannot match any declaration.
func (r Restricted) DeniesAll() bool {
	return len(r.MatchAliases(1)) == 0
}
