package category

import (
	"strings"

	"github.com/DAAT-RI/quipu/internal/domain"
)

// IconRule maps any of Keywords (substrings of the normalized label) to Icon.
type IconRule struct {
	Icon     string   `yaml:"icon"`
	Keywords []string `yaml:"keywords"`
}

// IconRules is a priority-ordered rule table: rules are evaluated top to
// bottom and the first rule with a matching keyword wins.
type IconRules struct {
	rules    []IconRule
	fallback string
}

// NewIconRules normalizes every keyword with domain.NormalizeName so that
// rules and labels are compared in the same form.
func NewIconRules(rules []IconRule, fallback string) IconRules {
	compiled := make([]IconRule, 0, len(rules))
	for _, r := range rules {
		kws := make([]string, 0, len(r.Keywords))
		for _, kw := range r.Keywords {
			if kw = domain.NormalizeName(kw); kw != "" {
				kws = append(kws, kw)
			}
		}
		if r.Icon == "" || len(kws) == 0 {
			continue
		}
		compiled = append(compiled, IconRule{Icon: r.Icon, Keywords: kws})
	}
	return IconRules{rules: compiled, fallback: fallback}
}

// Classify returns the icon of the first rule matching label, or the
// fallback icon.
func (r IconRules) Classify(label string) string {
	text := domain.NormalizeName(label)
	if text != "" {
		for _, rule := range r.rules {
			for _, kw := range rule.Keywords {
				if strings.Contains(text, kw) {
					return rule.Icon
				}
			}
		}
	}
	return r.fallback
}
