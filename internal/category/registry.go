package category

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/DAAT-RI/quipu/internal/domain"
)

// Source identifies which taxonomy a Config belongs to.
type Source string

const (
	SourcePlan        Source = "plan"
	SourceDeclaration Source = "declaration"
)

// Order multipliers for synthesized entries. Static entries occupy low order
// numbers; synthesized ones sort after them.
const (
	planSynthOrderStep        = 100
	declarationSynthOrderStep = 200
)

// ParseSource validates a user-supplied source name.
func ParseSource(s string) (Source, error) {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case SourcePlan:
		return SourcePlan, nil
	case SourceDeclaration:
		return SourceDeclaration, nil
	}
	return "", domain.NewValidationError("source", fmt.Sprintf("unknown category source %q", s))
}

// Config is the display configuration of one category key.
type Config struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	Color  string `json:"color"`
	Order  int    `json:"order"`
	Source Source `json:"source"`
	Static bool   `json:"static"`
}

// Registry is the immutable merged category configuration. Build it once at
// startup with NewRegistry and share the pointer; it is safe for concurrent use.
type Registry struct {
	version   int
	lookup    map[string]Config
	bySource  map[Source]map[string]Config
	lists     map[Source][]Config
	synthetic []string
	icons     IconRules
}

// NewRegistry builds the plan map (normalized labels, cyclic palette colors,
// classified icons) and the declaration map (hand-authored entries) and
// merges them. In the merged lookup a plan entry is never replaced by a
// declaration entry with the same key; both stay reachable through ResolveIn.
func NewRegistry(c Catalog) (*Registry, error) {
	if len(c.Palette) == 0 {
		return nil, errors.New("category catalog: palette is empty")
	}
	if len(c.SyntheticPalette) == 0 {
		return nil, errors.New("category catalog: synthetic palette is empty")
	}

	r := &Registry{
		version: c.Version,
		lookup:  make(map[string]Config),
		bySource: map[Source]map[string]Config{
			SourcePlan:        make(map[string]Config, len(c.PlanCategories)),
			SourceDeclaration: make(map[string]Config, len(c.DeclarationTopics)),
		},
		lists:     make(map[Source][]Config, 2),
		synthetic: slices.Clone(c.SyntheticPalette),
		icons:     NewIconRules(c.IconRules, c.DefaultIcon),
	}

	plan := r.bySource[SourcePlan]
	for i, label := range c.PlanCategories {
		key := domain.NormalizeKey(label)
		if key == "" {
			continue
		}
		if _, dup := plan[key]; dup {
			continue
		}
		plan[key] = Config{
			Key:    key,
			Label:  strings.TrimSpace(label),
			Icon:   r.icons.Classify(label),
			Color:  c.Palette[i%len(c.Palette)],
			Order:  i + 1,
			Source: SourcePlan,
			Static: true,
		}
	}

	decl := r.bySource[SourceDeclaration]
	for _, t := range c.DeclarationTopics {
		key := domain.NormalizeKey(t.Key)
		if key == "" {
			key = domain.NormalizeKey(t.Label)
		}
		if key == "" {
			return nil, fmt.Errorf("category catalog: declaration topic %q has no key", t.Label)
		}
		if _, dup := decl[key]; dup {
			return nil, fmt.Errorf("category catalog: duplicate declaration topic key %q", key)
		}
		icon := t.Icon
		if icon == "" {
			icon = r.icons.Classify(t.Label)
		}
		decl[key] = Config{
			Key:    key,
			Label:  t.Label,
			Icon:   icon,
			Color:  t.Color,
			Order:  t.Order,
			Source: SourceDeclaration,
			Static: true,
		}
	}

	// Plan entries first: on a shared key the plan entry keeps the lookup.
	for _, src := range []Source{SourcePlan, SourceDeclaration} {
		list := make([]Config, 0, len(r.bySource[src]))
		for key, cfg := range r.bySource[src] {
			if _, taken := r.lookup[key]; !taken {
				r.lookup[key] = cfg
			}
			list = append(list, cfg)
		}
		sortConfigs(list)
		r.lists[src] = list
	}

	return r, nil
}

// Version returns the catalog version the registry was built from.
func (r *Registry) Version() int {
	return r.version
}

// Resolve looks a key up in the merged table.
func (r *Registry) Resolve(key string) (Config, bool) {
	cfg, ok := r.lookup[key]
	return cfg, ok
}

// ResolveIn looks a key up in one source only.
func (r *Registry) ResolveIn(src Source, key string) (Config, bool) {
	cfg, ok := r.bySource[src][key]
	return cfg, ok
}

// List returns the static entries of one source ordered by Order.
func (r *Registry) List(src Source) []Config {
	return slices.Clone(r.lists[src])
}

// Icon classifies an arbitrary label with the registry's rule table.
func (r *Registry) Icon(label string) string {
	return r.icons.Classify(label)
}

// Synthesize returns the configuration for a label seen in data. If the
// label's key already has a static entry (same source first, then the merged
// table) that entry is returned unchanged. Otherwise a non-persisted entry is
// derived deterministically from ordinal: color from the synthetic palette,
// order 100*ordinal for plan and 200*ordinal for declaration sources.
// Callers pass 1-based ordinals.
func (r *Registry) Synthesize(label string, ordinal int, src Source) Config {
	key := domain.NormalizeKey(label)
	if cfg, ok := r.ResolveIn(src, key); ok {
		return cfg
	}
	if cfg, ok := r.Resolve(key); ok {
		return cfg
	}

	step := planSynthOrderStep
	if src == SourceDeclaration {
		step = declarationSynthOrderStep
	}
	idx := ordinal % len(r.synthetic)
	if idx < 0 {
		idx += len(r.synthetic)
	}

	return Config{
		Key:    key,
		Label:  strings.TrimSpace(label),
		Icon:   r.icons.Classify(label),
		Color:  r.synthetic[idx],
		Order:  step * ordinal,
		Source: src,
	}
}

func sortConfigs(list []Config) {
	slices.SortFunc(list, func(a, b Config) int {
		if a.Order != b.Order {
			return a.Order - b.Order
		}
		return strings.Compare(a.Key, b.Key)
	})
}
