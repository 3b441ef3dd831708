package category

import "github.com/DAAT-RI/quipu/internal/aggregate"

// Counted is a category configuration with its occurrence count.
type Counted struct {
	Config
	Count int `json:"count"`
}

// Annotate attaches a configuration to every aggregated entry, keeping the
// input order. Entries without a static configuration are synthesized with
// 1-based ordinals in input order, so the same table always yields the same
// colors.
func (r *Registry) Annotate(src Source, entries []aggregate.Entry) []Counted {
	out := make([]Counted, 0, len(entries))
	ordinal := 0
	for _, e := range entries {
		cfg, ok := r.ResolveIn(src, e.Key)
		if !ok {
			cfg, ok = r.Resolve(e.Key)
		}
		if !ok {
			ordinal++
			cfg = r.Synthesize(e.Label, ordinal, src)
		}
		out = append(out, Counted{Config: cfg, Count: e.Count})
	}
	return out
}
