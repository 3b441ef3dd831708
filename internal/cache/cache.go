// Package cache holds short-lived query results keyed by the semantic inputs
// of the query (filters, tenant, pagination). Cached values are eventually
// consistent with the store.
package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// LoadTimeout bounds a shared load. The load runs detached from the
// cancellation of the caller that started it.
const LoadTimeout = 30 * time.Second

// Query is a TTL-bounded LRU of query results. A zero TTL disables caching:
// every call goes straight to the loader.
type Query[V any] struct {
	lru   *expirable.LRU[string, V]
	group singleflight.Group
}

// Purger drops cached entries.
type Purger interface {
	Purge()
}

// Group purges several caches at once.
type Group []Purger

// Purge drops every entry of every cache in g.
func (g Group) Purge() {
	for _, p := range g {
		p.Purge()
	}
}

// New creates a Query cache holding at most size entries for ttl each.
func New[V any](size int, ttl time.Duration) *Query[V] {
	if ttl <= 0 {
		return &Query[V]{}
	}
	if size <= 0 {
		size = 256
	}
	return &Query[V]{lru: expirable.NewLRU[string, V](size, nil, ttl)}
}

// Enabled reports whether results are retained between calls.
func (q *Query[V]) Enabled() bool {
	return q != nil && q.lru != nil
}

// GetOrLoad returns the cached value for key or calls load once, even under
// concurrent callers, and caches its result. Errors are never cached.
//
// The shared load keeps ctx values but not its cancellation and is bounded by
// LoadTimeout. A caller whose ctx ends stops waiting with ctx.Err(); the
// other callers keep waiting for the load.
func (q *Query[V]) GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) (V, error)) (V, error) {
	var zero V
	if !q.Enabled() {
		return load(ctx)
	}
	if v, ok := q.lru.Get(key); ok {
		return v, nil
	}

	ch := q.group.DoChan(key, func() (any, error) {
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), LoadTimeout)
		defer cancel()

		v, err := load(lctx)
		if err != nil {
			return v, err
		}
		q.lru.Add(key, v)
		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(V), nil
	}
}

// Purge drops every cached entry.
func (q *Query[V]) Purge() {
	if q.Enabled() {
		q.lru.Purge()
	}
}

// Key composes a cache key from the semantic inputs of a query. Nil pointers
// and nil values render as "-".
func Key(parts ...any) string {
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(render(p))
	}
	return b.String()
}

func render(p any) string {
	switch v := p.(type) {
	case nil:
		return "-"
	case *string:
		if v == nil {
			return "-"
		}
		return *v
	case *int64:
		if v == nil {
			return "-"
		}
		return fmt.Sprint(*v)
	case *int:
		if v == nil {
			return "-"
		}
		return fmt.Sprint(*v)
	default:
		return fmt.Sprint(v)
	}
}
