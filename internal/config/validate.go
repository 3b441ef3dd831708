package config

import (
	"fmt"
	"strings"
)

// Upper bounds enforced by the store and the declaration repository.
const (
	maxPageSize           = 1000
	maxAliasPredicates    = 100
	maxMinimumSearchRunes = 10
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.RateLimit <= 0 {
		return fmt.Errorf("server.rate_limit must be > 0 (got %d)", c.Server.RateLimit)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := c.Query.validate(); err != nil {
		return fmt.Errorf("query: %w", err)
	}

	if c.Server.WriteTimeout <= c.Query.Timeout {
		return fmt.Errorf("server.write_timeout (%v) must exceed query.timeout (%v)", c.Server.WriteTimeout, c.Query.Timeout)
	}

	if err := c.Cache.validate(); err != nil {
		return fmt.Errorf("cache: %w", err)
	}

	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}

func (q *QueryConfig) validate() error {
	if q.PageSize <= 0 || q.PageSize > maxPageSize {
		return fmt.Errorf("page_size must be in [1, %d] (got %d)", maxPageSize, q.PageSize)
	}
	if q.MaxAliasPredicates <= 0 || q.MaxAliasPredicates > maxAliasPredicates {
		return fmt.Errorf("max_alias_predicates must be in [1, %d] (got %d)", maxAliasPredicates, q.MaxAliasPredicates)
	}
	if q.MinSearchLength < 1 || q.MinSearchLength > maxMinimumSearchRunes {
		return fmt.Errorf("min_search_length must be in [1, %d] (got %d)", maxMinimumSearchRunes, q.MinSearchLength)
	}
	if q.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", q.Timeout)
	}
	return nil
}

func (c *CacheConfig) validate() error {
	if c.ScopeTTL < 0 || c.ReferenceTTL < 0 || c.AggregateTTL < 0 {
		return fmt.Errorf("ttl values must be >= 0")
	}
	if c.Size <= 0 {
		return fmt.Errorf("size must be > 0 (got %d)", c.Size)
	}
	return nil
}
