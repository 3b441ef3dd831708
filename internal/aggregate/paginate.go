package aggregate

import (
	"context"
	"fmt"
)

// MaxPageSize is the backend's hard cap on rows returned per request.
const MaxPageSize = 1000

// PageFunc fetches rows [offset, offset+limit).
type PageFunc[T any] func(ctx context.Context, offset, limit int) ([]T, error)

// Paginate fetches every row by issuing sequential page requests until a page
// returns fewer rows than pageSize. Any page error aborts the scan and no
// partial set is returned.
func Paginate[T any](ctx context.Context, pageSize int, fetch PageFunc[T]) ([]T, error) {
	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	var all []T
	for offset := 0; ; offset += pageSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page, err := fetch(ctx, offset, pageSize)
		if err != nil {
			return nil, fmt.Errorf("fetch page at offset %d: %w", offset, err)
		}
		all = append(all, page...)
		if len(page) < pageSize {
			return all, nil
		}
	}
}
