package services

import (
	"context"
	"fmt"

	"github.com/hanbit-labs/weekrep-cli/internal/core/domain"
)

// PageFunc fetches one page of a cursor-paginated source. An empty
// cursor requests the first page. nextCursor is only consulted when
// hasMore is true.
type PageFunc[T any] func(ctx context.Context, cursor string) (items []T, nextCursor string, hasMore bool, err error)

// FetchAllPages drains a cursor-paginated source into a single ordered
// slice. Any page failure discards the whole in-progress aggregation and
// returns the error; partial-failure tolerance belongs to callers, not
// to this primitive.
//
// Cursors are consumed monotonically: a source that hands back the
// cursor it was just given while claiming more pages exist would loop
// forever, so that is rejected with domain.ErrInvalidCursor.
func FetchAllPages[T any](ctx context.Context, fetch PageFunc[T]) ([]T, error) {
	var all []T
	cursor := ""

	for {
		items, next, more, err := fetch(ctx, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)

		if !more {
			return all, nil
		}
		if next == cursor {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCursor, next)
		}
		cursor = next
	}
}
