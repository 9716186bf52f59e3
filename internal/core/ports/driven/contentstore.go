package driven

import (
	"context"

	"github.com/hanbit-labs/weekrep-cli/internal/core/domain"
)

// DocumentPage is one page of a cursor-paginated document listing.
type DocumentPage struct {
	// Documents are the page's documents in source order.
	Documents []domain.Document

	// NextCursor is the token for the next page. Meaningless when
	// HasMore is false.
	NextCursor string

	// HasMore indicates another page exists.
	HasMore bool
}

// BlockPage is one page of a cursor-paginated block child listing.
type BlockPage struct {
	// Blocks are the page's blocks in source order, children unpopulated.
	Blocks []domain.Block

	// NextCursor is the token for the next page. Meaningless when
	// HasMore is false.
	NextCursor string

	// HasMore indicates another page exists.
	HasMore bool
}

// ContentStore provides read-only, cursor-paginated access to the remote
// content store. Implementations cap page size at the API-imposed maximum
// and wrap transport failures in domain.ErrTransport.
type ContentStore interface {
	// FetchCollectionPage returns one page of top-level documents in a
	// collection. An empty cursor requests the first page.
	FetchCollectionPage(ctx context.Context, collectionID, cursor string) (*DocumentPage, error)

	// FetchChildPage returns one page of the direct children of a block
	// or document. An empty cursor requests the first page.
	FetchChildPage(ctx context.Context, parentID, cursor string) (*BlockPage, error)
}
