package driving

import (
	"context"

	"github.com/hanbit-labs/weekrep-cli/internal/core/domain"
)

// TreeResult is a materialized block tree. Failed lists the ids of nodes
// whose subtrees could not be fetched; those nodes are kept in Blocks
// with empty children. A tree with a non-empty Failed list is incomplete
// but still usable.
type TreeResult struct {
	Blocks []domain.Block
	Failed []string
}

// BucketPreview is a bounded view of one week bucket for summary display.
type BucketPreview struct {
	// Week is the bucket key.
	Week int

	// Total is the number of documents in the bucket.
	Total int

	// Documents holds at most the first three documents.
	Documents []domain.Document

	// More is the count of documents beyond the preview.
	More int

	// Range is the bucket's date range. Nil except under the
	// project-based policy.
	Range *domain.DateRange
}

// DocumentService fetches documents and their content trees from the
// content store.
type DocumentService interface {
	// ListDocuments fetches every top-level document in a collection,
	// draining all pages.
	ListDocuments(ctx context.Context, collectionID string) ([]domain.Document, error)

	// FetchTree materializes the block tree under a node, recursing at
	// most maxDepth levels past the direct children. A failure listing
	// the direct children is returned as an error; failures below that
	// are folded into the result's Failed manifest.
	FetchTree(ctx context.Context, rootID string, maxDepth int) (*TreeResult, error)
}

// WeeklyService groups documents into week buckets under a selected
// week-numbering policy.
type WeeklyService interface {
	// SetPolicy selects the active policy and its parameters.
	// It does NOT reclassify; call Classify again explicitly.
	SetPolicy(policy domain.WeekPolicy, params domain.WeekParams) error

	// Classify rebuilds the week buckets from scratch for the given
	// documents. Documents without a usable date are excluded.
	Classify(docs []domain.Document) (map[int][]domain.Document, error)

	// Weeks returns the populated week numbers in ascending order.
	Weeks() []int

	// Bucket returns the documents of one week in insertion order.
	// Returns domain.ErrWeekNotFound for unpopulated weeks.
	Bucket(week int) ([]domain.Document, error)

	// Preview returns a bounded preview of one week's bucket.
	// Returns domain.ErrWeekNotFound for unpopulated weeks.
	Preview(week int) (*BucketPreview, error)
}
