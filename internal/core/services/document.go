package services

import (
	"context"
	"fmt"

	"github.com/hanbit-labs/weekrep-cli/internal/core/domain"
	"github.com/hanbit-labs/weekrep-cli/internal/core/ports/driven"
	"github.com/hanbit-labs/weekrep-cli/internal/core/ports/driving"
	"github.com/hanbit-labs/weekrep-cli/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DefaultMaxDepth is the tree depth budget used when none is configured.
const DefaultMaxDepth = 10

// DocumentService fetches documents and block trees from the content store.
type DocumentService struct {
	store driven.ContentStore
}

// NewDocumentService creates a new document service.
func NewDocumentService(store driven.ContentStore) *DocumentService {
	return &DocumentService{store: store}
}

// ListDocuments fetches every top-level document in a collection,
// draining all pages into one ordered slice.
func (s *DocumentService) ListDocuments(ctx context.Context, collectionID string) ([]domain.Document, error) {
	docs, err := FetchAllPages(ctx, func(ctx context.Context, cursor string) ([]domain.Document, string, bool, error) {
		page, err := s.store.FetchCollectionPage(ctx, collectionID, cursor)
		if err != nil {
			return nil, "", false, err
		}
		return page.Documents, page.NextCursor, page.HasMore, nil
	})
	if err != nil {
		return nil, fmt.Errorf("list documents in collection %s: %w", collectionID, err)
	}

	logger.Debug("fetched %d documents from collection %s", len(docs), collectionID)
	return docs, nil
}

// FetchTree materializes the block tree under rootID.
//
// The direct children are fetched first; a failure there is fatal and no
// partial tree is returned. Below that level failures are isolated: the
// failing node keeps an empty children list, its id is appended to the
// result's Failed manifest, and its siblings are processed normally.
// Each recursion level spends one unit of the depth budget, so maxDepth 0
// returns the direct children with no children populated regardless of
// their has-children flags.
func (s *DocumentService) FetchTree(ctx context.Context, rootID string, maxDepth int) (*driving.TreeResult, error) {
	result := &driving.TreeResult{}

	blocks, err := s.fetchSubtree(ctx, rootID, maxDepth, result)
	if err != nil {
		return nil, err
	}

	result.Blocks = blocks
	if len(result.Failed) > 0 {
		logger.Warn("tree under %s is incomplete: %d subtree fetches failed", rootID, len(result.Failed))
	}
	return result, nil
}

// fetchSubtree fetches the direct children of parentID and recurses
// while the depth budget lasts. Recursive failures are recorded on
// result and swallowed; only the parentID-level listing failure escapes.
func (s *DocumentService) fetchSubtree(ctx context.Context, parentID string, depth int, result *driving.TreeResult) ([]domain.Block, error) {
	blocks, err := FetchAllPages(ctx, func(ctx context.Context, cursor string) ([]domain.Block, string, bool, error) {
		page, err := s.store.FetchChildPage(ctx, parentID, cursor)
		if err != nil {
			return nil, "", false, err
		}
		return page.Blocks, page.NextCursor, page.HasMore, nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch children of %s: %w", parentID, err)
	}

	for i := range blocks {
		block := &blocks[i]
		if !block.HasChildren || depth <= 0 {
			continue
		}

		children, err := s.fetchSubtree(ctx, block.ID, depth-1, result)
		if err != nil {
			logger.Warn("subtree fetch failed for block %s: %v", block.ID, err)
			result.Failed = append(result.Failed, block.ID)
			continue
		}
		block.Children = children
	}

	return blocks, nil
}
