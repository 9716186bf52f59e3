// Package memory provides an in-memory implementation of the content
// store port. It pages its data like the real API and supports failure
// injection, which makes it the test double for the fetch pipeline.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/hanbit-labs/weekrep-cli/internal/core/domain"
	"github.com/hanbit-labs/weekrep-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ContentStore = (*Store)(nil)

// DefaultPageSize mirrors the remote API's page cap.
const DefaultPageSize = 100

// Store is an in-memory, cursor-paginated content store.
type Store struct {
	mu       sync.RWMutex
	pageSize int

	collections map[string][]domain.Document
	children    map[string][]domain.Block

	// failures maps a node id to the error its child listing returns.
	failures map[string]error

	// collectionFailures maps a collection id to the error its
	// document listing returns.
	collectionFailures map[string]error

	// calls counts FetchChildPage calls per parent id.
	calls map[string]int
}

// NewStore creates an empty store. pageSize <= 0 selects DefaultPageSize.
func NewStore(pageSize int) *Store {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Store{
		pageSize:           pageSize,
		collections:        make(map[string][]domain.Document),
		children:           make(map[string][]domain.Block),
		failures:           make(map[string]error),
		collectionFailures: make(map[string]error),
		calls:              make(map[string]int),
	}
}

// AddDocument appends a document to a collection. A missing id is
// filled in with a generated one.
func (s *Store) AddDocument(collectionID string, doc domain.Document) domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	s.collections[collectionID] = append(s.collections[collectionID], doc)
	return doc
}

// SetChildren replaces the child list of a node. Missing block ids are
// filled in with generated ones.
func (s *Store) SetChildren(parentID string, blocks []domain.Block) []domain.Block {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range blocks {
		if blocks[i].ID == "" {
			blocks[i].ID = uuid.New().String()
		}
	}
	s.children[parentID] = blocks
	return blocks
}

// FailChildren makes every child listing for the node fail with err.
func (s *Store) FailChildren(nodeID string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[nodeID] = err
}

// FailCollection makes every document listing for the collection fail with err.
func (s *Store) FailCollection(collectionID string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collectionFailures[collectionID] = err
}

// ChildCalls reports how many FetchChildPage calls were made for a node.
func (s *Store) ChildCalls(nodeID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calls[nodeID]
}

// FetchCollectionPage returns one page of a collection's documents.
func (s *Store) FetchCollectionPage(_ context.Context, collectionID, cursor string) (*driven.DocumentPage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err, ok := s.collectionFailures[collectionID]; ok {
		return nil, fmt.Errorf("%w: query collection %s: %v", domain.ErrTransport, collectionID, err)
	}

	docs := s.collections[collectionID]
	start, end, next, more, err := s.window(len(docs), cursor)
	if err != nil {
		return nil, err
	}

	page := make([]domain.Document, end-start)
	copy(page, docs[start:end])
	return &driven.DocumentPage{Documents: page, NextCursor: next, HasMore: more}, nil
}

// FetchChildPage returns one page of a node's direct children.
func (s *Store) FetchChildPage(_ context.Context, parentID, cursor string) (*driven.BlockPage, error) {
	s.mu.Lock()
	s.calls[parentID]++
	s.mu.Unlock()

	s.mu.RLock()
	defer s.mu.RUnlock()

	if err, ok := s.failures[parentID]; ok {
		return nil, fmt.Errorf("%w: fetch children of %s: %v", domain.ErrTransport, parentID, err)
	}

	blocks := s.children[parentID]
	start, end, next, more, err := s.window(len(blocks), cursor)
	if err != nil {
		return nil, err
	}

	page := make([]domain.Block, end-start)
	copy(page, blocks[start:end])
	return &driven.BlockPage{Blocks: page, NextCursor: next, HasMore: more}, nil
}

// window translates a cursor into a slice window plus the follow-up cursor.
// Cursors are the decimal start offset, mirroring opaque remote tokens.
func (s *Store) window(total int, cursor string) (start, end int, next string, more bool, err error) {
	if cursor != "" {
		if _, convErr := fmt.Sscanf(cursor, "%d", &start); convErr != nil || start < 0 || start > total {
			return 0, 0, "", false, fmt.Errorf("%w: unknown cursor %q", domain.ErrTransport, cursor)
		}
	}

	end = start + s.pageSize
	if end >= total {
		return start, total, "", false, nil
	}
	return start, end, fmt.Sprintf("%d", end), true, nil
}
