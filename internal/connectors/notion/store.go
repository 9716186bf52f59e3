package notion

import (
	"context"
	"net/http"
	"time"

	"github.com/jomei/notionapi"

	"github.com/hanbit-labs/weekrep-cli/internal/core/ports/driven"
	"github.com/hanbit-labs/weekrep-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.ContentStore = (*Store)(nil)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// maxPageSize is the API-imposed page cap.
	maxPageSize = 100
)

// Store is a driven.ContentStore backed by the Notion API. Each call
// fetches exactly one page; draining is the core's job.
type Store struct {
	client      *notionapi.Client
	rateLimiter *RateLimiter
	pageSize    int
}

// Option configures a Store.
type Option func(*Store)

// WithPageSize sets the requested page size, capped at the API maximum.
func WithPageSize(n int) Option {
	return func(s *Store) {
		if n > 0 && n <= maxPageSize {
			s.pageSize = n
		}
	}
}

// WithRateLimiter replaces the default rate limiter.
func WithRateLimiter(rl *RateLimiter) Option {
	return func(s *Store) {
		s.rateLimiter = rl
	}
}

// NewStore creates a content store for an internal-integration token.
func NewStore(token string, opts ...Option) *Store {
	httpClient := &http.Client{Timeout: DefaultTimeout}

	s := &Store{
		client:      notionapi.NewClient(notionapi.Token(token), notionapi.WithHTTPClient(httpClient)),
		rateLimiter: NewRateLimiter(),
		pageSize:    maxPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchCollectionPage returns one page of a database query.
func (s *Store) FetchCollectionPage(ctx context.Context, collectionID, cursor string) (*driven.DocumentPage, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	req := &notionapi.DatabaseQueryRequest{
		PageSize:    s.pageSize,
		StartCursor: notionapi.Cursor(cursor),
	}

	resp, err := s.client.Database.Query(ctx, notionapi.DatabaseID(collectionID), req)
	if err != nil {
		err = wrapError(err)
		if IsRateLimited(err) {
			s.rateLimiter.RecordRateLimitError(0)
		}
		return nil, err
	}

	page := &driven.DocumentPage{
		NextCursor: string(resp.NextCursor),
		HasMore:    resp.HasMore,
	}
	for i := range resp.Results {
		page.Documents = append(page.Documents, convertPage(&resp.Results[i]))
	}

	logger.Debug("notion: database %s page of %d documents (more=%v)", collectionID, len(page.Documents), page.HasMore)
	return page, nil
}

// FetchChildPage returns one page of a block's direct children.
func (s *Store) FetchChildPage(ctx context.Context, parentID, cursor string) (*driven.BlockPage, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	pagination := &notionapi.Pagination{
		PageSize:    s.pageSize,
		StartCursor: notionapi.Cursor(cursor),
	}

	resp, err := s.client.Block.GetChildren(ctx, notionapi.BlockID(parentID), pagination)
	if err != nil {
		err = wrapError(err)
		if IsRateLimited(err) {
			s.rateLimiter.RecordRateLimitError(0)
		}
		return nil, err
	}

	page := &driven.BlockPage{
		NextCursor: resp.NextCursor,
		HasMore:    resp.HasMore,
	}
	for _, block := range resp.Results {
		page.Blocks = append(page.Blocks, convertBlock(block))
	}

	return page, nil
}
