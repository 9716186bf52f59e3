package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanbit-labs/weekrep-cli/internal/core/domain"
)

func TestStore_FetchCollectionPage_Paging(t *testing.T) {
	store := NewStore(2)
	for _, title := range []string{"a", "b", "c", "d", "e"} {
		store.AddDocument("col", domain.Document{
			Properties: []domain.Property{{Name: "Name", Type: domain.PropertyTitle, Value: title}},
		})
	}

	ctx := context.Background()

	page1, err := store.FetchCollectionPage(ctx, "col", "")
	require.NoError(t, err)
	require.Len(t, page1.Documents, 2)
	assert.True(t, page1.HasMore)
	assert.Equal(t, "a", page1.Documents[0].Title())

	page2, err := store.FetchCollectionPage(ctx, "col", page1.NextCursor)
	require.NoError(t, err)
	require.Len(t, page2.Documents, 2)
	assert.True(t, page2.HasMore)

	page3, err := store.FetchCollectionPage(ctx, "col", page2.NextCursor)
	require.NoError(t, err)
	require.Len(t, page3.Documents, 1)
	assert.False(t, page3.HasMore)
	assert.Equal(t, "e", page3.Documents[0].Title())
}

func TestStore_FetchCollectionPage_Empty(t *testing.T) {
	store := NewStore(10)

	page, err := store.FetchCollectionPage(context.Background(), "missing", "")

	require.NoError(t, err)
	assert.Empty(t, page.Documents)
	assert.False(t, page.HasMore)
}

func TestStore_AddDocument_GeneratesID(t *testing.T) {
	store := NewStore(10)

	doc := store.AddDocument("col", domain.Document{})

	assert.NotEmpty(t, doc.ID)
}

func TestStore_FetchChildPage_CountsCalls(t *testing.T) {
	store := NewStore(10)
	store.SetChildren("p1", []domain.Block{
		{Kind: domain.BlockParagraph, Text: "one"},
		{Kind: domain.BlockParagraph, Text: "two"},
	})

	ctx := context.Background()

	page, err := store.FetchChildPage(ctx, "p1", "")
	require.NoError(t, err)
	assert.Len(t, page.Blocks, 2)

	_, err = store.FetchChildPage(ctx, "p1", "")
	require.NoError(t, err)

	assert.Equal(t, 2, store.ChildCalls("p1"))
	assert.Equal(t, 0, store.ChildCalls("p2"))
}

func TestStore_FailureInjection(t *testing.T) {
	store := NewStore(10)
	store.FailCollection("col", errors.New("boom"))
	store.FailChildren("node", errors.New("boom"))

	ctx := context.Background()

	_, err := store.FetchCollectionPage(ctx, "col", "")
	assert.ErrorIs(t, err, domain.ErrTransport)

	_, err = store.FetchChildPage(ctx, "node", "")
	assert.ErrorIs(t, err, domain.ErrTransport)
}

func TestStore_UnknownCursor(t *testing.T) {
	store := NewStore(2)
	store.AddDocument("col", domain.Document{})

	_, err := store.FetchCollectionPage(context.Background(), "col", "not-a-cursor")

	assert.ErrorIs(t, err, domain.ErrTransport)
}
