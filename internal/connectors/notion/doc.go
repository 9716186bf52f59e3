// Package notion implements the content store port against the Notion
// API using the jomei/notionapi client.
//
// This package contains:
//   - Store: driven.ContentStore backed by database query and block
//     children endpoints, one page per call
//   - Conversion from API pages/blocks to domain documents and blocks
//   - Error handling for common API errors (401, 404, 429)
//   - Rate limiting to respect the documented 3 requests/second limit
//
// # Usage
//
//	store := notion.NewStore("secret_...")
//	page, err := store.FetchCollectionPage(ctx, databaseID, "")
//
// Authentication uses a static internal-integration token; there is no
// OAuth flow.
package notion
