package domain

// BlockKind identifies the kind of a content block. The set is closed:
// anything the source reports outside it maps to BlockUnknown with the
// raw type tag preserved.
type BlockKind string

const (
	BlockHeading1         BlockKind = "heading_1"
	BlockHeading2         BlockKind = "heading_2"
	BlockHeading3         BlockKind = "heading_3"
	BlockParagraph        BlockKind = "paragraph"
	BlockToDo             BlockKind = "to_do"
	BlockBulletedListItem BlockKind = "bulleted_list_item"
	BlockNumberedListItem BlockKind = "numbered_list_item"
	BlockCode             BlockKind = "code"
	BlockQuote            BlockKind = "quote"
	BlockDivider          BlockKind = "divider"
	BlockUnknown          BlockKind = "unknown"
)

// Block is one node in a document's content tree.
// Children are populated lazily during tree materialization and may be
// empty for reasons other than the source having no children: the depth
// budget was exhausted, or the subtree fetch failed.
type Block struct {
	// ID is the content store identifier.
	ID string

	// Kind is the block kind tag.
	Kind BlockKind

	// Text is the concatenated plain text of the block's rich text.
	Text string

	// Checked is set for to-do blocks.
	Checked bool

	// Language is set for code blocks.
	Language string

	// RawType preserves the source's type tag for BlockUnknown.
	RawType string

	// HasChildren is the source's flag, not a promise that Children
	// is populated.
	HasChildren bool

	// Children are the materialized child blocks, in source order.
	Children []Block
}
