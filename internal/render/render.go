// Package render converts materialized block trees into plain text for
// display and for report input.
package render

import (
	"strings"

	"github.com/hanbit-labs/weekrep-cli/internal/core/domain"
)

// BlockText renders a single block as text, without children.
// Unknown kinds fall back to their plain text so nothing is dropped
// silently.
func BlockText(block domain.Block) string {
	switch block.Kind {
	case domain.BlockHeading1:
		return "# " + block.Text
	case domain.BlockHeading2:
		return "## " + block.Text
	case domain.BlockHeading3:
		return "### " + block.Text
	case domain.BlockToDo:
		if block.Checked {
			return "[x] " + block.Text
		}
		return "[ ] " + block.Text
	case domain.BlockBulletedListItem:
		return "- " + block.Text
	case domain.BlockNumberedListItem:
		return "1. " + block.Text
	case domain.BlockCode:
		return "```" + block.Language + "\n" + block.Text + "\n```"
	case domain.BlockQuote:
		return "> " + block.Text
	case domain.BlockDivider:
		return "---"
	}
	return block.Text
}

// Blocks renders a block tree as indented plain text, two spaces per
// nesting level. Blank lines are dropped.
func Blocks(blocks []domain.Block) string {
	return renderBlocks(blocks, 0)
}

func renderBlocks(blocks []domain.Block, indent int) string {
	var lines []string
	prefix := strings.Repeat(" ", indent)

	for _, block := range blocks {
		if line := BlockText(block); strings.TrimSpace(line) != "" {
			lines = append(lines, prefix+line)
		}
		if len(block.Children) > 0 {
			if child := renderBlocks(block.Children, indent+2); child != "" {
				lines = append(lines, child)
			}
		}
	}

	return strings.Join(lines, "\n")
}
