package notion

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jomei/notionapi"

	"github.com/hanbit-labs/weekrep-cli/internal/core/domain"
)

// convertPage maps an API page to a domain document. The API delivers
// properties as a map, so a deterministic order is imposed: the title
// property first, the rest alphabetically. The first date-typed property
// supplies the document date.
func convertPage(page *notionapi.Page) domain.Document {
	doc := domain.Document{
		ID:        string(page.ID),
		CreatedAt: page.CreatedTime,
		URL:       page.URL,
	}

	names := make([]string, 0, len(page.Properties))
	for name := range page.Properties {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ti := page.Properties[names[i]].GetType() == "title"
		tj := page.Properties[names[j]].GetType() == "title"
		if ti != tj {
			return ti
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		prop := page.Properties[name]
		doc.Properties = append(doc.Properties, convertProperty(name, prop))

		if doc.DateText == "" {
			if dateProp, ok := prop.(*notionapi.DateProperty); ok && dateProp.Date != nil && dateProp.Date.Start != nil {
				doc.DateText = formatAPIDate(*dateProp.Date.Start)
			}
		}
	}

	return doc
}

// convertProperty formats one property value for display. Unrecognised
// property types keep their raw type tag and an empty value.
func convertProperty(name string, prop notionapi.Property) domain.Property {
	out := domain.Property{
		Name: name,
		Type: domain.PropertyType(prop.GetType()),
	}

	switch v := prop.(type) {
	case *notionapi.TitleProperty:
		out.Value = plainText(v.Title)
	case *notionapi.RichTextProperty:
		out.Value = plainText(v.RichText)
	case *notionapi.SelectProperty:
		out.Value = v.Select.Name
	case *notionapi.MultiSelectProperty:
		names := make([]string, 0, len(v.MultiSelect))
		for _, opt := range v.MultiSelect {
			names = append(names, opt.Name)
		}
		out.Value = strings.Join(names, ", ")
	case *notionapi.DateProperty:
		if v.Date != nil && v.Date.Start != nil {
			out.Value = formatAPIDate(*v.Date.Start)
			if v.Date.End != nil {
				out.Value += " ~ " + formatAPIDate(*v.Date.End)
			}
		}
	case *notionapi.NumberProperty:
		out.Value = strconv.FormatFloat(v.Number, 'f', -1, 64)
	case *notionapi.CheckboxProperty:
		if v.Checkbox {
			out.Value = "✓"
		} else {
			out.Value = "✗"
		}
	case *notionapi.URLProperty:
		out.Value = v.URL
	case *notionapi.EmailProperty:
		out.Value = v.Email
	case *notionapi.PhoneNumberProperty:
		out.Value = v.PhoneNumber
	}

	return out
}

// convertBlock maps an API block to the closed domain block set.
// Anything outside the set becomes BlockUnknown with the raw type tag.
func convertBlock(block notionapi.Block) domain.Block {
	out := domain.Block{
		ID:          string(block.GetID()),
		HasChildren: block.GetHasChildren(),
	}

	switch v := block.(type) {
	case *notionapi.ParagraphBlock:
		out.Kind = domain.BlockParagraph
		out.Text = plainText(v.Paragraph.RichText)
	case *notionapi.Heading1Block:
		out.Kind = domain.BlockHeading1
		out.Text = plainText(v.Heading1.RichText)
	case *notionapi.Heading2Block:
		out.Kind = domain.BlockHeading2
		out.Text = plainText(v.Heading2.RichText)
	case *notionapi.Heading3Block:
		out.Kind = domain.BlockHeading3
		out.Text = plainText(v.Heading3.RichText)
	case *notionapi.ToDoBlock:
		out.Kind = domain.BlockToDo
		out.Text = plainText(v.ToDo.RichText)
		out.Checked = v.ToDo.Checked
	case *notionapi.BulletedListItemBlock:
		out.Kind = domain.BlockBulletedListItem
		out.Text = plainText(v.BulletedListItem.RichText)
	case *notionapi.NumberedListItemBlock:
		out.Kind = domain.BlockNumberedListItem
		out.Text = plainText(v.NumberedListItem.RichText)
	case *notionapi.CodeBlock:
		out.Kind = domain.BlockCode
		out.Text = plainText(v.Code.RichText)
		out.Language = v.Code.Language
	case *notionapi.QuoteBlock:
		out.Kind = domain.BlockQuote
		out.Text = plainText(v.Quote.RichText)
	case *notionapi.DividerBlock:
		out.Kind = domain.BlockDivider
	default:
		out.Kind = domain.BlockUnknown
		out.RawType = string(block.GetType())
	}

	return out
}

// plainText concatenates the plain text of a rich text run.
func plainText(richText []notionapi.RichText) string {
	var b strings.Builder
	for _, rt := range richText {
		b.WriteString(rt.PlainText)
	}
	return b.String()
}

// formatAPIDate renders an API date as a plain calendar date.
func formatAPIDate(d notionapi.Date) string {
	return time.Time(d).Format("2006-01-02")
}
