package domain

import "time"

// PropertyType identifies the kind of value a document property carries.
type PropertyType string

// Known property types. Values outside this set are carried through
// with their raw type tag and an empty formatted value.
const (
	PropertyTitle       PropertyType = "title"
	PropertyRichText    PropertyType = "rich_text"
	PropertySelect      PropertyType = "select"
	PropertyMultiSelect PropertyType = "multi_select"
	PropertyDate        PropertyType = "date"
	PropertyNumber      PropertyType = "number"
	PropertyCheckbox    PropertyType = "checkbox"
	PropertyURL         PropertyType = "url"
	PropertyEmail       PropertyType = "email"
	PropertyPhoneNumber PropertyType = "phone_number"
)

// Property is a named, typed document property with its value already
// formatted for display. Order within a Document is significant.
type Property struct {
	// Name is the property name as defined in the source collection.
	Name string

	// Type is the property type tag.
	Type PropertyType

	// Value is the display-formatted value. Empty when the property
	// is unset or of an unrecognised type.
	Value string
}

// Document represents a top-level document fetched from the content store.
// It is owned by the fetch result that produced it; only classification
// metadata is attached after the fact.
type Document struct {
	// ID is the content store identifier.
	ID string

	// CreatedAt is when the document was created in the source.
	CreatedAt time.Time

	// URL is the canonical location in the content store.
	URL string

	// Properties are the named properties in source order.
	Properties []Property

	// DateText is the raw date string extracted from the first
	// date-typed property. Empty if the document has no date.
	DateText string

	// DateInfo is attached by classification. Nil until classified.
	DateInfo *DateInfo
}

// DateInfo is the classification metadata attached to a document.
type DateInfo struct {
	// Date is the parsed document date.
	Date time.Time

	// Formatted is the human-facing rendering of Date.
	Formatted string

	// Week is the assigned week number under the active policy.
	Week int

	// Range is the week's date range. Only set under the
	// project-based policy.
	Range *DateRange
}

// DateRange is an inclusive start/end date pair.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Title returns the value of the first title-typed property,
// or an empty string if the document has none.
func (d *Document) Title() string {
	for _, p := range d.Properties {
		if p.Type == PropertyTitle && p.Value != "" {
			return p.Value
		}
	}
	return ""
}

// Date parses the extracted date string.
// Returns the zero time and false when the document has no usable date;
// malformed dates are treated the same as missing ones.
func (d *Document) Date() (time.Time, bool) {
	return ParseDate(d.DateText)
}
