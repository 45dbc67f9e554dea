package order

import "github.com/sirosfoundation/go-edifact/pkg/edifact"

// attachmentTags are the detail tags that belong to the most recently
// opened line item.
var attachmentTags = map[string]bool{
	"IMD": true,
	"QTY": true,
	"MOA": true,
	"PRI": true,
	"RFF": true,
}

// OrderLine is one line item of an ORDERS message: the LIN segment that
// opened it plus the detail segments attached to it.
//
// The typed fields hold the last segment seen for their tag; Segments
// retains every attached segment in document order, so repeated details
// are never lost.
type OrderLine struct {
	Line        *edifact.Segment
	Description *edifact.Segment
	Quantity    *edifact.Segment
	Amount      *edifact.Segment
	Price       *edifact.Segment
	Reference   *edifact.Segment

	Segments []*edifact.Segment
}

// Lines groups the message body into order lines. Each LIN segment opens
// a line; IMD, QTY, MOA, PRI and RFF segments attach to the open line.
// Segments before the first LIN, and other tags between lines, are left
// to the message body.
func Lines(m *edifact.Message) []OrderLine {
	var (
		lines []OrderLine
		open  *OrderLine
	)
	for _, s := range m.Segments {
		switch {
		case s.Tag == "LIN":
			if open != nil {
				lines = append(lines, *open)
			}
			open = &OrderLine{Line: s}
		case open != nil && attachmentTags[s.Tag]:
			open.attach(s)
		}
	}
	if open != nil {
		lines = append(lines, *open)
	}
	return lines
}

// AllLines collects order lines from every message of the interchange,
// in document order.
func AllLines(ic *edifact.Interchange) []OrderLine {
	var out []OrderLine
	for _, m := range ic.Messages {
		out = append(out, Lines(m)...)
	}
	return out
}

func (l *OrderLine) attach(s *edifact.Segment) {
	l.Segments = append(l.Segments, s)
	switch s.Tag {
	case "IMD":
		l.Description = s
	case "QTY":
		l.Quantity = s
	case "MOA":
		l.Amount = s
	case "PRI":
		l.Price = s
	case "RFF":
		l.Reference = s
	}
}

// LineNumber returns the line item number from the LIN segment.
func (l OrderLine) LineNumber() string {
	if l.Line == nil {
		return ""
	}
	return l.Line.Value(0, 0)
}

// ItemID returns the item identifier from the LIN segment.
func (l OrderLine) ItemID() string {
	if l.Line == nil {
		return ""
	}
	return l.Line.Value(2, 0)
}

// QuantityValue returns the quantity from the QTY segment, or "" when
// the line has none.
func (l OrderLine) QuantityValue() string {
	return qualifiedValue(l.Quantity)
}

// PriceValue returns the price from the PRI segment, or "" when the
// line has none.
func (l OrderLine) PriceValue() string {
	return qualifiedValue(l.Price)
}

// AmountValue returns the monetary amount from the MOA segment, or ""
// when the line has none.
func (l OrderLine) AmountValue() string {
	return qualifiedValue(l.Amount)
}

// qualifiedValue reads the value of a qualifier-led detail segment. Both
// layouts seen in the wild are accepted: the value as its own data
// element (QTY+21+5) and the value as the second component of the
// qualifier composite (QTY+21:5).
func qualifiedValue(s *edifact.Segment) string {
	if s == nil {
		return ""
	}
	if v := s.Value(1, 0); v != "" {
		return v
	}
	return s.Value(0, 1)
}
