package edifact

import "strings"

// Element is a single data element: the ordered list of its decoded
// component values. A zero-length Element is an element that was present
// but empty, as produced by adjacent data separators.
type Element []string

// Component returns the component at index i and whether it exists.
func (e Element) Component(i int) (string, bool) {
	if i < 0 || i >= len(e) {
		return "", false
	}
	return e[i], true
}

// First returns the first component, or "" when the element is empty.
func (e Element) First() string {
	v, _ := e.Component(0)
	return v
}

// Segment is one EDIFACT segment: a tag followed by data elements. Tag
// and component values are stored decoded; release characters are
// applied on serialization only.
type Segment struct {
	Tag      string
	Elements []Element
}

// NewSegment returns a segment with the given tag and data elements.
func NewSegment(tag string, elements ...Element) *Segment {
	return &Segment{Tag: tag, Elements: elements}
}

// Element returns the data element at index i and whether it exists.
func (s *Segment) Element(i int) (Element, bool) {
	if i < 0 || i >= len(s.Elements) {
		return nil, false
	}
	return s.Elements[i], true
}

// Component returns component j of data element i and whether it exists.
func (s *Segment) Component(i, j int) (string, bool) {
	el, ok := s.Element(i)
	if !ok {
		return "", false
	}
	return el.Component(j)
}

// Value returns component j of data element i, or "" when either index
// is out of range. It is the lookup used by header views and order-line
// accessors, where absent fields read as empty.
func (s *Segment) Value(i, j int) string {
	v, _ := s.Component(i, j)
	return v
}

// ToEdifact renders the segment under the given delimiter set, applying
// the release character to component values as needed. The rendered text
// includes the segment terminator.
func (s *Segment) ToEdifact(d Delimiters) string {
	var b strings.Builder
	b.WriteString(s.Tag)
	for _, el := range s.Elements {
		b.WriteRune(d.Data)
		for j, c := range el {
			if j > 0 {
				b.WriteRune(d.Component)
			}
			b.WriteString(escapeValue(c, d))
		}
	}
	b.WriteRune(d.Terminator)
	return b.String()
}

// escapeValue prefixes every occurrence of a structural character with
// the release character. The decimal notation character is not escaped.
func escapeValue(v string, d Delimiters) string {
	var b strings.Builder
	b.Grow(len(v))
	for _, r := range v {
		switch r {
		case d.Release, d.Data, d.Component, d.Terminator, d.Repetition:
			b.WriteRune(d.Release)
		}
		b.WriteRune(r)
	}
	return b.String()
}
