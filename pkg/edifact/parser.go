package edifact

import (
	"errors"
	"fmt"
	"strings"
)

// Parse reads a complete interchange from raw EDIFACT text: it resolves
// the delimiter set in force (honoring a leading UNA service string
// advice), tokenizes the text into segments, and assembles the
// UNB/UNH/UNT/UNZ structure around them. Failures are *ParseError values
// wrapping the sentinel for their kind.
func Parse(data []byte) (*Interchange, error) {
	return ParseString(string(data))
}

// ParseString is Parse for string input.
func ParseString(raw string) (*Interchange, error) {
	d, consumed, err := ResolveDelimiters(raw)
	if err != nil {
		return nil, err
	}
	segments, err := ScanSegments(raw[consumed:], d)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) && pe.Offset >= 0 {
			pe.Offset += consumed
		}
		return nil, err
	}
	return assemble(segments, d)
}

// ScanSegments tokenizes raw text under the given delimiter set. The
// text must not include a UNA advice; ResolveDelimiters consumes that.
//
// Segments end at unescaped terminators. Within a segment, unescaped
// data separators delimit elements and unescaped component separators
// delimit components; the release character makes the next character
// literal and is dropped from the decoded value. Whitespace between
// segments is skipped, and a data separator immediately before the
// terminator does not produce a trailing empty element.
func ScanSegments(raw string, d Delimiters) ([]*Segment, error) {
	var (
		segments     []*Segment
		current      strings.Builder
		element      Element
		elements     []Element
		tag          string
		haveTag      bool
		escaped      bool
		releaseAt    int
		contentStart = -1
	)

	flushComponent := func() {
		element = append(element, current.String())
		current.Reset()
	}
	flushElement := func() {
		flushComponent()
		// A lone empty component is an element that was present but
		// carried no content at all.
		if len(element) == 1 && element[0] == "" {
			element = Element{}
		}
		elements = append(elements, element)
		element = nil
	}

	for i, r := range raw {
		if escaped {
			current.WriteRune(r)
			escaped = false
			continue
		}
		if contentStart < 0 {
			switch r {
			case ' ', '\t', '\r', '\n':
				continue
			case d.Terminator:
				continue
			}
			contentStart = i
		}
		switch r {
		case d.Release:
			escaped = true
			releaseAt = i
		case d.Data:
			if !haveTag {
				tag = current.String()
				current.Reset()
				haveTag = true
				break
			}
			flushElement()
		case d.Component:
			if !haveTag {
				// Still reading the segment head; a component
				// separator there is literal.
				current.WriteRune(r)
				break
			}
			flushComponent()
		case d.Terminator:
			if !haveTag {
				tag = current.String()
				current.Reset()
			} else {
				flushElement()
			}
			if n := len(elements); n > 0 && len(elements[n-1]) == 0 {
				elements = elements[:n-1]
			}
			segments = append(segments, &Segment{Tag: tag, Elements: elements})
			tag = ""
			haveTag = false
			elements = nil
			contentStart = -1
		default:
			current.WriteRune(r)
		}
	}

	if escaped {
		return nil, &ParseError{
			Err:     ErrUnterminatedSegment,
			Offset:  releaseAt,
			Segment: len(segments),
			Detail:  "release character at end of input",
		}
	}
	if contentStart >= 0 {
		return nil, &ParseError{
			Err:     ErrUnterminatedSegment,
			Offset:  contentStart,
			Segment: len(segments),
			Detail:  "segment not terminated",
		}
	}
	return segments, nil
}

// assemble shapes a flat segment list into the interchange structure.
// Passthrough duties apply: UNT and UNZ are retained where present but
// their counts and references are not checked.
func assemble(segments []*Segment, d Delimiters) (*Interchange, error) {
	if len(segments) == 0 {
		return nil, &ParseError{
			Err:     ErrUnknownStructure,
			Offset:  -1,
			Segment: 0,
			Detail:  "no segments in input",
		}
	}
	if segments[0].Tag != "UNB" {
		return nil, &ParseError{
			Err:     ErrUnknownStructure,
			Offset:  -1,
			Segment: 0,
			Detail:  fmt.Sprintf("interchange must open with UNB, found %q", segments[0].Tag),
		}
	}

	ic := &Interchange{Delimiters: d, Header: segments[0]}
	var msg *Message
	for idx, s := range segments[1:] {
		ordinal := idx + 1
		if ic.Trailer != nil {
			return nil, &ParseError{
				Err:     ErrUnknownStructure,
				Offset:  -1,
				Segment: ordinal,
				Detail:  fmt.Sprintf("%s segment after interchange trailer", s.Tag),
			}
		}
		switch s.Tag {
		case "UNB":
			return nil, &ParseError{
				Err:     ErrUnknownStructure,
				Offset:  -1,
				Segment: ordinal,
				Detail:  "duplicate interchange header",
			}
		case "UNH":
			msg = &Message{Header: s}
			ic.Messages = append(ic.Messages, msg)
		case "UNT":
			if msg == nil {
				return nil, &ParseError{
					Err:     ErrUnknownStructure,
					Offset:  -1,
					Segment: ordinal,
					Detail:  "message trailer outside a message",
				}
			}
			msg.Trailer = s
			msg = nil
		case "UNZ":
			ic.Trailer = s
		default:
			if msg == nil {
				return nil, &ParseError{
					Err:     ErrUnknownStructure,
					Offset:  -1,
					Segment: ordinal,
					Detail:  fmt.Sprintf("%s segment before any message header", s.Tag),
				}
			}
			msg.Segments = append(msg.Segments, s)
		}
	}
	return ic, nil
}
