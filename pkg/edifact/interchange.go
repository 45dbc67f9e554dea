package edifact

import "strings"

// Message is one message inside an interchange: its UNH header, its body
// segments in document order, and its UNT trailer when one was present.
type Message struct {
	Header   *Segment
	Trailer  *Segment
	Segments []*Segment
}

// GetSegment returns the first body segment with the given tag, or nil.
// The UNH and UNT service segments are not part of the body.
func (m *Message) GetSegment(tag string) *Segment {
	for _, s := range m.Segments {
		if s.Tag == tag {
			return s
		}
	}
	return nil
}

// GetAllSegments returns every body segment with the given tag, in
// document order.
func (m *Message) GetAllSegments(tag string) []*Segment {
	var out []*Segment
	for _, s := range m.Segments {
		if s.Tag == tag {
			out = append(out, s)
		}
	}
	return out
}

// MessageHeader is a decoded view of the UNH segment. Fields are read
// as-is; absent positions are empty strings.
type MessageHeader struct {
	Reference         string
	Type              string
	Version           string
	Release           string
	ControllingAgency string
}

// MessageHeader decodes the UNH segment. It returns the zero view when
// the message has no header.
func (m *Message) MessageHeader() MessageHeader {
	var h MessageHeader
	if m.Header == nil {
		return h
	}
	h.Reference = m.Header.Value(0, 0)
	h.Type = m.Header.Value(1, 0)
	h.Version = m.Header.Value(1, 1)
	h.Release = m.Header.Value(1, 2)
	h.ControllingAgency = m.Header.Value(1, 3)
	return h
}

// Interchange is a parsed or built EDIFACT interchange: the delimiter
// set it was read with (and will be serialized with), its UNB header,
// its messages, and its UNZ trailer when one was present.
type Interchange struct {
	Delimiters Delimiters
	Header     *Segment
	Messages   []*Message
	Trailer    *Segment
}

// GetSegment returns the first body segment with the given tag across
// all messages, or nil.
func (ic *Interchange) GetSegment(tag string) *Segment {
	for _, m := range ic.Messages {
		if s := m.GetSegment(tag); s != nil {
			return s
		}
	}
	return nil
}

// GetAllSegments returns every body segment with the given tag across
// all messages, in document order.
func (ic *Interchange) GetAllSegments(tag string) []*Segment {
	var out []*Segment
	for _, m := range ic.Messages {
		out = append(out, m.GetAllSegments(tag)...)
	}
	return out
}

// InterchangeHeader is a decoded view of the UNB segment. Fields are
// read as-is; absent positions are empty strings.
type InterchangeHeader struct {
	SyntaxIdentifier   string
	SyntaxVersion      string
	Sender             string
	SenderQualifier    string
	Recipient          string
	RecipientQualifier string
	Date               string
	Time               string
	ControlReference   string
}

// InterchangeHeader decodes the UNB segment. It returns the zero view
// when the interchange has no header.
func (ic *Interchange) InterchangeHeader() InterchangeHeader {
	var h InterchangeHeader
	if ic.Header == nil {
		return h
	}
	h.SyntaxIdentifier = ic.Header.Value(0, 0)
	h.SyntaxVersion = ic.Header.Value(0, 1)
	h.Sender = ic.Header.Value(1, 0)
	h.SenderQualifier = ic.Header.Value(1, 1)
	h.Recipient = ic.Header.Value(2, 0)
	h.RecipientQualifier = ic.Header.Value(2, 1)
	h.Date = ic.Header.Value(3, 0)
	h.Time = ic.Header.Value(3, 1)
	h.ControlReference = ic.Header.Value(4, 0)
	return h
}

// ToEdifact serializes the interchange back to EDIFACT text. A UNA
// service string advice is emitted only when the delimiter set differs
// from the service set. Each segment is followed by a newline; parsers
// skip that whitespace, so the output round-trips.
func (ic *Interchange) ToEdifact() string {
	d := ic.Delimiters
	if d == (Delimiters{}) {
		d = DefaultDelimiters()
	}

	var b strings.Builder
	if !d.IsDefault() {
		b.WriteString(d.UNA())
		b.WriteByte('\n')
	}
	write := func(s *Segment) {
		if s == nil {
			return
		}
		b.WriteString(s.ToEdifact(d))
		b.WriteByte('\n')
	}
	write(ic.Header)
	for _, m := range ic.Messages {
		write(m.Header)
		for _, s := range m.Segments {
			write(s)
		}
		write(m.Trailer)
	}
	write(ic.Trailer)
	return b.String()
}
