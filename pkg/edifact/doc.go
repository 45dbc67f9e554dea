// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package edifact parses and serializes UN/EDIFACT interchanges.

The package is the structural core of go-edifact: it resolves the
delimiter set in force, tokenizes raw text into segments, data elements,
and components, and assembles the service-segment envelope
(UNB/UNH/UNT/UNZ) into a navigable tree. It never validates business
content against a message directory; segments are carried as written.

# Parsing

Parse reads a complete interchange, honoring a leading UNA service
string advice:

	ic, err := edifact.Parse(raw)
	if err != nil {
	    // *edifact.ParseError wrapping one of the sentinel errors
	}
	header := ic.InterchangeHeader()
	for _, msg := range ic.Messages {
	    bgm := msg.GetSegment("BGM")
	    for _, qty := range msg.GetAllSegments("QTY") {
	        // document order is preserved
	    }
	}

# Delimiters

Six characters govern tokenizing: component separator, data separator,
decimal notation, release character, repetition separator, and segment
terminator. The service set is UNA:+.?*'. An interchange that opens with
a UNA advice replaces the whole set positionally:

	d, n, err := edifact.ResolveDelimiters(raw)
	segments, err := edifact.ScanSegments(raw[n:], d)

The release character escapes structural characters inside values: ?+
reads as a literal plus, ?? as a literal question mark. Serialization
applies the same escaping in reverse, so parsed values round-trip.

# Serialization

ToEdifact renders the tree back to wire text. A UNA advice is written
only when the delimiter set differs from the service set:

	text := ic.ToEdifact()

# Errors

Failures carry a position and wrap a sentinel per kind:

	var pe *edifact.ParseError
	if errors.As(err, &pe) && errors.Is(err, edifact.ErrUnterminatedSegment) {
	    fmt.Println(pe.Offset, pe.Segment)
	}

# References

  - UN/EDIFACT ISO 9735 syntax: https://unece.org/trade/uncefact/introducing-unedifact
  - Service string advice (UNA): https://unece.org/fileadmin/DAM/trade/untdid/texts/d423.htm
  - UNECE directories: https://unece.org/trade/uncefact/unedifact
*/
package edifact
