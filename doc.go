// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package goedifact implements parsing, inspection, and construction of
UN/EDIFACT interchanges.

# Overview

go-edifact is a Go implementation of the UN/EDIFACT interchange format.
It reads interchanges into a navigable document tree, exposes typed
accessors for purchase order (ORDERS) documents, and builds syntactically
valid interchanges from scratch, with or without custom delimiters.

# Specifications Implemented

This library implements the following specifications:

  - ISO 9735 / UN/EDIFACT syntax rules: https://unece.org/trade/uncefact/unedifact
  - UNA service string advice (delimiter declaration)
  - UN/EDIFACT ORDERS message, directory D.96A: https://service.unece.org/trade/untdid/d96a/trmd/orders_d.htm
  - EDIFACT media type registration: https://www.rfc-editor.org/rfc/rfc1767
  - OASIS Exchange Header Envelope (XHE) 1.0 for payload carriage

# Package Structure

The library is organized into the following packages:

	github.com/sirosfoundation/go-edifact/pkg/edifact     - Interchange parsing, document tree, serialization
	github.com/sirosfoundation/go-edifact/pkg/order       - ORDERS line grouping and fluent builder
	github.com/sirosfoundation/go-edifact/pkg/syntax      - Syntax profiles and character repertoires
	github.com/sirosfoundation/go-edifact/pkg/envelope    - XHE envelope carriage of interchanges
	github.com/sirosfoundation/go-edifact/pkg/compression - GZIP payload compression

# Quick Start

To parse an interchange and walk its order lines:

	import (
	    "github.com/sirosfoundation/go-edifact/pkg/edifact"
	    "github.com/sirosfoundation/go-edifact/pkg/order"
	)

	interchange, err := edifact.ParseString(raw)
	if err != nil {
	    return err
	}
	for _, line := range order.AllLines(interchange) {
	    fmt.Println(line.ItemID(), line.QuantityValue(), line.PriceValue())
	}

To build one:

	interchange, err := order.NewBuilder().
	    WithInterchangeHeader("SENDER", "RECIPIENT", "20240115:1030", "REF001").
	    WithMessageHeader("1", "ORDERS").
	    WithBGM("220", "PO-2024-001", "9").
	    AddOrderLine("1", "ITEM-001", "10", "29.99").
	    Build()
	if err != nil {
	    return err
	}
	text := interchange.ToEdifact()

# EDIFACT Handling

## Delimiters

Interchanges may open with a UNA service string advice that redefines all
six service characters. The parser resolves the advice before tokenizing
and the serializer re-emits it whenever the delimiter set differs from
the default `:+.?*'`.

## Release Character

The release character escapes delimiters occurring inside data. The
parser unescapes transparently; the serializer escapes every delimiter,
including the release character itself, so any value round-trips.

## Syntax Profiles

The syntax package maps UNOA/UNOB/UNOC syntax identifiers to character
repertoires and lets profiles, including delimiter overrides, be loaded
from YAML configuration.

# Envelope Carriage

EDIFACT payloads travel through XML document-exchange networks wrapped
in an Exchange Header Envelope. The envelope package lifts routing
parties from the UNB header, base64 encodes the interchange text, and
optionally gzip compresses it via the compression package.

# References

  - UNECE syntax rules: https://unece.org/trade/uncefact/unedifact
  - UNTDID directories: https://service.unece.org/trade/untdid/welcome.html
  - OASIS XHE: https://docs.oasis-open.org/bdxr/ns/XHE/unqualified/1.0

# License

BSD-2-Clause License
*/
package goedifact
