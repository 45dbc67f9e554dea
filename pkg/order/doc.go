// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package order provides ORDERS document conveniences on top of the
edifact package: line-item grouping for parsed purchase orders and a
fluent builder for constructing them.

# Reading Order Lines

Lines groups a message body by its LIN segments:

	ic, _ := edifact.Parse(raw)
	for _, line := range order.Lines(ic.Messages[0]) {
	    fmt.Println(line.LineNumber(), line.ItemID(), line.QuantityValue(), line.PriceValue())
	}

IMD, QTY, MOA, PRI, and RFF segments attach to the line opened by the
preceding LIN. When a tag repeats on one line, the typed field keeps the
last occurrence and the Segments slice keeps them all.

# Building

The builder assembles a complete interchange and derives the UNT and
UNZ trailers:

	text, err := order.NewBuilder().
	    WithInterchangeHeader("SENDER", "RECEIVER", "20240119:1200", "REF123").
	    WithMessageHeader("1", "ORDERS").
	    WithBGM("220", "123456", "9").
	    AddOrderLine("1", "ITEM123", "5", "10.00").
	    ToEdifact()

Empty references draw generated ones. Field constraints (numeric
quantities and prices, three-letter segment tags, upper-case message
types) are reported from Build as errors wrapping
edifact.ErrInvalidFieldValue or edifact.ErrIncompleteDocument.

# References

  - ORDERS purchase order message: https://service.unece.org/trade/untdid/d96a/trmd/orders_d.htm
  - UN/EDIFACT directories: https://unece.org/trade/uncefact/unedifact
*/
package order
