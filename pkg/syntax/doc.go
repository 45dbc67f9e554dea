// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package syntax provides syntax profiles for EDIFACT exchanges.

A profile captures the per-partner syntax agreement: which ISO 9735
character repertoire applies and which delimiter set is in force. The
order builder consults a profile to pick delimiters and to check field
values against the repertoire before they enter a document.

# Repertoires

Three repertoires are modeled:

	UNOA  upper-case letters, digits, space, restricted punctuation
	UNOB  printable ASCII
	UNOC  printable ISO 8859-1

Check a value:

	if err := syntax.UNOA.Check("item-123"); err != nil {
	    // lower-case letters are outside level A
	}

# Profiles and Registries

Profiles live in a registry keyed by ID:

	reg := syntax.NewRegistry()
	err := reg.Add(&syntax.Profile{
	    ID:            "acme",
	    SyntaxID:      "UNOB",
	    SyntaxVersion: "4",
	    Delimiters:    edifact.DefaultDelimiters(),
	    Repertoire:    syntax.UNOB,
	})
	p, err := reg.Get("acme")

# Profile Files

Registries load from YAML, with environment variable expansion:

	profiles:
	  - id: acme
	    syntax: UNOB
	    version: "4"
	  - id: legacy-v3
	    syntax: UNOA
	    version: "3"
	    delimiters:
	      repetition: " "

	reg, err := syntax.Load("profiles.yaml")

# References

  - ISO 9735 character repertoires: https://unece.org/trade/uncefact/introducing-unedifact
  - UN/EDIFACT syntax rules: https://unece.org/fileadmin/DAM/trade/untdid/texts/d422_d.htm
*/
package syntax
