package edifact

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Delimiters is the set of six syntax characters that governs how an
// interchange is tokenized and serialized. The zero value is not a usable
// set; start from DefaultDelimiters or ResolveDelimiters.
type Delimiters struct {
	// Component separates component data elements inside a composite.
	Component rune
	// Data separates data elements inside a segment.
	Data rune
	// Decimal is the decimal notation character. It is carried for
	// completeness and never participates in tokenizing or escaping.
	Decimal rune
	// Release makes the following character literal.
	Release rune
	// Repetition is the repetition separator (reserved for future use
	// in syntax version 3).
	Repetition rune
	// Terminator ends a segment.
	Terminator rune
}

// DefaultDelimiters returns the UN/EDIFACT service character set,
// UNA:+.?*' in advice form.
func DefaultDelimiters() Delimiters {
	return Delimiters{
		Component:  ':',
		Data:       '+',
		Decimal:    '.',
		Release:    '?',
		Repetition: '*',
		Terminator: '\'',
	}
}

// ResolveDelimiters determines the delimiter set in force for raw input.
//
// When the input begins with a UNA service string advice, the six
// characters that follow the tag are read positionally (component
// separator, data separator, decimal notation, release character,
// repetition separator, segment terminator) and the number of bytes
// consumed by the advice is returned so parsing can resume after it.
// Without an advice the service set applies and zero bytes are consumed.
//
// An advice that is cut short, or one whose six characters are not a
// valid set, yields ErrMalformedServiceAdvice. Resolution is
// all-or-nothing: no partial delimiter set is ever returned.
func ResolveDelimiters(raw string) (Delimiters, int, error) {
	if !strings.HasPrefix(raw, "UNA") {
		return DefaultDelimiters(), 0, nil
	}

	chars := make([]rune, 0, 6)
	consumed := len("UNA")
	for _, r := range raw[len("UNA"):] {
		chars = append(chars, r)
		consumed += utf8.RuneLen(r)
		if len(chars) == 6 {
			break
		}
	}
	if len(chars) < 6 {
		return Delimiters{}, 0, &ParseError{
			Err:     ErrMalformedServiceAdvice,
			Offset:  len(raw),
			Segment: 0,
			Detail:  fmt.Sprintf("advice declares %d of 6 service characters", len(chars)),
		}
	}

	d := Delimiters{
		Component:  chars[0],
		Data:       chars[1],
		Decimal:    chars[2],
		Release:    chars[3],
		Repetition: chars[4],
		Terminator: chars[5],
	}
	if err := d.Validate(); err != nil {
		return Delimiters{}, 0, &ParseError{
			Err:     ErrMalformedServiceAdvice,
			Offset:  0,
			Segment: 0,
			Detail:  err.Error(),
		}
	}
	return d, consumed, nil
}

// Validate reports whether the set can tokenize text unambiguously: the
// six characters must be pairwise distinct, and the structural ones
// (everything except the decimal notation) must not be letters or
// digits.
func (d Delimiters) Validate() error {
	all := []rune{d.Component, d.Data, d.Decimal, d.Release, d.Repetition, d.Terminator}
	for i, a := range all {
		for _, b := range all[i+1:] {
			if a == b {
				return fmt.Errorf("duplicate delimiter %q", a)
			}
		}
	}
	structural := []rune{d.Component, d.Data, d.Release, d.Repetition, d.Terminator}
	for _, r := range structural {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return fmt.Errorf("alphanumeric delimiter %q", r)
		}
	}
	return nil
}

// IsDefault reports whether d is the service character set.
func (d Delimiters) IsDefault() bool {
	return d == DefaultDelimiters()
}

// UNA renders the set as a service string advice, e.g. "UNA:+.?*'".
func (d Delimiters) UNA() string {
	return "UNA" + string([]rune{d.Component, d.Data, d.Decimal, d.Release, d.Repetition, d.Terminator})
}
