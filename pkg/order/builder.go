package order

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sirosfoundation/go-edifact/pkg/edifact"
	"github.com/sirosfoundation/go-edifact/pkg/syntax"
)

// Builder assembles an ORDERS interchange segment by segment and
// serializes it with the service segments (UNB, UNH, UNT, UNZ) filled
// in. Validation failures accumulate; Build reports the first one.
type Builder struct {
	delims        edifact.Delimiters
	syntaxID      string
	syntaxVersion string
	version       string
	release       string
	agency        string
	appRef        string
	profile       *syntax.Profile

	sender             string
	senderQualifier    string
	recipient          string
	recipientQualifier string
	date               string
	timeOfDay          string
	controlRef         string
	haveInterchange    bool

	messageRef  string
	messageType string
	haveMessage bool

	segments []*edifact.Segment
	errors   []error
}

// Option represents a functional option for Builder
type Option func(*Builder)

// NewBuilder creates a builder with the given options. Without options
// it targets UNOA version 4, message version D 96A UN, and the service
// delimiter set.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		delims:        edifact.DefaultDelimiters(),
		syntaxID:      "UNOA",
		syntaxVersion: "4",
		version:       "D",
		release:       "96A",
		agency:        "UN",
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// WithDelimiters sets the delimiter set used for serialization.
func WithDelimiters(d edifact.Delimiters) Option {
	return func(b *Builder) {
		b.delims = d
	}
}

// WithSyntax sets the syntax identifier and version carried in UNB.
func WithSyntax(id, version string) Option {
	return func(b *Builder) {
		b.syntaxID = id
		b.syntaxVersion = version
	}
}

// WithMessageVersion sets the message version, release, and controlling
// agency carried in UNH.
func WithMessageVersion(version, release, agency string) Option {
	return func(b *Builder) {
		b.version = version
		b.release = release
		b.agency = agency
	}
}

// WithApplicationReference adds an application reference element to UNB.
func WithApplicationReference(ref string) Option {
	return func(b *Builder) {
		b.appRef = ref
	}
}

// WithProfile applies a syntax profile: delimiters and the syntax
// identifier come from the profile, and every field value is checked
// against its character repertoire.
func WithProfile(p *syntax.Profile) Option {
	return func(b *Builder) {
		b.profile = p
		b.delims = p.Delimiters
		b.syntaxID = p.SyntaxID
		b.syntaxVersion = p.SyntaxVersion
	}
}

// WithInterchangeHeader sets the UNB fields. The timestamp is date and
// time joined by a colon (20240119:1200); FormatTimestamp renders one
// from a time.Time. An empty control reference draws a generated one.
func (b *Builder) WithInterchangeHeader(sender, recipient, timestamp, controlRef string) *Builder {
	if sender == "" {
		b.errors = append(b.errors, fmt.Errorf("sender is required: %w", edifact.ErrInvalidFieldValue))
		return b
	}
	if recipient == "" {
		b.errors = append(b.errors, fmt.Errorf("recipient is required: %w", edifact.ErrInvalidFieldValue))
		return b
	}
	date, timeOfDay, err := splitTimestamp(timestamp)
	if err != nil {
		b.errors = append(b.errors, err)
		return b
	}
	if controlRef == "" {
		controlRef = newReference()
	}
	if !b.check("interchange header", sender, recipient, controlRef) {
		return b
	}

	b.sender = sender
	b.recipient = recipient
	b.date = date
	b.timeOfDay = timeOfDay
	b.controlRef = controlRef
	b.haveInterchange = true
	return b
}

// WithQualifiers sets the identification code qualifiers for the sender
// and recipient in UNB.
func (b *Builder) WithQualifiers(sender, recipient string) *Builder {
	b.senderQualifier = sender
	b.recipientQualifier = recipient
	return b
}

// WithMessageHeader sets the UNH fields. The message type must be one to
// six upper-case letters or digits starting with a letter (ORDERS,
// DESADV, INVOIC); an empty reference draws a generated one.
func (b *Builder) WithMessageHeader(reference, messageType string) *Builder {
	if !validMessageType(messageType) {
		b.errors = append(b.errors, fmt.Errorf(
			"message type %q must be one to six upper-case letters or digits starting with a letter: %w",
			messageType, edifact.ErrInvalidFieldValue))
		return b
	}
	if reference == "" {
		reference = newReference()
	}
	if !b.check("message header", reference) {
		return b
	}

	b.messageRef = reference
	b.messageType = messageType
	b.haveMessage = true
	return b
}

// WithBGM adds the beginning-of-message segment: document name code,
// document number, and message function code. An empty function code
// omits its element.
func (b *Builder) WithBGM(nameCode, documentNumber, functionCode string) *Builder {
	if nameCode == "" {
		b.errors = append(b.errors, fmt.Errorf("document name code is required: %w", edifact.ErrInvalidFieldValue))
		return b
	}
	if documentNumber == "" {
		b.errors = append(b.errors, fmt.Errorf("document number is required: %w", edifact.ErrInvalidFieldValue))
		return b
	}
	if !b.check("BGM", nameCode, documentNumber, functionCode) {
		return b
	}

	bgm := edifact.NewSegment("BGM", edifact.Element{nameCode}, edifact.Element{documentNumber})
	if functionCode != "" {
		bgm.Elements = append(bgm.Elements, edifact.Element{functionCode})
	}
	b.segments = append(b.segments, bgm)
	return b
}

// AddOrderLine adds a line item as a LIN, QTY, PRI segment group. The
// item identifier is qualified as a buyer's part number; quantity and
// price must be numeric.
func (b *Builder) AddOrderLine(lineNumber, itemID, quantity, price string) *Builder {
	if lineNumber == "" {
		b.errors = append(b.errors, fmt.Errorf("line number is required: %w", edifact.ErrInvalidFieldValue))
		return b
	}
	if itemID == "" {
		b.errors = append(b.errors, fmt.Errorf("item ID is required: %w", edifact.ErrInvalidFieldValue))
		return b
	}
	if !isNumeric(quantity) {
		b.errors = append(b.errors, fmt.Errorf("quantity %q is not numeric: %w", quantity, edifact.ErrInvalidFieldValue))
		return b
	}
	if !isNumeric(price) {
		b.errors = append(b.errors, fmt.Errorf("price %q is not numeric: %w", price, edifact.ErrInvalidFieldValue))
		return b
	}
	if !b.check("order line", lineNumber, itemID, quantity, price) {
		return b
	}

	b.segments = append(b.segments,
		edifact.NewSegment("LIN", edifact.Element{lineNumber}, edifact.Element{}, edifact.Element{itemID, "BP"}),
		edifact.NewSegment("QTY", edifact.Element{"21"}, edifact.Element{quantity}),
		edifact.NewSegment("PRI", edifact.Element{"AAA"}, edifact.Element{price}),
	)
	return b
}

// AddSegment adds an arbitrary body segment. The tag must be three
// upper-case letters; the service tags UNA, UNB, UNH, UNT, and UNZ are
// refused because the builder writes those itself.
func (b *Builder) AddSegment(tag string, elements ...edifact.Element) *Builder {
	if !validSegmentTag(tag) {
		b.errors = append(b.errors, fmt.Errorf("segment tag %q must be three upper-case letters: %w",
			tag, edifact.ErrInvalidFieldValue))
		return b
	}
	switch tag {
	case "UNA", "UNB", "UNH", "UNT", "UNZ":
		b.errors = append(b.errors, fmt.Errorf("service segment %q is written by the builder: %w",
			tag, edifact.ErrInvalidFieldValue))
		return b
	}
	for _, el := range elements {
		if !b.check(tag, el...) {
			return b
		}
	}

	b.segments = append(b.segments, edifact.NewSegment(tag, elements...))
	return b
}

// Build assembles the interchange. The interchange header and message
// header are required; UNT and UNZ trailers are derived from what was
// added.
func (b *Builder) Build() (*edifact.Interchange, error) {
	if len(b.errors) > 0 {
		return nil, b.errors[0]
	}
	if !b.haveInterchange {
		return nil, fmt.Errorf("interchange header is required: %w", edifact.ErrIncompleteDocument)
	}
	if !b.haveMessage {
		return nil, fmt.Errorf("message header is required: %w", edifact.ErrIncompleteDocument)
	}

	sender := edifact.Element{b.sender}
	if b.senderQualifier != "" {
		sender = edifact.Element{b.sender, b.senderQualifier}
	}
	recipient := edifact.Element{b.recipient}
	if b.recipientQualifier != "" {
		recipient = edifact.Element{b.recipient, b.recipientQualifier}
	}
	unb := edifact.NewSegment("UNB",
		edifact.Element{b.syntaxID, b.syntaxVersion},
		sender,
		recipient,
		edifact.Element{b.date, b.timeOfDay},
		edifact.Element{b.controlRef},
	)
	if b.appRef != "" {
		unb.Elements = append(unb.Elements, edifact.Element{b.appRef})
	}

	unh := edifact.NewSegment("UNH",
		edifact.Element{b.messageRef},
		edifact.Element{b.messageType, b.version, b.release, b.agency},
	)
	// Segment count spans UNH through UNT inclusive.
	unt := edifact.NewSegment("UNT",
		edifact.Element{fmt.Sprintf("%d", len(b.segments)+2)},
		edifact.Element{b.messageRef},
	)
	unz := edifact.NewSegment("UNZ",
		edifact.Element{"1"},
		edifact.Element{b.controlRef},
	)

	return &edifact.Interchange{
		Delimiters: b.delims,
		Header:     unb,
		Messages: []*edifact.Message{{
			Header:   unh,
			Trailer:  unt,
			Segments: b.segments,
		}},
		Trailer: unz,
	}, nil
}

// ToEdifact builds the interchange and serializes it.
func (b *Builder) ToEdifact() (string, error) {
	ic, err := b.Build()
	if err != nil {
		return "", err
	}
	return ic.ToEdifact(), nil
}

// FormatTimestamp renders t in the layout WithInterchangeHeader accepts.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("20060102:1504")
}

// check verifies values against the profile repertoire when one is set.
func (b *Builder) check(field string, values ...string) bool {
	if b.profile == nil {
		return true
	}
	for _, v := range values {
		if err := b.profile.Repertoire.Check(v); err != nil {
			b.errors = append(b.errors, fmt.Errorf("%s: %w", field, err))
			return false
		}
	}
	return true
}

// splitTimestamp splits a date:time value and checks the shapes: six or
// eight digits of date, four digits of time.
func splitTimestamp(ts string) (string, string, error) {
	date, timeOfDay, found := strings.Cut(ts, ":")
	if !found || !allDigits(date) || (len(date) != 6 && len(date) != 8) || !allDigits(timeOfDay) || len(timeOfDay) != 4 {
		return "", "", fmt.Errorf("timestamp %q must be CCYYMMDD:HHMM or YYMMDD:HHMM: %w",
			ts, edifact.ErrInvalidFieldValue)
	}
	return date, timeOfDay, nil
}

func allDigits(v string) bool {
	if v == "" {
		return false
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isNumeric accepts an optionally signed decimal number.
func isNumeric(v string) bool {
	v, _ = strings.CutPrefix(v, "-")
	whole, frac, dotted := strings.Cut(v, ".")
	if !allDigits(whole) {
		return false
	}
	return !dotted || allDigits(frac)
}

func validSegmentTag(tag string) bool {
	if len(tag) != 3 {
		return false
	}
	for _, r := range tag {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func validMessageType(t string) bool {
	if len(t) < 1 || len(t) > 6 {
		return false
	}
	for i, r := range t {
		switch {
		case r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// newReference derives a reference from a random UUID. EDIFACT caps
// reference fields at 14 characters.
func newReference() string {
	id := uuid.New()
	return strings.ToUpper(hex.EncodeToString(id[:]))[:14]
}
