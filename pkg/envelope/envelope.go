// Package envelope wraps EDIFACT interchanges in an Exchange Header
// Envelope (XHE) for carriage through document-exchange networks.
// EDIFACT is not XML, so payloads travel base64 encoded, optionally
// gzip compressed.
//
// The envelope carries:
//   - Routing metadata, lifted from the interchange header by Wrap
//   - One or more EDIFACT payloads
//   - Correlation identifiers (ID, UUID, creation time)
//
// Reference: https://docs.oasis-open.org/bdxr/ns/XHE/unqualified/1.0
package envelope

import (
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sirosfoundation/go-edifact/pkg/compression"
	"github.com/sirosfoundation/go-edifact/pkg/edifact"
)

const (
	// NsXHE is the XHE namespace
	NsXHE = "oasis:names:specification:ubl:schema:xsd:eDeliveryXHE-1"

	// EdifactCustomizationID marks envelopes produced by this package
	EdifactCustomizationID = "urn:fdc:sirosfoundation.org:edifact:xhe:1.0"

	// ContentTypeEdifact is the content type code for EDIFACT payloads
	// (RFC 1767).
	ContentTypeEdifact = "application/EDIFACT"
)

// Envelope represents an Exchange Header Envelope document
type Envelope struct {
	XMLName         xml.Name `xml:"XHE"`
	XHEVersionID    string   `xml:"XHEVersionID"`
	CustomizationID string   `xml:"CustomizationID,omitempty"`
	ProfileID       string   `xml:"ProfileID,omitempty"`
	Header          Header   `xml:"Header"`
	Payloads        Payloads `xml:"Payloads"`
}

// Header contains routing and correlation information
type Header struct {
	ID                     string  `xml:"ID"`
	UUID                   string  `xml:"UUID,omitempty"`
	CreationDateTimeString string  `xml:"CreationDateTime"`
	FromParty              Party   `xml:"FromParty"`
	ToParty                []Party `xml:"ToParty"`
	BusinessScope          []Scope `xml:"BusinessScope>Scope,omitempty"`
	creationDateTime       time.Time
}

// CreationDateTime returns the parsed creation date/time
func (h *Header) CreationDateTime() time.Time {
	if h.creationDateTime.IsZero() && h.CreationDateTimeString != "" {
		t, _ := time.Parse(time.RFC3339, h.CreationDateTimeString)
		h.creationDateTime = t
	}
	return h.creationDateTime
}

// SetCreationDateTime sets the creation date/time
func (h *Header) SetCreationDateTime(t time.Time) {
	h.creationDateTime = t
	h.CreationDateTimeString = t.Format(time.RFC3339)
}

// Party represents a sender or receiver party
type Party struct {
	PartyID PartyID `xml:"PartyIdentification>ID"`
}

// PartyID represents a party identifier with scheme
type PartyID struct {
	SchemeID string `xml:"schemeID,attr,omitempty"`
	Value    string `xml:",chardata"`
}

// Scope represents a business scope entry in the header
type Scope struct {
	Type       string `xml:"Type"`
	InstanceID string `xml:"InstanceIdentifier"`
	Identifier string `xml:"Identifier,omitempty"`
}

// Payloads contains the payload collection
type Payloads struct {
	Payload []Payload `xml:"Payload"`
}

// Payload represents a single payload within the envelope. Content is
// the base64 encoding of the payload bytes.
type Payload struct {
	ID              string `xml:"ID,omitempty"`
	Description     string `xml:"Description,omitempty"`
	ContentTypeCode string `xml:"ContentTypeCode,omitempty"`
	Content         string `xml:"PayloadContent"`
}

// Builder provides a fluent interface for creating envelopes
type Builder struct {
	env *Envelope
	err error
}

// NewBuilder creates a new envelope builder
func NewBuilder() *Builder {
	return &Builder{
		env: &Envelope{
			XHEVersionID:    "1.0",
			CustomizationID: EdifactCustomizationID,
			Header: Header{
				ToParty: make([]Party, 0),
			},
			Payloads: Payloads{
				Payload: make([]Payload, 0),
			},
		},
	}
}

// WithID sets the header ID
func (b *Builder) WithID(id string) *Builder {
	if b.err != nil {
		return b
	}
	b.env.Header.ID = id
	return b
}

// WithUUID sets the header UUID
func (b *Builder) WithUUID(id string) *Builder {
	if b.err != nil {
		return b
	}
	b.env.Header.UUID = id
	return b
}

// WithCreationTime sets the creation timestamp
func (b *Builder) WithCreationTime(t time.Time) *Builder {
	if b.err != nil {
		return b
	}
	b.env.Header.SetCreationDateTime(t)
	return b
}

// WithFromParty sets the sender party
func (b *Builder) WithFromParty(schemeID, partyID string) *Builder {
	if b.err != nil {
		return b
	}
	b.env.Header.FromParty = Party{
		PartyID: PartyID{
			SchemeID: schemeID,
			Value:    partyID,
		},
	}
	return b
}

// WithToParty adds a recipient party
func (b *Builder) WithToParty(schemeID, partyID string) *Builder {
	if b.err != nil {
		return b
	}
	b.env.Header.ToParty = append(b.env.Header.ToParty, Party{
		PartyID: PartyID{
			SchemeID: schemeID,
			Value:    partyID,
		},
	})
	return b
}

// WithProfileID sets the profile ID
func (b *Builder) WithProfileID(id string) *Builder {
	if b.err != nil {
		return b
	}
	b.env.ProfileID = id
	return b
}

// WithBusinessScope adds a business scope entry to the header
func (b *Builder) WithBusinessScope(scopeType, instanceID, identifier string) *Builder {
	if b.err != nil {
		return b
	}
	b.env.Header.BusinessScope = append(b.env.Header.BusinessScope, Scope{
		Type:       scopeType,
		InstanceID: instanceID,
		Identifier: identifier,
	})
	return b
}

// AddInterchange adds an interchange as a payload, serialized and
// base64 encoded.
func (b *Builder) AddInterchange(id string, ic *edifact.Interchange) *Builder {
	if b.err != nil {
		return b
	}
	text := ic.ToEdifact()
	b.env.Payloads.Payload = append(b.env.Payloads.Payload, Payload{
		ID:              id,
		ContentTypeCode: ContentTypeEdifact,
		Content:         base64.StdEncoding.EncodeToString([]byte(text)),
	})
	return b
}

// AddCompressedInterchange adds an interchange as a payload, gzip
// compressed before base64 encoding. The payload carries the
// application/gzip content type code so readers reverse it.
func (b *Builder) AddCompressedInterchange(id string, ic *edifact.Interchange) *Builder {
	if b.err != nil {
		return b
	}
	compressed, err := compression.NewCompressor().Compress([]byte(ic.ToEdifact()))
	if err != nil {
		b.err = fmt.Errorf("compressing interchange %s: %w", id, err)
		return b
	}
	b.env.Payloads.Payload = append(b.env.Payloads.Payload, Payload{
		ID:              id,
		Description:     "gzip compressed EDIFACT interchange",
		ContentTypeCode: compression.ContentType,
		Content:         base64.StdEncoding.EncodeToString(compressed),
	})
	return b
}

// Build creates the envelope. A missing header ID or UUID draws a
// generated one; sender, recipient, and at least one payload are
// required.
func (b *Builder) Build() (*Envelope, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.env.Header.FromParty.PartyID.Value == "" {
		return nil, fmt.Errorf("FromParty is required")
	}
	if len(b.env.Header.ToParty) == 0 {
		return nil, fmt.Errorf("at least one ToParty is required")
	}
	if len(b.env.Payloads.Payload) == 0 {
		return nil, fmt.Errorf("at least one payload is required")
	}

	if b.env.Header.ID == "" {
		b.env.Header.ID = uuid.New().String()
	}
	if b.env.Header.UUID == "" {
		b.env.Header.UUID = uuid.New().String()
	}
	if b.env.Header.CreationDateTimeString == "" {
		b.env.Header.SetCreationDateTime(time.Now().UTC())
	}

	return b.env, nil
}

// Wrap envelopes a single interchange, lifting the sender and recipient
// (and their qualifiers, as identification schemes) from the UNB header
// and using the control reference as the payload ID. The first message's
// type, when present, is recorded as a DOCUMENTID business scope.
func Wrap(ic *edifact.Interchange) (*Envelope, error) {
	h := ic.InterchangeHeader()
	b := NewBuilder().
		WithFromParty(h.SenderQualifier, h.Sender).
		WithToParty(h.RecipientQualifier, h.Recipient)
	if len(ic.Messages) > 0 {
		if t := ic.Messages[0].MessageHeader().Type; t != "" {
			b.WithBusinessScope("DOCUMENTID", t, "")
		}
	}
	return b.AddInterchange(h.ControlReference, ic).Build()
}

// Marshal serializes the envelope to XML bytes
func (e *Envelope) Marshal() ([]byte, error) {
	return xml.MarshalIndent(e, "", "  ")
}

// GetPayloadByID returns a payload by ID
func (e *Envelope) GetPayloadByID(id string) *Payload {
	for i := range e.Payloads.Payload {
		if e.Payloads.Payload[i].ID == id {
			return &e.Payloads.Payload[i]
		}
	}
	return nil
}

// GetFirstPayload returns the first payload or nil
func (e *Envelope) GetFirstPayload() *Payload {
	if len(e.Payloads.Payload) > 0 {
		return &e.Payloads.Payload[0]
	}
	return nil
}

// Interchanges decodes every EDIFACT payload of the envelope, reversing
// base64 and, where the content type says so, gzip. Payloads with other
// content types are skipped.
func (e *Envelope) Interchanges() ([]*edifact.Interchange, error) {
	var out []*edifact.Interchange
	for i := range e.Payloads.Payload {
		p := &e.Payloads.Payload[i]
		switch p.ContentTypeCode {
		case ContentTypeEdifact, compression.ContentType:
		default:
			continue
		}

		data, err := decodeContent(p.Content)
		if err != nil {
			return nil, fmt.Errorf("payload %s: %w", p.ID, err)
		}
		if p.ContentTypeCode == compression.ContentType {
			data, err = compression.NewCompressor().Decompress(data)
			if err != nil {
				return nil, fmt.Errorf("payload %s: %w", p.ID, err)
			}
		}
		ic, err := edifact.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("payload %s: %w", p.ID, err)
		}
		out = append(out, ic)
	}
	return out, nil
}

// decodeContent reverses base64, tolerating the line wrapping some
// producers apply to long content.
func decodeContent(content string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, content)
	data, err := base64.StdEncoding.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("decoding payload content: %w", err)
	}
	return data, nil
}
