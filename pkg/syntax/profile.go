package syntax

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sirosfoundation/go-edifact/pkg/edifact"
)

// Common errors returned by profile lookups and validation.
var (
	// ErrProfileNotFound indicates no profile is registered under the ID.
	ErrProfileNotFound = errors.New("syntax profile not found")

	// ErrUnknownRepertoire indicates a repertoire name outside
	// UNOA/UNOB/UNOC.
	ErrUnknownRepertoire = errors.New("unknown character repertoire")
)

// Repertoire identifies a character repertoire from ISO 9735. The
// repertoire constrains which characters may appear in data element
// values; structure is unaffected by it.
type Repertoire string

const (
	// UNOA is syntax level A: upper-case letters, digits, space, and a
	// restricted punctuation set.
	UNOA Repertoire = "UNOA"
	// UNOB is syntax level B: level A plus lower-case letters and the
	// remaining printable ASCII punctuation.
	UNOB Repertoire = "UNOB"
	// UNOC is syntax level C: the printable range of ISO 8859-1.
	UNOC Repertoire = "UNOC"
)

// The punctuation admitted by syntax level A, space included.
const levelAPunctuation = ".,-()/'+:=?!\"%&*;<> "

// Allows reports whether the repertoire admits ch.
func (r Repertoire) Allows(ch rune) bool {
	switch r {
	case UNOA:
		return (ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			strings.ContainsRune(levelAPunctuation, ch)
	case UNOB:
		return ch >= 0x20 && ch <= 0x7e
	case UNOC:
		return (ch >= 0x20 && ch <= 0x7e) || (ch >= 0xa0 && ch <= 0xff)
	default:
		return false
	}
}

// Check verifies every character of value against the repertoire. The
// returned error wraps edifact.ErrInvalidFieldValue and names the first
// offending character.
func (r Repertoire) Check(value string) error {
	for _, ch := range value {
		if !r.Allows(ch) {
			return fmt.Errorf("character %q outside repertoire %s: %w", ch, r, edifact.ErrInvalidFieldValue)
		}
	}
	return nil
}

// Valid reports whether r names a known repertoire.
func (r Repertoire) Valid() bool {
	switch r {
	case UNOA, UNOB, UNOC:
		return true
	}
	return false
}

// Profile binds a syntax identifier to the delimiter set and character
// repertoire a partner exchange uses. Builders consult the profile for
// delimiters and check field values against its repertoire.
type Profile struct {
	ID            string
	SyntaxID      string
	SyntaxVersion string
	Delimiters    edifact.Delimiters
	Repertoire    Repertoire
}

// DefaultProfile returns the UNOA version 4 profile with the service
// delimiter set.
func DefaultProfile() *Profile {
	return &Profile{
		ID:            "default",
		SyntaxID:      "UNOA",
		SyntaxVersion: "4",
		Delimiters:    edifact.DefaultDelimiters(),
		Repertoire:    UNOA,
	}
}

// Validate checks that the profile is usable.
func (p *Profile) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("profile ID is required")
	}
	if !p.Repertoire.Valid() {
		return fmt.Errorf("profile %s: %q: %w", p.ID, string(p.Repertoire), ErrUnknownRepertoire)
	}
	if err := p.Delimiters.Validate(); err != nil {
		return fmt.Errorf("profile %s: %w", p.ID, err)
	}
	return nil
}

// applyDefaults fills unset fields with the service conventions. An
// unset repertoire follows the syntax identifier.
func (p *Profile) applyDefaults() {
	if p.SyntaxID == "" {
		p.SyntaxID = "UNOA"
	}
	if p.SyntaxVersion == "" {
		p.SyntaxVersion = "4"
	}
	if p.Repertoire == "" {
		p.Repertoire = Repertoire(p.SyntaxID)
	}
	if p.Delimiters == (edifact.Delimiters{}) {
		p.Delimiters = edifact.DefaultDelimiters()
	}
}

// Registry holds syntax profiles by ID. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	profiles map[string]*Profile
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		profiles: make(map[string]*Profile),
	}
}

// Add validates p and stores it, replacing any profile registered under
// the same ID.
func (r *Registry) Add(p *Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.ID] = p
	return nil
}

// Get returns the profile registered under id.
func (r *Registry) Get(id string) (*Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, id)
	}
	return p, nil
}

// IDs returns the registered profile IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.profiles))
	for id := range r.profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
