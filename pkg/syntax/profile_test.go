package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-edifact/pkg/edifact"
)

func TestRepertoire_Allows(t *testing.T) {
	tests := []struct {
		repertoire Repertoire
		ch         rune
		want       bool
	}{
		{UNOA, 'A', true},
		{UNOA, 'Z', true},
		{UNOA, '7', true},
		{UNOA, ' ', true},
		{UNOA, '?', true},
		{UNOA, '*', true},
		{UNOA, 'a', false},
		{UNOA, '#', false},
		{UNOA, 'é', false},
		{UNOB, 'a', true},
		{UNOB, '#', true},
		{UNOB, '~', true},
		{UNOB, 'é', false},
		{UNOC, 'é', true},
		{UNOC, 'A', true},
		{UNOC, '\u007f', false},
		{Repertoire("UNOD"), 'A', false},
	}
	for _, tt := range tests {
		got := tt.repertoire.Allows(tt.ch)
		assert.Equal(t, tt.want, got, "%s.Allows(%q)", tt.repertoire, tt.ch)
	}
}

func TestRepertoire_Check(t *testing.T) {
	assert.NoError(t, UNOA.Check("ITEM123 (BP)"))

	err := UNOA.Check("item123")
	require.Error(t, err)
	assert.ErrorIs(t, err, edifact.ErrInvalidFieldValue)
	assert.Contains(t, err.Error(), "'i'")

	assert.NoError(t, UNOB.Check("item123"))
}

func TestProfile_Validate(t *testing.T) {
	t.Run("default profile", func(t *testing.T) {
		assert.NoError(t, DefaultProfile().Validate())
	})

	t.Run("missing ID", func(t *testing.T) {
		p := DefaultProfile()
		p.ID = ""
		assert.Error(t, p.Validate())
	})

	t.Run("unknown repertoire", func(t *testing.T) {
		p := DefaultProfile()
		p.Repertoire = "UNOZ"
		err := p.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownRepertoire)
	})

	t.Run("unusable delimiters", func(t *testing.T) {
		p := DefaultProfile()
		p.Delimiters.Terminator = '+'
		assert.Error(t, p.Validate())
	})
}

func TestRegistry_AddGet(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.Add(DefaultProfile()))
	require.NoError(t, reg.Add(&Profile{
		ID:            "acme",
		SyntaxID:      "UNOB",
		SyntaxVersion: "4",
		Delimiters:    edifact.DefaultDelimiters(),
		Repertoire:    UNOB,
	}))

	p, err := reg.Get("acme")
	require.NoError(t, err)
	assert.Equal(t, UNOB, p.Repertoire)

	_, err = reg.Get("nobody")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProfileNotFound)

	assert.Equal(t, []string{"acme", "default"}, reg.IDs())
}

func TestRegistry_AddReplaces(t *testing.T) {
	reg := NewRegistry()
	first := DefaultProfile()
	require.NoError(t, reg.Add(first))

	second := DefaultProfile()
	second.Repertoire = UNOC
	require.NoError(t, reg.Add(second))

	p, err := reg.Get("default")
	require.NoError(t, err)
	assert.Equal(t, UNOC, p.Repertoire)
}

func TestRegistry_AddInvalid(t *testing.T) {
	reg := NewRegistry()
	err := reg.Add(&Profile{ID: "bad", Repertoire: "UNOZ", Delimiters: edifact.DefaultDelimiters()})
	assert.Error(t, err)
	assert.Empty(t, reg.IDs())
}
