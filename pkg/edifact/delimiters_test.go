package edifact

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDelimiters_NoAdvice(t *testing.T) {
	d, consumed, err := ResolveDelimiters("UNB+UNOA:4+SENDER+RECEIVER+20240119:1200+REF123'")
	require.NoError(t, err)
	assert.Equal(t, 0, consumed)
	assert.Equal(t, DefaultDelimiters(), d)
}

func TestResolveDelimiters_Advice(t *testing.T) {
	d, consumed, err := ResolveDelimiters("UNA|^.?@~BGM^220^123456^9~")
	require.NoError(t, err)
	assert.Equal(t, 9, consumed)
	assert.Equal(t, Delimiters{
		Component:  '|',
		Data:       '^',
		Decimal:    '.',
		Release:    '?',
		Repetition: '@',
		Terminator: '~',
	}, d)
}

func TestResolveDelimiters_DefaultAdvice(t *testing.T) {
	d, consumed, err := ResolveDelimiters("UNA:+.?*'UNB+UNOA:4+S+R+20240119:1200+REF'")
	require.NoError(t, err)
	assert.Equal(t, 9, consumed)
	assert.True(t, d.IsDefault())
}

func TestResolveDelimiters_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"advice cut short", "UNA:+.?"},
		{"advice alone", "UNA"},
		{"duplicate characters", "UNA::.?*'"},
		{"alphanumeric separator", "UNAa+.?*'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ResolveDelimiters(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedServiceAdvice)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.NotEmpty(t, pe.Detail)
		})
	}
}

func TestDelimiters_Validate(t *testing.T) {
	t.Run("service set", func(t *testing.T) {
		assert.NoError(t, DefaultDelimiters().Validate())
	})

	t.Run("space as repetition", func(t *testing.T) {
		d := DefaultDelimiters()
		d.Repetition = ' '
		assert.NoError(t, d.Validate())
	})

	t.Run("duplicate", func(t *testing.T) {
		d := DefaultDelimiters()
		d.Terminator = '+'
		assert.Error(t, d.Validate())
	})

	t.Run("alphanumeric decimal allowed", func(t *testing.T) {
		d := DefaultDelimiters()
		d.Decimal = ','
		assert.NoError(t, d.Validate())
	})

	t.Run("alphanumeric structural rejected", func(t *testing.T) {
		d := DefaultDelimiters()
		d.Data = '9'
		assert.Error(t, d.Validate())
	})
}

func TestDelimiters_UNA(t *testing.T) {
	assert.Equal(t, "UNA:+.?*'", DefaultDelimiters().UNA())

	custom := Delimiters{Component: '|', Data: '^', Decimal: '.', Release: '?', Repetition: '@', Terminator: '~'}
	assert.Equal(t, "UNA|^.?@~", custom.UNA())
}

func TestDelimiters_IsDefault(t *testing.T) {
	assert.True(t, DefaultDelimiters().IsDefault())

	d := DefaultDelimiters()
	d.Terminator = '~'
	assert.False(t, d.IsDefault())
}
