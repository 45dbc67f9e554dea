package edifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment_ToEdifact(t *testing.T) {
	s := NewSegment("DTM", Element{"137"}, Element{"20240119"}, Element{"102"})
	assert.Equal(t, "DTM+137+20240119+102'", s.ToEdifact(DefaultDelimiters()))
}

func TestSegment_ToEdifact_Composite(t *testing.T) {
	s := NewSegment("UNB",
		Element{"UNOA", "4"},
		Element{"SENDER"},
		Element{"RECEIVER"},
		Element{"20240119", "1200"},
		Element{"REF123"},
	)
	assert.Equal(t, "UNB+UNOA:4+SENDER+RECEIVER+20240119:1200+REF123'", s.ToEdifact(DefaultDelimiters()))
}

func TestSegment_ToEdifact_EmptyElement(t *testing.T) {
	s := NewSegment("LIN", Element{"1"}, Element{}, Element{"ITEM123", "BP"})
	assert.Equal(t, "LIN+1++ITEM123:BP'", s.ToEdifact(DefaultDelimiters()))
}

func TestSegment_ToEdifact_Escaping(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"data separator", "BBB+CCC", "FTX+BBB?+CCC'"},
		{"component separator", "A:B", "FTX+A?:B'"},
		{"terminator", "IT'S", "FTX+IT?'S'"},
		{"release character", "50%?", "FTX+50%??'"},
		{"repetition separator", "A*B", "FTX+A?*B'"},
		{"decimal untouched", "10.00", "FTX+10.00'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSegment("FTX", Element{tt.value})
			assert.Equal(t, tt.want, s.ToEdifact(DefaultDelimiters()))
		})
	}
}

func TestSegment_ToEdifact_CustomDelimiters(t *testing.T) {
	d := Delimiters{Component: '|', Data: '^', Decimal: '.', Release: '?', Repetition: '@', Terminator: '~'}
	s := NewSegment("BGM", Element{"220"}, Element{"123456"}, Element{"9"})
	assert.Equal(t, "BGM^220^123456^9~", s.ToEdifact(d))

	// The plus sign is plain text under this set.
	s = NewSegment("FTX", Element{"A+B^C"})
	assert.Equal(t, "FTX^A+B?^C~", s.ToEdifact(d))
}

func TestSegment_Accessors(t *testing.T) {
	s := NewSegment("NAD", Element{"BY"}, Element{"5021376940009", "", "9"})

	el, ok := s.Element(1)
	require.True(t, ok)
	assert.Equal(t, Element{"5021376940009", "", "9"}, el)

	_, ok = s.Element(5)
	assert.False(t, ok)

	v, ok := s.Component(1, 2)
	require.True(t, ok)
	assert.Equal(t, "9", v)

	_, ok = s.Component(1, 3)
	assert.False(t, ok)
	_, ok = s.Component(9, 0)
	assert.False(t, ok)

	assert.Equal(t, "BY", s.Value(0, 0))
	assert.Equal(t, "", s.Value(0, 7))
	assert.Equal(t, "", s.Value(7, 0))
}

func TestElement_First(t *testing.T) {
	assert.Equal(t, "BY", Element{"BY", "X"}.First())
	assert.Equal(t, "", Element{}.First())
}
