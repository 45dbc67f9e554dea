package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-edifact/pkg/edifact"
)

func parseMessage(t *testing.T, body string) *edifact.Message {
	t.Helper()
	raw := "UNB+UNOA:4+SENDER+RECEIVER+20240119:1200+REF123'" +
		"UNH+1+ORDERS:D:96A:UN'" + body + "UNT+2+1'UNZ+1+REF123'"
	ic, err := edifact.ParseString(raw)
	require.NoError(t, err)
	require.Len(t, ic.Messages, 1)
	return ic.Messages[0]
}

func TestLines_Grouping(t *testing.T) {
	msg := parseMessage(t,
		"BGM+220+123456+9'"+
			"LIN+1++ITEM123:BP'QTY+21+5'PRI+AAA+10.00'"+
			"LIN+2++ITEM456:BP'QTY+21+3'PRI+AAA+7.50'")

	lines := Lines(msg)
	require.Len(t, lines, 2)

	assert.Equal(t, "1", lines[0].LineNumber())
	assert.Equal(t, "ITEM123", lines[0].ItemID())
	assert.Equal(t, "5", lines[0].QuantityValue())
	assert.Equal(t, "10.00", lines[0].PriceValue())

	assert.Equal(t, "2", lines[1].LineNumber())
	assert.Equal(t, "ITEM456", lines[1].ItemID())
	assert.Equal(t, "3", lines[1].QuantityValue())
	assert.Equal(t, "7.50", lines[1].PriceValue())
}

func TestLines_RepeatedTagLastWinsAndAllRetained(t *testing.T) {
	msg := parseMessage(t, "LIN+1++A:BP'QTY+21+5'QTY+12+8'LIN+2++B:BP'PRI+AAA+1.00'")

	lines := Lines(msg)
	require.Len(t, lines, 2)

	// First line: two quantities, the typed slot keeps the last.
	assert.Equal(t, "8", lines[0].QuantityValue())
	require.Len(t, lines[0].Segments, 2)
	assert.Equal(t, "5", lines[0].Segments[0].Value(1, 0))
	assert.Equal(t, "8", lines[0].Segments[1].Value(1, 0))
	assert.Nil(t, lines[0].Price)
	assert.Equal(t, "", lines[0].PriceValue())

	// Second line: a price and no quantity.
	assert.Nil(t, lines[1].Quantity)
	assert.Equal(t, "", lines[1].QuantityValue())
	assert.Equal(t, "1.00", lines[1].PriceValue())
}

func TestLines_AttachmentTags(t *testing.T) {
	msg := parseMessage(t,
		"LIN+1++ITEM123:BP'IMD+F++:::WIDGET'QTY+21+5'MOA+203:50.00'PRI+AAA+10.00'RFF+ON:PO4711'")

	lines := Lines(msg)
	require.Len(t, lines, 1)

	line := lines[0]
	require.NotNil(t, line.Description)
	assert.Equal(t, "F", line.Description.Value(0, 0))
	require.NotNil(t, line.Reference)
	assert.Equal(t, "PO4711", line.Reference.Value(0, 1))
	assert.Equal(t, "50.00", line.AmountValue())
	assert.Len(t, line.Segments, 5)
}

func TestLines_SegmentsOutsideLines(t *testing.T) {
	msg := parseMessage(t, "BGM+220+123456+9'DTM+137:20240119:102'LIN+1++A:BP'QTY+21+5'FTX+AAA+NOTE'")

	lines := Lines(msg)
	require.Len(t, lines, 1)
	// BGM and DTM precede the first line; FTX is not an attachment tag.
	assert.Len(t, lines[0].Segments, 1)
	assert.Equal(t, "5", lines[0].QuantityValue())
}

func TestLines_QualifierCompositeForm(t *testing.T) {
	msg := parseMessage(t, "LIN+1++A:BP'QTY+21:5'PRI+AAA:2.50'")

	lines := Lines(msg)
	require.Len(t, lines, 1)
	assert.Equal(t, "5", lines[0].QuantityValue())
	assert.Equal(t, "2.50", lines[0].PriceValue())
}

func TestLines_Empty(t *testing.T) {
	msg := parseMessage(t, "BGM+220+123456+9'")
	assert.Empty(t, Lines(msg))
}

func TestAllLines(t *testing.T) {
	raw := "UNB+UNOA:4+S+R+20240119:1200+REF'" +
		"UNH+1+ORDERS:D:96A:UN'LIN+1++A:BP'QTY+21+5'UNT+3+1'" +
		"UNH+2+ORDERS:D:96A:UN'LIN+1++B:BP'QTY+21+9'UNT+3+2'" +
		"UNZ+2+REF'"
	ic, err := edifact.ParseString(raw)
	require.NoError(t, err)

	lines := AllLines(ic)
	require.Len(t, lines, 2)
	assert.Equal(t, "A", lines[0].ItemID())
	assert.Equal(t, "B", lines[1].ItemID())
}

func TestOrderLine_ZeroValue(t *testing.T) {
	var line OrderLine
	assert.Equal(t, "", line.LineNumber())
	assert.Equal(t, "", line.ItemID())
	assert.Equal(t, "", line.QuantityValue())
	assert.Equal(t, "", line.PriceValue())
	assert.Equal(t, "", line.AmountValue())
}
