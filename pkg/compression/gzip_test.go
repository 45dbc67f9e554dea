package compression

import (
	"compress/gzip"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressor_CompressDecompress(t *testing.T) {
	compressor := NewCompressor()

	// Interchange text is highly repetitive, so it compresses past the
	// ~20 byte gzip overhead with room to spare.
	text := []byte(strings.Repeat("UNB+UNOA:4+SENDER+RECEIVER+20240119:1200+REF123'\n", 20))

	compressed, err := compressor.Compress(text)
	require.NoError(t, err)
	assert.NotEmpty(t, compressed)
	assert.Less(t, len(compressed), len(text))

	decompressed, err := compressor.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, text, decompressed)
}

func TestCompressor_EmptyData(t *testing.T) {
	compressor := NewCompressor()

	compressed, err := compressor.Compress([]byte{})
	require.NoError(t, err)
	assert.NotEmpty(t, compressed) // the gzip header is present even for empty data

	decompressed, err := compressor.Decompress(compressed)
	require.NoError(t, err)
	assert.Empty(t, decompressed)
}

func TestCompressor_Levels(t *testing.T) {
	text := []byte(strings.Repeat("LIN+1++ITEM123:BP'QTY+21+5'PRI+AAA+10.00'\n", 50))

	best := NewCompressorWithLevel(gzip.BestCompression)
	compressed, err := best.Compress(text)
	require.NoError(t, err)

	decompressed, err := best.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, text, decompressed)

	_, err = NewCompressorWithLevel(42).Compress(text)
	assert.Error(t, err)
}

func TestCompressor_InvalidCompressedData(t *testing.T) {
	compressor := NewCompressor()

	_, err := compressor.Decompress([]byte("UNB+UNOA:4+not+gzip+data'"))
	assert.Error(t, err)
}

func TestCompressor_CorruptedData(t *testing.T) {
	compressor := NewCompressor()

	compressed, err := compressor.Compress([]byte("BGM+220+123456+9'"))
	require.NoError(t, err)

	corrupted := make([]byte, len(compressed))
	copy(corrupted, compressed)
	corrupted[0] = 0xff
	corrupted[1] = 0xff

	_, err = compressor.Decompress(corrupted)
	assert.Error(t, err)
}
