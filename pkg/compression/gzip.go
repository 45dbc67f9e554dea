package compression

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
)

// ContentType is the content type code carried by envelope payloads
// whose EDIFACT text has been compressed.
const ContentType = "application/gzip"

// Compressor compresses interchange text for envelope carriage.
type Compressor struct {
	level int
}

// NewCompressor creates a compressor with the default compression level.
func NewCompressor() *Compressor {
	return &Compressor{
		level: gzip.DefaultCompression,
	}
}

// NewCompressorWithLevel creates a compressor with the given gzip level.
func NewCompressorWithLevel(level int) *Compressor {
	return &Compressor{
		level: level,
	}
}

// Compress gzips data.
func (c *Compressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	writer, err := gzip.NewWriterLevel(&buf, c.level)
	if err != nil {
		return nil, fmt.Errorf("creating gzip writer: %w", err)
	}
	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return nil, fmt.Errorf("compressing payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("closing gzip writer: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress gunzips data.
func (c *Compressor) Decompress(data []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("reading gzip header: %w", err)
	}
	defer reader.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, fmt.Errorf("decompressing payload: %w", err)
	}

	return buf.Bytes(), nil
}
