// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package compression provides GZIP compression for EDIFACT payloads.

Interchange text compresses well, and document-exchange envelopes carry
non-XML payloads base64-encoded, so compressing before encoding keeps
envelopes small. The envelope package uses this package when a payload
is added compressed and marks it with the application/gzip content type
code.

# Usage

	compressor := compression.NewCompressor()
	compressed, err := compressor.Compress([]byte(ic.ToEdifact()))

	text, err := compressor.Decompress(compressed)

# References

  - GZIP RFC 1952: https://datatracker.ietf.org/doc/html/rfc1952
*/
package compression
