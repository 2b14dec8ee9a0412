// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

/*
Package lz4 implements the LZ4 block format: a fast byte-oriented lossless
codec compatible with the de facto standard block layout (token byte with
literal/match nibbles, escape-coded lengths, 2-byte little-endian offsets).
Only single blocks are handled; framing, checksums and recording of the
original length are the caller's responsibility.

# Decompress

OutLen is required (use DecompressOptions). From a byte slice:

	out, err := lz4.Decompress(compressed, lz4.DefaultDecompressOptions(expectedLen))

To reuse caller-managed output memory (no per-call output allocation):

	dst := make([]byte, expectedLen)
	out, err := lz4.DecompressInto(compressed, dst)

Low-level block functions report how many bytes were produced and, on
malformed input, where in the compressed stream decoding stopped:

	n, err := lz4.DecompressBlock(compressed, dst)
	var ce *lz4.CorruptError // ce.Offset on failure

# Compress

Options may be nil (acceleration 1). Compress allocates the worst-case
buffer; CompressBlock writes into a caller-provided one and returns the
0 sentinel when it does not fit:

	out, err := lz4.Compress(data, nil)

	dst := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, dst, 1)

# Dictionaries

Blocks may reference up to 64 KiB of history supplied as a dictionary,
either bytes physically preceding the block or a separate buffer. The same
dictionary must be given to both sides:

	n, err := lz4.CompressBlockDict(block, dst, history, 1)
	m, err := lz4.DecompressBlockDict(dst[:n], out, history)

A Compressor may be reused across blocks to avoid reallocating the position
table; one Compressor per goroutine. Decompression keeps no state between
calls.
*/
package lz4
