// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// DecompressOptions configures decompression.
// OutLen is required (expected decompressed size); MaxInputSize limits reads when using DecompressFromReader.
type DecompressOptions struct {
	// OutLen is the expected decompressed size (required for buffer allocation and safety).
	OutLen int
	// Dict is an optional dictionary: bytes that logically precede the block,
	// which its matches may reference. Must be the same dictionary the block
	// was compressed with. Only the last 64 KiB are addressable.
	Dict []byte
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with the given output length, no
// dictionary and no input limit.
func DefaultDecompressOptions(outLen int) *DecompressOptions {
	return &DecompressOptions{OutLen: outLen}
}

// CompressOptions configures compression.
type CompressOptions struct {
	// Acceleration trades ratio for speed: values above 1 make the match
	// search skip ahead faster on incompressible data. Values below 1 are
	// clamped to 1.
	Acceleration int
	// Dict is an optional dictionary the block's matches may reference.
	// Decompression must be given the same dictionary. Only the last 64 KiB
	// are used.
	Dict []byte
}

// DefaultCompressOptions returns options with acceleration 1 and no dictionary.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Acceleration: defaultAcceleration}
}
