// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// LZ4 block format constants: token layout, match and window bounds, and
// position-table parameters.

// Match and window bounds.
const (
	minMatch   = 4  // minimum encodable match length
	winSizeLog = 16 // offsets are 2 bytes, so matches reach back at most 64 KiB
	winSize    = 1 << winSizeLog
	winMask    = winSize - 1

	// lastLiterals is the number of trailing input bytes that must be emitted
	// as literals; matches may not extend into them.
	lastLiterals = 5

	// mfLimit is the distance from the end of input below which no new match
	// may start. minLength is the shortest input worth scanning at all.
	mfLimit   = 8 + minMatch
	minLength = mfLimit + 1
)

// Token layout: high nibble literal-run length, low nibble match length
// stored biased by minMatch. A nibble of 15 continues into escape bytes of
// 0-255 each, terminated by a byte below 255.
const tokenNibbleMax = 15

// Position-table parameters. The table has 2^hashLog single-slot buckets; the
// multiplicative hash is computed at hashLogWide bits and masked down. The
// 16-bit table variant is only valid for inputs shorter than limit16, where
// every probed position fits a uint16.
const (
	hashLog     = 14
	htSize      = 1 << hashLog
	htMask      = htSize - 1
	hashLogWide = 16

	// hashPrime is the 40-bit multiplier of the position hash; the low five
	// bytes of the 8-byte little-endian read at a position feed the hash.
	hashPrime = 889523592379

	limit16 = winSize + mfLimit - 1
)

// skipTrigger controls how fast the search step grows while probes keep
// failing: the step is the failed-probe counter right-shifted by this amount.
const skipTrigger = 6

// Acceleration bounds for the compressor search loop.
const (
	defaultAcceleration = 1
	maxAcceleration     = 65537
)

// maxBlockSize is the largest supported input length for one block
// (0x7E000000 bytes). CompressBlockBound returns 0 above it.
const maxBlockSize = 0x7E000000
