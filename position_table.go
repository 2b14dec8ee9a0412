// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import "encoding/binary"

// The position table maps a hash of the 4-byte sequence at a position to the
// most recent position where that sequence occurred. Each bucket holds a
// single slot: a new insertion evicts the previous one. Missed matches only
// cost ratio, never correctness, because every candidate is re-verified
// against the actual bytes.
//
// Two width variants exist. Inputs shorter than limit16 use a uint16 table
// (half the memory, better cache locality); anything longer must use the
// uint32 table because 16-bit positions cannot address it.

// blockHash hashes the low five bytes of an 8-byte little-endian read into a
// table bucket. The hash is computed at hashLogWide bits and masked down to
// the bucket count.
func blockHash(x uint64) uint32 {
	return uint32(((x<<24)*hashPrime)>>(64-hashLogWide)) & htMask
}

// seedDictTable inserts the dictionary's 4-byte sequences into the table at
// their logical positions, sampling every third byte. The dictionary must
// already be clamped to the addressable window.
func seedDictTable(table *[htSize]uint32, dict []byte) {
	for p := 0; p+8 <= len(dict); p += 3 {
		table[blockHash(binary.LittleEndian.Uint64(dict[p:]))] = uint32(p) //nolint:gosec // G115: dict clamped to 64 KiB
	}
}
