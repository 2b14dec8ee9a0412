// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import (
	"encoding/binary"
	"math/bits"
)

// matchLen returns the length of the common prefix of a and b, comparing
// 8-byte words and locating the first differing byte by its trailing zero
// count. The result is capped at the shorter slice.
func matchLen(a, b []byte) int {
	n := 0
	limit := min(len(a), len(b))

	for n+8 <= limit {
		x := binary.LittleEndian.Uint64(a[n:]) ^ binary.LittleEndian.Uint64(b[n:])
		if x != 0 {
			return n + bits.TrailingZeros64(x)>>3
		}

		n += 8
	}

	for n < limit && a[n] == b[n] {
		n++
	}

	return n
}

// extendMatch counts equal bytes between the reference starting at logical
// position ref (dictionary bytes occupy [0, len(dict)), block bytes follow
// contiguously) and the block at si, stopping at limit (block-relative).
// A reference beginning inside the dictionary may run across the boundary
// into the block itself.
func extendMatch(src, dict []byte, ref, si, limit int) int {
	dn := len(dict)
	n := 0

	if ref < dn {
		d := dict[ref:]
		if len(d) > limit-si {
			d = d[:limit-si]
		}

		n = matchLen(d, src[si:limit])
		if n < len(d) || si+n == limit {
			return n
		}
		// The whole dictionary tail matched; the reference continues at the
		// start of the block.
	}

	return n + matchLen(src[ref+n-dn:], src[si+n:limit])
}

// dictByte reads one byte from the logical stream formed by dict followed by src.
func dictByte(src, dict []byte, p int) byte {
	if p < len(dict) {
		return dict[p]
	}

	return src[p-len(dict)]
}

// dictLoad32 reads 4 bytes little-endian at logical position p of dict
// followed by src, assembling byte-by-byte when the read straddles the
// boundary.
func dictLoad32(src, dict []byte, p int) uint32 {
	dn := len(dict)
	switch {
	case p+4 <= dn:
		return binary.LittleEndian.Uint32(dict[p:])
	case p >= dn:
		return binary.LittleEndian.Uint32(src[p-dn:])
	}

	var v uint32
	for i := 3; i >= 0; i-- {
		v = v<<8 | uint32(dictByte(src, dict, p+i))
	}

	return v
}
