// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import "encoding/binary"

// Dictionary-aware block compressor. Positions live in one logical
// coordinate space: the dictionary occupies [0, len(dict)) and the block
// follows contiguously, so a physically contiguous prefix and a separate
// external buffer are addressed identically and table entries never need
// rewriting when the caller switches between the two. Matches may start in
// the dictionary and run across the boundary into the block.

// compressBlockDict compresses src into dst with matches allowed to
// reference dict. The table must already be seeded with the dictionary
// positions (seedDictTable) and dict clamped to the addressable 64 KiB.
func compressBlockDict(table *[htSize]uint32, src, dst, dict []byte, acceleration int) int {
	dn := len(dict)

	var di, anchor int

	sn := len(src) - mfLimit
	if sn <= 0 {
		return lastLiteralsResult(emitLastLiterals(dst, 0, src))
	}

	si := 0
	searchMatchNb := acceleration << skipTrigger

	for {
		step := 1
		fwd := si

		var ref int
		for {
			si = fwd
			fwd = si + step
			step = searchMatchNb >> skipTrigger
			searchMatchNb++

			if fwd > sn {
				return lastLiteralsResult(emitLastLiterals(dst, di, src[anchor:]))
			}

			cur := dn + si
			h := blockHash(binary.LittleEndian.Uint64(src[si:]))
			ref = int(table[h])
			table[h] = uint32(cur) //nolint:gosec // G115: logical positions bounded by maxBlockSize + 64 KiB

			if ref < cur && cur-ref <= winMask &&
				dictLoad32(src, dict, ref) == binary.LittleEndian.Uint32(src[si:]) {
				break
			}
		}

		// Catch-up may walk the reference back across the dictionary boundary.
		for si > anchor && ref > 0 && src[si-1] == dictByte(src, dict, ref-1) {
			si--
			ref--
		}

		offset := dn + si - ref
		extra := extendMatch(src, dict, ref+minMatch, si+minMatch, len(src)-lastLiterals)

		di = emitSequence(dst, di, src[anchor:si], offset, extra)
		if di < 0 {
			return 0
		}

		si += minMatch + extra
		anchor = si
		if si >= sn {
			return lastLiteralsResult(emitLastLiterals(dst, di, src[anchor:]))
		}

		table[blockHash(binary.LittleEndian.Uint64(src[si-2:]))] = uint32(dn + si - 2) //nolint:gosec // G115: logical positions bounded
	}
}
