// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import "encoding/binary"

// Greedy single-pass block compressors. Three specializations share the same
// structure and are selected once per call, outside the hot loop: a 16-bit
// position table for short inputs, a 32-bit table for everything else, and a
// dictionary-aware variant (compress_dict.go).
//
// Each core returns the number of bytes written to dst, or 0 when dst is too
// small to hold the encoded block. Capacity is verified per sequence, with
// the exact encoded size including escape bytes, before anything is written.

// sequenceSize returns the exact encoded size of one sequence: token,
// length escapes, lLen literal bytes, 2-byte offset and the escapes of a
// match of minMatch+extra bytes.
func sequenceSize(lLen, extra int) int {
	n := 1 + lLen + 2
	if lLen >= tokenNibbleMax {
		n += 1 + (lLen-tokenNibbleMax)/255
	}

	if extra >= tokenNibbleMax {
		n += 1 + (extra-tokenNibbleMax)/255
	}

	return n
}

// emitExtension writes the escape bytes continuing a length nibble of 15:
// full 255 bytes followed by a terminating byte below 255.
func emitExtension(dst []byte, di, v int) int {
	for ; v >= 255; v -= 255 {
		dst[di] = 255
		di++
	}

	dst[di] = byte(v)
	return di + 1
}

// emitSequence writes one sequence at dst[di:]: the literal run, the 2-byte
// little-endian back-reference offset and the match length minMatch+extra.
// Returns the new write position, or -1 when dst cannot hold the sequence.
func emitSequence(dst []byte, di int, literals []byte, offset, extra int) int {
	lLen := len(literals)
	if len(dst)-di < sequenceSize(lLen, extra) {
		return -1
	}

	dst[di] = byte(min(lLen, tokenNibbleMax))<<4 | byte(min(extra, tokenNibbleMax))
	di++

	if lLen >= tokenNibbleMax {
		di = emitExtension(dst, di, lLen-tokenNibbleMax)
	}

	di += copy(dst[di:], literals)

	dst[di] = byte(offset)
	dst[di+1] = byte(offset >> 8)
	di += 2

	if extra >= tokenNibbleMax {
		di = emitExtension(dst, di, extra-tokenNibbleMax)
	}

	return di
}

// emitLastLiterals writes the terminal literal-only sequence and returns the
// total bytes written, or -1 when dst cannot hold it. Every block ends this
// way, including the empty block (a single zero token).
func emitLastLiterals(dst []byte, di int, literals []byte) int {
	lLen := len(literals)

	n := 1 + lLen
	if lLen >= tokenNibbleMax {
		n += 1 + (lLen-tokenNibbleMax)/255
	}

	if len(dst)-di < n {
		return -1
	}

	dst[di] = byte(min(lLen, tokenNibbleMax)) << 4
	di++

	if lLen >= tokenNibbleMax {
		di = emitExtension(dst, di, lLen-tokenNibbleMax)
	}

	return di + copy(dst[di:], literals)
}

// compressBlock16 compresses src into dst with a 16-bit position table.
// Callers must guarantee len(src) < limit16 so every probed position fits a
// uint16; the dispatcher in compress.go enforces this before the main loop.
func compressBlock16(table *[htSize]uint16, src, dst []byte, acceleration int) int {
	var di, anchor int

	sn := len(src) - mfLimit
	if sn <= 0 {
		// Too short to contain any match.
		return lastLiteralsResult(emitLastLiterals(dst, 0, src))
	}

	si := 0
	searchMatchNb := acceleration << skipTrigger

	for {
		// Scan forward for a 4-byte match, advancing by a step that grows as
		// probes keep failing. Every failed probe still records its position.
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

			h := blockHash(binary.LittleEndian.Uint64(src[si:]))
			ref = int(table[h])
			table[h] = uint16(si) //nolint:gosec // G115: si bounded by limit16

			if ref < si && binary.LittleEndian.Uint32(src[ref:]) == binary.LittleEndian.Uint32(src[si:]) {
				break
			}
		}

		// Catch-up: absorb the tail of the pending literal run into the match.
		for si > anchor && ref > 0 && src[si-1] == src[ref-1] {
			si--
			ref--
		}

		offset := si - ref
		extra := matchLen(src[ref+minMatch:], src[si+minMatch:len(src)-lastLiterals])

		di = emitSequence(dst, di, src[anchor:si], offset, extra)
		if di < 0 {
			return 0
		}

		si += minMatch + extra
		anchor = si
		if si >= sn {
			return lastLiteralsResult(emitLastLiterals(dst, di, src[anchor:]))
		}

		// Prime the table just behind the match end before scanning on.
		table[blockHash(binary.LittleEndian.Uint64(src[si-2:]))] = uint16(si - 2) //nolint:gosec // G115: si bounded by limit16
	}
}

// compressBlock32 compresses src into dst with a 32-bit position table;
// required for inputs at or above limit16, where offsets must additionally
// be validated against the 64 KiB window.
func compressBlock32(table *[htSize]uint32, src, dst []byte, acceleration int) int {
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

			h := blockHash(binary.LittleEndian.Uint64(src[si:]))
			ref = int(table[h])
			table[h] = uint32(si) //nolint:gosec // G115: si bounded by maxBlockSize

			if ref < si && si-ref <= winMask &&
				binary.LittleEndian.Uint32(src[ref:]) == binary.LittleEndian.Uint32(src[si:]) {
				break
			}
		}

		for si > anchor && ref > 0 && src[si-1] == src[ref-1] {
			si--
			ref--
		}

		offset := si - ref
		extra := matchLen(src[ref+minMatch:], src[si+minMatch:len(src)-lastLiterals])

		di = emitSequence(dst, di, src[anchor:si], offset, extra)
		if di < 0 {
			return 0
		}

		si += minMatch + extra
		anchor = si
		if si >= sn {
			return lastLiteralsResult(emitLastLiterals(dst, di, src[anchor:]))
		}

		table[blockHash(binary.LittleEndian.Uint64(src[si-2:]))] = uint32(si - 2) //nolint:gosec // G115: si bounded by maxBlockSize
	}
}

// lastLiteralsResult maps the emitter's does-not-fit marker to the public
// 0 sentinel.
func lastLiteralsResult(n int) int {
	return max(n, 0)
}
