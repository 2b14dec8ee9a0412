// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// decodeBlock replays an LZ4 block from src into dst, one token at a time,
// until the compressed input is exhausted. Matches may reach back into dict,
// which logically precedes dst; a match starting in the dictionary and
// running past its end is performed as a split copy. Every read and write is
// bounds-checked before it happens: a hostile src can never touch memory
// outside the given buffers.
//
// In partial mode decoding stops cleanly once dst is full, clamping the last
// literal or match copy; otherwise producing more than len(dst) bytes is an
// error. Truncated input is an error in both modes, except that a valid
// block always ends with a literal-only sequence consuming src exactly.
//
// Returns bytes produced, compressed bytes consumed, and the failure
// sentinel if the block is malformed.
func decodeBlock(dst, src, dict []byte, partial bool) (di, si int, err error) {
	dn := len(dict)

	for si < len(src) {
		tok := src[si]
		si++

		// Literal run.
		lLen := int(tok >> 4)
		if lLen == tokenNibbleMax {
			lLen, si, err = readExtension(src, si, lLen)
			if err != nil {
				return di, si, err
			}
		}

		if lLen > 0 {
			switch {
			case lLen > len(src)-si:
				return di, si, ErrInputOverrun

			case lLen > len(dst)-di:
				if !partial {
					return di, si, ErrOutputOverrun
				}

				n := len(dst) - di
				copy(dst[di:], src[si:si+n])

				return di + n, si + n, nil

			default:
				copy(dst[di:di+lLen], src[si:si+lLen])
				si += lLen
				di += lLen
			}
		}

		if si == len(src) {
			// Terminal literal-only sequence.
			return di, si, nil
		}

		if partial && di == len(dst) {
			return di, si, nil
		}

		// Back-reference offset, 2 bytes little-endian. The source position
		// must stay inside the addressable window: decoded output plus the
		// configured dictionary.
		if len(src)-si < 2 {
			return di, si, ErrInputOverrun
		}

		offset := int(src[si]) | int(src[si+1])<<8
		si += 2

		if offset == 0 || offset > di+dn {
			return di, si, ErrOffsetOutOfRange
		}

		// Match length.
		mLen := int(tok & tokenNibbleMax)
		if mLen == tokenNibbleMax {
			mLen, si, err = readExtension(src, si, mLen)
			if err != nil {
				return di, si, err
			}
		}
		mLen += minMatch

		clamped := false
		if mLen > len(dst)-di {
			if !partial {
				return di, si, ErrOutputOverrun
			}

			mLen = len(dst) - di
			clamped = true
		}

		// Match copy. A source position before the block start resolves into
		// the dictionary; the portion crossing back into the block is copied
		// second, overlap-aware.
		ref := di - offset
		if ref < 0 {
			n := min(mLen, -ref)
			copy(dst[di:di+n], dict[dn+ref:dn+ref+n])
			di += n
			mLen -= n
			ref = 0
		}

		if mLen > 0 {
			copyMatch(dst, di, ref, mLen)
			di += mLen
		}

		if clamped {
			return di, si, nil
		}
	}

	// The stream ended right after a match; a valid block always ends with a
	// literal-only sequence.
	return di, si, ErrInputOverrun
}

// readExtension decodes the escape bytes continuing a length nibble of 15:
// each byte adds 0-255 and a byte below 255 terminates the run.
func readExtension(src []byte, si, v int) (int, int, error) {
	for {
		if si >= len(src) {
			return 0, si, ErrInputOverrun
		}

		b := src[si]
		si++
		v += int(b)

		if b < 255 {
			return v, si, nil
		}

		// No real length survives this bound; stop before overflow.
		if v > maxBlockSize {
			return 0, si, ErrInputOverrun
		}
	}
}
