// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// copyMatch copies length bytes within dst from position ref to position di.
// Bounds must already be validated by the caller. When the distance is
// shorter than the length the regions overlap and the built-in copy cannot
// be used directly: each pass below replicates the bytes written so far, so
// the copied period doubles until the run is complete (correct for repeats
// with period < 8 and cheaper than a byte loop).
func copyMatch(dst []byte, di, ref, length int) {
	if di-ref >= length {
		copy(dst[di:di+length], dst[ref:ref+length])
		return
	}

	for length > 0 {
		n := copy(dst[di:di+length], dst[ref:di])
		di += n
		length -= n
	}
}
