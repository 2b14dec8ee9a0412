// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import "sync"

// Package-level compression helpers reuse position tables through pools so
// repeated calls do not reallocate them.

var compressorPool = sync.Pool{
	New: func() any {
		return new(Compressor)
	},
}

// acquireCompressor returns a Compressor with a cleared position table.
func acquireCompressor() *Compressor {
	c := compressorPool.Get().(*Compressor)
	c.Reset()
	return c
}

func releaseCompressor(c *Compressor) {
	compressorPool.Put(c)
}

var table16Pool = sync.Pool{
	New: func() any {
		return new([htSize]uint16)
	},
}

// acquireTable16 returns a cleared 16-bit position table. Clearing is
// required: stale positions from a previous input could point past the end
// of the current one.
func acquireTable16() *[htSize]uint16 {
	t := table16Pool.Get().(*[htSize]uint16)
	clear(t[:])
	return t
}

func releaseTable16(t *[htSize]uint16) {
	table16Pool.Put(t)
}
