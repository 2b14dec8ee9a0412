// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// CompressBlockBound returns the worst-case compressed size of a block of n
// uncompressed bytes, or 0 when n exceeds the maximum supported block size.
// Compressing into a destination of at least this size never hits the
// does-not-fit sentinel.
func CompressBlockBound(n int) int {
	if n < 0 || n > maxBlockSize {
		return 0
	}

	return n + n/255 + 16
}

// Compress compresses src as one LZ4 block and returns the encoded bytes.
// opts may be nil (acceleration 1, no dictionary).
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	bound := CompressBlockBound(len(src))
	if bound == 0 {
		return nil, ErrSourceTooLarge
	}

	dst := make([]byte, bound)

	var (
		n   int
		err error
	)
	if len(opts.Dict) > 0 {
		n, err = CompressBlockDict(src, dst, opts.Dict, opts.Acceleration)
	} else {
		n, err = CompressBlock(src, dst, opts.Acceleration)
	}
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// CompressBlock compresses src into dst and returns the number of bytes
// written. A return of (0, nil) means dst is too small for the encoded
// block; allocate at least CompressBlockBound(len(src)) to rule that out.
// acceleration below 1 is clamped to 1; higher values trade ratio for speed.
func CompressBlock(src, dst []byte, acceleration int) (int, error) {
	if len(src) > maxBlockSize {
		return 0, ErrSourceTooLarge
	}

	acceleration = clampAcceleration(acceleration)

	// Short inputs use the narrow table; at limit16 and beyond 16-bit
	// positions could not address the block, so the wide table is mandatory.
	if len(src) < limit16 {
		table := acquireTable16()
		n := compressBlock16(table, src, dst, acceleration)
		releaseTable16(table)

		return n, nil
	}

	c := acquireCompressor()
	n := compressBlock32(&c.table, src, dst, acceleration)
	releaseCompressor(c)

	return n, nil
}

// CompressBlockDict compresses src into dst with matches allowed to
// reference dict, which must also be supplied at decompression. Only the
// last 64 KiB of dict are addressable. Same return contract as CompressBlock.
func CompressBlockDict(src, dst, dict []byte, acceleration int) (int, error) {
	if len(src) > maxBlockSize {
		return 0, ErrSourceTooLarge
	}

	acceleration = clampAcceleration(acceleration)

	if len(dict) > winSize {
		dict = dict[len(dict)-winSize:]
	}

	c := acquireCompressor()
	seedDictTable(&c.table, dict)
	n := compressBlockDict(&c.table, src, dst, dict, acceleration)
	releaseCompressor(c)

	return n, nil
}

// Compressor owns the position table used by block compression, so repeated
// calls reuse its memory instead of allocating per block. A Compressor is
// mutated in place by every call against it and must not be used by more
// than one goroutine at a time; independent Compressors are independent.
// The zero value is ready to use.
type Compressor struct {
	table [htSize]uint32
}

// Reset clears the position table. Each CompressBlock call resets the table
// itself; Reset only needs to be called to drop state eagerly.
func (c *Compressor) Reset() {
	clear(c.table[:])
}

// CompressBlock compresses src into dst using this compressor's table.
// Same contract as the package-level CompressBlock.
func (c *Compressor) CompressBlock(src, dst []byte, acceleration int) (int, error) {
	if len(src) > maxBlockSize {
		return 0, ErrSourceTooLarge
	}

	c.Reset()
	return compressBlock32(&c.table, src, dst, clampAcceleration(acceleration)), nil
}

// CompressBlockDict compresses src into dst with matches allowed to
// reference dict. Same contract as the package-level CompressBlockDict.
func (c *Compressor) CompressBlockDict(src, dst, dict []byte, acceleration int) (int, error) {
	if len(src) > maxBlockSize {
		return 0, ErrSourceTooLarge
	}

	if len(dict) > winSize {
		dict = dict[len(dict)-winSize:]
	}

	c.Reset()
	seedDictTable(&c.table, dict)

	return compressBlockDict(&c.table, src, dst, dict, clampAcceleration(acceleration)), nil
}

func clampAcceleration(acceleration int) int {
	return min(max(acceleration, defaultAcceleration), maxAcceleration)
}
