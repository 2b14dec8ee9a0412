// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import "io"

// Decompress decompresses one LZ4 block from src into a buffer of length
// opts.OutLen and returns the decoded bytes. The declared length is strict:
// a block producing anything other than exactly opts.OutLen bytes fails with
// a *CorruptError, so a truncated stream can never pass as a short success.
// Returns ErrOptionsRequired if opts is nil; ErrEmptyInput if src is empty.
// If opts.Dict is set it must be the dictionary the block was compressed
// with.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil || opts.OutLen < 0 {
		return nil, ErrOptionsRequired
	}

	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	dst := make([]byte, opts.OutLen)

	n, err := DecompressBlockDict(src, dst, opts.Dict)
	if err != nil {
		return nil, err
	}

	if n != opts.OutLen {
		return nil, &CorruptError{Offset: len(src), Err: ErrInputOverrun}
	}

	return dst, nil
}

// DecompressInto decompresses src into the caller-provided dst (no per-call
// output allocation) and returns the decoded slice over dst. len(dst) is the
// declared output length and is strict, as with Decompress.
func DecompressInto(src, dst []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	n, err := DecompressBlock(src, dst)
	if err != nil {
		return nil, err
	}

	if n != len(dst) {
		return nil, &CorruptError{Offset: len(src), Err: ErrInputOverrun}
	}

	return dst, nil
}

// DecompressFromReader buffers one compressed block from r and decompresses
// it with Decompress. A positive opts.MaxInputSize caps the read: the stream
// is consumed at most one byte past the cap before ErrInputTooLarge is
// returned, so an oversized or unbounded stream is never fully buffered.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}

	if opts.MaxInputSize > 0 {
		r = io.LimitReader(r, int64(opts.MaxInputSize)+1)
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return Decompress(src, opts)
}

// DecompressBlock decompresses src into dst and returns the number of bytes
// produced. The whole of dst is usable capacity; a valid block producing
// more than len(dst) bytes fails with ErrOutputOverrun. Malformed input
// fails with a *CorruptError recording the input offset at which decoding
// stopped; dst and src are never accessed out of bounds.
func DecompressBlock(src, dst []byte) (int, error) {
	return DecompressBlockDict(src, dst, nil)
}

// DecompressBlockDict decompresses src into dst with matches allowed to
// reference dict (the dictionary the block was compressed with). Only the
// last 64 KiB of dict are addressable. Same contract as DecompressBlock.
func DecompressBlockDict(src, dst, dict []byte) (int, error) {
	if len(dict) > winSize {
		dict = dict[len(dict)-winSize:]
	}

	di, si, err := decodeBlock(dst, src, dict, false)
	if err != nil {
		return 0, &CorruptError{Offset: si, Err: err}
	}

	return di, nil
}

// DecompressBlockPartial decompresses src into dst, stopping cleanly once
// dst is full even if that lands mid-sequence; the final literal or match
// copy is clamped to the remaining capacity. Use it to recover the leading
// portion of a block without allocating for the whole of it.
func DecompressBlockPartial(src, dst []byte) (int, error) {
	di, si, err := decodeBlock(dst, src, nil, true)
	if err != nil {
		return 0, &CorruptError{Offset: si, Err: err}
	}

	return di, nil
}
