// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import (
	"errors"
	"fmt"
)

// Sentinel errors for compression and decompression.
var (
	// ErrEmptyInput is returned when the input slice or stream is empty.
	ErrEmptyInput = errors.New("empty input")
	// ErrInputOverrun is returned when the decoder reads past the end of the
	// compressed input (truncated or malformed data).
	ErrInputOverrun = errors.New("input overrun")
	// ErrOutputOverrun is returned when the decoder would write past the output buffer.
	ErrOutputOverrun = errors.New("output overrun")
	// ErrOffsetOutOfRange is returned when a back-reference points before the
	// addressable window (output start minus dictionary size).
	ErrOffsetOutOfRange = errors.New("match offset out of range")
	// ErrOptionsRequired is returned when Decompress is called with nil options (OutLen is required).
	ErrOptionsRequired = errors.New("options required: OutLen must be set")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
	// ErrSourceTooLarge is returned when the uncompressed input exceeds the
	// maximum supported block size.
	ErrSourceTooLarge = errors.New("source exceeds maximum block size")
)

// CorruptError reports that decoding failed, recording how many compressed
// bytes had been consumed when the failure was detected. It wraps one of the
// sentinel errors above, so errors.Is works against both:
//
//	var ce *lz4.CorruptError
//	if errors.As(err, &ce) { log(ce.Offset) }
//	if errors.Is(err, lz4.ErrOffsetOutOfRange) { ... }
type CorruptError struct {
	// Offset is the compressed-stream position at which decoding stopped.
	Offset int
	// Err is the specific failure: ErrInputOverrun, ErrOutputOverrun or
	// ErrOffsetOutOfRange.
	Err error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt lz4 block at input offset %d: %v", e.Offset, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }
