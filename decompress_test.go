package lz4

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDecompress_OptionsRequired(t *testing.T) {
	_, err := Decompress([]byte{0x00}, nil)
	if !errors.Is(err, ErrOptionsRequired) {
		t.Fatalf("expected ErrOptionsRequired, got %v", err)
	}

	_, err = DecompressFromReader(strings.NewReader("\x00"), nil)
	if !errors.Is(err, ErrOptionsRequired) {
		t.Fatalf("expected ErrOptionsRequired (reader), got %v", err)
	}

	_, err = Decompress([]byte{0x00}, &DecompressOptions{OutLen: -1})
	if !errors.Is(err, ErrOptionsRequired) {
		t.Fatalf("expected ErrOptionsRequired for negative OutLen, got %v", err)
	}
}

func TestDecompress_EmptyInput(t *testing.T) {
	_, err := Decompress(nil, DefaultDecompressOptions(0))
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestDecompress_TruncatedInputAlwaysFails(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789abcdef"), 256)
	cmp := mustCompress(t, data)

	for cut := 1; cut < len(cmp); cut++ {
		truncated := cmp[:len(cmp)-cut]
		// Every cut must fail: even one landing on a sequence boundary leaves
		// a stream that cannot produce the declared length.
		_, decErr := Decompress(truncated, DefaultDecompressOptions(len(data)))
		if decErr == nil {
			t.Fatalf("truncation by %d went unnoticed", cut)
		}

		var ce *CorruptError
		if !errors.As(decErr, &ce) {
			t.Fatalf("cut=%d: expected *CorruptError, got %v", cut, decErr)
		}
		if ce.Offset < 0 || ce.Offset > len(truncated) {
			t.Fatalf("cut=%d: reported offset %d outside truncated input of %d bytes",
				cut, ce.Offset, len(truncated))
		}
	}
}

func TestDecompress_ShortBlockAgainstDeclaredLength(t *testing.T) {
	// A well-formed block producing fewer bytes than declared is corrupt in
	// known-length mode; only an exact fill succeeds.
	data := []byte("exactly this much")
	cmp := mustCompress(t, data)

	_, err := Decompress(cmp, DefaultDecompressOptions(len(data)+1))
	if !errors.Is(err, ErrInputOverrun) {
		t.Fatalf("expected ErrInputOverrun for short block, got %v", err)
	}

	var ce *CorruptError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CorruptError, got %T", err)
	}

	_, err = DecompressInto(cmp, make([]byte, len(data)+1))
	if !errors.Is(err, ErrInputOverrun) {
		t.Fatalf("expected ErrInputOverrun from DecompressInto, got %v", err)
	}
}

func TestDecompress_OutLenTooSmall(t *testing.T) {
	data := bytes.Repeat([]byte("AABBCCDDEEFF"), 512)
	cmp := mustCompress(t, data)

	_, err := Decompress(cmp, DefaultDecompressOptions(len(data)-1))
	if err == nil {
		t.Fatal("expected decompression error with too small OutLen")
	}
	if !errors.Is(err, ErrOutputOverrun) {
		t.Fatalf("unexpected error for too small OutLen: %v", err)
	}
}

func TestDecompressFromReader_MaxInputSize(t *testing.T) {
	data := bytes.Repeat([]byte("xyz"), 200)
	cmp := mustCompress(t, data)

	opts := DefaultDecompressOptions(len(data))
	opts.MaxInputSize = len(cmp) - 1
	_, err := DecompressFromReader(bytes.NewReader(cmp), opts)
	if !errors.Is(err, ErrInputTooLarge) {
		t.Fatalf("expected ErrInputTooLarge, got %v", err)
	}
}

// zeroReader never ends; it stands in for a stream of unbounded length.
type zeroReader struct{ read int }

func (z *zeroReader) Read(p []byte) (int, error) {
	z.read += len(p)
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func TestDecompressFromReader_UnboundedStreamStopsAtLimit(t *testing.T) {
	opts := DefaultDecompressOptions(64)
	opts.MaxInputSize = 1 << 10

	src := &zeroReader{}
	_, err := DecompressFromReader(src, opts)
	if !errors.Is(err, ErrInputTooLarge) {
		t.Fatalf("expected ErrInputTooLarge, got %v", err)
	}

	// Reading must stop just past the cap instead of buffering forever.
	// io.ReadAll may over-ask by its chunk size but not by orders of magnitude.
	if src.read > opts.MaxInputSize+(1<<16) {
		t.Fatalf("read %d bytes from the stream for a %d-byte cap", src.read, opts.MaxInputSize)
	}
}

func TestDecompressInto_ReusesCallerBuffer(t *testing.T) {
	data := bytes.Repeat([]byte("decode-into"), 256)
	cmp := mustCompress(t, data)

	dst := make([]byte, len(data))
	out, err := DecompressInto(cmp, dst)
	if err != nil {
		t.Fatalf("DecompressInto failed: %v", err)
	}

	if !bytes.Equal(out, data) {
		t.Fatal("decoded output mismatch")
	}
	if len(out) > 0 && &out[0] != &dst[0] {
		t.Fatal("DecompressInto should return a slice over the provided destination buffer")
	}
}

func TestDecompressInto_BufferTooSmall(t *testing.T) {
	data := bytes.Repeat([]byte("small-buffer"), 128)
	cmp := mustCompress(t, data)

	_, err := DecompressInto(cmp, make([]byte, len(data)-1))
	if !errors.Is(err, ErrOutputOverrun) {
		t.Fatalf("expected ErrOutputOverrun, got %v", err)
	}
}

func TestDecompressBlock_RejectsBadOffsets(t *testing.T) {
	cases := []struct {
		name string
		src  []byte
	}{
		// 4 literals then a match whose offset is zero.
		{name: "zero-offset", src: []byte{0x40, 'a', 'b', 'c', 'd', 0x00, 0x00, 0x50, 'e', 'f', 'g', 'h', 'i'}},
		// 4 literals then a match reaching before the output start.
		{name: "offset-before-start", src: []byte{0x40, 'a', 'b', 'c', 'd', 0x05, 0x00, 0x50, 'e', 'f', 'g', 'h', 'i'}},
		// Match with a 64 KiB offset against an empty window.
		{name: "offset-max", src: []byte{0x04, 0xFF, 0xFF, 0x50, 'e', 'f', 'g', 'h', 'i'}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecompressBlock(tc.src, make([]byte, 64))
			if !errors.Is(err, ErrOffsetOutOfRange) {
				t.Fatalf("expected ErrOffsetOutOfRange, got %v", err)
			}

			var ce *CorruptError
			if !errors.As(err, &ce) {
				t.Fatalf("expected *CorruptError, got %T", err)
			}
		})
	}
}

func TestDecompressBlock_RejectsMatchTerminatedStream(t *testing.T) {
	// 4 literals and a match, then nothing: valid blocks end with literals.
	src := []byte{0x41, 'a', 'b', 'c', 'd', 0x04, 0x00}

	_, err := DecompressBlock(src, make([]byte, 64))
	if !errors.Is(err, ErrInputOverrun) {
		t.Fatalf("expected ErrInputOverrun, got %v", err)
	}
}

func TestDecompressBlock_CanonicalStreams(t *testing.T) {
	cases := []struct {
		name string
		src  []byte
		want []byte
	}{
		{
			name: "empty-block",
			src:  []byte{0x00},
			want: []byte{},
		},
		{
			// One literal zero, a 506-byte run of offset 1, five literal zeros.
			name: "zero-run-512",
			src:  []byte{0x1F, 0x00, 0x01, 0x00, 0xFF, 0xE8, 0x50, 0x00, 0x00, 0x00, 0x00, 0x00},
			want: make([]byte, 512),
		},
		{
			// "abc" repeated via an overlapping offset-3 match.
			name: "abc-period-3",
			src:  []byte{0x3F, 'a', 'b', 'c', 0x03, 0x00, 0x07, 0x50, 'c', 'a', 'b', 'c', 'a'},
			want: append(bytes.Repeat([]byte("abc"), 11), 'a'),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Decompress(tc.src, DefaultDecompressOptions(len(tc.want)))
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if !bytes.Equal(out, tc.want) {
				t.Fatalf("decoded mismatch:\n got % x\nwant % x", out, tc.want)
			}
		})
	}
}

func TestDecompress_IdempotentDecode(t *testing.T) {
	data := bytes.Repeat([]byte("idempotent decode "), 512)
	cmp := mustCompress(t, data)

	first, err := Decompress(cmp, DefaultDecompressOptions(len(data)))
	if err != nil {
		t.Fatalf("first Decompress failed: %v", err)
	}

	second, err := Decompress(cmp, DefaultDecompressOptions(len(data)))
	if err != nil {
		t.Fatalf("second Decompress failed: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatal("decoding the same buffer twice produced different output")
	}
}

func TestDecompressBlockPartial(t *testing.T) {
	data := bytes.Repeat([]byte("partial decode payload "), 512)
	cmp := mustCompress(t, data)

	for _, target := range []int{0, 1, 5, 100, len(data) / 2, len(data) - 1, len(data)} {
		dst := make([]byte, target)
		n, err := DecompressBlockPartial(cmp, dst)
		if err != nil {
			t.Fatalf("DecompressBlockPartial(target=%d) failed: %v", target, err)
		}
		if n != target {
			t.Fatalf("DecompressBlockPartial(target=%d) produced %d bytes", target, n)
		}
		if !bytes.Equal(dst[:n], data[:n]) {
			t.Fatalf("partial prefix mismatch at target=%d", target)
		}
	}

	// A destination larger than the block decodes it fully.
	dst := make([]byte, len(data)+64)
	n, err := DecompressBlockPartial(cmp, dst)
	if err != nil {
		t.Fatalf("DecompressBlockPartial(oversized) failed: %v", err)
	}
	if n != len(data) || !bytes.Equal(dst[:n], data) {
		t.Fatalf("oversized partial decode mismatch: n=%d", n)
	}
}

func TestCopyMatch(t *testing.T) {
	t.Run("non-overlapping", func(t *testing.T) {
		dst := []byte("abcdefghXXXXXXXX")
		copyMatch(dst, 8, 0, 4)
		if got, want := string(dst), "abcdefghabcdXXXX"; got != want {
			t.Fatalf("unexpected dst: got %q want %q", got, want)
		}
	})

	t.Run("overlapping-short-period", func(t *testing.T) {
		dst := []byte{'A', 'B', 'C', 0, 0, 0, 0, 0}
		copyMatch(dst, 3, 0, 5)
		if got, want := string(dst), "ABCABCAB"; got != want {
			t.Fatalf("unexpected dst: got %q want %q", got, want)
		}
	})

	t.Run("distance-one-run", func(t *testing.T) {
		dst := make([]byte, 64)
		dst[0] = 0x7E
		copyMatch(dst, 1, 0, 63)
		if !bytes.Equal(dst, bytes.Repeat([]byte{0x7E}, 64)) {
			t.Fatal("distance-1 replication mismatch")
		}
	})
}

func FuzzDecompressBlock(f *testing.F) {
	f.Add([]byte{0x00}, 64)
	f.Add([]byte{0x1F, 0x00, 0x01, 0x00, 0xFF, 0xE8, 0x50, 0x00, 0x00, 0x00, 0x00, 0x00}, 512)
	f.Add([]byte{0xF0, 0xFF, 0xFF, 0x00}, 1024)
	f.Add([]byte{0x40, 'a', 'b', 'c', 'd', 0x05, 0x00}, 32)

	f.Fuzz(func(t *testing.T, src []byte, outLen int) {
		if outLen < 0 || outLen > 1<<20 {
			return
		}

		// Must never panic or touch memory outside dst, whatever src holds.
		dst := make([]byte, outLen)
		n, err := DecompressBlock(src, dst)
		if err == nil && n > outLen {
			t.Fatalf("reported %d bytes into a %d-byte buffer", n, outLen)
		}

		if _, err := DecompressBlockPartial(src, dst); err != nil {
			var ce *CorruptError
			if !errors.As(err, &ce) {
				t.Fatalf("partial decode returned non-corrupt error %v", err)
			}
		}
	})
}
