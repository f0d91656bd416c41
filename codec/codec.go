package codec

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
)

// Type identifies a compression codec. The values are stable on disk.
type Type uint8

const (
	// None stores payloads verbatim; any level is accepted and ignored.
	None Type = iota
	// ZLIB is DEFLATE with a zlib envelope; levels 0 (stored) through 9.
	ZLIB
	// GZIP is DEFLATE with a gzip envelope; levels 0 (stored) through 9.
	GZIP
)

var (
	// ErrUnknownType indicates a type byte that names no codec.
	ErrUnknownType = errors.New("codec: unknown compression type")
	// ErrCorrupt indicates an undecodable payload or a short decode.
	ErrCorrupt = errors.New("codec: corrupt compressed payload")
	// ErrBufferTooSmall indicates the payload decodes beyond the expected length.
	ErrBufferTooSmall = errors.New("codec: decompressed payload exceeds expected length")
)

// String returns the canonical codec name.
func (t Type) String() string {
	switch t {
	case None:
		return "NONE"
	case ZLIB:
		return "ZLIB"
	case GZIP:
		return "GZIP"
	default:
		return fmt.Sprintf("TYPE(%d)", uint8(t))
	}
}

// Compress encodes data with the codec at the given level. Level 0 stores
// without compression; levels outside the codec's range are an error.
func Compress(t Type, data []byte, level int) ([]byte, error) {
	switch t {
	case None:
		out := make([]byte, len(data))
		copy(out, data)
		return out, nil
	case ZLIB:
		var buf bytes.Buffer
		w, err := zlib.NewWriterLevel(&buf, level)
		if err != nil {
			return nil, fmt.Errorf("codec: zlib level %d: %w", level, err)
		}
		if _, err = w.Write(data); err != nil {
			return nil, fmt.Errorf("codec: zlib write: %w", err)
		}
		if err = w.Close(); err != nil {
			return nil, fmt.Errorf("codec: zlib close: %w", err)
		}
		return buf.Bytes(), nil
	case GZIP:
		var buf bytes.Buffer
		w, err := gzip.NewWriterLevel(&buf, level)
		if err != nil {
			return nil, fmt.Errorf("codec: gzip level %d: %w", level, err)
		}
		if _, err = w.Write(data); err != nil {
			return nil, fmt.Errorf("codec: gzip write: %w", err)
		}
		if err = w.Close(); err != nil {
			return nil, fmt.Errorf("codec: gzip close: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("type %d: %w", uint8(t), ErrUnknownType)
	}
}

// Decompress decodes data and verifies it yields exactly expected bytes.
func Decompress(t Type, data []byte, expected int) ([]byte, error) {
	var r io.Reader
	switch t {
	case None:
		r = bytes.NewReader(data)
	case ZLIB:
		zr, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("zlib header: %v: %w", err, ErrCorrupt)
		}
		defer zr.Close()
		r = zr
	case GZIP:
		gr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("gzip header: %v: %w", err, ErrCorrupt)
		}
		defer gr.Close()
		r = gr
	default:
		return nil, fmt.Errorf("type %d: %w", uint8(t), ErrUnknownType)
	}

	// Read one byte past the promise to detect oversized payloads.
	out := make([]byte, expected)
	n, err := io.ReadFull(r, out)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("decode: %v: %w", err, ErrCorrupt)
	}
	if n < expected {
		return nil, fmt.Errorf("decoded %d of %d bytes: %w", n, expected, ErrCorrupt)
	}
	var probe [1]byte
	if m, _ := r.Read(probe[:]); m > 0 {
		return nil, fmt.Errorf("expected %d bytes: %w", expected, ErrBufferTooSmall)
	}
	return out, nil
}
