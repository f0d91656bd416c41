package seq

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/strseq/alphabet"
	"github.com/katalvlaran/strseq/codec"
)

// sgvMagic opens every compressed sequence file.
const sgvMagic = "SGV0"

// SaveCompressed writes the sequence to path in the SGV0 container:
//
//	"SGV0" | codec(u8) | alphabet identity(u8) | numVectors(i32le) | maxLen(i32le)
//	then per vector: compressedBytes(i32le) | uncompressedElems(i32le) | payload
//
// Vectors pass through the on-the-fly preprocessors when those are enabled.
// level follows the codec package (0 = store). Fails with ErrSubsetActive
// under an active subset.
func (s *Sequence[T]) SaveCompressed(path string, ct codec.Type, level int) error {
	if s.subsets.HasSubsets() {
		return fmt.Errorf("save compressed: %w", ErrSubsetActive)
	}
	n := s.Size()
	if n == 0 {
		return fmt.Errorf("save compressed: empty sequence: %w", ErrInvalidArgument)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save compressed: %w", err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	if _, err = w.WriteString(sgvMagic); err != nil {
		return fmt.Errorf("save compressed %q: %w", path, err)
	}
	header := []any{byte(ct), byte(s.alpha.Identity()), int32(n), int32(s.MaxLength())}
	for _, h := range header {
		if err = binary.Write(w, binary.LittleEndian, h); err != nil {
			return fmt.Errorf("save compressed %q: %w", path, err)
		}
	}

	for i := 0; i < n; i++ {
		vec, mustFree, gerr := s.Get(i)
		if gerr != nil {
			return fmt.Errorf("save compressed %q: vector %d: %w", path, i, gerr)
		}
		raw := encodeElems(vec)
		elems := len(vec)
		_ = s.Release(vec, i, mustFree)

		blob, cerr := codec.Compress(ct, raw, level)
		if cerr != nil {
			return fmt.Errorf("save compressed %q: vector %d: %w", path, i, cerr)
		}
		if err = binary.Write(w, binary.LittleEndian, int32(len(blob))); err != nil {
			return fmt.Errorf("save compressed %q: %w", path, err)
		}
		if err = binary.Write(w, binary.LittleEndian, int32(elems)); err != nil {
			return fmt.Errorf("save compressed %q: %w", path, err)
		}
		if _, err = w.Write(blob); err != nil {
			return fmt.Errorf("save compressed %q: %w", path, err)
		}
	}

	if err = w.Flush(); err != nil {
		return fmt.Errorf("save compressed %q: %w", path, err)
	}
	return f.Close()
}

// LoadCompressed populates the sequence from an SGV0 file written by
// SaveCompressed. With decompress=true every vector is inflated and the
// alphabet histogram rebuilt, restoring the pre-save state. With
// decompress=false the payloads are kept as-is: each stored vector becomes
// ceil(8/sizeof(T)) header elements (compressedBytes at byte offset 0,
// uncompressedElems at byte offset 4, both i32le) followed by the raw
// payload reinterpreted as elements. Atomic.
func (s *Sequence[T]) LoadCompressed(path string, decompress bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load compressed: %w", err)
	}
	defer f.Close()
	r := bufio.NewReader(f)

	var magic [4]byte
	if _, err = io.ReadFull(r, magic[:]); err != nil {
		return fmt.Errorf("load compressed %q: header: %w", path, ErrMalformedFormat)
	}
	if string(magic[:]) != sgvMagic {
		return fmt.Errorf("load compressed %q: bad magic %q: %w", path, magic[:], ErrMalformedFormat)
	}
	var ctB, idB byte
	var num, maxLen int32
	for _, dst := range []any{&ctB, &idB, &num, &maxLen} {
		if err = binary.Read(r, binary.LittleEndian, dst); err != nil {
			return fmt.Errorf("load compressed %q: header: %w", path, ErrMalformedFormat)
		}
	}
	if num <= 0 || maxLen <= 0 {
		return fmt.Errorf("load compressed %q: shape %dx%d: %w", path, num, maxLen, ErrMalformedFormat)
	}

	ct := codec.Type(ctB)
	a := alphabet.New(alphabet.Identity(idB))
	sz := symbolSize[T]()
	list := make([][]T, 0, num)
	for i := 0; i < int(num); i++ {
		var lenC, lenU int32
		if err = binary.Read(r, binary.LittleEndian, &lenC); err != nil {
			return fmt.Errorf("load compressed %q: vector %d: %w", path, i, ErrMalformedFormat)
		}
		if err = binary.Read(r, binary.LittleEndian, &lenU); err != nil {
			return fmt.Errorf("load compressed %q: vector %d: %w", path, i, ErrMalformedFormat)
		}
		if lenC < 0 || lenU < 0 {
			return fmt.Errorf("load compressed %q: vector %d: negative length: %w", path, i, ErrMalformedFormat)
		}
		payload := make([]byte, lenC)
		if _, err = io.ReadFull(r, payload); err != nil {
			return fmt.Errorf("load compressed %q: vector %d: %w", path, i, ErrMalformedFormat)
		}

		if decompress {
			raw, derr := codec.Decompress(ct, payload, int(lenU)*sz)
			if derr != nil {
				return fmt.Errorf("load compressed %q: vector %d: %w", path, i, derr)
			}
			vec := decodeElems[T](raw, int(lenU))
			for _, v := range vec {
				a.AddValue(int64(v))
			}
			list = append(list, vec)
			continue
		}

		offs := (8 + sz - 1) / sz
		buf := make([]byte, (offs+int(lenC))*sz)
		binary.LittleEndian.PutUint32(buf[0:4], uint32(lenC))
		binary.LittleEndian.PutUint32(buf[4:8], uint32(lenU))
		copy(buf[offs*sz:], payload)
		list = append(list, decodeElems[T](buf, offs+int(lenC)))
	}

	s.install(list, a, 0)
	return nil
}
