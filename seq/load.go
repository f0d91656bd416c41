package seq

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/katalvlaran/strseq/alphabet"
)

// asciiBlockSize is the read granularity of the counting pass.
const asciiBlockSize = 1 << 20

// ASCIIOptions configures LoadASCII.
//
// Fields:
//   - RemapToBin     — store compact indices instead of raw bytes; the
//     sequence then carries a secondary alphabet over the bin domain.
//   - BinaryAlphabet — identity of that secondary alphabet.
//   - Progress       — optional hook, called per loaded line with
//     (loaded, total).
type ASCIIOptions struct {
	RemapToBin     bool
	BinaryAlphabet alphabet.Identity
	Progress       func(done, total int64)
}

// DefaultASCIIOptions returns ASCIIOptions with RemapToBin off and the
// RawByte bin alphabet.
func DefaultASCIIOptions() ASCIIOptions {
	return ASCIIOptions{BinaryAlphabet: alphabet.RawByte}
}

// LoadASCII populates the sequence from a line-based file, one string per
// LF-terminated line; the final line need not terminate. Two passes: the
// first counts lines and the longest line, the second refills with blocks
// sized to the longest line, carrying bytes that span a block boundary. The
// whole load is atomic: on any failure the sequence is left untouched.
func (s *Sequence[T]) LoadASCII(path string, opts *ASCIIOptions) error {
	o := DefaultASCIIOptions()
	if opts != nil {
		o = *opts
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load ascii: %w", err)
	}
	defer f.Close()

	num, required, err := countLines(f)
	if err != nil {
		return fmt.Errorf("load ascii %q: %w", path, err)
	}
	if _, err = f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("load ascii %q: %w", path, err)
	}

	ascii := alphabet.New(s.alpha.Identity())
	bin := alphabet.New(o.BinaryAlphabet)
	list := make([][]T, 0, num)

	emit := func(line []byte) {
		vec := make([]T, len(line))
		if o.RemapToBin {
			for j, b := range line {
				v := ascii.ToBin(b)
				vec[j] = T(v)
				bin.AddValue(int64(v))
			}
		} else {
			for j, b := range line {
				vec[j] = T(b)
			}
		}
		ascii.AddToHistogram(line)
		list = append(list, vec)
		if o.Progress != nil {
			o.Progress(int64(len(list)), int64(num))
		}
	}

	buf := make([]byte, required)
	overflow := make([]byte, 0, required)
	for {
		n, rerr := f.Read(buf)
		start := 0
		for i := 0; i < n; i++ {
			if buf[i] != '\n' {
				continue
			}
			line := overflow
			line = append(line, buf[start:i]...)
			emit(line)
			overflow = overflow[:0]
			start = i + 1
		}
		overflow = append(overflow, buf[start:n]...)
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return fmt.Errorf("load ascii %q: %w", path, rerr)
		}
	}
	// a non-empty unterminated tail is still one line
	if len(overflow) > 0 {
		emit(overflow)
	}

	if !ascii.CheckAlphabetSize() || !ascii.CheckAlphabet() {
		return fmt.Errorf("load ascii %q: %w", path, ErrInvalidSymbol)
	}
	if o.RemapToBin {
		s.install(list, bin, 0)
	} else {
		s.install(list, ascii, 0)
	}
	return nil
}

// countLines is the first ASCII pass: the number of lines and a refill block
// size covering the longest line plus its terminator.
func countLines(r io.Reader) (num, required int, err error) {
	buf := make([]byte, asciiBlockSize)
	span := 0
	required = 1
	for {
		n, rerr := r.Read(buf)
		for _, b := range buf[:n] {
			span++
			if b == '\n' {
				num++
				if span > required {
					required = span
				}
				span = 0
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return 0, 0, rerr
		}
	}
	if span > 0 {
		num++
		if span+1 > required {
			required = span + 1
		}
	}
	return num, required, nil
}

// FASTAOptions configures LoadFASTA.
//
// Fields:
//   - IgnoreInvalid — replace out-of-alphabet residues with 'A' instead of
//     failing with ErrInvalidSymbol.
//   - Progress      — optional hook, called per loaded hunk.
type FASTAOptions struct {
	IgnoreInvalid bool
	Progress      func(done, total int64)
}

// DefaultFASTAOptions returns FASTAOptions with strict residue handling.
func DefaultFASTAOptions() FASTAOptions { return FASTAOptions{} }

// LoadFASTA populates the sequence from a FASTA file: every '>' header opens
// a hunk whose continuation lines are concatenated into one string. The DNA
// alphabet is attached regardless of the previous identity. Atomic.
func (s *Sequence[T]) LoadFASTA(path string, opts *FASTAOptions) error {
	o := DefaultFASTAOptions()
	if opts != nil {
		o = *opts
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load fasta: %w", err)
	}
	lines := splitLines(data)

	dna := alphabet.New(alphabet.DNA)
	total := int64(bytes.Count(data, []byte{'>'}))
	var list [][]T
	i := 0
	for i < len(lines) {
		if len(lines[i]) == 0 || lines[i][0] != '>' {
			return fmt.Errorf("load fasta %q: line %d: expected '>' header: %w", path, i+1, ErrMalformedFormat)
		}
		i++
		var body []byte
		for i < len(lines) && (len(lines[i]) == 0 || lines[i][0] != '>') {
			if len(lines[i]) == 0 {
				return fmt.Errorf("load fasta %q: line %d: empty body line: %w", path, i+1, ErrMalformedFormat)
			}
			body = append(body, lines[i]...)
			i++
		}
		if len(body) == 0 {
			return fmt.Errorf("load fasta %q: hunk %d has no body: %w", path, len(list)+1, ErrMalformedFormat)
		}

		vec := make([]T, len(body))
		for j, b := range body {
			c := b
			if o.IgnoreInvalid && !dna.IsValid(b) {
				c = 'A'
			}
			vec[j] = T(c)
			dna.AddValue(int64(c))
		}
		list = append(list, vec)
		if o.Progress != nil {
			o.Progress(int64(len(list)), total)
		}
	}
	if len(list) == 0 {
		return fmt.Errorf("load fasta %q: no fasta hunks: %w", path, ErrMalformedFormat)
	}

	if !dna.CheckAlphabetSize() || !dna.CheckAlphabet() {
		return fmt.Errorf("load fasta %q: %w", path, ErrInvalidSymbol)
	}
	s.install(list, dna, 0)
	return nil
}

// FASTQOptions configures LoadFASTQ.
//
// Fields:
//   - IgnoreInvalid          — replace out-of-alphabet residues with 'A'.
//   - BitremapInSingleString — pack every record into one embedded word of
//     order = record length, producing a single packed string; all records
//     must share that length.
//   - Progress — optional hook, called per record.
type FASTQOptions struct {
	IgnoreInvalid          bool
	BitremapInSingleString bool
	Progress               func(done, total int64)
}

// DefaultFASTQOptions returns FASTQOptions in strict per-record mode.
func DefaultFASTQOptions() FASTQOptions { return FASTQOptions{} }

// LoadFASTQ populates the sequence from a FASTQ file of four-line records
// (identifier, read, quality identifier, quality; quality is ignored). The
// DNA alphabet is attached. Atomic.
func (s *Sequence[T]) LoadFASTQ(path string, opts *FASTQOptions) error {
	o := DefaultFASTQOptions()
	if opts != nil {
		o = *opts
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load fastq: %w", err)
	}
	lines := splitLines(data)
	if len(lines) == 0 || len(lines)%4 != 0 {
		return fmt.Errorf("load fastq %q: %d lines not divisible by 4: %w", path, len(lines), ErrMalformedFormat)
	}
	num := len(lines) / 4

	dna := alphabet.New(alphabet.DNA)
	if o.BitremapInSingleString {
		return s.loadFastqPacked(path, lines, num, dna, o)
	}

	list := make([][]T, num)
	for i := 0; i < num; i++ {
		body, err := fastqRecord(path, lines, i)
		if err != nil {
			return err
		}
		vec := make([]T, len(body))
		for j, b := range body {
			c := b
			if !dna.IsValid(b) {
				if !o.IgnoreInvalid {
					return fmt.Errorf("load fastq %q: record %d: residue %q: %w", path, i, b, ErrInvalidSymbol)
				}
				c = 'A'
			}
			vec[j] = T(c)
			dna.AddValue(int64(c))
		}
		list[i] = vec
		if o.Progress != nil {
			o.Progress(int64(i+1), int64(num))
		}
	}
	s.install(list, dna, 0)
	return nil
}

// loadFastqPacked is the BitremapInSingleString mode: one packed word per
// record, all records of one shared length.
func (s *Sequence[T]) loadFastqPacked(path string, lines [][]byte, num int, dna *alphabet.Alphabet, o FASTQOptions) error {
	if isFloat[T]() {
		return fmt.Errorf("load fastq %q: packed mode needs an integer element type: %w", path, ErrInvalidArgument)
	}
	first, err := fastqRecord(path, lines, 0)
	if err != nil {
		return err
	}
	order := len(first)
	bits := dna.NumBits()
	if bits*order > 8*symbolSize[T]() {
		return fmt.Errorf("load fastq %q: order %d needs %d bits: %w", path, order, bits*order, ErrCapacity)
	}

	single := make([]T, num)
	for i := 0; i < num; i++ {
		body, err := fastqRecord(path, lines, i)
		if err != nil {
			return err
		}
		if len(body) != order {
			return fmt.Errorf("load fastq %q: record %d has length %d, want %d: %w",
				path, i, len(body), order, ErrLengthMismatch)
		}
		var w uint64
		for _, b := range body {
			if !dna.IsValid(b) {
				if !o.IgnoreInvalid {
					return fmt.Errorf("load fastq %q: record %d: residue %q: %w", path, i, b, ErrInvalidSymbol)
				}
				b = 'A'
			}
			w = w<<bits | uint64(dna.ToBin(b))
		}
		single[i] = T(w)
		if o.Progress != nil {
			o.Progress(int64(i+1), int64(num))
		}
	}

	s.install([][]T{single}, dna, order)
	s.originalNumSymbols = float64(dna.NumSymbols())
	if order > 1 {
		s.numSymbols = math.Pow(2, float64(bits*order))
	}
	s.computeSymbolMaskTable(bits)
	return nil
}

// fastqRecord validates the framing of record i and returns its read line.
func fastqRecord(path string, lines [][]byte, i int) ([]byte, error) {
	id, body, qid := lines[4*i], lines[4*i+1], lines[4*i+2]
	if len(id) == 0 || id[0] != '@' {
		return nil, fmt.Errorf("load fastq %q: record %d: bad identifier line: %w", path, i, ErrMalformedFormat)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("load fastq %q: record %d: empty read: %w", path, i, ErrMalformedFormat)
	}
	if len(qid) == 0 || qid[0] != '+' {
		return nil, fmt.Errorf("load fastq %q: record %d: bad quality identifier: %w", path, i, ErrMalformedFormat)
	}
	return body, nil
}

// DirOptions configures LoadDirectory.
type DirOptions struct {
	Progress func(done, total int64)
}

// LoadDirectory reads every regular file of dir as one raw run of T
// (length = filesize / sizeof(T), little-endian; a trailing partial element
// is dropped). Subdirectories are skipped; the iteration order is
// unspecified. Atomic.
func (s *Sequence[T]) LoadDirectory(dir string, opts *DirOptions) error {
	var o DirOptions
	if opts != nil {
		o = *opts
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("load directory: %w", err)
	}

	fresh := alphabet.New(s.alpha.Identity())
	sz := symbolSize[T]()
	var list [][]T
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		data, rerr := os.ReadFile(filepath.Join(dir, e.Name()))
		if rerr != nil {
			return fmt.Errorf("load directory %q: %w", dir, rerr)
		}
		n := len(data) / sz
		vec := decodeElems[T](data[:n*sz], n)
		for _, v := range vec {
			fresh.AddValue(int64(v))
		}
		list = append(list, vec)
		if o.Progress != nil {
			o.Progress(int64(len(list)), int64(len(entries)))
		}
	}
	if len(list) == 0 {
		return fmt.Errorf("load directory %q: no regular files: %w", dir, ErrInvalidArgument)
	}

	// histogram validation only covers the byte-domain identities
	if !isFloat[T]() && fresh.Identity() != alphabet.RawWord {
		if !fresh.CheckAlphabetSize() || !fresh.CheckAlphabet() {
			return fmt.Errorf("load directory %q: %w", dir, ErrInvalidSymbol)
		}
	}
	s.install(list, fresh, 0)
	return nil
}

// splitLines splits on LF, dropping the empty tail of a terminated file.
func splitLines(data []byte) [][]byte {
	if len(data) == 0 {
		return nil
	}
	lines := bytes.Split(data, []byte{'\n'})
	if len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}
