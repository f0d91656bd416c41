// Package seq: element constraint, sentinel errors and derived-kind helpers.
package seq

import (
	"errors"
	"reflect"
)

// Symbol constrains the element type of a Sequence: every fixed integer
// width plus the two float widths. Integer widths carry the full bit-packing
// contract; the float widths degenerate it (see package doc).
type Symbol interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 |
		~float32 | ~float64
}

// Sentinel errors for sequence operations.
var (
	// ErrIndexRange indicates a logical index beyond the logical size.
	ErrIndexRange = errors.New("seq: index out of range")
	// ErrSubsetActive indicates a mutation attempted while a subset is live.
	ErrSubsetActive = errors.New("seq: operation not allowed while a subset is active")
	// ErrInvalidArgument indicates a parameter outside its documented domain.
	ErrInvalidArgument = errors.New("seq: invalid argument")
	// ErrRaggedInput indicates an operation that requires equal-length strings.
	ErrRaggedInput = errors.New("seq: strings must all have the same length")
	// ErrInvalidSymbol indicates alphabet validation failed with substitution off.
	ErrInvalidSymbol = errors.New("seq: symbol outside the declared alphabet")
	// ErrMalformedFormat indicates input that is not a valid ASCII/FASTA/FASTQ/SGV0 stream.
	ErrMalformedFormat = errors.New("seq: malformed input format")
	// ErrLengthMismatch indicates packed FASTQ records of differing lengths.
	ErrLengthMismatch = errors.New("seq: records must share one length")
	// ErrCapacity indicates an embedding that needs more bits than T has.
	ErrCapacity = errors.New("seq: embedding exceeds the capacity of the element type")
	// ErrAlreadyEmbedded indicates a second Embed on the same sequence.
	ErrAlreadyEmbedded = errors.New("seq: sequence is already embedded")
)

// symbolKind reports the reflect.Kind of the instantiated element type.
func symbolKind[T Symbol]() reflect.Kind {
	var z T
	return reflect.TypeOf(z).Kind()
}

// symbolSize reports sizeof(T) in bytes.
func symbolSize[T Symbol]() int {
	var z T
	return int(reflect.TypeOf(z).Size())
}

// isFloat reports whether T is one of the degenerate float widths.
func isFloat[T Symbol]() bool {
	k := symbolKind[T]()
	return k == reflect.Float32 || k == reflect.Float64
}
