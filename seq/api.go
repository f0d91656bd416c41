package seq

import (
	"reflect"

	"github.com/katalvlaran/strseq/alphabet"
)

// FeatureClass tags the container family a feature set belongs to; external
// collaborators (kernels, classifiers) dispatch on it.
type FeatureClass int

const (
	// ClassUnknown is the zero tag.
	ClassUnknown FeatureClass = iota
	// ClassString tags variable-length symbol sequences.
	ClassString
	// ClassDense tags fixed-width dense vectors.
	ClassDense
	// ClassSparse tags sparse vectors.
	ClassSparse
	// ClassKernel tags precomputed kernel matrices.
	ClassKernel
)

// FeatureType tags the element width of a feature set.
type FeatureType int

const (
	// TypeUnknown is the zero tag.
	TypeUnknown FeatureType = iota
	// TypeChar tags int8 elements.
	TypeChar
	// TypeByte tags uint8 elements.
	TypeByte
	// TypeShort tags int16 elements.
	TypeShort
	// TypeWord tags uint16 elements.
	TypeWord
	// TypeInt tags int32 elements.
	TypeInt
	// TypeUInt tags uint32 elements.
	TypeUInt
	// TypeLong tags int64 elements.
	TypeLong
	// TypeULong tags uint64 elements.
	TypeULong
	// TypeShortReal tags float32 elements.
	TypeShortReal
	// TypeReal tags float64 elements.
	TypeReal
)

// Features is the capability surface external collaborators consume; every
// Sequence instantiation implements it.
type Features interface {
	Size() int
	Length(i int) (int, error)
	MaxLength() int
	Alphabet() *alphabet.Alphabet
	FeatureClass() FeatureClass
	FeatureType() FeatureType
}

// FeatureClass tags every Sequence as a string container.
func (s *Sequence[T]) FeatureClass() FeatureClass { return ClassString }

// FeatureType reports the tag of the instantiated element width.
func (s *Sequence[T]) FeatureType() FeatureType {
	switch symbolKind[T]() {
	case reflect.Int8:
		return TypeChar
	case reflect.Uint8:
		return TypeByte
	case reflect.Int16:
		return TypeShort
	case reflect.Uint16:
		return TypeWord
	case reflect.Int32:
		return TypeInt
	case reflect.Uint32:
		return TypeUInt
	case reflect.Int64:
		return TypeLong
	case reflect.Uint64:
		return TypeULong
	case reflect.Float32:
		return TypeShortReal
	case reflect.Float64:
		return TypeReal
	default:
		return TypeUnknown
	}
}

var _ Features = (*Sequence[byte])(nil)
var _ Features = (*Sequence[uint16])(nil)
var _ Features = (*Sequence[float64])(nil)
