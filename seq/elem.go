package seq

import (
	"math"
	"reflect"
)

// encodeElems serialises a run of T into little-endian bytes, sizeof(T) per
// element. Float widths serialise their IEEE-754 bit pattern so the encoding
// is byte-exact under round trips.
func encodeElems[T Symbol](vec []T) []byte {
	sz := symbolSize[T]()
	k := symbolKind[T]()
	out := make([]byte, sz*len(vec))
	for i, v := range vec {
		var u uint64
		switch k {
		case reflect.Float32:
			u = uint64(math.Float32bits(float32(v)))
		case reflect.Float64:
			u = math.Float64bits(float64(v))
		default:
			u = uint64(v)
		}
		for j := 0; j < sz; j++ {
			out[i*sz+j] = byte(u >> (8 * j))
		}
	}
	return out
}

// decodeElems deserialises n little-endian elements of T from b.
func decodeElems[T Symbol](b []byte, n int) []T {
	sz := symbolSize[T]()
	k := symbolKind[T]()
	out := make([]T, n)
	for i := 0; i < n; i++ {
		var u uint64
		for j := 0; j < sz; j++ {
			u |= uint64(b[i*sz+j]) << (8 * j)
		}
		switch k {
		case reflect.Float32:
			out[i] = T(math.Float32frombits(uint32(u)))
		case reflect.Float64:
			out[i] = T(math.Float64frombits(u))
		default:
			out[i] = T(u)
		}
	}
	return out
}
