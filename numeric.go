package ordtrees

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number is the set of value types range-query containers aggregate over.
type Number interface {
	constraints.Integer | constraints.Float
}

// IsFloat reports whether T is a floating point type.
func IsFloat[T Number]() bool {
	var zero T
	k := reflect.TypeOf(zero).Kind()
	return k == reflect.Float32 || k == reflect.Float64
}

// IsSigned reports whether T can hold negative values.
func IsSigned[T Number]() bool {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return false
	}
	return true
}

// Upper returns the greatest value of T: +Inf for floats, the maximum
// representable value for integers.
func Upper[T Number]() T {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Float32, reflect.Float64:
		inf := math.Inf(1)
		return T(inf)
	case reflect.Int8:
		v := int64(math.MaxInt8)
		return T(v)
	case reflect.Int16:
		v := int64(math.MaxInt16)
		return T(v)
	case reflect.Int32:
		v := int64(math.MaxInt32)
		return T(v)
	case reflect.Int, reflect.Int64:
		if reflect.TypeOf(zero).Size() == 4 {
			v := int64(math.MaxInt32)
			return T(v)
		}
		v := int64(math.MaxInt64)
		return T(v)
	case reflect.Uint8:
		v := uint64(math.MaxUint8)
		return T(v)
	case reflect.Uint16:
		v := uint64(math.MaxUint16)
		return T(v)
	case reflect.Uint32:
		v := uint64(math.MaxUint32)
		return T(v)
	}
	// uint, uint64, uintptr
	v := ^uint64(0) >> (64 - reflect.TypeOf(zero).Size()*8)
	return T(v)
}

// Lower returns the least value of T: -Inf for floats, the minimum
// representable value for integers.
func Lower[T Number]() T {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Float32, reflect.Float64:
		inf := math.Inf(-1)
		return T(inf)
	case reflect.Int8:
		v := int64(math.MinInt8)
		return T(v)
	case reflect.Int16:
		v := int64(math.MinInt16)
		return T(v)
	case reflect.Int32:
		v := int64(math.MinInt32)
		return T(v)
	case reflect.Int, reflect.Int64:
		if reflect.TypeOf(zero).Size() == 4 {
			v := int64(math.MinInt32)
			return T(v)
		}
		v := int64(math.MinInt64)
		return T(v)
	}
	return zero
}
