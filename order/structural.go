package order

import (
	"cmp"
	"math"
	"reflect"
	"strings"
	"time"
)

// kind ranks are used to order keys of different kinds against each other.
type kindRank int

const (
	rankNil kindRank = iota
	rankBool
	rankNumber
	rankString
	rankTime
	rankSequence
	rankUnsupported
)

// Compare is a structural comparison over arbitrary values.
//
// Keys of different kinds are ordered by kind:
//
//	nil < bool < numbers < strings < time.Time < slices and arrays
//
// Numbers of any integer or float type compare by numeric value, slices and
// arrays compare lexicographically by element, with a proper prefix sorting
// first. NaN, maps, funcs, channels, pointers and structs other than
// time.Time are Incomparable.
func Compare(a, b any) int {
	ra, rb := rankOf(a), rankOf(b)
	if ra == rankUnsupported || rb == rankUnsupported {
		return Incomparable
	}
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch ra {
	case rankNil:
		return 0
	case rankBool:
		x, y := reflect.ValueOf(a).Bool(), reflect.ValueOf(b).Bool()
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		}
		return 1
	case rankNumber:
		return compareNumbers(reflect.ValueOf(a), reflect.ValueOf(b))
	case rankString:
		return strings.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
	case rankTime:
		return a.(time.Time).Compare(b.(time.Time))
	case rankSequence:
		return compareSequences(reflect.ValueOf(a), reflect.ValueOf(b))
	}
	return Incomparable
}

func rankOf(v any) kindRank {
	if v == nil {
		return rankNil
	}
	if _, ok := v.(time.Time); ok {
		return rankTime
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool:
		return rankBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return rankNumber
	case reflect.String:
		return rankString
	case reflect.Slice, reflect.Array:
		return rankSequence
	}
	return rankUnsupported
}

func isFloat(v reflect.Value) bool {
	return v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64
}

func isSigned(v reflect.Value) bool {
	return v.Kind() >= reflect.Int && v.Kind() <= reflect.Int64
}

// compareNumbers compares numeric values of possibly different kinds.
// Mixed float/integer comparisons are exact, also for integers beyond the
// precision of a float64.
func compareNumbers(x, y reflect.Value) int {
	switch {
	case isFloat(x) && isFloat(y):
		fx, fy := x.Float(), y.Float()
		if math.IsNaN(fx) || math.IsNaN(fy) {
			return Incomparable
		}
		return cmp.Compare(fx, fy)
	case isFloat(x):
		return compareFloatInt(x.Float(), y)
	case isFloat(y):
		c := compareFloatInt(y.Float(), x)
		if c == Incomparable {
			return c
		}
		return -c
	case isSigned(x) && isSigned(y):
		return cmp.Compare(x.Int(), y.Int())
	case !isSigned(x) && !isSigned(y):
		return cmp.Compare(x.Uint(), y.Uint())
	case isSigned(x):
		if x.Int() < 0 {
			return -1
		}
		return cmp.Compare(uint64(x.Int()), y.Uint())
	}
	if y.Int() < 0 {
		return 1
	}
	return cmp.Compare(x.Uint(), uint64(y.Int()))
}

// compareFloatInt compares f to the integer v. The integral part of f is
// compared as an integer, the fractional part breaks ties.
func compareFloatInt(f float64, v reflect.Value) int {
	if math.IsNaN(f) {
		return Incomparable
	}
	whole := math.Trunc(f)
	var c int
	if isSigned(v) {
		switch {
		case f >= 1<<63:
			return 1
		case f < -(1 << 63):
			return -1
		}
		c = cmp.Compare(int64(whole), v.Int())
	} else {
		switch {
		case f < 0:
			return -1
		case f >= 1<<64:
			return 1
		}
		c = cmp.Compare(uint64(whole), v.Uint())
	}
	if c != 0 {
		return c
	}
	return cmp.Compare(f, whole)
}

func compareSequences(x, y reflect.Value) int {
	n := min(x.Len(), y.Len())
	for i := 0; i < n; i++ {
		if c := Compare(x.Index(i).Interface(), y.Index(i).Interface()); c != 0 {
			return c
		}
	}
	return cmp.Compare(x.Len(), y.Len())
}
