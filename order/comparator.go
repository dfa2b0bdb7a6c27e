package order

import (
	"cmp"
	"errors"
	"fmt"
	"math"
)

// Comparator defines a total order over keys of type K. It returns a
// negative number if a < b, zero if a == b and a positive number if a > b.
//
// The result math.MinInt is reserved for Incomparable; comparators must not
// return it for keys which do compare. Comparators subtracting integers may
// overflow into it and should use cmp.Compare instead.
type Comparator[K any] func(a, b K) int

// Incomparable is the comparator result for a pair of keys without a defined
// order between them.
const Incomparable = math.MinInt

// ErrIncomparable is wrapped by every KeyError.
var ErrIncomparable = errors.New("order: key is not comparable")

// KeyError reports a key which failed to compare.
type KeyError struct {
	Key any
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: %v", ErrIncomparable.Error(), e.Key)
}

func (e *KeyError) Unwrap() error {
	return ErrIncomparable
}

// Checked passes a comparator result through, panicking with a *KeyError
// if it is Incomparable.
func Checked(c int, key any) int {
	if c == Incomparable {
		panic(&KeyError{Key: key})
	}
	return c
}

// Natural compares values of Go's ordered types. NaN values are incomparable.
func Natural[K cmp.Ordered](a, b K) int {
	if a != a || b != b {
		return Incomparable
	}
	return cmp.Compare(a, b)
}

// Default returns a comparator for K which delegates to the structural
// comparison of Compare.
func Default[K any]() Comparator[K] {
	return func(a, b K) int {
		return Compare(a, b)
	}
}

// Reverse inverts the order of c.
func Reverse[K any](c Comparator[K]) Comparator[K] {
	return func(a, b K) int {
		r := c(a, b)
		if r == Incomparable {
			return r
		}
		return -r
	}
}
