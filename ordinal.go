package ordinal

import (
	"cmp"
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	// ErrOverflow is returned when a result does not fit in the ordinal's
	// backing integer type.
	ErrOverflow = errors.New("ordinal too large")

	// ErrBeforeFirst is returned when a result would come before "first".
	// There is no 0th ordinal.
	ErrBeforeFirst = errors.New("no ordinal before first")
)

// A Number is an ordinal number (1st, 2nd, 3rd, …) backed by the unsigned
// integer type T.
//
// Numbers are immutable values: arithmetic returns a new Number. They
// compare with ==, order with [Number.Compare], and can be used as map keys.
// The zero value is the ordinal "first".
type Number[T constraints.Unsigned] struct {
	// Distance from "first". The 1-based value is offset+1, which keeps
	// the zero value valid.
	offset T
}

// Fixed-width instantiations of [Number].
type (
	// O8 is an ordinal number backed by a uint8.
	O8 = Number[uint8]
	// O16 is an ordinal number backed by a uint16.
	O16 = Number[uint16]
	// O32 is an ordinal number backed by a uint32.
	O32 = Number[uint32]
	// O64 is an ordinal number backed by a uint64.
	O64 = Number[uint64]
	// OSize is an ordinal number backed by a uint.
	OSize = Number[uint]
)

// First returns the ordinal "first".
func First[T constraints.Unsigned]() Number[T] {
	return Number[T]{}
}

// FromZeroBased converts a position counted from 0 into an ordinal number:
// FromZeroBased(0) is "1st". It returns [ErrOverflow] if n is the maximum
// value of T, because the 1-based equivalent would not fit.
func FromZeroBased[T constraints.Unsigned](n T) (Number[T], error) {
	if n == ^T(0) {
		return Number[T]{}, fmt.Errorf("%w: 0-based %d does not fit in %T", ErrOverflow, n, n)
	}
	return Number[T]{offset: n}, nil
}

// FromOneBased converts a position counted from 1 into an ordinal number:
// FromOneBased(1) is "1st". It returns [ErrBeforeFirst] if n is 0.
func FromOneBased[T constraints.Unsigned](n T) (Number[T], error) {
	if n == 0 {
		return Number[T]{}, ErrBeforeFirst
	}
	return Number[T]{offset: n - 1}, nil
}

// MustFromZeroBased is like [FromZeroBased] but panics instead of returning
// an error. It is convenient where the position is known to be in range.
func MustFromZeroBased[T constraints.Unsigned](n T) Number[T] {
	o, err := FromZeroBased(n)
	if err != nil {
		panic(err)
	}
	return o
}

// MustFromOneBased is like [FromOneBased] but panics instead of returning
// an error.
func MustFromOneBased[T constraints.Unsigned](n T) Number[T] {
	o, err := FromOneBased(n)
	if err != nil {
		panic(err)
	}
	return o
}

// fromUint64 builds a Number from a decoded 1-based value, range-checking
// it against T.
func fromUint64[T constraints.Unsigned](v uint64) (Number[T], error) {
	if v == 0 {
		return Number[T]{}, ErrBeforeFirst
	}
	if v > uint64(^T(0)) {
		return Number[T]{}, fmt.Errorf("%w: %d does not fit in %T", ErrOverflow, v, T(0))
	}
	return Number[T]{offset: T(v) - 1}, nil
}

// ZeroBased returns the position of o counted from 0: "1st" becomes 0.
func (o Number[T]) ZeroBased() T {
	return o.offset
}

// OneBased returns the position of o counted from 1: "1st" becomes 1.
func (o Number[T]) OneBased() T {
	return o.offset + 1
}

// Next returns the ordinal that follows o.
func (o Number[T]) Next() (Number[T], error) {
	return o.Add(1)
}

// Add returns the ordinal k places after o, or [ErrOverflow] if the result
// does not fit in T.
func (o Number[T]) Add(k T) (Number[T], error) {
	if k > ^T(0)-1-o.offset {
		return Number[T]{}, fmt.Errorf("%w: %v + %d does not fit in %T", ErrOverflow, o, k, k)
	}
	return Number[T]{offset: o.offset + k}, nil
}

// Sub returns the ordinal k places before o, or [ErrBeforeFirst] if that
// would move past "first".
func (o Number[T]) Sub(k T) (Number[T], error) {
	if k > o.offset {
		return Number[T]{}, fmt.Errorf("%w: %v - %d", ErrBeforeFirst, o, k)
	}
	return Number[T]{offset: o.offset - k}, nil
}

// Diff returns how many places after other the ordinal o is, so that
// other.Add(o.Diff(other)) == o. It returns [ErrBeforeFirst] if other comes
// after o, since the distance cannot be represented in T.
func (o Number[T]) Diff(other Number[T]) (T, error) {
	if other.offset > o.offset {
		return 0, fmt.Errorf("%w: %v comes before %v", ErrBeforeFirst, o, other)
	}
	return o.offset - other.offset, nil
}

// MustAdd is like [Number.Add] but panics instead of returning an error.
func (o Number[T]) MustAdd(k T) Number[T] {
	r, err := o.Add(k)
	if err != nil {
		panic(err)
	}
	return r
}

// MustSub is like [Number.Sub] but panics instead of returning an error.
func (o Number[T]) MustSub(k T) Number[T] {
	r, err := o.Sub(k)
	if err != nil {
		panic(err)
	}
	return r
}

// MustDiff is like [Number.Diff] but panics instead of returning an error.
func (o Number[T]) MustDiff(other Number[T]) T {
	r, err := o.Diff(other)
	if err != nil {
		panic(err)
	}
	return r
}

// Compare returns -1 if o comes before other, 0 if they are equal, and
// 1 if o comes after other.
func (o Number[T]) Compare(other Number[T]) int {
	return cmp.Compare(o.offset, other.offset)
}
