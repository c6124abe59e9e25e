package ordinal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// A ParseError describes ordinal text that could not be parsed. It wraps
// [ErrOverflow] or [ErrBeforeFirst] when the text was well formed but names
// an ordinal outside the valid range.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid ordinal %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// wordValues maps the spelled forms in words back to their 1-based values.
var wordValues = func() map[string]uint64 {
	m := make(map[string]uint64, len(words))
	for i, w := range words {
		m[w] = uint64(i) + 1
	}
	return m
}()

// Parse converts the textual form of an ordinal number into a [Number].
//
// It accepts digits followed by the grammatically correct suffix, with or
// without a dash ("4th", "21-st"); digits followed by a period ("4."); or
// one of the twenty words known to [Number.Spelled] ("second", "twentieth").
// A suffix that disagrees with its digits, such as "4-st", is an error,
// never silently corrected. All errors are of type [*ParseError].
func Parse[T constraints.Unsigned](s string) (Number[T], error) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}

	if i == 0 {
		if v, ok := wordValues[s]; ok {
			return Number[T]{offset: T(v) - 1}, nil
		}
		return Number[T]{}, &ParseError{Input: s, Err: errors.New("expected digits or an ordinal word")}
	}

	v, err := strconv.ParseUint(s[:i], 10, 64)
	if err != nil {
		return Number[T]{}, &ParseError{Input: s, Err: ErrOverflow}
	}

	if rest := s[i:]; rest != "." && strings.TrimPrefix(rest, "-") != suffix(v) {
		return Number[T]{}, &ParseError{Input: s, Err: fmt.Errorf("%s takes the suffix -%s", s[:i], suffix(v))}
	}

	n, err := fromUint64[T](v)
	if err != nil {
		return Number[T]{}, &ParseError{Input: s, Err: err}
	}
	return n, nil
}

// MustParse is like [Parse] but panics instead of returning an error. It is
// convenient for statically declared ordinals, where a bad literal should
// fail at package initialization:
//
//	var deadline = ordinal.MustParse[uint32]("25th")
func MustParse[T constraints.Unsigned](s string) Number[T] {
	o, err := Parse[T](s)
	if err != nil {
		panic(err)
	}
	return o
}
