package ordinal

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalText renders o in the same form as [Number.String], so ordinals
// embedded in text read as "4th" rather than as a bare number.
func (o Number[T]) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText parses text with the same grammar as [Parse].
func (o *Number[T]) UnmarshalText(text []byte) error {
	parsed, err := Parse[T](string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// MarshalJSON encodes o as its plain 1-based integer value: "4th" becomes 4.
func (o Number[T]) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(o.offset)+1, 10)), nil
}

// UnmarshalJSON decodes a 1-based integer value. 0 is rejected with
// [ErrBeforeFirst]; values beyond T are rejected with [ErrOverflow].
func (o *Number[T]) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return err
	}
	parsed, err := fromUint64[T](v)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// MarshalYAML encodes o as its plain 1-based integer value.
func (o Number[T]) MarshalYAML() (any, error) {
	return uint64(o.offset) + 1, nil
}

// UnmarshalYAML decodes a 1-based integer value, with the same range rules
// as [Number.UnmarshalJSON].
func (o *Number[T]) UnmarshalYAML(node *yaml.Node) error {
	var v uint64
	if err := node.Decode(&v); err != nil {
		return err
	}
	parsed, err := fromUint64[T](v)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
