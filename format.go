package ordinal

import "strconv"

// words spells out the first twenty ordinals. [Parse] accepts exactly these
// words, so the table serves both directions.
var words = [...]string{
	"first", "second", "third", "fourth", "fifth",
	"sixth", "seventh", "eighth", "ninth", "tenth",
	"eleventh", "twelfth", "thirteenth", "fourteenth", "fifteenth",
	"sixteenth", "seventeenth", "eighteenth", "nineteenth", "twentieth",
}

// String renders o as decimal digits followed by the matching English
// suffix: "1st", "2nd", "3rd", "4th", …, "21st", "112th".
func (o Number[T]) String() string {
	v := uint64(o.offset) + 1
	return strconv.FormatUint(v, 10) + suffix(v)
}

// Spelled renders the first twenty ordinals as words, "first" through
// "twentieth". Above twenty it falls back to the digit form of
// [Number.String].
func (o Number[T]) Spelled() string {
	v := uint64(o.offset) + 1
	if v <= uint64(len(words)) {
		return words[v-1]
	}
	return o.String()
}

// suffix returns the ordinal suffix for the 1-based value v. The teens all
// take "th", overriding the last-digit rule: 11th, 12th, 13th, 111th.
func suffix(v uint64) string {
	if t := v % 100; t == 11 || t == 12 || t == 13 {
		return "th"
	}
	switch v % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
