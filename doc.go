// Package ordinal implements typed English ordinal numbers (1st, 2nd, 3rd, …).
//
// An ordinal number names a position in a sequence. Programs usually store
// positions as 0-based indices while natural language counts from 1, and
// converting between the two conventions by hand is where off-by-one bugs
// are born. Package ordinal makes the convention explicit at every
// conversion:
//
//	o, _ := ordinal.FromZeroBased(uint(3))
//	fmt.Println(o) // 4th
//
//	o, _ = ordinal.FromOneBased(uint(3))
//	fmt.Println(o.Spelled()) // third
//
// [Number] is an immutable value type generic over any unsigned integer
// width; the aliases [O8], [O16], [O32], [O64] and [OSize] name the common
// instantiations. Values compare with ==, order with [Number.Compare], and
// work as map keys. The zero value is the ordinal "first".
//
// Arithmetic moves an ordinal along its sequence and refuses to cross either
// boundary: there is nothing before "first", and nothing above the width's
// maximum. Each operation comes in a checked form returning an error and a
// Must form that panics:
//
//	fifth := ordinal.MustParse[uint32]("5th")
//	second, _ := fifth.Sub(3)
//	fmt.Println(second) // 2nd
//
//	_, err := second.Sub(5)
//	fmt.Println(err) // no ordinal before first: 2nd - 5
//
// Ordinal text such as "21st", "4-th" or "twentieth" round-trips through
// [Parse] and [Number.String]. The parser insists on the grammatically
// correct suffix: "4-st" is an error, never corrected to "4th". In JSON and
// YAML an ordinal serializes as its plain 1-based integer rather than its
// display form, so wire data stays numeric.
package ordinal
