package ordinal_test

import (
	"testing"

	ordinal "github.com/Aloso/num-ordinal"
	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	for _, test := range []struct {
		in   uint64
		want string
	}{
		{1, "1st"},
		{2, "2nd"},
		{3, "3rd"},
		{4, "4th"},
		{10, "10th"},
		{11, "11th"},
		{12, "12th"},
		{13, "13th"},
		{14, "14th"},
		{21, "21st"},
		{22, "22nd"},
		{23, "23rd"},
		{24, "24th"},
		{100, "100th"},
		{101, "101st"},
		{111, "111th"},
		{112, "112th"},
		{113, "113th"},
		{122, "122nd"},
		{1013, "1013th"},
		{1021, "1021st"},
	} {
		assert.Equal(t, test.want, ordinal.MustFromOneBased(test.in).String())
	}
}

func TestStringPerWidth(t *testing.T) {
	assert.Equal(t, "255th", ordinal.MustFromOneBased(uint8(255)).String())
	assert.Equal(t, "65521st", ordinal.MustFromOneBased(uint16(65521)).String())
	assert.Equal(t, "4294967293rd", ordinal.MustFromOneBased(uint32(4294967293)).String())
	assert.Equal(t, "18446744073709551615th", ordinal.MustFromOneBased(uint64(18446744073709551615)).String())
}

func TestSpelled(t *testing.T) {
	for _, test := range []struct {
		in   uint
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{5, "fifth"},
		{8, "eighth"},
		{9, "ninth"},
		{12, "twelfth"},
		{13, "thirteenth"},
		{19, "nineteenth"},
		{20, "twentieth"},
		// past the word table, Spelled falls back to the digit form
		{21, "21st"},
		{40, "40th"},
		{111, "111th"},
	} {
		assert.Equal(t, test.want, ordinal.MustFromOneBased(test.in).Spelled())
	}
}
