package tweet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	cases := []struct {
		input, expect string
	}{
		{"the cat sat", "the cat sat"},
		{"THE DOG RAN", ""},
		{"the Dog ran", ""},
		{"#an @lav http://ow.ly/o8gt3", "#an @lav http://ow.ly/o8gt3"},
		{"1000.01 10,000", "1000.01 10,000"},
		{"tab\there", ""},
		{"bell\a", ""},
		{"", ""},
		{"ǅungla", ""}, // title case
		{"café crème", "café crème"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expect, Filter(c.input), "Filter(%q)", c.input)
	}
}

func TestFilterIdempotent(t *testing.T) {
	for _, s := range []string{"a b c", "A b", "x\x00y", "", "   ", "Ünïcode", "ünïcode"} {
		once := Filter(s)
		assert.Equal(t, once, Filter(once), "Filter(%q)", s)
	}
}

func TestWords(t *testing.T) {
	assert.Equal(t, 0, len(Words("")))
	assert.Equal(t, 0, len(Words("   ")))
	assert.Equal(t, []string{"a", "b", "c"}, Words("  a b  c  "))
	assert.Equal(t, []string{"x"}, Words("x"))
}

func TestCount(t *testing.T) {
	cases := []struct {
		input  string
		expect Tcounts
	}{
		{"", Tcounts{}},
		{"000", Tcounts{"000": 1}},
		{"a", Tcounts{"a": 1}},
		{"@lav #an http://ow.ly/o8gt3 #an", Tcounts{"@lav": 1, "#an": 2, "http://ow.ly/o8gt3": 1}},
		{"a b  b 5 a 1", Tcounts{"a": 2, "b": 2, "5": 1, "1": 1}},
		{"a b c c 100.00", Tcounts{"a": 1, "b": 1, "c": 2, "100.00": 1}},
		{"ALL CAPS ONLY", Tcounts{}},
	}
	for _, c := range cases {
		assert.Equal(t, c.expect, Count(c.input), "Count(%q)", c.input)
	}
}

func TestCountValid(t *testing.T) {
	c, ok := CountValid("the cat the")
	assert.True(t, ok)
	assert.Equal(t, Tcounts{"the": 2, "cat": 1}, c)
	c, ok = CountValid("THE DOG RAN")
	assert.False(t, ok)
	assert.Equal(t, Tcounts{}, c)
	c, ok = CountValid("")
	assert.True(t, ok)
	assert.Equal(t, Tcounts{}, c)
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(""))
	assert.True(t, Valid("123 456"))
	assert.True(t, Valid("no caps here"))
	assert.False(t, Valid("One cap"))
	assert.False(t, Valid("nul\x00"))
}
