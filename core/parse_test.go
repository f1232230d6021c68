package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ExampleTokenize() {
	fmt.Printf("%q\n", Tokenize("ls   -a\t-l"))
	// Output: ["ls" "-a" "-l"]
}

func TestTrimLine(t *testing.T) {
	cases := map[string]struct {
		in   string
		want string
	}{
		"empty":           {"", ""},
		"only-spaces":     {"     ", ""},
		"only-tabs":       {"\t\t", ""},
		"mixed-space":     {" \t \n", ""},
		"leading":         {"   ls", "ls"},
		"trailing":        {"ls   ", "ls"},
		"both":            {"  ls -a  ", "ls -a"},
		"interior-intact": {"  a \t b  ", "a \t b"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			got := TrimLine(tc.in)
			assert.Equal(t, tc.want, got)

			// Trimming is idempotent.
			assert.Equal(t, got, TrimLine(got))
		})
	}
}

func TestTokenize(t *testing.T) {
	t.Run("round-trip", func(t *testing.T) {
		argv := Tokenize(TrimLine("  ls   -a  -l  "))
		assert.Equal(t, []string{"ls", "-a", "-l"}, argv)
	})

	t.Run("empty-line", func(t *testing.T) {
		assert.Nil(t, Tokenize(""))
	})

	t.Run("whitespace-only", func(t *testing.T) {
		assert.Empty(t, Tokenize(" \t "))
	})

	t.Run("single-word", func(t *testing.T) {
		assert.Equal(t, []string{"pwd"}, Tokenize("pwd"))
	})

	t.Run("fresh-vector", func(t *testing.T) {
		a := Tokenize("ls -a")
		b := Tokenize("ls -a")
		assert.Equal(t, a, b)
		b[0] = "mutated"
		assert.Equal(t, "ls", a[0])
	})
}

func TestTokenizeBounded(t *testing.T) {
	// The last slot is reserved; extra words are silently dropped.
	assert.Equal(t, []string{"a", "b"}, tokenizeBounded("a b c d", 3))
	assert.Equal(t, []string{"a", "b", "c", "d"}, tokenizeBounded("a b c d", 100))
}

func TestArgLimit(t *testing.T) {
	limit := ArgLimit()
	assert.Greater(t, limit, 1)

	// Queried once, stable afterwards.
	assert.Equal(t, limit, ArgLimit())
}
