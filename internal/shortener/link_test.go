package shortener_test

import (
	"strings"
	"testing"

	"github.com/serroba/linx/internal/shortener"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want shortener.Code
	}{
		{name: "empty", raw: "", want: ""},
		{name: "whitespace only", raw: " \t\n ", want: ""},
		{name: "surrounding whitespace", raw: "  ex  ", want: "ex"},
		{name: "unchanged", raw: "abc123", want: "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shortener.NormalizeCode(tt.raw))
		})
	}
}

func TestCode_Validate(t *testing.T) {
	t.Run("accepts base62 codes of 1 to 32 characters", func(t *testing.T) {
		for _, code := range []shortener.Code{
			"a",
			"Z",
			"0",
			"ex",
			shortener.Code(shortener.Alphabet[:32]),
			shortener.Code(strings.Repeat("z", shortener.MaxCodeLength)),
		} {
			assert.NoError(t, code.Validate(), "code %q", code)
		}
	})

	t.Run("rejects codes longer than 32 characters", func(t *testing.T) {
		code := shortener.Code(strings.Repeat("a", shortener.MaxCodeLength+1))

		assert.ErrorIs(t, code.Validate(), shortener.ErrInvalidCode)
	})

	t.Run("rejects characters outside the alphabet", func(t *testing.T) {
		for _, code := range []shortener.Code{"a-b", "a_b", "a b", "a/b", "a.b", "café", "ü", "a\x00"} {
			assert.ErrorIs(t, code.Validate(), shortener.ErrInvalidCode, "code %q", code)
		}
	})

	t.Run("rejects empty code", func(t *testing.T) {
		assert.ErrorIs(t, shortener.Code("").Validate(), shortener.ErrInvalidCode)
	})
}
