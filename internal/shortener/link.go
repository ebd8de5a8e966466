package shortener

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// Alphabet is the base62 symbol set codes are drawn from.
	Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// MaxCodeLength is the longest code a caller may request.
	MaxCodeLength = 32

	// DefaultCodeLength is the length of generated codes unless configured otherwise.
	DefaultCodeLength = 6
)

// Code represents a short URL code.
type Code string

// Link maps a short code to its destination URL.
type Link struct {
	Code Code
	URL  string
}

// NormalizeCode trims surrounding whitespace from a caller-supplied code.
// An empty result means no code was supplied.
func NormalizeCode(raw string) Code {
	return Code(strings.TrimSpace(raw))
}

// Validate reports whether the code is 1-32 base62 characters.
func (c Code) Validate() error {
	if c == "" {
		return fmt.Errorf("%w: code is empty", ErrInvalidCode)
	}

	if utf8.RuneCountInString(string(c)) > MaxCodeLength {
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidCode, MaxCodeLength)
	}

	for i := 0; i < len(c); i++ {
		if !isBase62(c[i]) {
			return fmt.Errorf("%w: only 0-9, A-Z and a-z are allowed", ErrInvalidCode)
		}
	}

	return nil
}

func isBase62(b byte) bool {
	return ('0' <= b && b <= '9') || ('A' <= b && b <= 'Z') || ('a' <= b && b <= 'z')
}
