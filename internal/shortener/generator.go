package shortener

import (
	"fmt"

	"github.com/jaevor/go-nanoid"
)

// MinGeneratedCodeLength is the shortest code length the generator accepts.
// nanoid's custom alphabet generators never return for sizes below 5.
const MinGeneratedCodeLength = 5

// CodeGenerator generates random short codes.
type CodeGenerator func() string

// NewCodeGenerator returns a generator drawing length characters uniformly
// from Alphabet using crypto/rand.
func NewCodeGenerator(length int) (CodeGenerator, error) {
	if length < MinGeneratedCodeLength || length > MaxCodeLength {
		return nil, fmt.Errorf("code length must be between %d and %d, got %d",
			MinGeneratedCodeLength, MaxCodeLength, length)
	}

	gen, err := nanoid.CustomASCII(Alphabet, length)
	if err != nil {
		return nil, fmt.Errorf("code generator: %w", err)
	}

	return CodeGenerator(gen), nil
}
