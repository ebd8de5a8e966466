package shortener

import (
	"context"
	"errors"
	"fmt"

	"github.com/serroba/linx/internal/metrics"
)

// MaxAttempts is how many generated codes are tried before giving up.
const MaxAttempts = 5

// CustomStrategy stores a link under the code chosen by the caller.
type CustomStrategy struct {
	store Repository
}

// NewCustomStrategy creates a strategy for caller-supplied codes.
func NewCustomStrategy(store Repository) *CustomStrategy {
	return &CustomStrategy{store: store}
}

// Shorten validates code and inserts it. A taken code is reported as
// ErrCodeConflict; there is no fallback to a generated code.
func (s *CustomStrategy) Shorten(ctx context.Context, url string, code Code) (*Link, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.Insert(ctx, code, url); err != nil {
		if errors.Is(err, ErrDuplicateCode) {
			return nil, fmt.Errorf("%w: %s", ErrCodeConflict, code)
		}

		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return &Link{Code: code, URL: url}, nil
}

// RandomStrategy stores a link under a freshly generated code, retrying on
// collisions.
type RandomStrategy struct {
	store        Repository
	generateCode CodeGenerator
	maxAttempts  int
}

// NewRandomStrategy creates a strategy that generates codes with generator.
func NewRandomStrategy(store Repository, generator CodeGenerator) *RandomStrategy {
	return &RandomStrategy{
		store:        store,
		generateCode: generator,
		maxAttempts:  MaxAttempts,
	}
}

// Shorten retries only on ErrDuplicateCode. Any other store error aborts
// immediately as ErrInternal.
func (s *RandomStrategy) Shorten(ctx context.Context, url string) (*Link, error) {
	for range s.maxAttempts {
		code := Code(s.generateCode())

		err := s.store.Insert(ctx, code, url)
		if err == nil {
			return &Link{Code: code, URL: url}, nil
		}

		if !errors.Is(err, ErrDuplicateCode) {
			return nil, fmt.Errorf("%w: %w", ErrInternal, err)
		}

		metrics.RecordCodeCollision()
	}

	return nil, fmt.Errorf("%w after %d attempts", ErrExhaustedRetries, s.maxAttempts)
}
