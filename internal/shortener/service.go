package shortener

import (
	"context"
	"errors"
	"fmt"

	"github.com/serroba/linx/internal/metrics"
)

// Service creates and resolves links. It keeps no state between calls;
// the Repository is the single source of truth.
type Service struct {
	store  Repository
	custom *CustomStrategy
	random *RandomStrategy
}

// NewService wires both code strategies to store.
func NewService(store Repository, generator CodeGenerator) *Service {
	return &Service{
		store:  store,
		custom: NewCustomStrategy(store),
		random: NewRandomStrategy(store, generator),
	}
}

// Create shortens url. A code that is empty after trimming whitespace is
// treated as absent and a random one is generated instead.
func (s *Service) Create(ctx context.Context, url, rawCode string) (*Link, error) {
	if url == "" {
		err := fmt.Errorf("%w: url is required", ErrInvalidURL)
		metrics.RecordCreateFailure(failureReason(err))

		return nil, err
	}

	var (
		link   *Link
		err    error
		source = metrics.SourceGenerated
	)

	if code := NormalizeCode(rawCode); code != "" {
		source = metrics.SourceCustom
		link, err = s.custom.Shorten(ctx, url, code)
	} else {
		link, err = s.random.Shorten(ctx, url)
	}

	if err != nil {
		metrics.RecordCreateFailure(failureReason(err))

		return nil, err
	}

	metrics.RecordLinkCreated(source)

	return link, nil
}

// Resolve returns the link stored under code.
func (s *Service) Resolve(ctx context.Context, code Code) (*Link, error) {
	url, err := s.store.Lookup(ctx, code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			metrics.RecordResolve(metrics.ResolveNotFound)

			return nil, err
		}

		metrics.RecordResolve(metrics.ResolveError)

		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	metrics.RecordResolve(metrics.ResolveFound)

	return &Link{Code: code, URL: url}, nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidURL):
		return metrics.FailureInvalidURL
	case errors.Is(err, ErrInvalidCode):
		return metrics.FailureInvalidCode
	case errors.Is(err, ErrCodeConflict):
		return metrics.FailureCodeConflict
	case errors.Is(err, ErrExhaustedRetries):
		return metrics.FailureExhaustedRetries
	default:
		return metrics.FailureInternal
	}
}
