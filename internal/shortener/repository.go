package shortener

import "context"

// Repository persists links and enforces code uniqueness.
//
// Insert must be atomic: when two callers insert the same code concurrently,
// exactly one succeeds and the others get ErrDuplicateCode. Any other failure
// is returned as-is (wrapped) and treated as a storage failure.
//
// Lookup returns ErrNotFound when the code does not exist.
type Repository interface {
	Insert(ctx context.Context, code Code, url string) error
	Lookup(ctx context.Context, code Code) (string, error)
}
