package handlers_test

import (
	"context"
	"errors"

	"github.com/serroba/linx/internal/shortener"
)

var errMock = errors.New("mock error")

const testURL = "https://example.com"

// mockStore is a test double for shortener.Repository that can be configured to return errors.
type mockStore struct {
	insertErr error
	lookupErr error
}

func (m *mockStore) Insert(_ context.Context, _ shortener.Code, _ string) error {
	return m.insertErr
}

func (m *mockStore) Lookup(_ context.Context, _ shortener.Code) (string, error) {
	if m.lookupErr != nil {
		return "", m.lookupErr
	}

	return testURL, nil
}
