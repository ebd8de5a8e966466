// Package storetest holds the behaviour every shortener.Repository must share.
package storetest

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/serroba/linx/internal/shortener"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Contract runs the repository contract against stores built by NewStore.
// Prefix keeps codes from different runs apart on shared backends.
type Contract struct {
	NewStore func(t *testing.T) shortener.Repository
	Prefix   string
}

func (c Contract) code(name string) shortener.Code {
	return shortener.Code(c.Prefix + name)
}

// Test runs every contract case as a subtest of t. Each case builds its own
// store through NewStore.
func (c Contract) Test(t *testing.T) {
	ctx := context.Background()

	t.Run("insert then lookup returns url", func(t *testing.T) {
		s := c.NewStore(t)
		code := c.code("ex")

		require.NoError(t, s.Insert(ctx, code, "https://example.com"))

		url, err := s.Lookup(ctx, code)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com", url)
	})

	t.Run("duplicate insert returns ErrDuplicateCode and keeps first url", func(t *testing.T) {
		s := c.NewStore(t)
		code := c.code("dup")

		require.NoError(t, s.Insert(ctx, code, "https://first.example.com"))

		err := s.Insert(ctx, code, "https://second.example.com")

		require.ErrorIs(t, err, shortener.ErrDuplicateCode)

		url, err := s.Lookup(ctx, code)
		require.NoError(t, err)
		assert.Equal(t, "https://first.example.com", url)
	})

	t.Run("lookup of unknown code returns ErrNotFound", func(t *testing.T) {
		s := c.NewStore(t)

		url, err := s.Lookup(ctx, c.code("missing"))

		assert.Empty(t, url)
		assert.ErrorIs(t, err, shortener.ErrNotFound)
	})

	t.Run("url is stored verbatim", func(t *testing.T) {
		s := c.NewStore(t)
		code := c.code("raw")
		raw := "HTTP://Example.COM:80/a/../b/?q=1#frag"

		require.NoError(t, s.Insert(ctx, code, raw))

		url, err := s.Lookup(ctx, code)
		require.NoError(t, err)
		assert.Equal(t, raw, url)
	})

	t.Run("concurrent inserts of the same code have exactly one winner", func(t *testing.T) {
		s := c.NewStore(t)
		code := c.code("race")

		const workers = 16

		var (
			wg     sync.WaitGroup
			mu     sync.Mutex
			winner string
			wins   int
			dups   int
		)

		for i := range workers {
			wg.Add(1)

			go func(url string) {
				defer wg.Done()

				err := s.Insert(ctx, code, url)

				mu.Lock()
				defer mu.Unlock()

				switch {
				case err == nil:
					wins++
					winner = url
				case assert.ErrorIs(t, err, shortener.ErrDuplicateCode):
					dups++
				}
			}(fmt.Sprintf("https://example.com/%d", i))
		}

		wg.Wait()

		assert.Equal(t, 1, wins)
		assert.Equal(t, workers-1, dups)

		url, err := s.Lookup(ctx, code)
		require.NoError(t, err)
		assert.Equal(t, winner, url)
	})
}
