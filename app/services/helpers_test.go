package services

import (
	"io"
	"log/slog"
	"testing"

	"scribbles/app/repositories"
	"scribbles/app/repositories/mock"

	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func stepClock(start int64) func() int64 {
	t := start
	return func() int64 {
		t++
		return t
	}
}

// newTestBlog returns an initialized, seeded context over an in-memory store.
func newTestBlog(t *testing.T) (*BlogContext, *mock.Store) {
	t.Helper()
	store := mock.NewStore()
	repo := repositories.NewRepository(store, repositories.WithClock(stepClock(1000)))
	t.Cleanup(func() { repo.Close() })

	blog := NewBlogContext(repo, testLogger())
	require.NoError(t, blog.Init())
	return blog, store
}
