package repositories

import (
	"path/filepath"
	"testing"

	"scribbles/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "scribbles.db")

	store, err := OpenSQLiteStore(path)
	require.NoError(t, err)

	_, ok, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("k", []byte(`["a"]`)))
	require.NoError(t, store.Set("k", []byte(`["b"]`)))

	value, ok, err := store.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`["b"]`), value)
	require.NoError(t, store.Close())

	t.Run("reopen keeps data", func(t *testing.T) {
		store, err := OpenSQLiteStore(path)
		require.NoError(t, err)
		defer store.Close()

		value, ok, err := store.Get("k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte(`["b"]`), value)
	})
}

func TestSQLiteRepository(t *testing.T) {
	store, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "scribbles.db"))
	require.NoError(t, err)
	repo := NewRepository(store)
	t.Cleanup(func() { repo.Close() })

	_, err = repo.Seed()
	require.NoError(t, err)

	post, err := repo.GetPostBySlug("spirit-of-kodama")
	require.NoError(t, err)

	_, err = repo.CreateComment(models.CommentFields{PostID: post.ID, Author: "San", Content: "Protect the forest"})
	require.NoError(t, err)

	comments, err := repo.ListCommentsByPost(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)

	require.NoError(t, repo.DeletePost(post.ID))
	comments, err = repo.ListCommentsByPost(post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}
