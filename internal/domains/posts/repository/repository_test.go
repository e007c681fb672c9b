package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	otelMocks "campushub/infras/otel/mocks"
	"campushub/internal/domains/posts/model"
	"campushub/internal/domains/posts/repository"
	"campushub/shared/timezone"
)

func TestMemoryStore_ListNewestFirst(t *testing.T) {
	store := repository.New(otelMocks.NewOtel())
	ctx := context.Background()

	first := model.Post{ID: uuid.New(), Author: "Alice", Content: "first", CreatedAt: timezone.Now()}
	second := model.Post{ID: uuid.New(), Author: "Bob", Content: "second", CreatedAt: timezone.Now()}

	require.NoError(t, store.Insert(ctx, first))
	require.NoError(t, store.Insert(ctx, second))

	posts, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "second", posts[0].Content)
	assert.Equal(t, "first", posts[1].Content)
}

func TestMemoryStore_RemoveTwiceReturnsNotFound(t *testing.T) {
	store := repository.New(otelMocks.NewOtel())
	ctx := context.Background()

	post := model.Post{ID: uuid.New(), Author: "Alice", Content: "hello"}
	require.NoError(t, store.Insert(ctx, post))

	removed, err := store.Remove(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, removed.ID)

	_, err = store.Remove(ctx, post.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMemoryStore_RemoveUnknownID(t *testing.T) {
	store := repository.New(otelMocks.NewOtel())

	_, err := store.Remove(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
