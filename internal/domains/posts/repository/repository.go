package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"campushub/infras/otel"
	"campushub/internal/domains/posts/model"
	"campushub/shared/constant"
)

// ErrNotFound is returned when a remove targets an id that is not on the wall.
var ErrNotFound = errors.New("post not found")

// Posts is the campus wall store. The wall is deliberately in-memory: posts
// are session scoped and die with the process, like the original feed.
type Posts interface {
	Insert(ctx context.Context, post model.Post) error
	Remove(ctx context.Context, id uuid.UUID) (model.Post, error)
	// List returns posts newest first.
	List(ctx context.Context) ([]model.Post, error)
}

type memoryStore struct {
	mu    sync.Mutex
	posts []model.Post
	otel  otel.Otel
}

func New(otl otel.Otel) Posts {
	return &memoryStore{
		otel: otl,
	}
}

func (repo *memoryStore) Insert(ctx context.Context, post model.Post) error {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.posts.insert", constant.OtelRepositoryScopeName))
	defer scope.End()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.posts = append(repo.posts, post)

	return nil
}

func (repo *memoryStore) Remove(ctx context.Context, id uuid.UUID) (model.Post, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.posts.remove", constant.OtelRepositoryScopeName))
	defer scope.End()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	index := slices.IndexFunc(repo.posts, func(post model.Post) bool {
		return post.ID == id
	})
	if index < 0 {
		return model.Post{}, ErrNotFound
	}

	removed := repo.posts[index]
	repo.posts = slices.Delete(repo.posts, index, index+1)

	return removed, nil
}

func (repo *memoryStore) List(ctx context.Context) ([]model.Post, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.posts.list", constant.OtelRepositoryScopeName))
	defer scope.End()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	newestFirst := make([]model.Post, 0, len(repo.posts))
	for i := len(repo.posts) - 1; i >= 0; i-- {
		newestFirst = append(newestFirst, repo.posts[i])
	}

	return newestFirst, nil
}
