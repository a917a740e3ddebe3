package repository_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tomlord1122/todo-label-api/internal/domain"
	"github.com/Tomlord1122/todo-label-api/internal/repository"
)

func ptr[T any](v T) *T { return &v }

func TestMemoryTodoRepository_CRUDScenario(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryTodoRepository()
	expected := domain.TodoEntity{ID: 1, Text: "todo text", Completed: false, Labels: []domain.Label{}}

	created, err := repo.Create(ctx, "todo text")
	require.NoError(t, err)
	assert.Equal(t, expected, created)

	found, err := repo.Find(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, expected, found)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.TodoEntity{expected}, all)

	updated, err := repo.Update(ctx, 1, domain.UpdateTodo{
		Text:      ptr("update todo text"),
		Completed: ptr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TodoEntity{ID: 1, Text: "update todo text", Completed: true, Labels: []domain.Label{}}, updated)

	require.NoError(t, repo.Delete(ctx, 1))

	_, err = repo.Find(ctx, 1)
	var nf *repository.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, 1, nf.ID)
}

func TestMemoryTodoRepository_MissingID(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryTodoRepository()
	_, err := repo.Create(ctx, "present")
	require.NoError(t, err)

	_, err = repo.Find(ctx, 42)
	assert.Equal(t, &repository.NotFoundError{ID: 42}, err)

	_, err = repo.Update(ctx, 42, domain.UpdateTodo{Text: ptr("x")})
	assert.Equal(t, &repository.NotFoundError{ID: 42}, err)

	err = repo.Delete(ctx, 42)
	assert.Equal(t, &repository.NotFoundError{ID: 42}, err)
}

func TestMemoryTodoRepository_DeleteTwice(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryTodoRepository()
	todo, err := repo.Create(ctx, "once")
	require.NoError(t, err)

	assert.NoError(t, repo.Delete(ctx, todo.ID))
	assert.ErrorIs(t, repo.Delete(ctx, todo.ID), repository.ErrNotFound)
}

func TestMemoryTodoRepository_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryTodoRepository()
	todo, err := repo.Create(ctx, "original")
	require.NoError(t, err)
	todo, err = repo.Update(ctx, todo.ID, domain.UpdateTodo{Completed: ptr(true)})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, todo.ID, domain.UpdateTodo{Text: ptr("renamed")})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Text)
	assert.True(t, updated.Completed)

	unchanged, err := repo.Update(ctx, todo.ID, domain.UpdateTodo{})
	require.NoError(t, err)
	assert.Equal(t, updated, unchanged)
}

func TestMemoryTodoRepository_IDsNotReused(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryTodoRepository()

	first, err := repo.Create(ctx, "a")
	require.NoError(t, err)
	second, err := repo.Create(ctx, "b")
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, first.ID))

	third, err := repo.Create(ctx, "c")
	require.NoError(t, err)
	assert.NotEqual(t, second.ID, third.ID)
	assert.Greater(t, third.ID, second.ID)

	// the surviving record is untouched
	got, err := repo.Find(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "b", got.Text)
}

func TestMemoryTodoRepository_CopiesShareStore(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryTodoRepository()
	clone := repo

	todo, err := repo.Create(ctx, "shared")
	require.NoError(t, err)

	got, err := clone.Find(ctx, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, todo, got)
}

func TestMemoryTodoRepository_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryTodoRepository()

	const n = 50
	ids := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			todo, err := repo.Create(ctx, "concurrent")
			if err == nil {
				ids <- todo.ID
			}
			_, _ = repo.All(ctx)
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		assert.False(t, seen[id], "id %d issued twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
