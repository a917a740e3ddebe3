package repository

import (
	"context"
	"sync"

	"github.com/Tomlord1122/todo-label-api/internal/domain"
)

type todoStore struct {
	mu     sync.RWMutex
	todos  map[int]domain.Todo
	nextID int
}

// MemoryTodoRepository keeps todos in process memory. Copies of the value
// share one store, so it can be handed out freely.
type MemoryTodoRepository struct {
	store *todoStore
}

func NewMemoryTodoRepository() MemoryTodoRepository {
	return MemoryTodoRepository{
		store: &todoStore{todos: make(map[int]domain.Todo)},
	}
}

func (r MemoryTodoRepository) Create(_ context.Context, text string) (domain.TodoEntity, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// ids come from a counter, not len(todos), so a delete never frees an id
	r.store.nextID++
	todo := domain.Todo{ID: r.store.nextID, Text: text}
	r.store.todos[todo.ID] = todo
	return todo.Entity(), nil
}

func (r MemoryTodoRepository) Find(_ context.Context, id int) (domain.TodoEntity, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	todo, ok := r.store.todos[id]
	if !ok {
		return domain.TodoEntity{}, &NotFoundError{ID: id}
	}
	return todo.Entity(), nil
}

// All returns todos in map order.
func (r MemoryTodoRepository) All(_ context.Context) ([]domain.TodoEntity, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rows := make([]domain.Todo, 0, len(r.store.todos))
	for _, todo := range r.store.todos {
		rows = append(rows, todo)
	}
	return domain.FoldTodos(rows), nil
}

func (r MemoryTodoRepository) Update(_ context.Context, id int, patch domain.UpdateTodo) (domain.TodoEntity, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	todo, ok := r.store.todos[id]
	if !ok {
		return domain.TodoEntity{}, &NotFoundError{ID: id}
	}
	todo = patch.Apply(todo)
	r.store.todos[id] = todo
	return todo.Entity(), nil
}

func (r MemoryTodoRepository) Delete(_ context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.todos[id]; !ok {
		return &NotFoundError{ID: id}
	}
	delete(r.store.todos, id)
	return nil
}

var _ TodoRepository = MemoryTodoRepository{}
