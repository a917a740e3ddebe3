package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Tomlord1122/todo-label-api/internal/domain"
	"github.com/Tomlord1122/todo-label-api/internal/repository"
)

// CreateTodoRequest holds the data needed to create a new todo
type CreateTodoRequest struct {
	Text string `json:"text" validate:"required,min=1,max=100"`
}

// UpdateTodoRequest holds the data for updating an existing todo.
// Pointers distinguish an omitted field from one set to its zero value.
type UpdateTodoRequest struct {
	Text      *string `json:"text" validate:"omitnil,min=1,max=100"`
	Completed *bool   `json:"completed"`
}

// TodoService defines the operations for managing todos.
type TodoService interface {
	CreateTodo(ctx context.Context, req CreateTodoRequest) (domain.TodoEntity, error)
	GetTodoByID(ctx context.Context, id int) (domain.TodoEntity, error)
	GetAllTodos(ctx context.Context) ([]domain.TodoEntity, error)
	UpdateTodo(ctx context.Context, id int, req UpdateTodoRequest) (domain.TodoEntity, error)
	DeleteTodo(ctx context.Context, id int) error
}

// todoService validates input and hands off to whichever TodoRepository
// backend was selected at startup. Repository errors are returned wrapped
// so callers can still classify them with errors.As; logging failures is
// left to the caller.
type todoService struct {
	repo   repository.TodoRepository
	logger *slog.Logger
}

func NewTodoService(repo repository.TodoRepository, logger *slog.Logger) TodoService {
	return &todoService{
		repo:   repo,
		logger: logger,
	}
}

func (s *todoService) CreateTodo(ctx context.Context, req CreateTodoRequest) (domain.TodoEntity, error) {
	if err := validateRequest(req); err != nil {
		return domain.TodoEntity{}, err
	}

	todo, err := s.repo.Create(ctx, req.Text)
	if err != nil {
		return domain.TodoEntity{}, fmt.Errorf("create todo: %w", err)
	}
	s.logger.DebugContext(ctx, "todo created", "id", todo.ID)
	return todo, nil
}

func (s *todoService) GetTodoByID(ctx context.Context, id int) (domain.TodoEntity, error) {
	todo, err := s.repo.Find(ctx, id)
	if err != nil {
		return domain.TodoEntity{}, fmt.Errorf("find todo: %w", err)
	}
	return todo, nil
}

func (s *todoService) GetAllTodos(ctx context.Context) ([]domain.TodoEntity, error) {
	todos, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

func (s *todoService) UpdateTodo(ctx context.Context, id int, req UpdateTodoRequest) (domain.TodoEntity, error) {
	if err := validateRequest(req); err != nil {
		return domain.TodoEntity{}, err
	}

	todo, err := s.repo.Update(ctx, id, domain.UpdateTodo{
		Text:      req.Text,
		Completed: req.Completed,
	})
	if err != nil {
		return domain.TodoEntity{}, fmt.Errorf("update todo: %w", err)
	}
	return todo, nil
}

func (s *todoService) DeleteTodo(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	s.logger.DebugContext(ctx, "todo deleted", "id", id)
	return nil
}
