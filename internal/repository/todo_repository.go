package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Tomlord1122/todo-label-api/internal/domain"
)

// TodoRepository defines the interface for todo data operations
type TodoRepository interface {
	Create(ctx context.Context, text string) (domain.TodoEntity, error)
	Find(ctx context.Context, id int) (domain.TodoEntity, error)
	All(ctx context.Context) ([]domain.TodoEntity, error)
	Update(ctx context.Context, id int, patch domain.UpdateTodo) (domain.TodoEntity, error)
	Delete(ctx context.Context, id int) error
}

// GormTodoRepository implements TodoRepository on top of the todos table.
// Rows are folded into entities on the way out.
type GormTodoRepository struct {
	db *gorm.DB
}

// NewGormTodoRepository creates a new GORM todo repository
func NewGormTodoRepository(db *gorm.DB) GormTodoRepository {
	return GormTodoRepository{db: db}
}

func (r GormTodoRepository) Create(ctx context.Context, text string) (domain.TodoEntity, error) {
	row := domain.Todo{Text: text}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.TodoEntity{}, unexpected(err)
	}
	return row.Entity(), nil
}

func (r GormTodoRepository) Find(ctx context.Context, id int) (domain.TodoEntity, error) {
	var row domain.Todo
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return domain.TodoEntity{}, classify(err, id)
	}
	return row.Entity(), nil
}

// All returns every todo, newest id first.
func (r GormTodoRepository) All(ctx context.Context) ([]domain.TodoEntity, error) {
	var rows []domain.Todo
	if err := r.db.WithContext(ctx).Order("id desc").Find(&rows).Error; err != nil {
		return nil, unexpected(err)
	}
	return domain.FoldTodos(rows), nil
}

// Update locks the row for the duration of the read-merge-write so a
// concurrent delete cannot resurrect it or swallow the change.
func (r GormTodoRepository) Update(ctx context.Context, id int, patch domain.UpdateTodo) (domain.TodoEntity, error) {
	var updated domain.Todo
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row domain.Todo
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&row, id).Error; err != nil {
			return err
		}

		row = patch.Apply(row)
		result := tx.Model(&domain.Todo{ID: id}).Updates(map[string]any{
			"text":      row.Text,
			"completed": row.Completed,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		updated = row
		return nil
	})
	if err != nil {
		return domain.TodoEntity{}, classify(err, id)
	}
	return updated.Entity(), nil
}

func (r GormTodoRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&domain.Todo{}, id)
	if result.Error != nil {
		return unexpected(result.Error)
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{ID: id}
	}
	return nil
}

var _ TodoRepository = GormTodoRepository{}
