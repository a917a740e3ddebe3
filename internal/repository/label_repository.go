package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Tomlord1122/todo-label-api/internal/domain"
)

// LabelRepository defines the interface for label data operations
type LabelRepository interface {
	Create(ctx context.Context, name string) (domain.Label, error)
	All(ctx context.Context) ([]domain.Label, error)
	Delete(ctx context.Context, id int) error
}

type GormLabelRepository struct {
	db *gorm.DB
}

func NewGormLabelRepository(db *gorm.DB) GormLabelRepository {
	return GormLabelRepository{db: db}
}

// Create inserts the label and lets the unique index on name decide
// conflicts. On a conflict the existing label's id is reported. If the
// conflicting label is deleted before it can be read back, the insert is
// tried once more.
func (r GormLabelRepository) Create(ctx context.Context, name string) (domain.Label, error) {
	db := r.db.WithContext(ctx)

	for attempt := 0; ; attempt++ {
		label := domain.Label{Name: name}
		err := db.Create(&label).Error
		if err == nil {
			return label, nil
		}
		if !isUniqueViolation(err) {
			return domain.Label{}, unexpected(err)
		}

		var existing domain.Label
		err = db.Where("name = ?", name).First(&existing).Error
		if err == nil {
			return domain.Label{}, &DuplicateError{ID: existing.ID}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) || attempt > 0 {
			return domain.Label{}, unexpected(err)
		}
	}
}

// All returns labels in ascending id order.
func (r GormLabelRepository) All(ctx context.Context) ([]domain.Label, error) {
	labels := []domain.Label{}
	if err := r.db.WithContext(ctx).Order("id asc").Find(&labels).Error; err != nil {
		return nil, unexpected(err)
	}
	return labels, nil
}

func (r GormLabelRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&domain.Label{}, id)
	if result.Error != nil {
		return unexpected(result.Error)
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{ID: id}
	}
	return nil
}

var _ LabelRepository = GormLabelRepository{}
