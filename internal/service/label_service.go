package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Tomlord1122/todo-label-api/internal/domain"
	"github.com/Tomlord1122/todo-label-api/internal/repository"
)

type CreateLabelRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type LabelService interface {
	CreateLabel(ctx context.Context, req CreateLabelRequest) (domain.Label, error)
	GetAllLabels(ctx context.Context) ([]domain.Label, error)
	DeleteLabel(ctx context.Context, id int) error
}

type labelService struct {
	repo   repository.LabelRepository
	logger *slog.Logger
}

func NewLabelService(repo repository.LabelRepository, logger *slog.Logger) LabelService {
	return &labelService{repo: repo, logger: logger}
}

func (s *labelService) CreateLabel(ctx context.Context, req CreateLabelRequest) (domain.Label, error) {
	if err := validateRequest(req); err != nil {
		return domain.Label{}, err
	}

	label, err := s.repo.Create(ctx, req.Name)
	if err != nil {
		return domain.Label{}, fmt.Errorf("create label: %w", err)
	}
	s.logger.DebugContext(ctx, "label created", "id", label.ID)
	return label, nil
}

func (s *labelService) GetAllLabels(ctx context.Context) ([]domain.Label, error) {
	labels, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list labels: %w", err)
	}
	return labels, nil
}

func (s *labelService) DeleteLabel(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete label: %w", err)
	}
	s.logger.DebugContext(ctx, "label deleted", "id", id)
	return nil
}
