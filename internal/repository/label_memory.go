package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/Tomlord1122/todo-label-api/internal/domain"
)

type labelStore struct {
	mu     sync.RWMutex
	labels map[int]domain.Label
	byName map[string]int
	nextID int
}

// MemoryLabelRepository is the in-process counterpart of GormLabelRepository.
type MemoryLabelRepository struct {
	store *labelStore
}

func NewMemoryLabelRepository() MemoryLabelRepository {
	return MemoryLabelRepository{
		store: &labelStore{
			labels: make(map[int]domain.Label),
			byName: make(map[string]int),
		},
	}
}

func (r MemoryLabelRepository) Create(_ context.Context, name string) (domain.Label, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if id, ok := r.store.byName[name]; ok {
		return domain.Label{}, &DuplicateError{ID: id}
	}

	r.store.nextID++
	label := domain.Label{ID: r.store.nextID, Name: name}
	r.store.labels[label.ID] = label
	r.store.byName[name] = label.ID
	return label, nil
}

func (r MemoryLabelRepository) All(_ context.Context) ([]domain.Label, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	labels := make([]domain.Label, 0, len(r.store.labels))
	for _, label := range r.store.labels {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i].ID < labels[j].ID })
	return labels, nil
}

func (r MemoryLabelRepository) Delete(_ context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	label, ok := r.store.labels[id]
	if !ok {
		return &NotFoundError{ID: id}
	}
	delete(r.store.labels, id)
	delete(r.store.byName, label.Name)
	return nil
}

var _ LabelRepository = MemoryLabelRepository{}
