package domain

type Label struct {
	ID   int    `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null;uniqueIndex"`
}

// UpdateLabel has no matching repository operation; labels are immutable once created.
type UpdateLabel struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
