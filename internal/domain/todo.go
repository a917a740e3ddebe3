package domain

// Todo is the flat row stored in the todos table.
type Todo struct {
	ID        int    `json:"id" gorm:"primaryKey"`
	Text      string `json:"text" gorm:"not null"`
	Completed bool   `json:"completed" gorm:"not null;default:false"`
}

// TodoEntity is the shape returned to API callers.
// Labels is declared for the todo/label association but no query fills it yet.
type TodoEntity struct {
	ID        int     `json:"id"`
	Text      string  `json:"text"`
	Completed bool    `json:"completed"`
	Labels    []Label `json:"labels"`
}

// UpdateTodo is a field-level patch. Nil fields keep the stored value.
type UpdateTodo struct {
	Text      *string
	Completed *bool
}

// Apply returns t with the supplied fields of u merged in.
func (u UpdateTodo) Apply(t Todo) Todo {
	if u.Text != nil {
		t.Text = *u.Text
	}
	if u.Completed != nil {
		t.Completed = *u.Completed
	}
	return t
}

func (t Todo) Entity() TodoEntity {
	return TodoEntity{
		ID:        t.ID,
		Text:      t.Text,
		Completed: t.Completed,
		Labels:    []Label{},
	}
}

// FoldTodos turns store rows into entities, one per row, preserving order.
func FoldTodos(rows []Todo) []TodoEntity {
	entities := make([]TodoEntity, 0, len(rows))
	for _, row := range rows {
		entities = append(entities, row.Entity())
	}
	return entities
}
