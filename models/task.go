package models

import "time"

// Task represents a single task record owned by exactly one user.
type Task struct {
	// TaskID is the unique identifier of the task.
	TaskID string `json:"id"`

	// UserID is the identifier of the owning user. Every task operation
	// requires the caller's identity to match this field exactly.
	UserID string `json:"user"`

	// Title is the short task title. Required at creation.
	Title string `json:"title"`

	// Description is the task body. Required at creation.
	Description string `json:"description"`

	// CreatedAt is the timestamp when the task was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TaskUpdate represents a partial update of a single task.
// Only non-nil fields will be updated.
type TaskUpdate struct {
	// TaskID is the identifier of the task to update. Required.
	TaskID string `json:"id"`

	// UserID is the owner of the task. Required for data isolation.
	UserID string `json:"user"`

	// Title is the new title. If nil, the field is left unchanged.
	Title *string `json:"title,omitempty"`

	// Description is the new description. If nil, the field is left unchanged.
	Description *string `json:"description,omitempty"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}
