package dto

// CreateTaskRequest represents the request body for creating a task.
// Enum fields are optional; the usecase applies the documented defaults.
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" binding:"omitempty,oneof=work personal study other"`
	Priority    string  `json:"priority" binding:"omitempty,oneof=high medium low"`
	Status      string  `json:"status" binding:"omitempty,oneof=pending completed archived"`
	DueDate     *string `json:"dueDate"`
	Recurring   string  `json:"recurring" binding:"omitempty,oneof=none daily weekly monthly"`
}

// UpdateTaskRequest represents a partial update; nil fields are left untouched.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty" binding:"omitempty,oneof=work personal study other"`
	Priority    *string `json:"priority,omitempty" binding:"omitempty,oneof=high medium low"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=pending completed archived"`
	DueDate     *string `json:"dueDate,omitempty"`
	Recurring   *string `json:"recurring,omitempty" binding:"omitempty,oneof=none daily weekly monthly"`
}

// ReorderRequest carries the full id sequence produced by a drag gesture.
type ReorderRequest struct {
	TaskIDs []string `json:"taskIds" binding:"required"`
}

// MoveRequest describes a drag gesture by list position.
type MoveRequest struct {
	Source      int `json:"source" binding:"min=0"`
	Destination int `json:"destination" binding:"min=0"`
}

// AddSubtaskRequest represents the request body for adding a subtask.
type AddSubtaskRequest struct {
	Title string `json:"title" binding:"required"`
}
