package domain

import (
	"errors"
	"time"
)

// TaskStatus represents the lifecycle state of a personal task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// TaskPriority orders tasks on the employee dashboard.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a personal to-do item owned by a single employee.
type Task struct {
	ID          string       `json:"id" bson:"_id,omitempty"`
	Owner       string       `json:"owner" bson:"owner"` // employee email
	Title       string       `json:"title" bson:"title"`
	Description string       `json:"description,omitempty" bson:"description,omitempty"`
	Status      TaskStatus   `json:"status" bson:"status"`
	Priority    TaskPriority `json:"priority" bson:"priority"`
	DueDate     time.Time    `json:"due_date" bson:"due_date"`
	CreatedAt   time.Time    `json:"created_at" bson:"created_at"`
}

var ErrTaskNotFound = errors.New("task not found")
