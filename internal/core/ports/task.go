package ports

import (
	"context"
	"time"

	"github.com/emsuite/employee-system/internal/core/domain"
)

// TaskRepository persists personal tasks.
type TaskRepository interface {
	Insert(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	ListByOwner(ctx context.Context, owner string) ([]domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) error
}

// CreateTaskInput carries the fields of the "add task" form.
type CreateTaskInput struct {
	Owner       string
	Title       string
	Description string
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	DueDate     time.Time
}

// UpdateTaskInput carries an edit of an existing task. The owner is
// checked so an employee can only touch their own tasks.
type UpdateTaskInput struct {
	ID          string
	Owner       string
	Title       string
	Description string
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	DueDate     time.Time
}

// TaskService defines use-case operations for the employee task board.
type TaskService interface {
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	List(ctx context.Context, owner string) ([]domain.Task, error)
	Update(ctx context.Context, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, id, owner string) error
}
