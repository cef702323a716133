package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/emsuite/employee-system/internal/core/domain"
	"github.com/emsuite/employee-system/internal/core/ports"
)

// TaskService implements the employee task board.
type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

func (s *TaskService) Create(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	task := &domain.Task{
		Owner:       input.Owner,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		CreatedAt:   time.Now().UTC(),
	}
	if task.Status == "" {
		task.Status = domain.TaskPending
	}
	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}

	created, err := s.repo.Insert(ctx, task)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("owner", created.Owner).Str("task_id", created.ID).Msg("task created")
	return created, nil
}

func (s *TaskService) List(ctx context.Context, owner string) ([]domain.Task, error) {
	return s.repo.ListByOwner(ctx, owner)
}

// Update edits an existing task. Tasks belong to their creator; an
// update against someone else's task reads as not found.
func (s *TaskService) Update(ctx context.Context, input ports.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if task.Owner != input.Owner {
		return nil, domain.ErrTaskNotFound
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Status = input.Status
	task.Priority = input.Priority
	task.DueDate = input.DueDate

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id, owner string) error {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if task.Owner != owner {
		return domain.ErrTaskNotFound
	}
	return s.repo.Delete(ctx, id)
}
