package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/emsuite/employee-system/internal/core/domain"
	"github.com/emsuite/employee-system/internal/core/ports"
)

// TaskHandler serves the employee task board.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

type taskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"      validate:"omitempty,oneof=pending in-progress completed"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=low medium high"`
	DueDate     string `json:"due_date"    validate:"required,datetime=2006-01-02"`
}

// List returns the caller's tasks.
//
// @Summary      List tasks
// @Tags         tasks
// @Produce      json
// @Success      200  {array}  domain.Task
// @Router       /dashboard/employee/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.List(c.Request().Context(), identity.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// Create adds a task to the caller's board.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      taskRequest  true  "Task details"
// @Success      201   {object}  domain.Task
// @Failure      400   {object}  errorResponse
// @Router       /dashboard/employee/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	req, due, err := bindTaskRequest(c)
	if err != nil {
		return err
	}

	task, err := h.service.Create(c.Request().Context(), ports.CreateTaskInput{
		Owner:       identity.Email,
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		Priority:    domain.TaskPriority(req.Priority),
		DueDate:     due,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, task)
}

// Update edits one of the caller's tasks.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "Task ID"
// @Param        body  body      taskRequest  true  "New task details"
// @Success      200   {object}  domain.Task
// @Failure      404   {object}  errorResponse
// @Router       /dashboard/employee/tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	req, due, err := bindTaskRequest(c)
	if err != nil {
		return err
	}

	task, err := h.service.Update(c.Request().Context(), ports.UpdateTaskInput{
		ID:          c.Param("id"),
		Owner:       identity.Email,
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		Priority:    domain.TaskPriority(req.Priority),
		DueDate:     due,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Delete removes one of the caller's tasks.
//
// @Summary      Delete a task
// @Tags         tasks
// @Param        id  path  string  true  "Task ID"
// @Success      204  "task removed"
// @Failure      404  {object}  errorResponse
// @Router       /dashboard/employee/tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), identity.Email); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func bindTaskRequest(c echo.Context) (*taskRequest, time.Time, error) {
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return nil, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Status == "" {
		req.Status = string(domain.TaskPending)
	}
	if req.Priority == "" {
		req.Priority = string(domain.PriorityMedium)
	}

	due, err := parseDate(req.DueDate)
	if err != nil {
		return nil, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "due_date must be a date in 2006-01-02 format")
	}
	return &req, due, nil
}
