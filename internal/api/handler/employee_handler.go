package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/emsuite/employee-system/internal/core/ports"
)

// EmployeeHandler serves the admin "all employees" view over the
// identity directory.
type EmployeeHandler struct {
	directory ports.DirectoryRepository
}

func NewEmployeeHandler(directory ports.DirectoryRepository) *EmployeeHandler {
	return &EmployeeHandler{directory: directory}
}

// List returns every identity in the directory.
//
// @Summary      List all employees
// @Tags         employees
// @Produce      json
// @Success      200  {array}  domain.Identity
// @Router       /dashboard/admin/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	identities, err := h.directory.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identities)
}
