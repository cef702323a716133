package ports

import (
	"context"
	"time"

	"github.com/emsuite/employee-system/internal/core/domain"
)

// PayslipRepository persists monthly payslips.
type PayslipRepository interface {
	Insert(ctx context.Context, payslip *domain.Payslip) (*domain.Payslip, error)
	FindByID(ctx context.Context, id string) (*domain.Payslip, error)
	ListByEmployee(ctx context.Context, employee string, year int) ([]domain.Payslip, error)
	ListAll(ctx context.Context) ([]domain.Payslip, error)
	Update(ctx context.Context, payslip *domain.Payslip) error
}

// UploadPayslipInput carries the HR payslip upload form. NetSalary is
// computed by the service, never supplied.
type UploadPayslipInput struct {
	Employee    string
	Month       time.Month
	Year        int
	GrossSalary float64
	Deductions  float64
}

// PayslipService defines the HR upload flow and the employee view.
type PayslipService interface {
	Upload(ctx context.Context, input UploadPayslipInput) (*domain.Payslip, error)
	ListByEmployee(ctx context.Context, employee string, year int) ([]domain.Payslip, error)
	ListAll(ctx context.Context) ([]domain.Payslip, error)

	// Download marks the payslip as downloaded and returns it. The
	// owner is checked so employees only fetch their own slips.
	Download(ctx context.Context, id, employee string) (*domain.Payslip, error)
}
