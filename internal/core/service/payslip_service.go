package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/emsuite/employee-system/internal/core/domain"
	"github.com/emsuite/employee-system/internal/core/ports"
)

// PayslipService implements the HR payslip upload and the employee
// payslip view.
type PayslipService struct {
	repo      ports.PayslipRepository
	directory ports.DirectoryRepository
	logger    zerolog.Logger
}

func NewPayslipService(repo ports.PayslipRepository, directory ports.DirectoryRepository, logger zerolog.Logger) *PayslipService {
	return &PayslipService{repo: repo, directory: directory, logger: logger}
}

// Upload records a new payslip for a known employee. The net salary is
// always gross minus deductions, computed here.
func (s *PayslipService) Upload(ctx context.Context, input ports.UploadPayslipInput) (*domain.Payslip, error) {
	if input.Deductions > input.GrossSalary {
		return nil, domain.ErrInvalidPayslipAmounts
	}
	if _, err := s.directory.FindByEmail(ctx, input.Employee); err != nil {
		return nil, err
	}

	payslip := &domain.Payslip{
		Employee:    input.Employee,
		Month:       input.Month,
		Year:        input.Year,
		GrossSalary: input.GrossSalary,
		Deductions:  input.Deductions,
		NetSalary:   input.GrossSalary - input.Deductions,
		GeneratedAt: time.Now().UTC(),
		Status:      domain.PayslipGenerated,
	}

	created, err := s.repo.Insert(ctx, payslip)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("employee", created.Employee).
		Int("year", created.Year).
		Str("month", created.Month.String()).
		Msg("payslip uploaded")
	return created, nil
}

func (s *PayslipService) ListByEmployee(ctx context.Context, employee string, year int) ([]domain.Payslip, error) {
	return s.repo.ListByEmployee(ctx, employee, year)
}

func (s *PayslipService) ListAll(ctx context.Context) ([]domain.Payslip, error) {
	return s.repo.ListAll(ctx)
}

// Download marks the payslip as downloaded and returns it. A slip
// belonging to another employee reads as not found.
func (s *PayslipService) Download(ctx context.Context, id, employee string) (*domain.Payslip, error) {
	payslip, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payslip.Employee != employee {
		return nil, domain.ErrPayslipNotFound
	}

	if payslip.Status != domain.PayslipDownloaded {
		payslip.Status = domain.PayslipDownloaded
		if err := s.repo.Update(ctx, payslip); err != nil {
			return nil, err
		}
	}
	return payslip, nil
}
