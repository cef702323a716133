package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/emsuite/employee-system/internal/core/domain"
	"github.com/emsuite/employee-system/internal/core/ports"
)

// HolidayService implements the shared company calendar.
type HolidayService struct {
	repo   ports.HolidayRepository
	logger zerolog.Logger
}

func NewHolidayService(repo ports.HolidayRepository, logger zerolog.Logger) *HolidayService {
	return &HolidayService{repo: repo, logger: logger}
}

func (s *HolidayService) Create(ctx context.Context, input ports.CreateHolidayInput) (*domain.Holiday, error) {
	holiday := &domain.Holiday{
		Name:        input.Name,
		Date:        input.Date,
		Type:        input.Type,
		Description: input.Description,
	}

	created, err := s.repo.Insert(ctx, holiday)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("name", created.Name).Time("date", created.Date).Msg("holiday added")
	return created, nil
}

// List returns all holidays sorted by date ascending.
func (s *HolidayService) List(ctx context.Context) ([]domain.Holiday, error) {
	holidays, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})
	return holidays, nil
}

// Upcoming returns at most limit holidays on or after the given day.
func (s *HolidayService) Upcoming(ctx context.Context, from time.Time, limit int) ([]domain.Holiday, error) {
	holidays, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	upcoming := make([]domain.Holiday, 0, limit)
	for _, h := range holidays {
		if h.Date.Before(from) {
			continue
		}
		upcoming = append(upcoming, h)
		if len(upcoming) == limit {
			break
		}
	}
	return upcoming, nil
}

func (s *HolidayService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("holiday_id", id).Msg("holiday removed")
	return nil
}
