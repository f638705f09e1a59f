package businesshours

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/timeclock-app/timeclock-backend-go/internal/domain/businesshours"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/clock"
)

// Defaults applied when no configuration row exists yet.
const (
	DefaultStartTime     = "09:00"
	DefaultEndTime       = "17:00"
	DefaultBreakDuration = 60
	DefaultLateThreshold = 15
)

type BusinessHoursServiceImpl struct {
	businesshours.BusinessHoursRepository
	clock clock.Clock
}

func NewBusinessHoursService(repo businesshours.BusinessHoursRepository, clk clock.Clock) businesshours.BusinessHoursService {
	return &BusinessHoursServiceImpl{
		BusinessHoursRepository: repo,
		clock:                   clk,
	}
}

func (s *BusinessHoursServiceImpl) Get(ctx context.Context) (businesshours.BusinessHoursResponse, error) {
	hours, err := s.BusinessHoursRepository.Get(ctx)
	if errors.Is(err, businesshours.ErrNotConfigured) {
		return toResponse(s.defaults()), nil
	}
	if err != nil {
		return businesshours.BusinessHoursResponse{}, fmt.Errorf("failed to load business hours: %w", err)
	}
	return toResponse(hours), nil
}

func (s *BusinessHoursServiceImpl) Update(ctx context.Context, req businesshours.UpdateBusinessHoursRequest) (businesshours.BusinessHoursResponse, error) {
	if err := req.Validate(); err != nil {
		return businesshours.BusinessHoursResponse{}, err
	}

	hours, err := s.BusinessHoursRepository.Get(ctx)
	if errors.Is(err, businesshours.ErrNotConfigured) {
		hours = s.defaults()
	} else if err != nil {
		return businesshours.BusinessHoursResponse{}, fmt.Errorf("failed to load business hours: %w", err)
	}

	if req.StartTime != nil {
		hours.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		hours.EndTime = *req.EndTime
	}
	if req.BreakDuration != nil {
		hours.BreakDuration = *req.BreakDuration
	}
	if req.LateThreshold != nil {
		hours.LateThreshold = *req.LateThreshold
	}

	// re-check the combined interval: a partial update may pair a new start
	// with the stored end
	start, errStart := time.Parse("15:04", hours.StartTime)
	end, errEnd := time.Parse("15:04", hours.EndTime)
	if errStart != nil || errEnd != nil || !start.Before(end) {
		return businesshours.BusinessHoursResponse{}, businesshours.ErrInvalidInterval
	}

	hours.UpdatedAt = s.clock.Now()

	saved, err := s.BusinessHoursRepository.Save(ctx, hours)
	if err != nil {
		return businesshours.BusinessHoursResponse{}, fmt.Errorf("failed to save business hours: %w", err)
	}

	slog.Info("business hours updated",
		"start_time", saved.StartTime,
		"end_time", saved.EndTime,
		"late_threshold", saved.LateThreshold,
	)

	return toResponse(saved), nil
}

func (s *BusinessHoursServiceImpl) defaults() businesshours.BusinessHours {
	return businesshours.BusinessHours{
		ID:            uuid.New().String(),
		StartTime:     DefaultStartTime,
		EndTime:       DefaultEndTime,
		BreakDuration: DefaultBreakDuration,
		LateThreshold: DefaultLateThreshold,
		UpdatedAt:     s.clock.Now(),
	}
}

func toResponse(h businesshours.BusinessHours) businesshours.BusinessHoursResponse {
	return businesshours.BusinessHoursResponse{
		StartTime:     h.StartTime,
		EndTime:       h.EndTime,
		BreakDuration: h.BreakDuration,
		LateThreshold: h.LateThreshold,
		UpdatedAt:     h.UpdatedAt.Format(time.RFC3339),
	}
}
