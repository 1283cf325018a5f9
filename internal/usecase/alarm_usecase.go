package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhlee0214/wakemeup/internal/config"
	"github.com/jhlee0214/wakemeup/internal/domain"
	"github.com/jhlee0214/wakemeup/internal/pkg/errors"
	"github.com/jhlee0214/wakemeup/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	maxBufferMinutes = 180
	maxTravelMinutes = 600
)

// AlarmUseCase derives alarm and arrival times from a departure time.
// Nothing is stored or scheduled.
type AlarmUseCase struct {
	defaultBuffer int
	defaultTravel int
	logger        *zap.Logger
}

func NewAlarmUseCase(cfg *config.AlarmConfig, logger *zap.Logger) *AlarmUseCase {
	return &AlarmUseCase{
		defaultBuffer: cfg.DefaultBufferMinutes,
		defaultTravel: cfg.DefaultTravelMinutes,
		logger:        logger,
	}
}

// PlanAlarm: alarm = departure - buffer, arrival = departure + travel
func (uc *AlarmUseCase) PlanAlarm(departure time.Time, bufferMinutes, travelMinutes int) (*domain.AlarmPlan, error) {
	if departure.IsZero() {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"departure_time": "required",
		})
	}
	if bufferMinutes < 0 || bufferMinutes > maxBufferMinutes {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"buffer_minutes": bufferMinutes,
		})
	}
	if travelMinutes < 0 || travelMinutes > maxTravelMinutes {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"travel_minutes": travelMinutes,
		})
	}

	return &domain.AlarmPlan{
		ID:            uuid.New(),
		AlarmTime:     departure.Add(-time.Duration(bufferMinutes) * time.Minute),
		DepartureTime: departure,
		ArrivalTime:   departure.Add(time.Duration(travelMinutes) * time.Minute),
		LeadMinutes:   bufferMinutes,
		TravelMinutes: travelMinutes,
	}, nil
}

// Plan - расчёт будильника для HTTP, с подстановкой значений по умолчанию
func (uc *AlarmUseCase) Plan(req dto.AlarmPlanRequest) (*dto.AlarmPlanResponse, error) {
	buffer := uc.defaultBuffer
	if req.BufferMinutes != nil {
		buffer = *req.BufferMinutes
	}
	travel := uc.defaultTravel
	if req.TravelMinutes != nil {
		travel = *req.TravelMinutes
	}

	plan, err := uc.PlanAlarm(req.DepartureTime, buffer, travel)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("Alarm planned",
		zap.String("plan_id", plan.ID.String()),
		zap.Time("alarm_time", plan.AlarmTime),
		zap.Time("departure_time", plan.DepartureTime))

	return dto.ConvertAlarmPlan(plan), nil
}
