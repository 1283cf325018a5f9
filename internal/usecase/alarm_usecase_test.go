package usecase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jhlee0214/wakemeup/internal/config"
	"github.com/jhlee0214/wakemeup/internal/pkg/errors"
	"github.com/jhlee0214/wakemeup/internal/usecase"
	"github.com/jhlee0214/wakemeup/internal/usecase/dto"
)

func newAlarmUseCase() *usecase.AlarmUseCase {
	return usecase.NewAlarmUseCase(&config.AlarmConfig{
		DefaultBufferMinutes: 10,
		DefaultTravelMinutes: 25,
	}, zap.NewNop())
}

func intPtr(i int) *int {
	return &i
}

func TestAlarmUseCase_PlanAlarm(t *testing.T) {
	uc := newAlarmUseCase()
	melbourne := time.FixedZone("AEDT", 11*60*60)
	departure := time.Date(2026, 3, 2, 8, 15, 0, 0, melbourne)

	t.Run("alarm before departure, arrival after", func(t *testing.T) {
		plan, err := uc.PlanAlarm(departure, 15, 40)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, plan.ID)
		assert.True(t, plan.AlarmTime.Equal(time.Date(2026, 3, 2, 8, 0, 0, 0, melbourne)))
		assert.True(t, plan.ArrivalTime.Equal(time.Date(2026, 3, 2, 8, 55, 0, 0, melbourne)))
		assert.Equal(t, departure, plan.DepartureTime)
		assert.Equal(t, 15, plan.LeadMinutes)
		assert.Equal(t, 40, plan.TravelMinutes)
	})

	t.Run("zero buffer and travel", func(t *testing.T) {
		plan, err := uc.PlanAlarm(departure, 0, 0)
		require.NoError(t, err)
		assert.True(t, plan.AlarmTime.Equal(departure))
		assert.True(t, plan.ArrivalTime.Equal(departure))
	})

	t.Run("each plan gets its own id", func(t *testing.T) {
		a, err := uc.PlanAlarm(departure, 10, 25)
		require.NoError(t, err)
		b, err := uc.PlanAlarm(departure, 10, 25)
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("out of range", func(t *testing.T) {
		tests := []struct {
			name   string
			dep    time.Time
			buffer int
			travel int
		}{
			{"negative buffer", departure, -1, 25},
			{"buffer too large", departure, 181, 25},
			{"negative travel", departure, 10, -5},
			{"travel too large", departure, 10, 601},
			{"missing departure", time.Time{}, 10, 25},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				plan, err := uc.PlanAlarm(tt.dep, tt.buffer, tt.travel)
				assert.Nil(t, plan)
				assert.ErrorIs(t, err, errors.ErrInvalidRequest)
			})
		}
	})
}

func TestAlarmUseCase_Plan(t *testing.T) {
	uc := newAlarmUseCase()
	departure := time.Date(2026, 3, 2, 21, 15, 0, 0, time.UTC)

	t.Run("defaults", func(t *testing.T) {
		resp, err := uc.Plan(dto.AlarmPlanRequest{DepartureTime: departure})

		require.NoError(t, err)
		assert.Equal(t, departure.Add(-10*time.Minute), resp.AlarmTime)
		assert.Equal(t, departure.Add(25*time.Minute), resp.ArrivalTime)
		assert.Equal(t, 10, resp.LeadMinutes)
		assert.Equal(t, 25, resp.TravelMinutes)
	})

	t.Run("explicit zero buffer overrides default", func(t *testing.T) {
		resp, err := uc.Plan(dto.AlarmPlanRequest{
			DepartureTime: departure,
			BufferMinutes: intPtr(0),
			TravelMinutes: intPtr(5),
		})

		require.NoError(t, err)
		assert.Equal(t, departure, resp.AlarmTime)
		assert.Equal(t, 5, resp.TravelMinutes)
	})
}
