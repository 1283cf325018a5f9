package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhlee0214/wakemeup/internal/pkg/errors"
	"github.com/jhlee0214/wakemeup/internal/pkg/utils"
	"github.com/jhlee0214/wakemeup/internal/pkg/validator"
	"github.com/jhlee0214/wakemeup/internal/usecase"
	"github.com/jhlee0214/wakemeup/internal/usecase/dto"
	"go.uber.org/zap"
)

type AlarmHandler struct {
	alarmUC *usecase.AlarmUseCase
	logger  *zap.Logger
}

func NewAlarmHandler(alarmUC *usecase.AlarmUseCase, logger *zap.Logger) *AlarmHandler {
	return &AlarmHandler{
		alarmUC: alarmUC,
		logger:  logger,
	}
}

// PlanAlarm - расчёт времени будильника
// @Summary Расчёт будильника
// @Description Будильник = отправление - запас, прибытие = отправление + время в пути. Ничего не сохраняется.
// @Tags Alarms
// @Accept json
// @Produce json
// @Param request body dto.AlarmPlanRequest true "Время отправления, запас и время в пути (минуты)"
// @Success 200 {object} utils.SuccessResponse{data=dto.AlarmPlanResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/alarms/plan [post]
func (h *AlarmHandler) PlanAlarm(c *fiber.Ctx) error {
	var req dto.AlarmPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": err.Error(),
		}))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.alarmUC.Plan(req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
