package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhlee0214/wakemeup/internal/pkg/errors"
	"github.com/jhlee0214/wakemeup/internal/pkg/utils"
	"github.com/jhlee0214/wakemeup/internal/pkg/validator"
	"github.com/jhlee0214/wakemeup/internal/usecase"
	"github.com/jhlee0214/wakemeup/internal/usecase/dto"
	"go.uber.org/zap"
)

// StopHandler - обработчик запросов по остановкам
type StopHandler struct {
	stopUC  *usecase.StopUseCase
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

// NewStopHandler - создание нового StopHandler
func NewStopHandler(stopUC *usecase.StopUseCase, routeUC *usecase.RouteUseCase, logger *zap.Logger) *StopHandler {
	return &StopHandler{
		stopUC:  stopUC,
		routeUC: routeUC,
		logger:  logger,
	}
}

// GetNearbyStops - ближайшие остановки, отсортированные по расстоянию
// @Summary Ближайшие остановки
// @Description Возвращает остановки выбранного вида транспорта рядом с точкой, по возрастанию расстояния, с оценкой времени пешком
// @Tags Stops
// @Accept json
// @Produce json
// @Param request body dto.NearbyStopsRequest true "Точка и вид транспорта"
// @Success 200 {object} utils.SuccessResponse{data=dto.NearbyStopsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stops/nearby [post]
func (h *StopHandler) GetNearbyStops(c *fiber.Ctx) error {
	var req dto.NearbyStopsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": err.Error(),
		}))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.stopUC.GetNearbyStops(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Stops),
		Limit: result.MaxResults,
	})
}

// GetStopRoutes - маршруты, проходящие через остановку
// @Summary Маршруты остановки
// @Description Возвращает маршруты выбранного вида транспорта для остановки
// @Tags Stops
// @Produce json
// @Param stop_id path int true "ID остановки"
// @Param mode query string true "Вид транспорта" Enums(train, tram, bus)
// @Success 200 {object} utils.SuccessResponse{data=dto.StopRoutesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/stops/{stop_id}/routes [get]
func (h *StopHandler) GetStopRoutes(c *fiber.Ctx) error {
	stopID, err := strconv.ParseInt(c.Params("stop_id"), 10, 64)
	if err != nil || stopID <= 0 {
		return utils.SendError(c, errors.ErrInvalidStopID)
	}

	req := dto.StopRoutesRequest{
		StopID: stopID,
		Mode:   c.Query("mode"),
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.routeUC.GetStopRoutes(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Routes),
	})
}
