package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhlee0214/wakemeup/internal/pkg/utils"
	"github.com/jhlee0214/wakemeup/internal/usecase/dto"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker - зависимость, которую можно пропинговать (Redis)
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler отвечает на проверки живости
type HealthHandler struct {
	transitSource string
	cache         HealthChecker
	logger        *zap.Logger
}

// NewHealthHandler создает HealthHandler; cache может быть nil, если кеш выключен
func NewHealthHandler(transitSource string, cache HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		transitSource: transitSource,
		cache:         cache,
		logger:        logger,
	}
}

// GetHealth godoc
// @Summary Health check
// @Description Состояние сервиса, источник транспортных данных и доступность кеша. Недоступный кеш не делает сервис нерабочим.
// @Tags Health
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.HealthResponse}
// @Router /api/v1/health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	resp := dto.HealthResponse{
		Status:        "healthy",
		TransitSource: h.transitSource,
		Cache:         "disabled",
	}

	if h.cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
		defer cancel()

		if err := h.cache.Health(ctx); err != nil {
			h.logger.Warn("Cache health check failed", zap.Error(err))
			resp.Status = "degraded"
			resp.Cache = "unavailable"
		} else {
			resp.Cache = "ok"
		}
	}

	return utils.SendSuccess(c, resp, nil)
}
