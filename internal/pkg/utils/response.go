package utils

import (
	stdErrors "errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jhlee0214/wakemeup/internal/pkg/errors"
	"github.com/jhlee0214/wakemeup/internal/pkg/report"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

type Meta struct {
	Total    int     `json:"total"`
	Limit    int     `json:"limit,omitempty"`
	TimeMSec float64 `json:"time_ms,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

func SendError(c *fiber.Ctx, err error) error {
	var appErr *errors.AppError
	if stdErrors.As(err, &appErr) {
		if appErr.StatusCode >= fiber.StatusInternalServerError {
			reportFromRequest(c, err)
		}
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	var validationErrs validator.ValidationErrors
	if stdErrors.As(err, &validationErrs) {
		fields := make(map[string]interface{}, len(validationErrs))
		for _, fe := range validationErrs {
			fields[fe.Field()] = fe.Tag()
		}
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: errors.ErrInvalidRequest.WithDetails(fields),
		})
	}

	var apiErr *errors.TransitAPIError
	if stdErrors.As(err, &apiErr) {
		reportFromRequest(c, err)
		details := map[string]interface{}{"operation": apiErr.Op}
		if apiErr.StatusCode != 0 {
			details["upstream_status"] = apiErr.StatusCode
		}
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error: errors.ErrTransitAPI.WithDetails(details),
		})
	}

	// Unknown error - return 500
	reportFromRequest(c, err)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}

func reportFromRequest(c *fiber.Ctx, err error) {
	report.ReportError(err, map[string]string{
		"method":     c.Method(),
		"path":       c.Path(),
		"request_id": c.GetRespHeader("X-Request-ID"),
	})
}
