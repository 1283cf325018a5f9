package http

import (
	"net/http"
	"strings"

	"github.com/jhlee0214/wakemeup/internal/pkg/errors"
)

// errorForStatus builds the envelope error for failures raised by fiber itself,
// e.g. unknown route (NOT_FOUND) or wrong method (METHOD_NOT_ALLOWED)
func errorForStatus(code int, err error) *errors.AppError {
	if code >= http.StatusInternalServerError {
		return errors.ErrInternalServer
	}
	return errors.New(
		strings.ToUpper(strings.ReplaceAll(http.StatusText(code), " ", "_")),
		err.Error(),
		code,
	)
}
