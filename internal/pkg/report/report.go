package report

import (
	stdErrors "errors"
	"fmt"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-playground/validator/v10"
	"github.com/jhlee0214/wakemeup/internal/config"
	"github.com/jhlee0214/wakemeup/internal/pkg/errors"
)

const flushTimeout = 2 * time.Second

var enabled atomic.Bool

// Setup инициализирует Sentry. С пустым DSN отправка выключена и ReportError ничего не делает.
func Setup(cfg *config.SentryConfig, env, service string) error {
	return initClient(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      env,
		SampleRate:       cfg.SampleRate,
		AttachStacktrace: true,
	}, service)
}

func initClient(opts sentry.ClientOptions, service string) error {
	if err := sentry.Init(opts); err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	enabled.Store(opts.Dsn != "")

	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("service", service)
		scope.SetTag("go_version", runtime.Version())
		scope.SetContext("host_info", map[string]interface{}{
			"hostname": hostname(),
		})
	})
	return nil
}

// Flush waits for buffered events to be sent
func Flush() {
	if enabled.Load() {
		sentry.Flush(flushTimeout)
	}
}

// ShouldReport is true for errors that end up as 5xx: upstream failures,
// server-side AppErrors and anything unrecognised. Client mistakes are not reported.
func ShouldReport(err error) bool {
	if err == nil {
		return false
	}
	var validationErrs validator.ValidationErrors
	if stdErrors.As(err, &validationErrs) {
		return false
	}
	var apiErr *errors.TransitAPIError
	if stdErrors.As(err, &apiErr) {
		return true
	}
	var appErr *errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr.StatusCode >= 500
	}
	return true
}

// ReportError отправляет ошибку в Sentry с тегами.
// Ошибки транспортного API уходят с уровнем warning, остальные с error.
func ReportError(err error, tags map[string]string) {
	if err == nil || !enabled.Load() {
		return
	}

	level := sentry.LevelError
	var apiErr *errors.TransitAPIError
	if stdErrors.As(err, &apiErr) {
		level = sentry.LevelWarning
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(level)
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		if apiErr != nil {
			scope.SetContext("transit_api", map[string]interface{}{
				"operation":       apiErr.Op,
				"upstream_status": apiErr.StatusCode,
			})
		}
		sentry.CaptureException(err)
	})
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}
