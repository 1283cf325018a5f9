package report

import (
	stdErrors "errors"
	"net/http"
	"sync"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhlee0214/wakemeup/internal/config"
	"github.com/jhlee0214/wakemeup/internal/pkg/errors"
)

type capturedEvents struct {
	mu     sync.Mutex
	events []*sentry.Event
}

func (c *capturedEvents) beforeSend(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
	return nil // drop, nothing leaves the process
}

func (c *capturedEvents) all() []*sentry.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*sentry.Event(nil), c.events...)
}

func setupCapture(t *testing.T) *capturedEvents {
	t.Helper()
	captured := &capturedEvents{}
	require.NoError(t, initClient(sentry.ClientOptions{
		Dsn:        "https://public@sentry.example.com/1",
		BeforeSend: captured.beforeSend,
	}, "wakemeup-test"))
	t.Cleanup(func() { enabled.Store(false) })
	return captured
}

func TestSetup_EmptyDSNDisablesReporting(t *testing.T) {
	require.NoError(t, Setup(&config.SentryConfig{SampleRate: 1}, "test", "wakemeup-test"))
	assert.False(t, enabled.Load())

	// no client transport is configured, this must simply return
	ReportError(stdErrors.New("boom"), nil)
	Flush()
}

func TestShouldReport(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"invalid coordinates", errors.ErrInvalidCoordinates, false},
		{"invalid transport mode", errors.ErrInvalidTransportMode, false},
		{"missing credentials", errors.ErrMissingCredentials, true},
		{"crypto unavailable", errors.ErrCryptoUnavailable, true},
		{"transit api", &errors.TransitAPIError{Op: "FindStopsNear", StatusCode: http.StatusServiceUnavailable}, true},
		{"validation", validator.ValidationErrors{}, false},
		{"unknown", stdErrors.New("boom"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldReport(tt.err))
		})
	}
}

func TestReportError_TagsAndLevel(t *testing.T) {
	captured := setupCapture(t)

	ReportError(stdErrors.New("boom"), map[string]string{"path": "/api/v1/stops/nearby"})
	ReportError(&errors.TransitAPIError{Op: "FindRoutesForStop", StatusCode: 503}, nil)

	events := captured.all()
	require.Len(t, events, 2)

	assert.Equal(t, sentry.LevelError, events[0].Level)
	assert.Equal(t, "/api/v1/stops/nearby", events[0].Tags["path"])
	assert.Equal(t, "wakemeup-test", events[0].Tags["service"])

	assert.Equal(t, sentry.LevelWarning, events[1].Level)
	require.Contains(t, events[1].Contexts, "transit_api")
	assert.Equal(t, "FindRoutesForStop", events[1].Contexts["transit_api"]["operation"])
}
