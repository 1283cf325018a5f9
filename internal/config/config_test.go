package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, TransitSourcePTV, cfg.Transit.Source)
	assert.Equal(t, "https://timetableapi.ptv.vic.gov.au", cfg.Transit.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Transit.RequestTimeout)
	assert.Equal(t, 20, cfg.Transit.DefaultMaxResults)
	assert.Equal(t, 2000.0, cfg.Transit.DefaultMaxDistance)
	assert.Equal(t, "wakemeup:", cfg.Cache.KeyPrefix)
	assert.Empty(t, cfg.Sentry.DSN)
	assert.Equal(t, 1.0, cfg.Sentry.SampleRate)
	assert.Equal(t, 5*time.Minute, cfg.Cache.StopsCacheTTL)
	assert.Equal(t, "stop-lookup-workers", cfg.Worker.ConsumerGroup)
	assert.Equal(t, 30*time.Second, cfg.Worker.ClaimMinIdle)
	assert.Equal(t, 10, cfg.Alarm.DefaultBufferMinutes)
	assert.Equal(t, 25, cfg.Alarm.DefaultTravelMinutes)
}

func TestLoadFile_FromFile(t *testing.T) {
	path := writeEnvFile(t, `API_HOST=0.0.0.0
API_PORT=9090
PTV_API_KEY=file-key
PTV_USER_ID=3000123
PTV_REQUEST_TIMEOUT=3
STOPS_MAX_RESULTS=10
STOPS_MAX_DISTANCE=700
CACHE_ENABLED=true
TRANSIT_MAX_RETRIES=2
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.GetServerAddr())
	assert.Equal(t, "file-key", cfg.Transit.APIKey)
	assert.Equal(t, "3000123", cfg.Transit.UserID)
	assert.Equal(t, 3*time.Second, cfg.Transit.RequestTimeout)
	assert.Equal(t, 10, cfg.Transit.DefaultMaxResults)
	assert.Equal(t, 700.0, cfg.Transit.DefaultMaxDistance)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 2, cfg.Transit.MaxRetries)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile_EnvOverridesFile(t *testing.T) {
	path := writeEnvFile(t, "PTV_API_KEY=file-key\nPTV_USER_ID=1\n")
	t.Setenv("PTV_API_KEY", "env-key")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.Transit.APIKey)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		transit TransitConfig
		wantErr string
	}{
		{
			name:    "ptv without credentials",
			transit: TransitConfig{Source: TransitSourcePTV},
			wantErr: "PTV_API_KEY and PTV_USER_ID are required",
		},
		{
			name:    "ptv with credentials",
			transit: TransitConfig{Source: TransitSourcePTV, APIKey: "k", UserID: "1"},
		},
		{
			name:    "fixture without path",
			transit: TransitConfig{Source: TransitSourceFixture},
			wantErr: "TRANSIT_FIXTURE_PATH is required",
		},
		{
			name:    "fixture with path",
			transit: TransitConfig{Source: TransitSourceFixture, FixturePath: "stops.yaml"},
		},
		{
			name:    "unknown source",
			transit: TransitConfig{Source: "gtfs"},
			wantErr: "unknown TRANSIT_SOURCE",
		},
		{
			name:    "negative retries",
			transit: TransitConfig{Source: TransitSourcePTV, APIKey: "k", UserID: "1", MaxRetries: -1},
			wantErr: "must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Transit: tt.transit, Sentry: SentryConfig{SampleRate: 1}}
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Validate_SentrySampleRate(t *testing.T) {
	cfg := &Config{
		Transit: TransitConfig{Source: TransitSourceFixture, FixturePath: "stops.yaml"},
		Sentry:  SentryConfig{SampleRate: 1.5},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SENTRY_SAMPLE_RATE")
}
