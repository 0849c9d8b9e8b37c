package engine

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoPowerDNS-Admin/record-engine/internal/config"
	"github.com/GoPowerDNS-Admin/record-engine/internal/db/models"
	"github.com/GoPowerDNS-Admin/record-engine/internal/logger"
	"github.com/GoPowerDNS-Admin/record-engine/internal/records"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		DB: config.DB{
			GormEngine:  "sqlite",
			Path:        filepath.Join(t.TempDir(), "engine.db"),
			AutoMigrate: true,
		},
		Log: logger.Log{
			LogLevel:    "info",
			AppName:     "record-engine",
			ServiceName: "record-engine",
			Console:     logger.Console{Enabled: true},
		},
		DNS:  config.DNS{DefaultTTL: 3600},
		Misc: config.Misc{RecordCommentsSync: true},
	}
}

func TestNew(t *testing.T) {
	eng, err := New(testConfig(t))
	require.NoError(t, err)

	assert.NotNil(t, eng.DB)
	assert.NotNil(t, eng.Registry)
	assert.NotNil(t, eng.Manager)
}

func TestNewNilConfig(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigNil))
}

func TestNewBadLoggerConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Log.AppName = ""

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestNewWithPowerDNS(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	cfg := testConfig(t)
	cfg.PowerDNS.APIURL = ts.URL

	eng, err := New(cfg)
	require.NoError(t, err)
	assert.NotNil(t, eng.Manager)
}

func TestNewEngineCreatesRecords(t *testing.T) {
	eng, err := New(testConfig(t))
	require.NoError(t, err)

	zone := models.Domain{Name: "example.com", Type: "MASTER"}
	require.NoError(t, eng.DB.Create(&zone).Error)

	ok := eng.Manager.CreateRecord(context.Background(), records.CreateInput{
		ZoneID:  zone.ID,
		Name:    "www",
		Type:    "A",
		Content: "192.0.2.10",
	})
	assert.True(t, ok)
}
