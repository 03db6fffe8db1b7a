package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/pos/internal/config"
)

type testConfig struct {
	Log   config.Log
	Store config.Store
	Shop  config.Shop
	Print config.Print
}

func TestNew(t *testing.T) {
	t.Run("Should apply defaults", func(t *testing.T) {
		cfg, err := config.New[testConfig]()
		require.NoError(t, err)

		assert.Equal(t, config.LogFormatText, cfg.Log.Format)
		assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
		assert.Equal(t, config.StoreDriverBolt, cfg.Store.Driver)
		assert.Equal(t, "pos.db", cfg.Store.Path)
		assert.Equal(t, time.Second, cfg.Store.OpenTimeout)
		assert.Equal(t, "AGR-", cfg.Shop.SkuPrefix)
		assert.Equal(t, "prints", cfg.Print.Dir)
	})

	t.Run("Should read overrides from the environment", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("POS_STORE_DRIVER", "memory")
		t.Setenv("SHOP_NAME", "Corner Store")

		cfg, err := config.New[testConfig]()
		require.NoError(t, err)

		assert.Equal(t, config.LogFormatJSON, cfg.Log.Format)
		assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
		assert.Equal(t, config.StoreDriverMemory, cfg.Store.Driver)
		assert.Equal(t, "Corner Store", cfg.Shop.Name)
	})

	t.Run("Should fail on an unknown enum value", func(t *testing.T) {
		t.Setenv("POS_STORE_DRIVER", "postgres")

		_, err := config.New[testConfig]()
		assert.Error(t, err)
	})
}

func TestLogFormat(t *testing.T) {
	var f config.LogFormat
	require.NoError(t, f.UnmarshalText([]byte("text")))
	assert.Equal(t, config.LogFormatText, f)

	b, err := f.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "TEXT", string(b))

	assert.Error(t, f.UnmarshalText([]byte("xml")))
	assert.Equal(t, "UNKNOWN", config.LogFormat(9).String())
}

func TestStoreDriver(t *testing.T) {
	var d config.StoreDriver
	require.NoError(t, d.UnmarshalText([]byte("memory")))
	assert.Equal(t, config.StoreDriverMemory, d)
	assert.Equal(t, "MEMORY", d.String())

	assert.Equal(t, "UNKNOWN", config.StoreDriver(9).String())
	assert.Error(t, d.UnmarshalText([]byte("sqlite")))
}
