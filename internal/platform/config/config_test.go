// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/platform/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_PORT", "ENVIRONMENT", "DEBUG", "CATALOG_PATH", "REDIS_URL",
		"SETTINGS_CHANNEL", "STORY_CREATE_DELAY", "PLACEHOLDER_COVER_URL", "EXTRA_ORIGINS",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

/*
TestLoad_Defaults fills every field when the environment is empty.
*/
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.HasRedis())
	assert.Equal(t, "inkwell:settings", cfg.SettingsChannel)
	assert.Equal(t, time.Duration(0), cfg.StoryCreateDelay)
	assert.NotEmpty(t, cfg.PlaceholderCoverURL)
	assert.Empty(t, cfg.AllowedOrigins())
}

/*
TestLoad_Environment reads overrides from the environment and a .env file.
*/
func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("STORY_CREATE_DELAY", "1500ms")
	t.Setenv("EXTRA_ORIGINS", " https://a.example , ,https://b.example")

	dotenv := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("REDIS_URL=redis://localhost:6379/0\nENVIRONMENT=staging\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("REDIS_URL") })

	cfg, err := config.Load(dotenv)
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.HasRedis())
	assert.Equal(t, 1500*time.Millisecond, cfg.StoryCreateDelay)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
}

/*
TestLoad_Invalid rejects malformed and negative durations.
*/
func TestLoad_Invalid(t *testing.T) {
	absent := filepath.Join(t.TempDir(), "absent.env")

	for _, value := range []string{"soon", "-1s"} {
		t.Run(value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("STORY_CREATE_DELAY", value)

			_, err := config.Load(absent)
			assert.Error(t, err)
		})
	}
}
