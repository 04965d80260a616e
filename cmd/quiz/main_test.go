package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz/internal/config"
)

func TestSetupLogger_DefaultEnvIsQuiet(t *testing.T) {
	t.Setenv("ENV", "")
	require.NoError(t, os.Unsetenv("ENV"))

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.EnvProd, cfg.Env)

	var out bytes.Buffer
	log := setupLogger(cfg.Env, &out)

	log.Info("attempting to login user")
	log.Warn("user not found")
	assert.Empty(t, out.String())

	log.Error("session failed")
	assert.Contains(t, out.String(), `"msg":"session failed"`)
}

func TestSetupLogger_Levels(t *testing.T) {
	tests := []struct {
		env       string
		debugSeen bool
		infoSeen  bool
	}{
		{env: config.EnvLocal, debugSeen: true, infoSeen: true},
		{env: config.EnvDev, debugSeen: true, infoSeen: true},
		{env: config.EnvProd, debugSeen: false, infoSeen: false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			var out bytes.Buffer
			log := setupLogger(tt.env, &out)

			log.Debug("debug record")
			assert.Equal(t, tt.debugSeen, bytes.Contains(out.Bytes(), []byte("debug record")))

			log.Info("info record")
			assert.Equal(t, tt.infoSeen, bytes.Contains(out.Bytes(), []byte("info record")))
		})
	}
}
