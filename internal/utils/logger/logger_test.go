package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaxtrack/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		env         string
		debugActive bool
	}{
		{"local environment", config.EnvLocal, true},
		{"dev environment", config.EnvDev, true},
		{"prod environment", config.EnvProd, false},
		{"unknown environment falls back to prod", "staging", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.env)
			require.NotNil(t, log)

			ctx := context.Background()
			assert.Equal(t, tt.debugActive, log.Enabled(ctx, slog.LevelDebug))
			assert.True(t, log.Enabled(ctx, slog.LevelInfo))
		})
	}
}
