package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/syringe/internal/core/domain"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    domain.LogLevel
		expected string
	}{
		{domain.LogLevelDebug, "DEBUG"},
		{domain.LogLevelInfo, "INFO"},
		{domain.LogLevelWarn, "WARN"},
		{domain.LogLevelError, "ERROR"},
		{domain.LogLevel(42), "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	for in, want := range map[string]domain.LogLevel{
		"debug":   domain.LogLevelDebug,
		" INFO ":  domain.LogLevelInfo,
		"":        domain.LogLevelInfo,
		"warning": domain.LogLevelWarn,
		"Error":   domain.LogLevelError,
	} {
		got, err := domain.ParseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := domain.ParseLogLevel("loud")
	require.ErrorIs(t, err, domain.ErrInvalidConfig)
}
