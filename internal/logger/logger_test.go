//go:build !integration

package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		pretty bool
	}{
		{name: "debug level", level: "debug", pretty: false},
		{name: "info level", level: "info", pretty: false},
		{name: "warn level", level: "warn", pretty: false},
		{name: "error level", level: "error", pretty: false},
		{name: "invalid level defaults to info", level: "invalid", pretty: false},
		{name: "pretty output", level: "info", pretty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.level, tt.pretty)
			currentLevel := zerolog.GlobalLevel()
			assert.NotNil(t, Logger())
			switch tt.level {
			case "debug":
				assert.Equal(t, zerolog.DebugLevel, currentLevel)
			case "warn":
				assert.Equal(t, zerolog.WarnLevel, currentLevel)
			case "error":
				assert.Equal(t, zerolog.ErrorLevel, currentLevel)
			default:
				assert.Equal(t, zerolog.InfoLevel, currentLevel)
			}
		})
	}
}

func TestWithContext(t *testing.T) {
	Init("info", false)

	tests := []struct {
		name   string
		fields map[string]interface{}
	}{
		{name: "nil fields", fields: nil},
		{name: "empty fields", fields: map[string]interface{}{}},
		{
			name: "mixed fields",
			fields: map[string]interface{}{
				"order_id": "ORD-1",
				"packages": 2,
				"cost":     4.5,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := WithContext(tt.fields)
			assert.NotNil(t, logger)
		})
	}
}
