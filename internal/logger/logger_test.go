// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger(t *testing.T) {
	l := NewLogger("go-users-api")

	require.NotNil(t, l)
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewLogger_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "api")

	l.Info().Msg("user registered")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "api", entry["role"])
	assert.Equal(t, "user registered", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, zerolog.TimestampFieldName)
	assert.Contains(t, entry, zerolog.CallerFieldName)
}

func TestNop(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "parent-role")

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)

	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "t-1")
	})

	child.Info().Msg("from child")
	entry := decodeEntry(t, &buf)
	assert.Equal(t, "parent-role", entry["role"])
	assert.Equal(t, "t-1", entry["trace_id"])

	buf.Reset()
	parent.Info().Msg("from parent")
	assert.NotContains(t, decodeEntry(t, &buf), "trace_id")
}

func TestFromContext(t *testing.T) {
	t.Run("attached logger is returned", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := newLogger(&buf, "ctx").WithContext(context.Background())

		FromContext(ctx).Info().Msg("hello")

		assert.Equal(t, "ctx", decodeEntry(t, &buf)["role"])
	})

	t.Run("empty context is safe", func(t *testing.T) {
		l := FromContext(context.Background())
		require.NotNil(t, l)
		assert.NotPanics(t, func() { l.Info().Msg("dropped") })
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req = req.WithContext(newLogger(&buf, "req").WithContext(req.Context()))

	FromRequest(req).Warn().Msg("rejected")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "req", entry["role"])
	assert.Equal(t, "warn", entry["level"])
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	tests := []struct {
		name      string
		level     string
		wantLevel zerolog.Level
		wantErr   bool
	}{
		{name: "info", level: "info", wantLevel: zerolog.InfoLevel},
		{name: "warn", level: "warn", wantLevel: zerolog.WarnLevel},
		{name: "empty keeps current", level: "", wantLevel: zerolog.WarnLevel},
		{name: "unknown level", level: "loud", wantLevel: zerolog.WarnLevel, wantErr: true},
	}

	// cases run in order, so "empty" and "unknown" observe the level set by "warn"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SetLevel(tt.level)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}
