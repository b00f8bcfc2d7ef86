package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_JSON_MergesFieldsAndFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "pet-health-record", Output: &buf})

	l.Debug("hidden", nil)
	l.With(map[string]any{"request_id": "req-1"}).Warn("slow request", map[string]any{
		"duration_ms": 1200,
		"error":       errors.New("boom"),
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "pet-health-record", entry["app"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "boom", entry["error"])
}

func TestLogger_Text_SortedKeys(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Output: &buf})

	l.Info("hello", map[string]any{"b": 2, "a": 1})

	out := buf.String()
	assert.Less(t, strings.Index(out, "a=1"), strings.Index(out, "b=2"))
	assert.Contains(t, out, "msg=hello")
}

func TestFromContext_Fallback(t *testing.T) {
	fallback := Discard()
	assert.Equal(t, fallback, FromContext(context.Background(), fallback))

	scoped := fallback.With(map[string]any{"request_id": "x"})
	ctx := IntoContext(context.Background(), scoped)
	assert.Equal(t, scoped, FromContext(ctx, fallback))
}

func TestParseLevelAndFormat(t *testing.T) {
	assert.Equal(t, Warn, ParseLevel(" WARNING "))
	assert.Equal(t, Info, ParseLevel("nope"))
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat(""))
}
