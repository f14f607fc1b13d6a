package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(l Logger) {
	l.(*structured).now = func() time.Time {
		return time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		" INFO ":  Info,
		"":        Info,
		"warning": Warn,
		"error":   Error,
		"verbose": Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestLogger_Text_SortedKeysAndLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatText, App: "registration-form", Output: &buf})
	fixedClock(l)

	l.Debug("hidden", nil)
	l.Info("registration created", Fields{"id": 7})

	out := strings.TrimSpace(buf.String())
	assert.Equal(t,
		`app=registration-form id=7 level=info msg="registration created" ts=2025-12-22T10:00:00Z`,
		out,
	)
}

func TestLogger_JSON_WithMergesFieldsAndStringifiesErrors(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatJSON, Output: &buf})
	fixedClock(l)

	child := l.With(Fields{"request_id": "abc"})
	child.Error("insert failed", Fields{"error": errors.New("boom"), "": "ignored"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc", entry["request_id"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "error", entry["level"])
	assert.NotContains(t, entry, "")
}

func TestFromContext_FallbackAndStored(t *testing.T) {
	var buf bytes.Buffer
	stored := New(Options{Output: &buf})
	fallback := Nop()

	assert.Equal(t, fallback, FromContext(context.Background(), fallback))
	assert.NotNil(t, FromContext(context.Background(), nil))

	ctx := IntoContext(context.Background(), stored)
	assert.Equal(t, stored, FromContext(ctx, fallback))
}
