package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"addressbook/internal/logging"
)

func TestRedactEmail(t *testing.T) {
	assert.Equal(t, "jo***@example.com", logging.RedactEmail("john.doe@example.com"))
	assert.Equal(t, "***@example.com", logging.RedactEmail("ab@example.com"))
	assert.Equal(t, "***@***", logging.RedactEmail("nope"))
	assert.Equal(t, "mail jo***@x.org and ***@y", logging.RedactString("mail john@x.org and al@y"))
}

func TestNew_JSONRedactsAndFilters(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Options{Level: "WARN", Format: logging.FormatJSON, Output: &buf})
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("save failed", "email", "alice@example.com", "count", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "save failed", entry["msg"])
	assert.Equal(t, "al***@example.com", entry["email"])
	assert.EqualValues(t, 3, entry["count"])
}

func TestNew_KeepPII(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Options{Output: &buf, KeepPII: true})
	require.NoError(t, err)
	log.Info("x", "email", "alice@example.com")
	assert.Contains(t, buf.String(), "email=alice@example.com")
}

func TestNew_Rejects(t *testing.T) {
	_, err := logging.New(logging.Options{Level: "loud"})
	assert.Error(t, err)
	_, err = logging.New(logging.Options{Format: "xml"})
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{"": slog.LevelInfo, "Debug": slog.LevelDebug, "warning": slog.LevelWarn, " error ": slog.LevelError} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}

func TestDiscard(t *testing.T) {
	assert.False(t, logging.Discard().Enabled(t.Context(), slog.LevelError))
	assert.NotNil(t, logging.OrDiscard(nil))
}
