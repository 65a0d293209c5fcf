package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn")

	l.Info("hidden")
	l.Warn("shown", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "key=value")
}

func TestNew_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "loud")

	l.Debug("hidden")
	l.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestOpen_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backdrop.log")

	l, closer, err := Open(path, "debug")
	require.NoError(t, err)
	l.Debug("first")
	require.NoError(t, closer.Close())

	l, closer, err = Open(path, "debug")
	require.NoError(t, err)
	l.Debug("second")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}

func TestOpen_MissingDirectory(t *testing.T) {
	_, _, err := Open(filepath.Join(t.TempDir(), "missing", "x.log"), "info")
	assert.Error(t, err)
}

func TestDiscard_DropsEverything(t *testing.T) {
	l := Discard()
	require.NotNil(t, l)
	assert.NotPanics(t, func() {
		l.Error("dropped", "key", "value")
	})
}
