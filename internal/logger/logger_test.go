package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DevWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	New(envDev, &buf).Debug("options computed", "field", "typ")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "options computed", rec["msg"])
	assert.Equal(t, "typ", rec["field"])
}

func TestNew_ProdDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(envProd, &buf)

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.Info("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNewWithErrorFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "errors.log")

	log, closeFn, err := NewWithErrorFile(envLocal, &buf, path)
	require.NoError(t, err)

	log = log.With("op", "catalog.Add")
	log.Info("product added")
	log.Error("insert failed", Err(errors.New("disk full")))
	require.NoError(t, closeFn())

	assert.Contains(t, buf.String(), "product added")
	assert.Contains(t, buf.String(), "insert failed")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "product added")
	assert.Contains(t, string(data), "insert failed")
	assert.Contains(t, string(data), "op=catalog.Add")
	assert.Contains(t, string(data), `error="disk full"`)
}

func TestNewWithErrorFile_NoPath(t *testing.T) {
	log, closeFn, err := NewWithErrorFile(envLocal, &bytes.Buffer{}, "")
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.NoError(t, closeFn())
}
