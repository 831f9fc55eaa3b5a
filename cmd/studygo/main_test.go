package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenLogFileCreatesMissingDir(t *testing.T) {
	// a fresh machine has no ~/.studygo yet
	path := filepath.Join(t.TempDir(), ".studygo", "studygo.log")

	f, err := openLogFile(path)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	assert.FileExists(t, path)
}
