package main

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_BadDirectoryReturnsError(t *testing.T) {
	t.Setenv("CLINIC_APP_ID", "")
	t.Setenv("CLINIC_DIRECTORY_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	var appID string
	err := run(func(id string) fyne.App {
		appID = id
		return test.NewApp()
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load directory")
	assert.Equal(t, "com.ytget.clinic-dashboard", appID)
}
