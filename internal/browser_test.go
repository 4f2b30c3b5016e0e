package internal_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"t0ast.cc/bravetint/internal"
)

func TestDetectDataDir(t *testing.T) {
	switch runtime.GOOS {
	case "windows":
		t.Setenv("LOCALAPPDATA", `C:\Users\fixture\AppData\Local`)
		dataDir, err := internal.DetectDataDir()
		assert.NoError(t, err)
		assert.Equal(t, filepath.Join(`C:\Users\fixture\AppData\Local`, "BraveSoftware", "Brave-Browser", "User Data"), dataDir)
	case "darwin":
		t.Setenv("HOME", "/Users/fixture")
		dataDir, err := internal.DetectDataDir()
		assert.NoError(t, err)
		assert.Equal(t, "/Users/fixture/Library/Application Support/BraveSoftware/Brave-Browser", dataDir)
	default:
		t.Setenv("HOME", "/home/fixture")
		dataDir, err := internal.DetectDataDir()
		assert.NoError(t, err)
		assert.Equal(t, "/home/fixture/.config/BraveSoftware/Brave-Browser", dataDir)
	}
}

func TestDetectDataDirWindowsRequiresLocalAppData(t *testing.T) {
	if runtime.GOOS != "windows" {
		t.Skip("only meaningful on Windows")
	}
	t.Setenv("LOCALAPPDATA", "")
	_, err := internal.DetectDataDir()
	assert.ErrorContains(t, err, "LOCALAPPDATA is not set")
}
