package io_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	uio "t0ast.cc/bravetint/util/io"
)

func TestFileExists(t *testing.T) {
	testCases := []struct {
		desc string

		path     string
		expected bool
	}{
		{
			desc: "Existing file",

			path:     "testdata/profile-dir/Preferences",
			expected: true,
		},
		{
			desc: "Nonexistent file",

			path:     "testdata/profile-dir/Bookmarks",
			expected: false,
		},
		{
			desc: "Directory is not a file",

			path:     "testdata/profile-dir",
			expected: false,
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			exists, err := uio.FileExists(tC.path)
			assert.NoError(t, err)
			assert.Equal(t, tC.expected, exists)
		})
	}
}

func TestDirExists(t *testing.T) {
	testCases := []struct {
		desc string

		path     string
		expected bool
	}{
		{
			desc: "Existing directory",

			path:     "testdata/profile-dir",
			expected: true,
		},
		{
			desc: "Nonexistent directory",

			path:     "testdata/missing-dir",
			expected: false,
		},
		{
			desc: "File is not a directory",

			path:     "testdata/profile-dir/Preferences",
			expected: false,
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			exists, err := uio.DirExists(tC.path)
			assert.NoError(t, err)
			assert.Equal(t, tC.expected, exists)
		})
	}
}

func TestCopyFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp(os.TempDir(), "bravetint-test-*")
	assert.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	src := "testdata/profile-dir/Preferences"
	dst := filepath.Join(tmpDir, "Preferences")
	assert.NoError(t, uio.CopyFile(src, dst))

	srcContent, err := os.ReadFile(src)
	assert.NoError(t, err)
	dstContent, err := os.ReadFile(dst)
	assert.NoError(t, err)
	assert.Equal(t, srcContent, dstContent)

	srcInfo, err := os.Stat(src)
	assert.NoError(t, err)
	dstInfo, err := os.Stat(dst)
	assert.NoError(t, err)
	assert.Equal(t, srcInfo.Mode().Perm(), dstInfo.Mode().Perm())
}

func TestCopyFileNonexistentSource(t *testing.T) {
	tmpDir, err := os.MkdirTemp(os.TempDir(), "bravetint-test-*")
	assert.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	assert.Error(t, uio.CopyFile("testdata/profile-dir/Bookmarks", filepath.Join(tmpDir, "Bookmarks")))
}

func TestCopyDir(t *testing.T) {
	tmpDir, err := os.MkdirTemp(os.TempDir(), "bravetint-test-*")
	assert.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	assert.NoError(t, uio.CopyDir("testdata/profile-dir", tmpDir))

	srcPrefs, err := os.ReadFile("testdata/profile-dir/Preferences")
	assert.NoError(t, err)
	dstPrefs, err := os.ReadFile(filepath.Join(tmpDir, "Preferences"))
	assert.NoError(t, err)
	assert.Equal(t, srcPrefs, dstPrefs)

	srcNested, err := os.ReadFile("testdata/profile-dir/Extensions/manifest.json")
	assert.NoError(t, err)
	dstNested, err := os.ReadFile(filepath.Join(tmpDir, "Extensions", "manifest.json"))
	assert.NoError(t, err)
	assert.Equal(t, srcNested, dstNested)

	srcInfo, err := os.Stat("testdata/profile-dir/Extensions")
	assert.NoError(t, err)
	dstInfo, err := os.Stat(filepath.Join(tmpDir, "Extensions"))
	assert.NoError(t, err)
	assert.True(t, dstInfo.IsDir())
	assert.Equal(t, srcInfo.Mode().Perm(), dstInfo.Mode().Perm())
}
