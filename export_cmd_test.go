package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	return rootCmd.Execute()
}

func TestExportResume(t *testing.T) {
	tests := []struct {
		lang string
		file string
	}{
		{"en", "YongDain_Resume.pdf"},
		{"ko", "이력서_용다인.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, runRoot(t, "export-resume", "--lang", tt.lang, "--font", "", "--out", dir))

			doc, err := os.ReadFile(filepath.Join(dir, tt.file))
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(doc), "%PDF-"))
		})
	}
}

func TestExportResume_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	require.NoError(t, runRoot(t, "export-resume", "--lang", "en", "--font", "", "--out", dir))
	assert.FileExists(t, filepath.Join(dir, "YongDain_Resume.pdf"))
}

func TestExportResume_RejectsUnknownLanguage(t *testing.T) {
	err := runRoot(t, "export-resume", "--lang", "fr", "--font", "", "--out", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported language "fr"`)
}
