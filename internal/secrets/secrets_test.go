// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sankhodeep/PDF2MD/pkg/types"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  map[string]string
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "gemini-api-key", "  AIzaSy-test-key  \n")
				return dir
			},
			want: map[string]string{
				"gemini-api-key": "AIzaSy-test-key",
			},
		},
		{
			name: "returns empty map for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: map[string]string{},
		},
		{
			name: "skips empty files and dotfiles",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "gemini-api-key", "valid-key")
				writeFile(t, dir, "empty-key", "   \n\t  ")
				writeFile(t, dir, ".hidden-key", "secret")
				return dir
			},
			want: map[string]string{
				"gemini-api-key": "valid-key",
			},
		},
		{
			name: "skips subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "gemini-api-key", "abc")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
				return dir
			},
			want: map[string]string{
				"gemini-api-key": "abc",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.setup(t)
			got, err := Load(dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAPIKey(t *testing.T) {
	t.Run("environment variable wins", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "gemini-api-key", "file-key")
		t.Setenv(EnvAPIKey, "env-key")

		key, err := APIKey(dir)
		require.NoError(t, err)
		assert.Equal(t, "env-key", key)
	})

	t.Run("falls back to secrets file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "gemini-api-key", "file-key\n")
		t.Setenv(EnvAPIKey, "")

		key, err := APIKey(dir)
		require.NoError(t, err)
		assert.Equal(t, "file-key", key)
	})

	t.Run("missing key is a ConfigError", func(t *testing.T) {
		t.Setenv(EnvAPIKey, "")

		_, err := APIKey(t.TempDir())
		require.Error(t, err)
		var cfgErr *types.ConfigError
		assert.True(t, errors.As(err, &cfgErr))
	})
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
