// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets resolves the Gemini API key. The key comes from the
// GEMINI_API_KEY environment variable, or failing that from a plain-text
// file in the secrets directory: the filename is the key name and the file
// contents (trimmed) are the value.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sankhodeep/PDF2MD/pkg/types"
)

// EnvAPIKey is the environment variable holding the Gemini API key.
const EnvAPIKey = "GEMINI_API_KEY"

// geminiKeyFile is the file name looked up in the secrets directory.
const geminiKeyFile = "gemini-api-key"

// APIKey returns the Gemini API key, preferring the environment variable
// over the secrets directory. A missing key is a ConfigError; the caller
// surfaces it before any conversion work starts.
func APIKey(dir string) (string, error) {
	if v := strings.TrimSpace(os.Getenv(EnvAPIKey)); v != "" {
		return v, nil
	}

	loaded, err := Load(dir)
	if err != nil {
		return "", err
	}
	if v, ok := loaded[geminiKeyFile]; ok {
		return v, nil
	}

	return "", &types.ConfigError{
		Reason: fmt.Sprintf("%s is not set and %s contains no %s file", EnvAPIKey, dir, geminiKeyFile),
	}
}

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory or missing files are not errors; Load
// returns an empty map. Unreadable files produce a warning on stderr but
// do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}
