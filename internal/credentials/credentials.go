// Package credentials resolves the Hyperstack API key for CLI commands.
//
// Sources are consulted in order: the explicit --api-key value, the
// HYPERSTACK_KEY environment variable, a ~/.hyperstack/credentials file
// containing a "key = <value>" line, and finally the OS keychain.
package credentials

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sonic182/hyperstack-api/internal/auth"
	"github.com/sonic182/hyperstack-api/pkg/hyperstack"
)

const credentialsDir = ".hyperstack"

const credentialsFile = "credentials"

// keyLine matches a "key = <value>" line in the credentials file.
var keyLine = regexp.MustCompile(`(?m)^\s*key\s*=\s*(.+)$`)

// pathOverride, when non-empty, replaces the default credentials file
// path. Intended for testing. Use SetPath / ResetPath to manage.
var pathOverride string

// SetPath overrides the credentials file path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override. Intended for testing.
func ResetPath() { pathOverride = "" }

// Path returns the credentials file path (~/.hyperstack/credentials).
func Path() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("credentials: unable to determine home directory: %w", err)
	}
	return filepath.Join(home, credentialsDir, credentialsFile), nil
}

// FromFile reads the API key from the credentials file at path.
// A missing file is not an error; it yields an empty key.
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("credentials: failed to read %s: %w", path, err)
	}

	match := keyLine.FindSubmatch(data)
	if match == nil {
		return "", nil
	}
	return strings.TrimSpace(string(match[1])), nil
}

// Resolve returns the first non-empty API key found across all sources.
// An empty result means no key is configured anywhere.
func Resolve(explicit string, store auth.Store) string {
	if key := strings.TrimSpace(explicit); key != "" {
		return key
	}

	if key := strings.TrimSpace(os.Getenv(hyperstack.EnvAPIKey)); key != "" {
		return key
	}

	if path, err := Path(); err == nil {
		if key, err := FromFile(path); err == nil && key != "" {
			return key
		}
	}

	if store != nil {
		if key, err := store.GetKey(); err == nil && strings.TrimSpace(key) != "" {
			return strings.TrimSpace(key)
		}
	}

	return ""
}
