// Package auth stores the Hyperstack API key in the OS keychain.
//
// The keyring is the last credential source consulted by the CLI, after
// the --api-key flag, the HYPERSTACK_KEY environment variable, and the
// ~/.hyperstack/credentials file. Keys are written via "hyperstack auth
// login" and removed via "hyperstack auth logout".
package auth

import "errors"

const (
	// ServiceName identifies this application in the OS keychain.
	ServiceName = "hyperstack"

	// account is the keychain account entry holding the API key.
	account = "api-key"
)

// ErrKeyNotFound indicates no API key is stored in the keychain.
var ErrKeyNotFound = errors.New("API key not found in keychain")

// Store abstracts API key persistence so commands can be tested with an
// in-memory implementation.
type Store interface {
	SetKey(key string) error
	GetKey() (string, error)
	DeleteKey() error
}

// DefaultStore returns the standard store backed by the OS keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}
