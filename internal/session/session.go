// Package session builds API clients for CLI commands.
package session

import (
	"os"
	"strings"
	"sync"

	"github.com/sonic182/hyperstack-api/internal/auth"
	"github.com/sonic182/hyperstack-api/internal/credentials"
	"github.com/sonic182/hyperstack-api/pkg/hyperstack"

	"github.com/spf13/cobra"
)

// EnvAPIAddress overrides the API base URL when set. Useful for pointing
// the CLI at a staging deployment or a local stub.
const EnvAPIAddress = "HYPERSTACK_API_ADDRESS"

// Factory constructs a client from an already-resolved API key.
type Factory func(apiKey string) (*hyperstack.Client, error)

var (
	mu      sync.RWMutex
	factory Factory = defaultFactory
)

func apiAddressFromEnv() string {
	return strings.TrimSpace(os.Getenv(EnvAPIAddress))
}

func defaultFactory(apiKey string) (*hyperstack.Client, error) {
	opts := []hyperstack.Option{}
	if addr := apiAddressFromEnv(); addr != "" {
		opts = append(opts, hyperstack.WithBaseURL(addr))
	}
	return hyperstack.New(apiKey, opts...)
}

// SetFactory replaces the client factory. Intended for use in tests only.
func SetFactory(f Factory) {
	if f == nil {
		panic("session: nil factory")
	}
	mu.Lock()
	defer mu.Unlock()
	factory = f
}

// Reset restores the default client factory. Intended for use in tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	factory = defaultFactory
}

// FromCommand builds a client using the command's --api-key flag when the
// flag is present (it is inherited from the root command).
func FromCommand(cmd *cobra.Command) (*hyperstack.Client, error) {
	explicit := ""
	if f := cmd.Flag("api-key"); f != nil {
		explicit = f.Value.String()
	}
	return Client(explicit)
}

// Client resolves the API key (explicit flag value first, then environment,
// credentials file and keyring) and builds a client with it.
func Client(explicitKey string) (*hyperstack.Client, error) {
	key := credentials.Resolve(explicitKey, auth.DefaultStore())

	mu.RLock()
	f := factory
	mu.RUnlock()

	return f(key)
}
