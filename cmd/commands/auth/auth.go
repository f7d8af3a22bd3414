package auth

import (
	"github.com/sonic182/hyperstack-api/internal/auth"

	"github.com/spf13/cobra"
)

// newStore builds the key store used by the auth commands. Tests replace
// it with an in-memory implementation.
var newStore = auth.DefaultStore

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the stored Hyperstack API key",
		Long: `Manage the stored Hyperstack API key.

Use this command group to store an API key in the OS keychain, check
whether one is stored, and remove it.`,
	}

	cmd.AddCommand(LoginCommand())
	cmd.AddCommand(LogoutCommand())
	cmd.AddCommand(StatusCommand())

	return cmd
}
