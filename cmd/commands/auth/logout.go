package auth

import (
	"errors"
	"fmt"

	"github.com/sonic182/hyperstack-api/internal/auth"

	"github.com/spf13/cobra"
)

func LogoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API key",
		Long: `Remove the Hyperstack API key from the local keychain.

Example:
  hyperstack auth logout`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := newStore().DeleteKey()
			switch {
			case err == nil:
				fmt.Fprintln(cmd.OutOrStdout(), "API key removed from keychain")
				return nil
			case errors.Is(err, auth.ErrKeyNotFound):
				fmt.Fprintln(cmd.OutOrStdout(), "No API key stored")
				return nil
			default:
				return err
			}
		},
		SilenceUsage: true,
	}

	return cmd
}
