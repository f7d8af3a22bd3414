package auth

import (
	"errors"
	"fmt"

	"github.com/sonic182/hyperstack-api/internal/auth"

	"github.com/spf13/cobra"
)

func StatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether an API key is stored",
		Long: `Show whether a Hyperstack API key is stored in the local keychain.

Example:
  hyperstack auth status`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := newStore().GetKey()
			switch {
			case err == nil:
				fmt.Fprintln(cmd.OutOrStdout(), "logged in")
				return nil
			case errors.Is(err, auth.ErrKeyNotFound):
				fmt.Fprintln(cmd.OutOrStdout(), "not logged in")
				return nil
			default:
				return fmt.Errorf("keychain error: %w", err)
			}
		},
		SilenceUsage: true,
	}

	return cmd
}
