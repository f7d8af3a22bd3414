package auth

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API key in the OS keychain",
		Long: `Store a Hyperstack API key in the local keychain.

The key is read from the --key flag when given, otherwise it is
prompted for without echo.

Example:
  hyperstack auth login`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := cmd.Flags().GetString("key")
			if err != nil {
				return err
			}

			key = strings.TrimSpace(key)
			if key == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Enter API key: ")
				bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Fprintln(cmd.OutOrStdout())
				if err != nil {
					return err
				}
				key = strings.TrimSpace(string(bytes))
			}

			if key == "" {
				return fmt.Errorf("API key cannot be empty")
			}

			if err := newStore().SetKey(key); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "API key saved to keychain")
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().String("key", "", "API key (optional, overrides prompt)")

	return cmd
}
