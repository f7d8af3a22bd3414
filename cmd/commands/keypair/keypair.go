package keypair

import "github.com/spf13/cobra"

// NewCommand returns the "keypair" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keypair",
		Short: "Manage SSH keypairs",
		Long: `Manage SSH keypairs.

Keypairs are imported into an environment and installed on virtual
machines created with --key-name.`,
	}

	cmd.AddCommand(CreateCommand())

	return cmd
}
