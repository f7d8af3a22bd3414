package environment

import "github.com/spf13/cobra"

// NewCommand returns the "environment" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "environment",
		Aliases: []string{"env"},
		Short:   "Manage environments",
		Long: `Manage Hyperstack environments.

Environments group resources by region. Keypairs and virtual machines
are always created inside an environment.`,
	}

	cmd.AddCommand(CreateCommand())
	cmd.AddCommand(GetCommand())
	cmd.AddCommand(ListCommand())
	cmd.AddCommand(UpdateCommand())
	cmd.AddCommand(DeleteCommand())

	return cmd
}
