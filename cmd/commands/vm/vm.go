package vm

import "github.com/spf13/cobra"

// NewCommand returns the "vm" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vm",
		Short: "Manage virtual machines",
		Long: `Manage Hyperstack virtual machines.

Virtual machines are created inside an environment from a catalog
image and flavor.`,
	}

	cmd.AddCommand(CreateCommand())
	cmd.AddCommand(ListCommand())
	cmd.AddCommand(GetCommand())
	cmd.AddCommand(StartCommand())
	cmd.AddCommand(StopCommand())
	cmd.AddCommand(RebootCommand())
	cmd.AddCommand(HibernateCommand())
	cmd.AddCommand(RestoreCommand())
	cmd.AddCommand(DeleteCommand())

	return cmd
}
