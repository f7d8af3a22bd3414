package config

import (
	"github.com/sonic182/hyperstack-api/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage hyperstack configuration",
		Long: "View and modify persistent hyperstack settings.\n\n" +
			"Configuration is stored at ~/.config/hyperstack/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
