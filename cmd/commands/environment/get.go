package environment

import (
	"fmt"

	"github.com/sonic182/hyperstack-api/internal/format"
	"github.com/sonic182/hyperstack-api/internal/session"

	"github.com/spf13/cobra"
)

func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show a single environment",
		Long: `Show a single environment by ID.

Example:
  hyperstack environment get --id 123`,
		RunE:         runGet,
		SilenceUsage: true,
	}

	cmd.Flags().String("id", "", "Environment ID (required)")
	cmd.MarkFlagRequired("id")

	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("id")

	client, err := session.FromCommand(cmd)
	if err != nil {
		return err
	}

	result, err := client.GetEnvironment(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get environment: %w", err)
	}

	return format.PrintResult(cmd, result)
}
