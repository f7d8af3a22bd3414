package environment

import (
	"fmt"
	"strings"

	"github.com/sonic182/hyperstack-api/internal/auditlog"
	"github.com/sonic182/hyperstack-api/internal/format"
	"github.com/sonic182/hyperstack-api/internal/session"

	"github.com/spf13/cobra"
)

func DeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an environment",
		Long: `Delete an environment by ID.

Example:
  hyperstack environment delete --id 123`,
		RunE:         runDelete,
		SilenceUsage: true,
	}

	cmd.Flags().String("id", "", "Environment ID (required)")
	cmd.MarkFlagRequired("id")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("id")

	client, err := session.FromCommand(cmd)
	if err != nil {
		return err
	}

	result, err := client.DeleteEnvironment(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to delete environment: %w", err)
	}

	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		ResourceType: "environment",
		ResourceID:   strings.TrimSpace(id),
	}))

	if result == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "Environment deleted.")
		return nil
	}
	return format.PrintResult(cmd, result)
}
