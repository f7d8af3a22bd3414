package environment

import (
	"fmt"
	"strings"

	"github.com/sonic182/hyperstack-api/internal/auditlog"
	"github.com/sonic182/hyperstack-api/internal/format"
	"github.com/sonic182/hyperstack-api/internal/session"

	"github.com/spf13/cobra"
)

func UpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Rename an environment",
		Long: `Rename an environment.

Example:
  hyperstack environment update --id 123 --name staging`,
		RunE:         runUpdate,
		SilenceUsage: true,
	}

	cmd.Flags().String("id", "", "Environment ID (required)")
	cmd.Flags().String("name", "", "New environment name (required)")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("name")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("id")
	name, _ := cmd.Flags().GetString("name")

	client, err := session.FromCommand(cmd)
	if err != nil {
		return err
	}

	result, err := client.UpdateEnvironment(cmd.Context(), id, name)
	if err != nil {
		return fmt.Errorf("failed to update environment: %w", err)
	}

	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		ResourceType: "environment",
		ResourceID:   strings.TrimSpace(id),
		ResourceName: strings.TrimSpace(name),
	}))

	return format.PrintResult(cmd, result)
}
