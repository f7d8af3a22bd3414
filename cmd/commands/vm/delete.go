package vm

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
		Short: "Delete a virtual machine",
		Long: `Delete a virtual machine by ID.

Example:
  hyperstack vm delete --id 456`,
		RunE:         runDelete,
		SilenceUsage: true,
	}

	cmd.Flags().String("id", "", "Virtual machine ID (required)")
	cmd.MarkFlagRequired("id")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("id")

	client, err := session.FromCommand(cmd)
	if err != nil {
		return err
	}

	result, err := client.DeleteVirtualMachine(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to delete virtual machine: %w", err)
	}

	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		ResourceType: "vm",
		ResourceID:   strings.TrimSpace(id),
	}))

	if result == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "Virtual machine deleted.")
		return nil
	}
	return format.PrintResult(cmd, result)
}
