package vm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sonic182/hyperstack-api/internal/auditlog"
	"github.com/sonic182/hyperstack-api/internal/format"
	"github.com/sonic182/hyperstack-api/internal/session"
	"github.com/sonic182/hyperstack-api/pkg/hyperstack"

	"github.com/spf13/cobra"
)

type actionFunc func(*hyperstack.Client, context.Context, string) (any, error)

// actionCommand builds a power-state command that targets a machine by ID.
func actionCommand(verb, short string, action actionFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   verb,
		Short: short,
		Long: fmt.Sprintf(`%s

Example:
  hyperstack vm %s --id 456`, short, verb),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := cmd.Flags().GetString("id")

			client, err := session.FromCommand(cmd)
			if err != nil {
				return err
			}

			result, err := action(client, cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to %s virtual machine: %w", verb, err)
			}

			cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
				ResourceType: "vm",
				ResourceID:   strings.TrimSpace(id),
			}))

			if result == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Requested %s for virtual machine %s.\n", verb, id)
				return nil
			}
			return format.PrintResult(cmd, result)
		},
		SilenceUsage: true,
	}

	cmd.Flags().String("id", "", "Virtual machine ID (required)")
	cmd.MarkFlagRequired("id")

	return cmd
}

func StartCommand() *cobra.Command {
	return actionCommand("start", "Start a virtual machine", func(c *hyperstack.Client, ctx context.Context, id string) (any, error) {
		return c.StartVirtualMachine(ctx, id)
	})
}

func StopCommand() *cobra.Command {
	return actionCommand("stop", "Stop a virtual machine", func(c *hyperstack.Client, ctx context.Context, id string) (any, error) {
		return c.StopVirtualMachine(ctx, id)
	})
}

func RebootCommand() *cobra.Command {
	return actionCommand("reboot", "Hard-reboot a virtual machine", func(c *hyperstack.Client, ctx context.Context, id string) (any, error) {
		return c.HardRebootVirtualMachine(ctx, id)
	})
}

func HibernateCommand() *cobra.Command {
	return actionCommand("hibernate", "Hibernate a virtual machine", func(c *hyperstack.Client, ctx context.Context, id string) (any, error) {
		return c.HibernateVirtualMachine(ctx, id)
	})
}

func RestoreCommand() *cobra.Command {
	return actionCommand("restore", "Restore a hibernated virtual machine", func(c *hyperstack.Client, ctx context.Context, id string) (any, error) {
		return c.RestoreVirtualMachine(ctx, id)
	})
}
