package environment

import (
	"fmt"

	"github.com/sonic182/hyperstack-api/internal/format"
	"github.com/sonic182/hyperstack-api/internal/session"
	"github.com/sonic182/hyperstack-api/pkg/hyperstack"

	"github.com/spf13/cobra"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List environments",
		Long: `List environments, optionally filtered and paginated.

Examples:
  hyperstack environment list
  hyperstack environment list --search dev
  hyperstack environment list --page 1 --page-size 50`,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().String("search", "", "Filter by name, ID, or region")
	cmd.Flags().Int("page", 0, "Page number to retrieve")
	cmd.Flags().Int("page-size", 0, "Number of results per page")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	search, _ := cmd.Flags().GetString("search")

	opts := hyperstack.ListOptions{
		Search:   search,
		Page:     intFlag(cmd, "page"),
		PageSize: intFlag(cmd, "page-size"),
	}

	client, err := session.FromCommand(cmd)
	if err != nil {
		return err
	}

	result, err := client.ListEnvironments(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("failed to list environments: %w", err)
	}

	return format.PrintResult(cmd, result)
}

// intFlag returns a pointer to the flag's value only when it was set on
// the command line, so unset flags are omitted from the request.
func intFlag(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}
