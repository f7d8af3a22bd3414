package environment

import (
	"fmt"
	"strings"

	"github.com/sonic182/hyperstack-api/internal/auditlog"
	"github.com/sonic182/hyperstack-api/internal/format"
	"github.com/sonic182/hyperstack-api/internal/session"
	"github.com/sonic182/hyperstack-api/pkg/hyperstack"

	"github.com/spf13/cobra"
)

func CreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new environment",
		Long: fmt.Sprintf(`Create a new environment in a region.

Valid regions: %s

Example:
  hyperstack environment create --name dev --region CANADA-1`, strings.Join(hyperstack.Regions(), ", ")),
		RunE:         runCreate,
		SilenceUsage: true,
	}

	cmd.Flags().String("name", "", "Environment name (required)")
	cmd.Flags().String("region", "", "Region to create the environment in (required)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("region")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	region, _ := cmd.Flags().GetString("region")

	client, err := session.FromCommand(cmd)
	if err != nil {
		return err
	}

	result, err := client.CreateEnvironment(cmd.Context(), hyperstack.EnvironmentSpec{
		Name:   name,
		Region: region,
	})
	if err != nil {
		return fmt.Errorf("failed to create environment: %w", err)
	}

	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		ResourceType: "environment",
		ResourceName: strings.TrimSpace(name),
	}))

	return format.PrintResult(cmd, result)
}
