package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/sonic182/hyperstack-api/cmd/commands/audit"
	"github.com/sonic182/hyperstack-api/cmd/commands/auth"
	"github.com/sonic182/hyperstack-api/cmd/commands/catalog"
	cfgcmd "github.com/sonic182/hyperstack-api/cmd/commands/config"
	"github.com/sonic182/hyperstack-api/cmd/commands/environment"
	"github.com/sonic182/hyperstack-api/cmd/commands/keypair"
	"github.com/sonic182/hyperstack-api/cmd/commands/vm"
	"github.com/sonic182/hyperstack-api/internal/auditlog"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "hyperstack",
		Short: "A CLI tool for managing Hyperstack cloud resources",
		Long: `hyperstack is a command-line tool for the Hyperstack cloud API. It manages
environments, keypairs and virtual machines, and answers catalog queries
for flavors, images and GPU stock.

Quick start:
  hyperstack auth login                  # Store your API key
  hyperstack environment create --name dev --region CANADA-1
  hyperstack catalog flavors             # Browse available flavors
  hyperstack vm list                     # List virtual machines`,
	}

	cmd.PersistentFlags().String("api-key", "", "Hyperstack API key (overrides stored credentials and HYPERSTACK_KEY)")
	cmd.PersistentFlags().StringP("format", "f", "", "Output format: json or pretty")

	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(audit.NewCommand())
	cmd.AddCommand(environment.NewCommand())
	cmd.AddCommand(keypair.NewCommand())
	cmd.AddCommand(catalog.NewCommand())
	cmd.AddCommand(vm.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	start := time.Now()
	err := root.Execute()
	recordAudit(root, err, start)
	if err != nil {
		os.Exit(1)
	}
}

// recordAudit writes a best-effort audit entry for the invocation. Errors
// opening the repository or saving the entry are silently discarded so the
// audit trail never interferes with the command itself.
func recordAudit(root *cobra.Command, runErr error, start time.Time) {
	repo, err := auditlog.Open()
	if err != nil {
		return
	}
	defer repo.Close()

	command := root.CommandPath()
	ctx := root.Context()
	if target, _, findErr := root.Find(os.Args[1:]); findErr == nil && target != nil {
		command = target.CommandPath()
		if target.Context() != nil {
			ctx = target.Context()
		}
	}
	meta := auditlog.MetadataFromContext(ctx)

	entry := &auditlog.AuditEntry{
		Timestamp:    start,
		Command:      command,
		Args:         strings.Join(auditlog.SanitizeArgs(os.Args[1:]), " "),
		ResourceType: meta.ResourceType,
		ResourceID:   meta.ResourceID,
		ResourceName: meta.ResourceName,
		DurationMs:   time.Since(start).Milliseconds(),
	}
	if runErr != nil {
		entry.Outcome = auditlog.OutcomeError
		entry.Detail = runErr.Error()
	} else {
		entry.Outcome = auditlog.OutcomeSuccess
	}
	_ = repo.Save(entry)
}
