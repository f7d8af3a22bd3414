package vm

import (
	"fmt"
	"os"
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
		Short: "Create one or more virtual machines",
		Long: `Create one or more virtual machines in an environment.

Cloud-init user data comes from --user-data or is read from a file
with --user-data-file.

Examples:
  # Minimal
  hyperstack vm create --name web-1 --environment-name dev \
    --image-name "Ubuntu Server 22.04" --flavor-name n1-cpu-small \
    --key-name deploy

  # Three instances with a floating IP each
  hyperstack vm create --name worker --environment-name dev \
    --image-name "Ubuntu Server 22.04" --flavor-name n1-cpu-small \
    --key-name deploy --count 3 --assign-floating-ip`,
		RunE:         runCreate,
		SilenceUsage: true,
	}

	cmd.Flags().String("name", "", "Virtual machine name, max 50 characters (required)")
	cmd.Flags().String("environment-name", "", "Environment to create the machine in (required)")
	cmd.Flags().String("image-name", "", "System image to boot from (required)")
	cmd.Flags().String("flavor-name", "", "Instance flavor (required)")
	cmd.Flags().String("key-name", "", "Keypair installed on the machine (required)")
	cmd.Flags().Int("count", 1, "Number of instances to create")
	cmd.Flags().Bool("assign-floating-ip", true, "Assign a public floating IP")
	cmd.Flags().Bool("create-bootable-volume", false, "Back the machine with a bootable volume")
	cmd.Flags().String("user-data", "", "Cloud-init user data string")
	cmd.Flags().String("user-data-file", "", "Path to a file containing cloud-init user data")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("environment-name")
	cmd.MarkFlagRequired("image-name")
	cmd.MarkFlagRequired("flavor-name")
	cmd.MarkFlagRequired("key-name")
	cmd.MarkFlagsMutuallyExclusive("user-data", "user-data-file")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	environment, _ := cmd.Flags().GetString("environment-name")
	image, _ := cmd.Flags().GetString("image-name")
	flavor, _ := cmd.Flags().GetString("flavor-name")
	keyName, _ := cmd.Flags().GetString("key-name")
	count, _ := cmd.Flags().GetInt("count")
	assignIP, _ := cmd.Flags().GetBool("assign-floating-ip")
	bootableVolume, _ := cmd.Flags().GetBool("create-bootable-volume")
	userData, _ := cmd.Flags().GetString("user-data")
	userDataFile, _ := cmd.Flags().GetString("user-data-file")

	if userDataFile != "" {
		data, err := os.ReadFile(userDataFile)
		if err != nil {
			return fmt.Errorf("failed to read user data file: %w", err)
		}
		userData = string(data)
	}

	client, err := session.FromCommand(cmd)
	if err != nil {
		return err
	}

	result, err := client.CreateVirtualMachine(cmd.Context(), hyperstack.VirtualMachineSpec{
		Name:                 name,
		EnvironmentName:      environment,
		ImageName:            image,
		FlavorName:           flavor,
		KeyName:              keyName,
		Count:                count,
		AssignFloatingIP:     assignIP,
		CreateBootableVolume: bootableVolume,
		UserData:             userData,
	})
	if err != nil {
		return fmt.Errorf("failed to create virtual machine: %w", err)
	}

	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		ResourceType: "vm",
		ResourceName: strings.TrimSpace(name),
	}))

	return format.PrintResult(cmd, result)
}
