package keypair

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
		Short: "Import an SSH public key",
		Long: `Import an SSH public key as a named keypair in an environment.

The key material comes from --public-key or is read from a file with
--public-key-file. Supported key types: ssh-rsa, ssh-ed25519 and
ecdsa-sha2-nistp*.

Examples:
  hyperstack keypair create --name deploy --environment-name dev \
    --public-key-file ~/.ssh/id_ed25519.pub

  hyperstack keypair create --name deploy --environment-name dev \
    --public-key "ssh-ed25519 AAAA... user@host"`,
		RunE:         runCreate,
		SilenceUsage: true,
	}

	cmd.Flags().String("name", "", "Keypair name (required)")
	cmd.Flags().String("environment-name", "", "Environment to import the key into (required)")
	cmd.Flags().String("public-key", "", "SSH public key material")
	cmd.Flags().String("public-key-file", "", "Path to a file containing the SSH public key")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("environment-name")
	cmd.MarkFlagsMutuallyExclusive("public-key", "public-key-file")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	environment, _ := cmd.Flags().GetString("environment-name")
	publicKey, _ := cmd.Flags().GetString("public-key")
	keyFile, _ := cmd.Flags().GetString("public-key-file")

	if publicKey == "" && keyFile == "" {
		return fmt.Errorf("one of --public-key or --public-key-file is required")
	}
	if keyFile != "" {
		data, err := os.ReadFile(keyFile)
		if err != nil {
			return fmt.Errorf("failed to read public key file: %w", err)
		}
		publicKey = strings.TrimSpace(string(data))
	}

	client, err := session.FromCommand(cmd)
	if err != nil {
		return err
	}

	result, err := client.CreateKeypair(cmd.Context(), hyperstack.KeypairSpec{
		Name:            name,
		EnvironmentName: environment,
		PublicKey:       publicKey,
	})
	if err != nil {
		return fmt.Errorf("failed to create keypair: %w", err)
	}

	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		ResourceType: "keypair",
		ResourceName: strings.TrimSpace(name),
	}))

	return format.PrintResult(cmd, result)
}
