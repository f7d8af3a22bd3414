// Package format resolves and applies the CLI output format.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sonic182/hyperstack-api/internal/config"

	"github.com/spf13/cobra"
)

const (
	JSON   = "json"
	Pretty = "pretty"
)

// Default is used when neither the --format flag nor the config
// default-format key is set.
const Default = Pretty

// Valid reports whether name is a recognized output format.
func Valid(name string) bool {
	return name == JSON || name == Pretty
}

// Resolve picks the effective output format: the flag value when given,
// then the configured default, then Default.
func Resolve(flagValue, configDefault string) (string, error) {
	if v := strings.TrimSpace(flagValue); v != "" {
		if !Valid(v) {
			return "", fmt.Errorf("unknown format %q (expected %s or %s)", v, JSON, Pretty)
		}
		return v, nil
	}
	if v := strings.TrimSpace(configDefault); v != "" && Valid(v) {
		return v, nil
	}
	return Default, nil
}

// PrintResult writes v to the command's stdout using the format resolved
// from the --format flag and the configured default.
func PrintResult(cmd *cobra.Command, v any) error {
	flagValue := ""
	if f := cmd.Flag("format"); f != nil {
		flagValue = f.Value.String()
	}
	configDefault := ""
	if cfg, err := config.Load(); err == nil {
		configDefault = cfg.DefaultFormat
	}
	name, err := Resolve(flagValue, configDefault)
	if err != nil {
		return err
	}
	return Print(cmd.OutOrStdout(), v, name)
}

// Print writes v to w as JSON, compact for JSON and indented for Pretty.
func Print(w io.Writer, v any, name string) error {
	enc := json.NewEncoder(w)
	if name == Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
