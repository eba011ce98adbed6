package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thom899g/sentiment-driven-trading-ai/pkg/config"
	"gopkg.in/yaml.v3"
)

var (
	showOutput string

	fingerprintSnapshot bool
	fingerprintCommit   string
)

// showCmd prints the redacted configuration
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the redacted configuration",
	Long: `Prints the loaded configuration with secrets replaced by
presence flags.

Example:
  go run ./cmd/sentiment show
  go run ./cmd/sentiment show --output json`,
	RunE: runShow,
}

// fingerprintCmd prints the configuration hash
var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint",
	Short: "Print the configuration fingerprint (SHA256)",
	Long: `Prints a SHA256 over the redacted configuration. Two processes with
the same fingerprint run with the same effective settings.

Example:
  go run ./cmd/sentiment fingerprint
  go run ./cmd/sentiment fingerprint --snapshot --git-commit $(git rev-parse HEAD)`,
	RunE: runFingerprint,
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(fingerprintCmd)

	showCmd.Flags().StringVarP(&showOutput, "output", "o", "yaml", "output format (yaml|json)")

	fingerprintCmd.Flags().BoolVar(&fingerprintSnapshot, "snapshot", false, "print a JSON audit snapshot instead of the bare hash")
	fingerprintCmd.Flags().StringVar(&fingerprintCommit, "git-commit", "", "commit recorded in the snapshot")
}

func runShow(cmd *cobra.Command, args []string) error {
	sess, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	cfg := sess.cfg

	var data []byte
	switch showOutput {
	case "yaml":
		data, err = yaml.Marshal(cfg.Summary())
	case "json":
		data, err = json.MarshalIndent(cfg.Summary(), "", "  ")
		data = append(data, '\n')
	default:
		return fmt.Errorf("unknown output format %q (yaml|json)", showOutput)
	}
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runFingerprint(cmd *cobra.Command, args []string) error {
	sess, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	cfg := sess.cfg

	out := cmd.OutOrStdout()
	if !fingerprintSnapshot {
		hash, err := config.Fingerprint(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, hash)
		return nil
	}

	snapshot, err := config.NewSnapshot(cfg, fingerprintCommit)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(snapshot)
}
