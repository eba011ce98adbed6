package commands

import (
	"github.com/spf13/cobra"
	"github.com/thom899g/sentiment-driven-trading-ai/pkg/config"
)

// envCmd lists documented environment variables
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List configuration variables, defaults and effective values",
	Long: `Prints every documented variable with its default and the value
resolved from the configuration layers. Secrets are masked. Works even when
the configuration itself is invalid.

Example:
  go run ./cmd/sentiment env`,
	RunE: runEnv,
}

func init() {
	rootCmd.AddCommand(envCmd)
}

func runEnv(cmd *cobra.Command, args []string) error {
	env, err := loadEnviron()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	widths := []int{26, 28, 20}
	PrintTableHeader(out, []string{"VARIABLE", "DEFAULT", "EFFECTIVE"}, widths)

	for _, v := range config.Variables() {
		effective, ok := env.Lookup(v.Name)
		switch {
		case !ok:
			effective = "-"
		case v.Secret:
			effective = "(set)"
		}

		def := v.Default
		if def == "" {
			def = `""`
		}
		PrintTableRow(out, []string{v.Name, def, effective}, widths)
	}

	// env는 실패하지 않고 현재 상태만 알려줌
	if _, err := config.Load(env); err != nil {
		PrintWarning(out, "configuration invalid: "+err.Error())
	}
	return nil
}
