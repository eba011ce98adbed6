package commands

import (
	"github.com/spf13/cobra"
	"github.com/thom899g/sentiment-driven-trading-ai/pkg/config"
)

// sourcesCmd lists sentiment sources
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List sentiment sources and their credential status",
	Long: `Shows every known sentiment source, whether it is enabled
(SENTIMENT_SOURCES) and whether its API credential is configured.

Example:
  go run ./cmd/sentiment sources`,
	RunE: runSources,
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

func runSources(cmd *cobra.Command, args []string) error {
	sess, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	cfg := sess.cfg

	out := cmd.OutOrStdout()
	widths := []int{10, 8, 10}
	PrintTableHeader(out, []string{"SOURCE", "ENABLED", "CREDENTIAL"}, widths)

	for _, src := range config.AllSources() {
		enabled := "no"
		if cfg.Sources().Contains(src) {
			enabled = "yes"
		}
		PrintTableRow(out, []string{string(src), enabled, credentialStatus(cfg.API(), src)}, widths)
	}
	return nil
}

func credentialStatus(api config.APIConfig, src config.SentimentSource) string {
	var ok bool
	switch src {
	case config.SourceTwitter:
		ok = api.HasTwitterAccess()
	case config.SourceNews:
		ok = api.HasNewsAccess()
	default:
		return "n/a"
	}
	if ok {
		return "set"
	}
	return "missing"
}
