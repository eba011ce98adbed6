package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thom899g/sentiment-driven-trading-ai/pkg/config"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load and validate the configuration",
	Long: `Loads every configuration layer, builds all sections and validates
the trading risk parameters. Exits non-zero on the first violation.

Example:
  go run ./cmd/sentiment check
  go run ./cmd/sentiment check --env-file deploy/.env.live`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	sess, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	cfg := sess.cfg

	hash, err := config.Fingerprint(cfg)
	if err != nil {
		return fmt.Errorf("fingerprint: %w", err)
	}
	sess.log.Infof("configuration fingerprint %s", hash)

	out := cmd.OutOrStdout()
	trading := cfg.Trading()
	api := cfg.API()

	PrintHeader(out, "Sentiment Trader Configuration")
	PrintKeyValue(out, "Project", cfg.Firebase().ProjectID(), 14)
	PrintKeyValue(out, "Collection", cfg.Firebase().Collection(), 14)
	PrintKeyValue(out, "Mode", trading.Mode.String(), 14)
	PrintKeyValue(out, "Max position", trading.MaxPositionSize.String()+" USD", 14)
	PrintKeyValue(out, "Stop loss", fmt.Sprintf("%.2f%%", trading.StopLossPct*100), 14)
	PrintKeyValue(out, "Take profit", fmt.Sprintf("%.2f%%", trading.TakeProfitPct*100), 14)
	PrintKeyValue(out, "Threshold", fmt.Sprintf("%g", trading.SentimentThreshold), 14)
	PrintKeyValue(out, "Cooloff", trading.Cooloff().String(), 14)
	PrintKeyValue(out, "Rate limit", fmt.Sprintf("%d/min", api.RateLimitPerMinute), 14)
	PrintKeyValue(out, "Sources", cfg.Sources().String(), 14)
	PrintKeyValue(out, "Fingerprint", hash[:12], 14)
	PrintSeparator(out)

	// 경고는 bootstrap에서 이미 stderr로 기록됨
	PrintSuccess(out, fmt.Sprintf("configuration valid (%d warnings)", len(sess.warnings)))
	return nil
}
