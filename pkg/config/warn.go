package config

import (
	"fmt"
)

// Warning 권장 위반 (경고만, 기동은 계속)
type Warning struct {
	Code    string
	Message string
}

// Warn checks recommended constraints (non-fatal)
func Warn(cfg *Config) []Warning {
	var warnings []Warning

	trading := cfg.Trading()
	api := cfg.API()
	sources := cfg.Sources()

	if trading.Mode == ModeLive {
		warnings = append(warnings, Warning{
			Code:    "LIVE_MODE",
			Message: fmt.Sprintf("live trading enabled, max position %s USD", trading.MaxPositionSize.String()),
		})
	}

	if trading.TakeProfitPct < trading.StopLossPct {
		warnings = append(warnings, Warning{
			Code:    "NEGATIVE_REWARD_RISK",
			Message: fmt.Sprintf("take_profit_pct=%g below stop_loss_pct=%g", trading.TakeProfitPct, trading.StopLossPct),
		})
	}

	if trading.SentimentThreshold < 0 || trading.SentimentThreshold > 1 {
		warnings = append(warnings, Warning{
			Code:    "THRESHOLD_RANGE",
			Message: fmt.Sprintf("sentiment_threshold=%g outside [0, 1]", trading.SentimentThreshold),
		})
	}

	if sources.Contains(SourceTwitter) && !api.HasTwitterAccess() {
		warnings = append(warnings, Warning{
			Code:    "MISSING_CREDENTIAL",
			Message: "twitter source enabled without " + EnvTwitterBearerToken,
		})
	}
	if sources.Contains(SourceNews) && !api.HasNewsAccess() {
		warnings = append(warnings, Warning{
			Code:    "MISSING_CREDENTIAL",
			Message: "news source enabled without " + EnvNewsAPIKey,
		})
	}

	if sources.Len() == 0 {
		warnings = append(warnings, Warning{
			Code:    "NO_SOURCES",
			Message: "no sentiment sources enabled",
		})
	}

	if api.RetryAttempts <= 0 {
		warnings = append(warnings, Warning{
			Code:    "NO_RETRY",
			Message: "retry_attempts <= 0: transient API failures will not be retried",
		})
	}

	return warnings
}
