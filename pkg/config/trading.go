package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TradingMode is the trading operation mode
type TradingMode int

const (
	ModePaper TradingMode = iota
	ModeLive
	ModeBacktest
)

var tradingModeNames = [...]string{
	ModePaper:    "PAPER",
	ModeLive:     "LIVE",
	ModeBacktest: "BACKTEST",
}

func (m TradingMode) String() string {
	if m >= 0 && int(m) < len(tradingModeNames) {
		return tradingModeNames[m]
	}
	return fmt.Sprintf("TradingMode(%d)", int(m))
}

// ParseTradingMode resolves PAPER / LIVE / BACKTEST, case-insensitively
func ParseTradingMode(s string) (TradingMode, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range tradingModeNames {
		if n == name {
			return TradingMode(i), nil
		}
	}
	return 0, newError(KindInvalidTradingMode, EnvTradingMode, s, "must be one of PAPER, LIVE, BACKTEST")
}

// TradingConfig bounds trading behaviour.
// Fields are exported so a draft can be assembled and overridden before
// Validate is called once at the end.
type TradingConfig struct {
	Mode               TradingMode
	MaxPositionSize    decimal.Decimal // USD
	StopLossPct        float64         // 2% = 0.02
	TakeProfitPct      float64
	SentimentThreshold float64 // confidence threshold
	CooloffSeconds     int     // seconds between trades
}

// DefaultTradingConfig returns the documented defaults
func DefaultTradingConfig() TradingConfig {
	return TradingConfig{
		Mode:               ModePaper,
		MaxPositionSize:    decimal.RequireFromString(DefaultMaxPositionSize),
		StopLossPct:        DefaultStopLossPct,
		TakeProfitPct:      DefaultTakeProfitPct,
		SentimentThreshold: DefaultSentimentThreshold,
		CooloffSeconds:     DefaultCooloffSeconds,
	}
}

// Validate checks the risk parameters. No I/O; nil on success.
func (t TradingConfig) Validate() error {
	// NaN도 거부되도록 부정형으로 비교
	if !(t.StopLossPct > 0 && t.StopLossPct < 1) {
		return newError(KindInvalidStopLoss, EnvStopLossPct, formatFloat(t.StopLossPct), "must be between 0 and 1 (exclusive)")
	}
	if !(t.TakeProfitPct > 0) {
		return newError(KindInvalidTakeProfit, EnvTakeProfitPct, formatFloat(t.TakeProfitPct), "must be positive")
	}
	if !t.MaxPositionSize.IsPositive() {
		return newError(KindInvalidPositionSize, EnvMaxPositionSize, t.MaxPositionSize.String(), "must be positive")
	}
	return nil
}

// Cooloff returns the minimum time between two trades
func (t TradingConfig) Cooloff() time.Duration {
	return time.Duration(t.CooloffSeconds) * time.Second
}

// LoadTrading builds a draft TradingConfig from env. It does not validate.
func LoadTrading(env Environ) (TradingConfig, error) {
	t := DefaultTradingConfig()
	var err error

	if raw, ok := env.Lookup(EnvTradingMode); ok {
		if t.Mode, err = ParseTradingMode(raw); err != nil {
			return TradingConfig{}, err
		}
	}
	if t.MaxPositionSize, err = env.getDecimal(EnvMaxPositionSize, t.MaxPositionSize); err != nil {
		return TradingConfig{}, err
	}
	if t.StopLossPct, err = env.getFloat(EnvStopLossPct, t.StopLossPct); err != nil {
		return TradingConfig{}, err
	}
	if t.TakeProfitPct, err = env.getFloat(EnvTakeProfitPct, t.TakeProfitPct); err != nil {
		return TradingConfig{}, err
	}
	if t.SentimentThreshold, err = env.getFloat(EnvSentimentThreshold, t.SentimentThreshold); err != nil {
		return TradingConfig{}, err
	}
	if t.CooloffSeconds, err = env.getSeconds(EnvCooloffPeriod, t.CooloffSeconds); err != nil {
		return TradingConfig{}, err
	}

	return t, nil
}

func formatFloat(f float64) string {
	return fmt.Sprintf("%g", f)
}
