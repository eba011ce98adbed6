package config

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Summary is a redacted, serialisable view of Config.
// Secrets appear only as presence flags.
type Summary struct {
	Firebase FirebaseSummary `yaml:"firebase" json:"firebase"`
	Trading  TradingSummary  `yaml:"trading" json:"trading"`
	API      APISummary      `yaml:"api" json:"api"`
	Sources  []string        `yaml:"sentiment_sources" json:"sentiment_sources"`
}

type FirebaseSummary struct {
	ProjectID       string `yaml:"project_id" json:"project_id"`
	CredentialsPath string `yaml:"credentials_path" json:"credentials_path"`
	Collection      string `yaml:"collection_name" json:"collection_name"`
}

type TradingSummary struct {
	Mode               string  `yaml:"mode" json:"mode"`
	MaxPositionSize    string  `yaml:"max_position_size" json:"max_position_size"`
	StopLossPct        float64 `yaml:"stop_loss_pct" json:"stop_loss_pct"`
	TakeProfitPct      float64 `yaml:"take_profit_pct" json:"take_profit_pct"`
	SentimentThreshold float64 `yaml:"sentiment_threshold" json:"sentiment_threshold"`
	CooloffSeconds     int     `yaml:"cooloff_period" json:"cooloff_period"`
}

type APISummary struct {
	HasTwitterAccess   bool `yaml:"has_twitter_access" json:"has_twitter_access"`
	HasNewsAccess      bool `yaml:"has_news_access" json:"has_news_access"`
	RateLimitPerMinute int  `yaml:"rate_limit_per_minute" json:"rate_limit_per_minute"`
	RetryAttempts      int  `yaml:"retry_attempts" json:"retry_attempts"`
	TimeoutSeconds     int  `yaml:"timeout_seconds" json:"timeout_seconds"`
}

// Summary returns the redacted view
func (c *Config) Summary() Summary {
	sources := make([]string, 0, c.sources.Len())
	for _, src := range c.sources.Sources() {
		sources = append(sources, string(src))
	}

	return Summary{
		Firebase: FirebaseSummary{
			ProjectID:       c.firebase.ProjectID(),
			CredentialsPath: c.firebase.CredentialsPath(),
			Collection:      c.firebase.Collection(),
		},
		Trading: TradingSummary{
			Mode:               c.trading.Mode.String(),
			MaxPositionSize:    c.trading.MaxPositionSize.String(),
			StopLossPct:        c.trading.StopLossPct,
			TakeProfitPct:      c.trading.TakeProfitPct,
			SentimentThreshold: c.trading.SentimentThreshold,
			CooloffSeconds:     c.trading.CooloffSeconds,
		},
		API: APISummary{
			HasTwitterAccess:   c.api.HasTwitterAccess(),
			HasNewsAccess:      c.api.HasNewsAccess(),
			RateLimitPerMinute: c.api.RateLimitPerMinute,
			RetryAttempts:      c.api.RetryAttempts,
			TimeoutSeconds:     c.api.TimeoutSeconds,
		},
		Sources: sources,
	}
}

// Fingerprint generates a SHA256 hash of the redacted summary (canonical JSON).
// struct만 사용하므로 필드 순서가 고정되어 해시가 재현됨
func Fingerprint(cfg *Config) (string, error) {
	jsonBytes, err := json.Marshal(cfg.Summary())
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(jsonBytes)
	return hex.EncodeToString(sum[:]), nil
}

// Snapshot records which configuration a run started with (audit)
type Snapshot struct {
	Fingerprint string    `json:"fingerprint"`
	Mode        string    `json:"mode"`
	GitCommit   string    `json:"git_commit"`
	Summary     Summary   `json:"summary"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewSnapshot creates a snapshot for audit
func NewSnapshot(cfg *Config, gitCommit string) (*Snapshot, error) {
	hash, err := Fingerprint(cfg)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Fingerprint: hash,
		Mode:        cfg.Trading().Mode.String(),
		GitCommit:   gitCommit,
		Summary:     cfg.Summary(),
		CreatedAt:   time.Now(),
	}, nil
}
