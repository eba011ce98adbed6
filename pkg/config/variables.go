package config

// Environment variable names
const (
	EnvFirebaseProjectID       = "FIREBASE_PROJECT_ID"
	EnvFirebaseCredentialsPath = "FIREBASE_CREDENTIALS_PATH"
	EnvFirebaseCollection      = "FIREBASE_COLLECTION"

	EnvTradingMode        = "TRADING_MODE"
	EnvMaxPositionSize    = "MAX_POSITION_SIZE"
	EnvStopLossPct        = "STOP_LOSS_PCT"
	EnvTakeProfitPct      = "TAKE_PROFIT_PCT"
	EnvSentimentThreshold = "SENTIMENT_THRESHOLD"
	EnvCooloffPeriod      = "COOLOFF_PERIOD"

	EnvTwitterBearerToken = "TWITTER_BEARER_TOKEN"
	EnvNewsAPIKey         = "NEWS_API_KEY"
	EnvRateLimitPerMinute = "RATE_LIMIT_PER_MINUTE"
	EnvRetryAttempts      = "RETRY_ATTEMPTS"
	EnvTimeoutSeconds     = "TIMEOUT_SECONDS"

	EnvSentimentSources = "SENTIMENT_SOURCES"

	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"
)

// Defaults
const (
	DefaultCredentialsPath = "./firebase_credentials.json"
	DefaultCollection      = "sentiment_trading"

	DefaultMaxPositionSize    = "10000" // USD
	DefaultStopLossPct        = 0.02
	DefaultTakeProfitPct      = 0.05
	DefaultSentimentThreshold = 0.7
	DefaultCooloffSeconds     = 300

	DefaultRateLimitPerMinute = 60
	DefaultRetryAttempts      = 3
	DefaultTimeoutSeconds     = 30

	DefaultSentimentSources = "twitter,news"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Variable documents one environment variable
type Variable struct {
	Name    string
	Meaning string
	Default string
	Secret  bool
}

var variables = []Variable{
	{Name: EnvFirebaseProjectID, Meaning: "remote-store project identifier", Default: ""},
	{Name: EnvFirebaseCredentialsPath, Meaning: "path to credential file", Default: DefaultCredentialsPath},
	{Name: EnvFirebaseCollection, Meaning: "remote-store collection name", Default: DefaultCollection},
	{Name: EnvTradingMode, Meaning: "one of PAPER / LIVE / BACKTEST", Default: "PAPER"},
	{Name: EnvMaxPositionSize, Meaning: "positive decimal currency amount", Default: DefaultMaxPositionSize},
	{Name: EnvStopLossPct, Meaning: "decimal fraction, open interval (0,1)", Default: "0.02"},
	{Name: EnvTakeProfitPct, Meaning: "decimal fraction, > 0", Default: "0.05"},
	{Name: EnvSentimentThreshold, Meaning: "decimal confidence threshold", Default: "0.7"},
	{Name: EnvCooloffPeriod, Meaning: "integer seconds between trades", Default: "300"},
	{Name: EnvTwitterBearerToken, Meaning: "optional secret", Default: "", Secret: true},
	{Name: EnvNewsAPIKey, Meaning: "optional secret", Default: "", Secret: true},
	{Name: EnvRateLimitPerMinute, Meaning: "integer requests per minute", Default: "60"},
	{Name: EnvRetryAttempts, Meaning: "integer retry attempts", Default: "3"},
	{Name: EnvTimeoutSeconds, Meaning: "integer request timeout in seconds", Default: "30"},
	{Name: EnvSentimentSources, Meaning: "comma-separated enabled sentiment sources", Default: DefaultSentimentSources},
	{Name: EnvLogLevel, Meaning: "debug / info / warn / error", Default: DefaultLogLevel},
	{Name: EnvLogFormat, Meaning: "json / console", Default: DefaultLogFormat},
}

// Variables returns every documented variable in declaration order
func Variables() []Variable {
	out := make([]Variable, len(variables))
	copy(out, variables)
	return out
}

func isKnownVariable(name string) bool {
	for _, v := range variables {
		if v.Name == name {
			return true
		}
	}
	return false
}
