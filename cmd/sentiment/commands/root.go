package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/thom899g/sentiment-driven-trading-ai/pkg/config"
	"github.com/thom899g/sentiment-driven-trading-ai/pkg/logger"
)

var (
	// Global flags
	envFile    string
	configFile string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sentiment",
	Short: "Sentiment-driven trading AI - configuration toolkit",
	Long: `Sentiment Trader CLI

Loads and validates the process configuration (Firebase state store,
trading risk limits, external API limits, enabled sentiment sources).
Any invalid setting aborts with a non-zero exit naming the field and value.

Precedence (later wins): --config YAML < --env-file < process environment.

Examples:
  go run ./cmd/sentiment check
  go run ./cmd/sentiment show --output json
  go run ./cmd/sentiment env`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file (missing file is ignored)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "optional YAML overrides file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadEnviron gathers every configuration layer.
// ⭐ SSOT: os.Environ()은 여기서만 호출
func loadEnviron() (config.Environ, error) {
	var fileLayer config.Environ
	if configFile != "" {
		var err error
		if fileLayer, err = config.ReadOverrideFile(configFile); err != nil {
			return nil, err
		}
	}

	dotenvLayer, err := config.ReadEnvFile(envFile)
	if err != nil {
		return nil, err
	}

	return config.Merge(fileLayer, dotenvLayer, config.ParseEnviron(os.Environ())), nil
}

func newLogger(cmd *cobra.Command, env config.Environ) *logger.Logger {
	logCfg := config.LoadLogging(env)
	if verbose {
		logCfg.Level = "debug"
	}
	return logger.NewWithWriter(logCfg, cmd.ErrOrStderr())
}

// session is what every config-backed command starts from
type session struct {
	cfg      *config.Config
	log      *logger.Logger
	warnings []config.Warning
}

// bootstrap loads and validates the configuration, logging warnings once.
// 실패 시 에러를 그대로 반환해서 프로세스가 non-zero로 종료되도록 함
func bootstrap(cmd *cobra.Command) (*session, error) {
	env, err := loadEnviron()
	if err != nil {
		log := newLogger(cmd, config.ParseEnviron(os.Environ()))
		log.WithError(err).Error("failed to read configuration layers")
		return nil, err
	}

	log := newLogger(cmd, env)

	cfg, err := config.Load(env)
	if err != nil {
		log.WithError(err).Error("configuration rejected")
		return nil, err
	}

	log.WithFields(map[string]interface{}{
		"mode":    cfg.Trading().Mode.String(),
		"sources": cfg.Sources().String(),
		"project": cfg.Firebase().ProjectID(),
	}).Debug("configuration loaded")

	warnings := config.Warn(cfg)
	for _, w := range warnings {
		log.WithField("code", w.Code).Warn(w.Message)
	}

	return &session{cfg: cfg, log: log, warnings: warnings}, nil
}
