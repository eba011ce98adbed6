package config

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Environ is an explicit name→value mapping of configuration variables.
// ⭐ SSOT: config 패키지는 os.Getenv()를 호출하지 않음. 진입점에서 한 번만 수집해서 전달
type Environ map[string]string

// ParseEnviron converts os.Environ()-style "KEY=VALUE" pairs into an Environ
func ParseEnviron(pairs []string) Environ {
	env := make(Environ, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// Merge combines layers; later layers override earlier ones.
// Empty values never override (empty means unset).
func Merge(layers ...Environ) Environ {
	merged := make(Environ)
	for _, layer := range layers {
		for k, v := range layer {
			if v == "" {
				continue
			}
			merged[k] = v
		}
	}
	return merged
}

// Get returns the value for key, or defaultValue when unset or empty
func (e Environ) Get(key, defaultValue string) string {
	if value := e[key]; value != "" {
		return value
	}
	return defaultValue
}

// Lookup returns the value for key and whether it is set to a non-empty string
func (e Environ) Lookup(key string) (string, bool) {
	value := e[key]
	return value, value != ""
}

// Helper functions: unlike a lenient loader these never fall back to the default
// on a parse failure. 잘못된 숫자는 즉시 실패.

func (e Environ) getInt(key string, defaultValue int) (int, error) {
	raw, ok := e.Lookup(key)
	if !ok {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, newError(KindInvalidNumericEnvironmentValue, key, raw, "must be an integer")
	}
	return value, nil
}

// maxDurationSeconds is the largest whole-second count a time.Duration can hold
const maxDurationSeconds = math.MaxInt64 / int64(time.Second)

// getSeconds reads an integer count of seconds that must fit in a time.Duration
func (e Environ) getSeconds(key string, defaultValue int) (int, error) {
	value, err := e.getInt(key, defaultValue)
	if err != nil {
		return 0, err
	}
	if int64(value) > maxDurationSeconds || int64(value) < -maxDurationSeconds {
		raw, _ := e.Lookup(key)
		return 0, newError(KindInvalidNumericEnvironmentValue, key, raw, "seconds out of range")
	}
	return value, nil
}

func (e Environ) getFloat(key string, defaultValue float64) (float64, error) {
	raw, ok := e.Lookup(key)
	if !ok {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, newError(KindInvalidNumericEnvironmentValue, key, raw, "must be a decimal number")
	}
	return value, nil
}

func (e Environ) getDecimal(key string, defaultValue decimal.Decimal) (decimal.Decimal, error) {
	raw, ok := e.Lookup(key)
	if !ok {
		return defaultValue, nil
	}
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, newError(KindInvalidNumericEnvironmentValue, key, raw, "must be a decimal amount")
	}
	return value, nil
}
