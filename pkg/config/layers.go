package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ReadEnvFile parses a .env file into an Environ without touching the
// process environment. A missing file yields an empty Environ.
func ReadEnvFile(path string) (Environ, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Environ{}, nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return Environ(values), nil
}

// ReadOverrideFile reads a flat YAML mapping of documented variable names.
//
//	TRADING_MODE: LIVE
//	STOP_LOSS_PCT: 0.03
//	SENTIMENT_SOURCES: [twitter, news]
//
// Unknown keys fail immediately (오타/미사용 키 즉시 실패).
func ReadOverrideFile(path string) (Environ, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return ParseOverrides(data)
}

// ParseOverrides decodes the YAML form accepted by ReadOverrideFile
func ParseOverrides(data []byte) (Environ, error) {
	env := Environ{}
	if len(bytes.TrimSpace(data)) == 0 {
		return env, nil
	}

	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	for key, node := range doc {
		name := strings.ToUpper(strings.TrimSpace(key))
		if !isKnownVariable(name) {
			return nil, newError(KindUnknownSetting, key, "", "unknown setting")
		}

		value, err := nodeValue(name, &node)
		if err != nil {
			return nil, err
		}
		env[name] = value
	}
	return env, nil
}

// nodeValue keeps scalars as their raw text so decimals are not reformatted
func nodeValue(name string, node *yaml.Node) (string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return "", nil
		}
		return node.Value, nil
	case yaml.SequenceNode:
		if name != EnvSentimentSources {
			return "", newError(KindUnknownSetting, name, "", "list value only allowed for "+EnvSentimentSources)
		}
		if len(node.Content) == 0 {
			// 빈 목록은 "모든 소스 비활성화". ""는 Merge에서 unset으로 버려지므로 ","로 표현
			return ",", nil
		}
		items := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return "", newError(KindUnknownSetting, name, "", "list items must be scalars")
			}
			items = append(items, item.Value)
		}
		return strings.Join(items, ","), nil
	default:
		return "", newError(KindUnknownSetting, name, "", "must be a scalar value")
	}
}
