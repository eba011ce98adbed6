package config

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a ConfigurationError
type ErrorKind int

const (
	KindMissingCredentialFile ErrorKind = iota + 1
	KindEmptyIdentifier
	KindInvalidStopLoss
	KindInvalidTakeProfit
	KindInvalidPositionSize
	KindInvalidNumericEnvironmentValue
	KindUnknownSentimentSource
	KindInvalidTradingMode
	KindUnknownSetting
)

var kindNames = map[ErrorKind]string{
	KindMissingCredentialFile:          "MissingCredentialFile",
	KindEmptyIdentifier:                "EmptyIdentifier",
	KindInvalidStopLoss:                "InvalidStopLoss",
	KindInvalidTakeProfit:              "InvalidTakeProfit",
	KindInvalidPositionSize:            "InvalidPositionSize",
	KindInvalidNumericEnvironmentValue: "InvalidNumericEnvironmentValue",
	KindUnknownSentimentSource:         "UnknownSentimentSource",
	KindInvalidTradingMode:             "InvalidTradingMode",
	KindUnknownSetting:                 "UnknownSetting",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ConfigurationError 설정 검증 실패 (프로그램 중단)
// Field names the environment variable or setting, Value the raw input.
type ConfigurationError struct {
	Kind    ErrorKind
	Field   string
	Value   string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %s (%s=%q)", e.Kind, e.Message, e.Field, e.Value)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Field)
}

// IsKind reports whether err carries a ConfigurationError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return cfgErr.Kind == kind
	}
	return false
}

func newError(kind ErrorKind, field, value, message string) *ConfigurationError {
	return &ConfigurationError{Kind: kind, Field: field, Value: value, Message: message}
}
