package main

import (
	"os"

	"github.com/thom899g/sentiment-driven-trading-ai/cmd/sentiment/commands"
)

// main is the entry point for the sentiment trader CLI
// ⭐ 프로세스 환경변수는 commands 패키지에서 한 번만 읽음
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
