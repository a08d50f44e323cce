package main

import (
	"os"

	"github.com/dshills/titlelint/internal/cli"
	"github.com/joho/godotenv"
)

func main() {
	// Best effort: a local .env can provide GITHUB_TOKEN for PR checks.
	_ = godotenv.Load()

	os.Exit(cli.Run())
}
