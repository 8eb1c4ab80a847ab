package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseEnvWithDotEnv loads the dotenv files first, then parses target.
// Variables already present in the environment win over file values.
func ParseEnvWithDotEnv(target any, paths ...string) error {
	if err := LoadDotEnv(paths...); err != nil {
		return err
	}
	return ParseEnv(target)
}
