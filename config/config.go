// Package config loads mcpdocs settings from the environment.
package config

import (
	"errors"

	"github.com/joeshaw/envdecode"
	"github.com/morikuni/failure/v2"
)

// ErrorCode defines error types for configuration loading
type ErrorCode string

const (
	// ErrInvalidConfig represents an environment variable that cannot be decoded
	ErrInvalidConfig ErrorCode = "InvalidConfig"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

// Config holds process-wide settings. Command line flags override these.
type Config struct {
	// Debug enables debug logging. ENV: MCPDOCS_DEBUG
	Debug bool `env:"MCPDOCS_DEBUG,default=false"`
	// SeedFile replaces the built-in documents with a YAML seed. ENV: MCPDOCS_SEED
	SeedFile string `env:"MCPDOCS_SEED"`
	// ServerName is advertised to MCP clients. ENV: MCPDOCS_SERVER_NAME
	ServerName string `env:"MCPDOCS_SERVER_NAME,default=DocumentMCP"`
	// WordWrap is the column width used when rendering markdown. ENV: MCPDOCS_WORD_WRAP
	WordWrap int `env:"MCPDOCS_WORD_WRAP,default=100"`
}

// Default returns the configuration used when no environment is set
func Default() Config {
	return Config{
		ServerName: "DocumentMCP",
		WordWrap:   100,
	}
}

// Load decodes Config from the environment.
// A variable that is set but cannot be parsed is an error.
func Load() (Config, error) {
	cfg := Default()
	if err := envdecode.StrictDecode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, failure.Wrap(err, failure.WithCode(ErrInvalidConfig),
			failure.Message("Invalid environment configuration"),
		)
	}
	return cfg, nil
}
