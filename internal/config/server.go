package config

import (
	"fmt"

	"github.com/copperfishgh/testy/internal/errors"
)

// ServerConfig holds settings for the HTTP bridge and batch analysis.
type ServerConfig struct {
	// ListenAddr is the address the bridge listens on
	ListenAddr string

	// Workers is the number of batch analysis workers
	Workers int

	// AllowedOrigins lists CORS origins; empty allows none
	AllowedOrigins []string
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		ListenAddr: ":8080",
		Workers:    1,
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.Workers < 1 {
		return fmt.Errorf("workers %d < 1: %w", s.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
