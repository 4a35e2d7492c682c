// Package config provides configuration for the chess helper.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
// Sub-configs group related settings; the top level carries the
// output streams and diagnostics level shared by every package.
type Config struct {
	// Verbosity controls diagnostics written to LogFile:
	// 0=nothing, 1=lifecycle events, 2=every move.
	Verbosity int

	Game    *GameConfig
	Helpers *HelperConfig
	Server  *ServerConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Game:       NewGameConfig(),
		Helpers:    NewHelperConfig(),
		Server:     NewServerConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks every sub-config.
func (c *Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}

// SetOutput sets the report stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostics stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Clone returns a copy whose sub-configs can be changed independently.
// The output streams are shared.
func (c *Config) Clone() *Config {
	out := *c
	game := *c.Game
	server := *c.Server
	out.Game = &game
	out.Server = &server
	out.Helpers = c.Helpers.Clone()
	return &out
}
