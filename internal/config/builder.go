package config

import (
	"io"

	"github.com/copperfishgh/testy/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// BuildValid returns the built Config, or an error if it fails validation.
func (b *ConfigBuilder) BuildValid() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithUndoLimit sets how many moves can be undone.
func (b *ConfigBuilder) WithUndoLimit(limit int) *ConfigBuilder {
	b.cfg.Game.UndoLimit = limit
	return b
}

// WithDefaultPromotion sets the piece used when a promotion names none.
func (b *ConfigBuilder) WithDefaultPromotion(kind chess.Kind) *ConfigBuilder {
	b.cfg.Game.DefaultPromotion = kind
	return b
}

// WithHelper enables or disables a helper overlay. Unknown helpers are
// rejected later by the session, not here.
func (b *ConfigBuilder) WithHelper(helper Helper, enabled bool) *ConfigBuilder {
	b.cfg.Helpers.Enabled[helper] = enabled
	return b
}

// WithListenAddr sets the HTTP listen address.
func (b *ConfigBuilder) WithListenAddr(addr string) *ConfigBuilder {
	b.cfg.Server.ListenAddr = addr
	return b
}

// WithWorkers sets the batch worker count.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Server.Workers = n
	return b
}

// WithAllowedOrigins sets the CORS origins for the HTTP bridge.
func (b *ConfigBuilder) WithAllowedOrigins(origins ...string) *ConfigBuilder {
	b.cfg.Server.AllowedOrigins = origins
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
