package fringego

import (
	"github.com/corostack/fringego/internal/corolog"
	"github.com/corostack/fringego/internal/stackalloc"
)

// Config controls how a Generator is constructed, with the default
// implementation as NewConfig.
type Config struct {
	logger        corolog.Logger
	debugRegistry bool
	pool          *stackalloc.Pool
}

// defaultConfig helps avoid copy/pasting the wrong defaults.
var defaultConfig = &Config{
	logger:        corolog.Noop(),
	debugRegistry: false,
	pool:          nil,
}

// NewConfig returns a Config with fringego's defaults: no logging, no
// debug registration, no stack pooling.
func NewConfig() *Config {
	return defaultConfig.clone()
}

// clone ensures all fields are copied even if a field is later added.
func (c *Config) clone() *Config {
	ret := *c
	return &ret
}

// WithLogger routes lifecycle and panic diagnostics through logger
// instead of discarding them.
func (c *Config) WithLogger(logger corolog.Logger) *Config {
	if logger == nil {
		logger = corolog.Noop()
	}
	ret := c.clone()
	ret.logger = logger
	return ret
}

// WithDebugRegistry registers each generator's stack with
// internal/debugreg for the lifetime of the generator, so that
// debugger-adjacent tooling can map an address back to its owning
// generator.
func (c *Config) WithDebugRegistry(enabled bool) *Config {
	ret := c.clone()
	ret.debugRegistry = enabled
	return ret
}

// WithStackPool recycles stacks allocated by NewGeneratorOS through
// pool instead of mmapping and munmapping on every generator. Has no
// effect on NewGenerator, which never owns the Stack it's given.
func (c *Config) WithStackPool(pool *stackalloc.Pool) *Config {
	ret := c.clone()
	ret.pool = pool
	return ret
}
