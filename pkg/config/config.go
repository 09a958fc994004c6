package config

import (
	"strings"
	"time"

	"github.com/rasviitanen/svgmacro/pkg/errors"
)

// Source syntaxes
const (
	SyntaxAuto  = "auto"
	SyntaxMacro = "macro"
	SyntaxXML   = "xml"
)

// Trailing newline policies
const (
	NewlineAuto   = "auto"
	NewlineAlways = "always"
	NewlineNever  = "never"
)

// Config is the fully merged svgmacro configuration
type Config struct {
	Log    LogConfig    `koanf:"log"`
	Render RenderConfig `koanf:"render"`
	Watch  WatchConfig  `koanf:"watch"`
	Data   DataConfig   `koanf:"data"`
}

// LogConfig controls console logging
type LogConfig struct {
	Level string `koanf:"level"`
}

// RenderConfig controls how documents are read and written
type RenderConfig struct {
	Syntax  string `koanf:"syntax"`
	Newline string `koanf:"newline"`
	Check   bool   `koanf:"check"`
}

// WatchConfig controls the render --watch loop
type WatchConfig struct {
	Debounce time.Duration `koanf:"debounce"`
}

// DataConfig lists data files merged into every render
type DataConfig struct {
	Files []string `koanf:"files"`
}

// Validate normalizes enum values and rejects unknown ones
func (c *Config) Validate() error {
	c.Render.Syntax = strings.ToLower(strings.TrimSpace(c.Render.Syntax))
	switch c.Render.Syntax {
	case "":
		c.Render.Syntax = SyntaxAuto
	case SyntaxAuto, SyntaxMacro, SyntaxXML:
	default:
		return errors.Newf(errors.ErrConfigParse, "unknown render.syntax %q", c.Render.Syntax).
			WithDetail("allowed", []string{SyntaxAuto, SyntaxMacro, SyntaxXML})
	}

	c.Render.Newline = strings.ToLower(strings.TrimSpace(c.Render.Newline))
	switch c.Render.Newline {
	case "":
		c.Render.Newline = NewlineAuto
	case NewlineAuto, NewlineAlways, NewlineNever:
	default:
		return errors.Newf(errors.ErrConfigParse, "unknown render.newline %q", c.Render.Newline).
			WithDetail("allowed", []string{NewlineAuto, NewlineAlways, NewlineNever})
	}

	if c.Watch.Debounce < 0 {
		return errors.Newf(errors.ErrConfigParse, "watch.debounce must not be negative, got %s", c.Watch.Debounce)
	}

	return nil
}
