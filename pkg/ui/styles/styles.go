// Package styles defines the visual styling for svgmacro's terminal
// messages.
//
// All styles use semantic names and adaptive colors that adjust to light
// and dark terminal themes. Style names are used as tags in messages:
//
//	<Success>wrote</Success> <Path>out.svg</Path>
package styles

import (
	_ "embed"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/rasviitanen/svgmacro/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var defaultStyles []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// StyleMap maps tag names to lipgloss styles
type StyleMap map[string]lipgloss.Style

// Registry holds the styles used by Expand
var Registry StyleMap

func init() {
	styles, err := Parse(defaultStyles)
	if err != nil {
		panic("failed to load embedded styles: " + err.Error())
	}
	Registry = styles
}

// Parse builds a StyleMap from a YAML styles document
func Parse(data []byte) (StyleMap, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse styles")
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	styles := make(StyleMap, len(config.Styles))
	for name, def := range config.Styles {
		styles[name] = buildStyle(def, colors)
	}
	return styles, nil
}

// LoadFile replaces the registry with the styles defined in path
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "failed to read styles file %s", path).
			WithDetail("path", path)
	}
	styles, err := Parse(data)
	if err != nil {
		return err
	}
	Registry = styles
	return nil
}

// buildStyle constructs a lipgloss style from a style definition.
// Color names not found in colors are used as literal lipgloss colors.
func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if def.Foreground != "" {
		style = style.Foreground(color(def.Foreground, colors))
	}
	if def.Background != "" {
		style = style.Background(color(def.Background, colors))
	}

	return style
}

func color(name string, colors map[string]lipgloss.AdaptiveColor) lipgloss.TerminalColor {
	if c, ok := colors[name]; ok {
		return c
	}
	return lipgloss.Color(name)
}

// Get safely retrieves a style from the registry
func Get(name string) lipgloss.Style {
	if style, ok := Registry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}
