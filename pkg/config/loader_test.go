package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rasviitanen/svgmacro/pkg/errors"
	"github.com/rasviitanen/svgmacro/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user config dir at an empty temp dir and clears any
// SVGMACRO_ variables the environment might carry
func isolate(t *testing.T) string {
	t.Helper()
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, EnvPrefix) {
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}
	configDir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, configDir)
	return configDir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, SyntaxAuto, cfg.Render.Syntax)
	assert.Equal(t, NewlineAuto, cfg.Render.Newline)
	assert.False(t, cfg.Render.Check)
	assert.Equal(t, 150*time.Millisecond, cfg.Watch.Debounce)
	assert.Empty(t, cfg.Data.Files)
}

func TestLoad_Layers(t *testing.T) {
	configDir := isolate(t)
	workDir := t.TempDir()

	writeFile(t, filepath.Join(configDir, paths.ConfigFileName), `
[log]
level = "info"

[render]
newline = "never"

[data]
files = ["/shared/palette.yaml"]
`)
	writeFile(t, filepath.Join(workDir, ".svgmacro.toml"), `
[render]
syntax = "macro"
check = true

[data]
files = ["local.toml"]
`)

	cfg, err := Load(workDir)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level, "user file overrides defaults")
	assert.Equal(t, NewlineNever, cfg.Render.Newline)
	assert.Equal(t, SyntaxMacro, cfg.Render.Syntax, "project file overrides user file")
	assert.True(t, cfg.Render.Check)
	assert.Equal(t, []string{
		"/shared/palette.yaml",
		filepath.Join(workDir, "local.toml"),
	}, cfg.Data.Files, "data files append across layers, relative to their config file")
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	workDir := t.TempDir()
	writeFile(t, filepath.Join(workDir, "svgmacro.toml"), "[render]\nsyntax = \"macro\"\n")

	t.Setenv("SVGMACRO_RENDER_SYNTAX", "xml")
	t.Setenv("SVGMACRO_WATCH_DEBOUNCE", "1s")
	t.Setenv("SVGMACRO_RENDER_CHECK", "true")

	cfg, err := Load(workDir)
	require.NoError(t, err)

	assert.Equal(t, SyntaxXML, cfg.Render.Syntax)
	assert.Equal(t, time.Second, cfg.Watch.Debounce)
	assert.True(t, cfg.Render.Check)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("malformed project file", func(t *testing.T) {
		isolate(t)
		workDir := t.TempDir()
		writeFile(t, filepath.Join(workDir, ".svgmacro.toml"), "[render\nsyntax = ")

		_, err := Load(workDir)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("unknown syntax", func(t *testing.T) {
		isolate(t)
		t.Setenv("SVGMACRO_RENDER_SYNTAX", "jsx")

		_, err := Load(t.TempDir())
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
		assert.Contains(t, err.Error(), "jsx")
	})
}

func TestValidate(t *testing.T) {
	cfg := &Config{Render: RenderConfig{Syntax: " XML ", Newline: ""}}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, SyntaxXML, cfg.Render.Syntax)
	assert.Equal(t, NewlineAuto, cfg.Render.Newline)

	cfg = &Config{Render: RenderConfig{Newline: "sometimes"}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Equal(t, []string{NewlineAuto, NewlineAlways, NewlineNever}, errors.GetErrorDetails(err)["allowed"])

	cfg = &Config{Watch: WatchConfig{Debounce: -time.Second}}
	assert.Error(t, cfg.Validate())
}

func TestMergeMaps(t *testing.T) {
	dest := map[string]interface{}{
		"render": map[string]interface{}{"syntax": "auto", "check": false},
		"data":   map[string]interface{}{"files": []interface{}{"a"}},
	}
	src := map[string]interface{}{
		"render": map[string]interface{}{"check": true},
		"data":   map[string]interface{}{"files": []string{"b"}},
		"log":    map[string]interface{}{"level": "debug"},
	}

	mergeMaps(dest, src)

	assert.Equal(t, map[string]interface{}{
		"render": map[string]interface{}{"syntax": "auto", "check": true},
		"data":   map[string]interface{}{"files": []interface{}{"a", "b"}},
		"log":    map[string]interface{}{"level": "debug"},
	}, dest)
}
