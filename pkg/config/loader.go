package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rasviitanen/svgmacro/pkg/errors"
	"github.com/rasviitanen/svgmacro/pkg/paths"
	"github.com/rs/zerolog/log"
)

// EnvPrefix is the prefix of environment variables read as configuration
const EnvPrefix = "SVGMACRO_"

// Load builds the configuration for a render started in workDir.
// Layers are merged in order: embedded defaults, user config file,
// project config file in workDir, then SVGMACRO_* environment variables.
func Load(workDir string) (*Config, error) {
	return load(paths.New(), workDir)
}

func load(p paths.Paths, workDir string) (*Config, error) {
	logger := log.With().Str("component", "config").Logger()

	// 1. Embedded defaults
	base, err := parseBytes(defaultConfig)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse embedded defaults")
	}

	// 2. User and project files
	files := []string{p.ConfigFilePath()}
	if workDir != "" {
		if project := p.ProjectConfigPath(workDir); project != "" {
			files = append(files, project)
		}
	}
	for _, path := range files {
		layer, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
		mergeMaps(base, layer)
	}

	// 3. Env vars
	envK := koanf.New(".")
	err = envK.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}
	mergeMaps(base, envK.Raw())

	// 4. Unmarshal
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(base, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load merged config")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	// 5. Post-process
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadFile reads one TOML layer. A missing file yields a nil map.
// Relative data files are resolved against the directory of the file
// that names them.
func loadFile(path string) (map[string]interface{}, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat config %s", path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	layer := k.Raw()

	if data, ok := layer["data"].(map[string]interface{}); ok {
		if files, ok := data["files"]; ok {
			data["files"] = resolveFiles(filepath.Dir(path), toInterfaceSlice(files))
		}
	}

	return layer, nil
}

func parseBytes(b []byte) (map[string]interface{}, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: b}, toml.Parser()); err != nil {
		return nil, err
	}
	return k.Raw(), nil
}

func resolveFiles(dir string, files []interface{}) []interface{} {
	resolved := make([]interface{}, 0, len(files))
	for _, f := range files {
		s, ok := f.(string)
		if !ok {
			continue
		}
		if s != "" && !filepath.IsAbs(s) {
			s = filepath.Join(dir, s)
		}
		resolved = append(resolved, s)
	}
	return resolved
}

// mergeMaps merges src into dest. Nested maps merge key by key, lists
// append so each layer can add data files, anything else overwrites.
func mergeMaps(dest, src map[string]interface{}) {
	for key, srcVal := range src {
		destVal, destOk := dest[key]
		if !destOk {
			dest[key] = srcVal
			continue
		}

		if srcMap, srcOk := srcVal.(map[string]interface{}); srcOk {
			if destMap, destOk := destVal.(map[string]interface{}); destOk {
				mergeMaps(destMap, srcMap)
				continue
			}
		}

		if isSlice(srcVal) && isSlice(destVal) {
			dest[key] = append(toInterfaceSlice(destVal), toInterfaceSlice(srcVal)...)
			continue
		}

		dest[key] = srcVal
	}
}

func isSlice(v interface{}) bool {
	switch v.(type) {
	case []interface{}, []string:
		return true
	default:
		return false
	}
}

func toInterfaceSlice(v interface{}) []interface{} {
	switch s := v.(type) {
	case []interface{}:
		return s
	case []string:
		result := make([]interface{}, len(s))
		for i, v := range s {
			result[i] = v
		}
		return result
	default:
		return []interface{}{}
	}
}
