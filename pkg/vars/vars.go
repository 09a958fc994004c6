// Package vars loads the host data that expressions in a document refer
// to. Data comes from YAML, TOML or JSON files and from key=value
// assignments given on the command line.
package vars

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rasviitanen/svgmacro/pkg/errors"
	"github.com/rasviitanen/svgmacro/pkg/logging"
	"gopkg.in/yaml.v3"
)

// Data file formats
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatJSON = "json"
)

// FormatForPath returns the data format implied by the file extension,
// or "" when the extension is not recognized.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return ""
	}
}

// Load reads the data file at path. The top level must be a mapping.
func Load(path string) (map[string]any, error) {
	logger := logging.GetLogger("vars")

	format := FormatForPath(path)
	if format == "" {
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported data file %s", path).
			WithDetail("path", path).
			WithDetail("supported", []string{".yaml", ".yml", ".toml", ".json"})
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read data file %s", path).
			WithDetail("path", path)
	}

	vars, err := Decode(format, data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDataParse, "failed to parse data file %s", path).
			WithDetail("path", path).
			WithDetail("format", format)
	}

	logger.Debug().Str("path", path).Str("format", format).Int("keys", len(vars)).Msg("Loaded data file")
	return vars, nil
}

// Decode parses data in the given format into a variable map.
func Decode(format string, data []byte) (map[string]any, error) {
	var raw any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case FormatTOML:
		var m map[string]any
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		raw = m
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown data format %q", format)
	}

	if raw == nil {
		return map[string]any{}, nil
	}
	m, ok := normalize(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top level must be a mapping, got %T", raw)
	}
	return m, nil
}

// normalize converts maps with non-string keys, as YAML may produce, to
// map[string]any so that dotted lookups work on them.
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			x[k] = normalize(e)
		}
		return x
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, e := range x {
			m[fmt.Sprint(k)] = normalize(e)
		}
		return m
	case []any:
		for i, e := range x {
			x[i] = normalize(e)
		}
		return x
	default:
		return v
	}
}

// Merge copies src into dst, merging nested maps key by key. Values from
// src win. dst is modified and returned; a nil dst is allocated.
func Merge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for k, sv := range src {
		if sm, ok := sv.(map[string]any); ok {
			if dm, ok := dst[k].(map[string]any); ok {
				dst[k] = Merge(dm, sm)
				continue
			}
		}
		dst[k] = sv
	}
	return dst
}

// ParseAssignment parses key=value. The key may be a dotted path. The
// value becomes a bool, an int or a float when it parses as one, and
// stays a string otherwise.
func ParseAssignment(s string) (string, any, error) {
	key, value, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", nil, errors.Newf(errors.ErrInvalidInput, "invalid assignment %q, expected key=value", s)
	}
	for _, part := range strings.Split(key, ".") {
		if part == "" {
			return "", nil, errors.Newf(errors.ErrInvalidInput, "invalid key %q in assignment", key)
		}
	}
	return key, scalar(value), nil
}

func scalar(s string) any {
	if s == "true" || s == "false" {
		return s == "true"
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !strings.ContainsAny(s, "xXpPnN_") {
		return f
	}
	return s
}

// Set stores v under a dotted path, creating intermediate maps and
// replacing non-map values in the way.
func Set(vars map[string]any, path string, v any) {
	parts := strings.Split(path, ".")
	cur := vars
	for _, p := range parts[:len(parts)-1] {
		next, ok := cur[p].(map[string]any)
		if !ok {
			next = map[string]any{}
			cur[p] = next
		}
		cur = next
	}
	cur[parts[len(parts)-1]] = v
}
