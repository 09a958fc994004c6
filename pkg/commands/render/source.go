package render

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rasviitanen/svgmacro/pkg/config"
	"github.com/rasviitanen/svgmacro/pkg/errors"
	"github.com/rasviitanen/svgmacro/pkg/markdown"
	"github.com/rasviitanen/svgmacro/pkg/markup"
	"github.com/rasviitanen/svgmacro/pkg/syntax"
	"github.com/rasviitanen/svgmacro/pkg/vars"
	"github.com/rasviitanen/svgmacro/pkg/xmlsource"
)

// DetectSyntax resolves the auto syntax for a source file. Files named
// .svg or .xml, and sources starting with '<', are read as XML.
func DetectSyntax(path, src, configured string) string {
	if configured != "" && configured != config.SyntaxAuto {
		return configured
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg", ".xml":
		return config.SyntaxXML
	}
	if strings.HasPrefix(strings.TrimSpace(src), "<") {
		return config.SyntaxXML
	}
	return config.SyntaxMacro
}

// BuildScope assembles the variables and escapes visible to a document:
// configured data files, then dataFiles, then key=value assignments, and
// markdown blocks given as name=file.
func BuildScope(cfg *config.Config, dataFiles, sets, markdownFiles []string) (*syntax.Scope, error) {
	data := map[string]any{}

	files := append(append([]string{}, cfg.Data.Files...), dataFiles...)
	for _, path := range files {
		loaded, err := vars.Load(path)
		if err != nil {
			return nil, err
		}
		vars.Merge(data, loaded)
	}

	for _, assignment := range sets {
		key, value, err := vars.ParseAssignment(assignment)
		if err != nil {
			return nil, err
		}
		vars.Set(data, key, value)
	}

	scope := syntax.NewScope(data)

	for _, arg := range markdownFiles {
		name, path, ok := strings.Cut(arg, "=")
		if !ok || name == "" || path == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "invalid markdown block %q, expected name=file", arg)
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read markdown file %s", path).
				WithDetail("path", path)
		}
		node, err := markdown.Convert(src)
		if err != nil {
			return nil, err
		}
		scope.Set(name, node).SetEscape(name, node.Render)
	}

	return scope, nil
}

// Compile reads and compiles the document at path with the given syntax
// (auto, macro or xml). It returns the nodes and the syntax used.
func Compile(path, syntaxName string, scope *syntax.Scope) ([]markup.Node, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path).
			WithDetail("path", path)
	}
	src := string(data)

	resolved := DetectSyntax(path, src, syntaxName)
	var nodes []markup.Node
	switch resolved {
	case config.SyntaxXML:
		nodes, err = xmlsource.Parse(src, scope)
	case config.SyntaxMacro:
		nodes, err = syntax.Compile(path, src, scope)
	default:
		return nil, "", errors.Newf(errors.ErrInvalidInput, "unknown syntax %q", resolved).
			WithDetail("allowed", []string{config.SyntaxAuto, config.SyntaxMacro, config.SyntaxXML})
	}
	if err != nil {
		return nil, resolved, err
	}
	return nodes, resolved, nil
}
