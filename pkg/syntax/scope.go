package syntax

import (
	"io"
	"reflect"
	"strings"

	"github.com/rasviitanen/svgmacro/pkg/markup"
)

// Scope resolves the names used by a document: variables for expressions
// and escapes for @name; directives. Loops run their bodies in a child
// scope that shadows the loop variable.
type Scope struct {
	parent  *Scope
	vars    map[string]any
	escapes map[string]markup.EscapeFunc
}

// NewScope returns a root scope holding vars. vars may be nil.
func NewScope(vars map[string]any) *Scope {
	s := &Scope{vars: map[string]any{}, escapes: map[string]markup.EscapeFunc{}}
	for k, v := range vars {
		s.vars[k] = v
	}
	return s
}

// Child returns an empty scope that falls back to s.
func (s *Scope) Child() *Scope {
	return &Scope{parent: s, vars: map[string]any{}, escapes: map[string]markup.EscapeFunc{}}
}

// Set binds a variable in s and returns s.
func (s *Scope) Set(name string, v any) *Scope {
	s.vars[name] = v
	return s
}

// SetEscape binds a named escape in s and returns s.
func (s *Scope) SetEscape(name string, fn markup.EscapeFunc) *Scope {
	s.escapes[name] = fn
	return s
}

// Var returns the variable bound to name in s or its ancestors.
func (s *Scope) Var(name string) (any, bool) {
	for c := s; c != nil; c = c.parent {
		if v, ok := c.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Escape returns the escape bound to name. A variable holding an escape
// function is accepted too.
func (s *Scope) Escape(name string) (markup.EscapeFunc, bool) {
	for c := s; c != nil; c = c.parent {
		if fn, ok := c.escapes[name]; ok {
			return fn, true
		}
		if v, ok := c.vars[name]; ok {
			switch fn := v.(type) {
			case markup.EscapeFunc:
				return fn, true
			case func(io.Writer) error:
				return fn, true
			}
			return nil, false
		}
	}
	return nil, false
}

// Lookup resolves a dotted path. The first element is a variable; each
// following element selects a map entry or a struct field.
func (s *Scope) Lookup(path []string) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}
	v, ok := s.Var(path[0])
	if !ok {
		return nil, false
	}
	for _, name := range path[1:] {
		if v, ok = member(v, name); !ok {
			return nil, false
		}
	}
	return v, true
}

// member selects name from a map with string keys or a struct. Struct
// fields match by name, ignoring the case of the first letter, or by a
// yaml, json, toml or koanf tag.
func member(v any, name string) (any, bool) {
	if m, ok := v.(map[string]any); ok {
		e, ok := m[name]
		return e, ok
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		e := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !e.IsValid() {
			return nil, false
		}
		return e.Interface(), true
	case reflect.Struct:
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			if matchField(f, name) {
				return rv.Field(i).Interface(), true
			}
		}
	}
	return nil, false
}

func matchField(f reflect.StructField, name string) bool {
	if f.Name == name || fieldTag(f) == name {
		return true
	}
	// width matches Width
	return name != "" && strings.EqualFold(f.Name[:1], name[:1]) && f.Name[1:] == name[1:]
}

func fieldTag(f reflect.StructField) string {
	for _, key := range []string{"yaml", "json", "toml", "koanf"} {
		if tag, ok := f.Tag.Lookup(key); ok {
			name, _, _ := strings.Cut(tag, ",")
			if name != "" && name != "-" {
				return name
			}
		}
	}
	return ""
}
