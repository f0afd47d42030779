package openapi

import (
	"strings"

	"github.com/tidwall/gjson"
)

// maxRefDepth bounds $ref chains so a self-referencing document cannot loop.
const maxRefDepth = 8

var operationMethods = map[string]bool{
	"get":     true,
	"put":     true,
	"post":    true,
	"delete":  true,
	"options": true,
	"head":    true,
	"patch":   true,
	"trace":   true,
}

// Parse builds a Description from a raw OpenAPI or Swagger JSON document.
//
// Parsing is permissive: missing or mistyped summaries and descriptions
// become empty strings, and a parameter without a name is skipped. Every
// skipped parameter is reported in the returned warnings. The only hard
// failures are a document that is not JSON (*ParseError) and a document with
// no paths object (ErrMissingPaths).
func Parse(data []byte) (*Description, []error, error) {
	if !gjson.ValidBytes(data) {
		return nil, nil, &ParseError{Reason: "document is not valid JSON"}
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, nil, &ParseError{Reason: "document is not a JSON object"}
	}

	paths := root.Get("paths")
	if !paths.IsObject() {
		return nil, nil, ErrMissingPaths
	}

	p := &parser{
		root:  root,
		desc:  &Description{},
		index: make(map[string]*PathItem),
	}
	paths.ForEach(func(key, value gjson.Result) bool {
		p.addPath(key.String(), value)
		return true
	})

	// Drop paths that declared nothing callable.
	kept := p.desc.Paths[:0]
	for _, item := range p.desc.Paths {
		if len(item.Operations) > 0 {
			kept = append(kept, item)
		}
	}
	p.desc.Paths = kept

	return p.desc, p.warnings, nil
}

type parser struct {
	root     gjson.Result
	desc     *Description
	index    map[string]*PathItem
	warnings []error
}

func (p *parser) addPath(path string, value gjson.Result) {
	if !value.IsObject() {
		return
	}

	// A repeated path key replaces the earlier one in place.
	item, ok := p.index[path]
	if ok {
		item.Operations = nil
	} else {
		item = &PathItem{Path: path}
		p.index[path] = item
		p.desc.Paths = append(p.desc.Paths, item)
	}

	shared := value.Get("parameters")

	value.ForEach(func(key, opValue gjson.Result) bool {
		name := strings.ToLower(key.String())
		if !operationMethods[name] || !opValue.IsObject() {
			return true
		}
		method := strings.ToUpper(name)

		op := &Operation{
			Method:      method,
			Summary:     stringField(opValue, "summary"),
			Description: stringField(opValue, "description"),
		}
		op.Parameters = append(op.Parameters, p.parameters(path, method, shared)...)
		op.Parameters = append(op.Parameters, p.parameters(path, method, opValue.Get("parameters"))...)

		for i, existing := range item.Operations {
			if existing.Method == method {
				item.Operations[i] = op
				return true
			}
		}
		item.Operations = append(item.Operations, op)
		return true
	})
}

func (p *parser) parameters(path, method string, list gjson.Result) []ParameterSpec {
	if !list.IsArray() {
		return nil
	}

	var specs []ParameterSpec
	for i, raw := range list.Array() {
		param := p.resolve(raw)
		name := param.Get("name")
		if name.Type != gjson.String || name.Str == "" {
			p.warnings = append(p.warnings, &MalformedParameterError{Path: path, Method: method, Index: i})
			continue
		}

		spec := ParameterSpec{
			Name:    name.Str,
			In:      stringField(param, "in"),
			Example: textValue(param.Get("example")),
		}

		schema := param.Get("schema")
		if schema.Exists() {
			schema = p.resolve(schema)
		} else {
			// Swagger 2.0 keeps type and default on the parameter itself.
			schema = param
		}
		spec.SchemaType = schemaType(schema.Get("type"))
		spec.SchemaDefault = textValue(schema.Get("default"))

		specs = append(specs, spec)
	}
	return specs
}

// resolve follows local "$ref" pointers ("#/components/parameters/limit")
// within the same document. Unresolvable references return the value as is.
func (p *parser) resolve(value gjson.Result) gjson.Result {
	for depth := 0; depth < maxRefDepth; depth++ {
		ref := value.Get(gjson.Escape("$ref"))
		if ref.Type != gjson.String || !strings.HasPrefix(ref.Str, "#/") {
			return value
		}
		target := p.root.Get(pointerToPath(ref.Str))
		if !target.Exists() {
			return value
		}
		value = target
	}
	return value
}

// pointerToPath converts a local JSON pointer into a gjson path.
func pointerToPath(pointer string) string {
	parts := strings.Split(strings.TrimPrefix(pointer, "#/"), "/")
	for i, part := range parts {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		parts[i] = gjson.Escape(part)
	}
	return strings.Join(parts, ".")
}

func stringField(value gjson.Result, key string) string {
	field := value.Get(key)
	if field.Type != gjson.String {
		return ""
	}
	return field.Str
}

// textValue renders a JSON value as text. Missing and null values are absent;
// strings are taken verbatim, other scalars keep their JSON spelling, and
// objects or arrays become compact JSON.
func textValue(value gjson.Result) *string {
	var s string
	switch value.Type {
	case gjson.Null:
		return nil
	case gjson.String:
		s = value.Str
	case gjson.JSON:
		s = value.Get("@ugly").Raw
	default:
		s = value.Raw
	}
	return &s
}

// schemaType reads "type" as either a string or, for OpenAPI 3.1, the first
// string of an array of types.
func schemaType(value gjson.Result) *string {
	switch {
	case value.Type == gjson.String:
		s := value.Str
		return &s
	case value.IsArray():
		for _, t := range value.Array() {
			if t.Type == gjson.String && t.Str != "null" {
				s := t.Str
				return &s
			}
		}
	}
	return nil
}
