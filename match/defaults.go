package match

import "github.com/jakenesler/askapi/openapi"

// Fallback values used when a parameter has neither an example nor a default.
const (
	StringFallback  = "example"
	IntegerFallback = "0"
)

// Param is one resolved name=value pair.
type Param struct {
	Name  string
	Value string
}

// Params is an insertion-ordered parameter mapping. Setting an existing name
// replaces its value and keeps its original position.
type Params struct {
	list  []Param
	index map[string]int
}

// Set assigns value to name.
func (p *Params) Set(name, value string) {
	if p.index == nil {
		p.index = make(map[string]int)
	}
	if i, ok := p.index[name]; ok {
		p.list[i].Value = value
		return
	}
	p.index[name] = len(p.list)
	p.list = append(p.list, Param{Name: name, Value: value})
}

// Get returns the value for name.
func (p Params) Get(name string) (string, bool) {
	i, ok := p.index[name]
	if !ok {
		return "", false
	}
	return p.list[i].Value, true
}

// Len returns the number of distinct names.
func (p Params) Len() int { return len(p.list) }

// List returns the pairs in insertion order.
func (p Params) List() []Param {
	out := make([]Param, len(p.list))
	copy(out, p.list)
	return out
}

// Map returns the pairs as a plain map.
func (p Params) Map() map[string]string {
	m := make(map[string]string, len(p.list))
	for _, kv := range p.list {
		m[kv.Name] = kv.Value
	}
	return m
}

// DefaultsFor picks a value for every parameter: its example, else its schema
// default, else a fallback by schema type ("example" for strings, "0" for
// integers, "" otherwise). A later parameter with a repeated name wins.
func DefaultsFor(params []openapi.ParameterSpec) Params {
	var out Params
	for _, p := range params {
		out.Set(p.Name, defaultValue(p))
	}
	return out
}

func defaultValue(p openapi.ParameterSpec) string {
	if p.Example != nil {
		return *p.Example
	}
	if p.SchemaDefault != nil {
		return *p.SchemaDefault
	}
	if p.SchemaType == nil {
		return ""
	}
	switch *p.SchemaType {
	case "string":
		return StringFallback
	case "integer":
		return IntegerFallback
	default:
		return ""
	}
}

// ResolvedEndpoint is a candidate with every parameter given a value.
type ResolvedEndpoint struct {
	Path        string
	Method      string
	Description string
	Params      Params
}

// Resolve fills in parameter values for c.
func Resolve(c Candidate) ResolvedEndpoint {
	r := ResolvedEndpoint{
		Path:   c.Path,
		Method: c.Method,
	}
	if c.Operation != nil {
		r.Description = c.Operation.Description
		r.Params = DefaultsFor(c.Operation.Parameters)
	}
	return r
}
