package openapi

import "strings"

// Count returns the total number of operations.
func (d *Description) Count() int {
	if d == nil {
		return 0
	}
	n := 0
	for _, item := range d.Paths {
		n += len(item.Operations)
	}
	return n
}

// Walk calls fn for every operation in document order, paths first then
// methods. Returning false from fn stops the walk.
func (d *Description) Walk(fn func(path string, op *Operation) bool) {
	if d == nil {
		return
	}
	for _, item := range d.Paths {
		for _, op := range item.Operations {
			if !fn(item.Path, op) {
				return
			}
		}
	}
}

// Lookup returns the operation for an exact path and a case-insensitive method.
func (d *Description) Lookup(path, method string) (*Operation, bool) {
	method = strings.ToUpper(method)
	var found *Operation
	d.Walk(func(p string, op *Operation) bool {
		if p == path && op.Method == method {
			found = op
			return false
		}
		return true
	})
	return found, found != nil
}
