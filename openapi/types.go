package openapi

// Description is a parsed API description. Paths keep document order, which
// is the order endpoint matching breaks ties in.
type Description struct {
	Paths []*PathItem
}

// PathItem groups the operations declared under one path.
type PathItem struct {
	Path       string
	Operations []*Operation
}

// Operation is one HTTP method attached to a path.
type Operation struct {
	Method      string // upper-case
	Summary     string
	Description string
	Parameters  []ParameterSpec
}

// ParameterSpec describes a single declared parameter. Optional values are nil
// when the document does not carry them.
type ParameterSpec struct {
	Name          string
	In            string // query, path, header, cookie
	Example       *string
	SchemaType    *string
	SchemaDefault *string
}
