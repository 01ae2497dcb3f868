package trello

import "sort"

// Schema describes one entity type: its name, its REST resource segment, the
// legal attribute set and the association declarations shared by every
// instance of the type. Schemas are built once at package init and never
// mutated afterwards.
type Schema struct {
	// Type is the entity type name, e.g. "board".
	Type string
	// Resource is the API path segment, e.g. "boards".
	Resource string
	// Fields is the legal attribute set for this type.
	Fields []string
	// Associations maps association name to its declaration.
	Associations map[string]*AssociationDescriptor

	fields map[string]bool
}

var schemas = map[string]*Schema{}

// registerSchema indexes the field set and adds the schema to the type
// registry. Called from package-level vars in the domain object files.
func registerSchema(s *Schema) *Schema {
	s.fields = make(map[string]bool, len(s.Fields))
	for _, field := range s.Fields {
		s.fields[field] = true
	}
	sort.Strings(s.Fields)
	schemas[s.Type] = s
	return s
}

// hasField reports whether the attribute name belongs to the schema.
func (s *Schema) hasField(name string) bool {
	return s.fields[name]
}

// association looks up a declared association by name.
func (s *Schema) association(name string) (*AssociationDescriptor, bool) {
	d, ok := s.Associations[name]
	return d, ok
}
