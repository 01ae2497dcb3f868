package trello

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Record is the attribute-backed base every domain object embeds. It keeps
// the current attribute map next to the baseline captured at the last
// load/save, so partial updates can send exactly the changed fields.
//
// Attribute mutation is not synchronized; a record belongs to one goroutine.
// Association cache slots are guarded by a per-record mutex, so first
// resolution is initialize-once even under concurrent access.
type Record struct {
	schema *Schema
	client *Client

	attrs    map[string]interface{}
	baseline map[string]interface{}

	mu    sync.Mutex
	slots map[string]*slot
}

func (r *Record) init(client *Client, schema *Schema) {
	r.client = client
	r.schema = schema
	r.attrs = map[string]interface{}{}
	r.baseline = map[string]interface{}{}
	r.slots = map[string]*slot{}
}

// Client returns the client this record issues its API calls through.
func (r *Record) Client() *Client {
	return r.client
}

// TypeName returns the entity type name, e.g. "card".
func (r *Record) TypeName() string {
	return r.schema.Type
}

// Load replaces the attribute mapping wholesale with the given JSON object
// and resets the dirty baseline to the new state. Attributes outside the
// schema's legal field set are dropped.
func (r *Record) Load(attrs map[string]interface{}) {
	r.attrs = make(map[string]interface{}, len(attrs))
	r.baseline = make(map[string]interface{}, len(attrs))
	for name, value := range attrs {
		if !r.schema.hasField(name) {
			continue
		}
		r.attrs[name] = value
		r.baseline[name] = value
	}
}

// ID returns the record's identity, or "" before the first save.
func (r *Record) ID() string {
	return r.String("id")
}

// Get returns the current value of an attribute, or nil if it was never set.
func (r *Record) Get(name string) interface{} {
	return r.attrs[name]
}

// Set updates an attribute and marks it dirty. Setting a field outside the
// schema is an error; the record's legal attribute set is fixed per type.
func (r *Record) Set(name string, value interface{}) error {
	if name == "id" {
		return fmt.Errorf("cannot reassign id of a %s", r.schema.Type)
	}
	if !r.schema.hasField(name) {
		return fmt.Errorf("unknown attribute %q on %s", name, r.schema.Type)
	}
	r.attrs[name] = value
	return nil
}

// put is Set for accessors that are known to name a legal field.
func (r *Record) put(name string, value interface{}) {
	r.attrs[name] = value
}

// String reads an attribute as a string, with "" as the absent value.
func (r *Record) String(name string) string {
	if v, ok := r.attrs[name].(string); ok {
		return v
	}
	return ""
}

// Bool reads an attribute as a bool, with false as the absent value.
func (r *Record) Bool(name string) bool {
	if v, ok := r.attrs[name].(bool); ok {
		return v
	}
	return false
}

// Float reads an attribute as a float64 (the JSON number type).
func (r *Record) Float(name string) float64 {
	if v, ok := r.attrs[name].(float64); ok {
		return v
	}
	return 0
}

// Strings reads an attribute holding a JSON array of strings.
func (r *Record) Strings(name string) []string {
	switch v := r.attrs[name].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Dirty returns the sorted names of the fields changed since the last
// load/save.
func (r *Record) Dirty() []string {
	var names []string
	for name, value := range r.attrs {
		base, had := r.baseline[name]
		if !had || !reflect.DeepEqual(value, base) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// dirtyArgs renders the changed fields as query arguments for a partial
// update.
func (r *Record) dirtyArgs() Arguments {
	args := Arguments{}
	for _, name := range r.Dirty() {
		args[name] = argString(r.attrs[name])
	}
	return args
}

// allArgs renders every currently set attribute for a create call.
func (r *Record) allArgs() Arguments {
	args := Arguments{}
	for name, value := range r.attrs {
		if value == nil {
			continue
		}
		args[name] = argString(value)
	}
	return args
}

// Save creates the record when it has no id yet, sending the full current
// attribute set; otherwise it updates, sending only the dirty fields. Either
// way the server's response is loaded back in, which clears dirty state and
// adopts the server-assigned id on create.
func (r *Record) Save(ctx context.Context) error {
	if r.ID() == "" {
		return r.create(ctx)
	}
	return r.update(ctx)
}

func (r *Record) create(ctx context.Context) error {
	raw, err := r.client.Post(ctx, r.schema.Resource, r.allArgs())
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", r.schema.Type, err)
	}
	attrs, err := decodeObject(raw)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", r.schema.Type, err)
	}
	r.Load(attrs)
	return nil
}

func (r *Record) update(ctx context.Context) error {
	args := r.dirtyArgs()
	if len(args) == 0 {
		return nil
	}
	raw, err := r.client.Put(ctx, r.schema.Resource+"/"+r.ID(), args)
	if err != nil {
		return fmt.Errorf("failed to update %s %s: %w", r.schema.Type, r.ID(), err)
	}
	attrs, err := decodeObject(raw)
	if err != nil {
		return fmt.Errorf("failed to update %s %s: %w", r.schema.Type, r.ID(), err)
	}
	if attrs != nil {
		r.Load(attrs)
		return nil
	}
	// Server sent no body; the local state is now the baseline.
	for name, value := range r.attrs {
		r.baseline[name] = value
	}
	return nil
}

// Delete removes the record on the server. The in-memory record is left
// as-is; discarding the reference is the caller's job.
func (r *Record) Delete(ctx context.Context) error {
	if r.ID() == "" {
		return fmt.Errorf("cannot delete %s: %w", r.schema.Type, ErrNotSaved)
	}
	if _, err := r.client.Delete(ctx, r.schema.Resource+"/"+r.ID(), Defaults()); err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", r.schema.Type, r.ID(), err)
	}
	return nil
}

// Refresh re-fetches the record by id and loads the response.
func (r *Record) Refresh(ctx context.Context) error {
	if r.ID() == "" {
		return fmt.Errorf("cannot refresh %s: %w", r.schema.Type, ErrNotSaved)
	}
	attrs, err := r.client.getObject(ctx, r.schema.Resource+"/"+r.ID(), Defaults())
	if err != nil {
		return fmt.Errorf("failed to refresh %s %s: %w", r.schema.Type, r.ID(), err)
	}
	r.Load(attrs)
	return nil
}

// Equal reports whether two records refer to the same API resource: same
// type and same non-empty id. When either id is still empty the comparison
// falls back to pointer identity, so an unsaved record stays equal to itself
// across a create.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.schema.Type != other.schema.Type {
		return false
	}
	if r.ID() == "" || other.ID() == "" {
		return r == other
	}
	return r.ID() == other.ID()
}
