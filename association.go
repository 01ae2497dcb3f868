package trello

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Cardinality says whether an association resolves to one record or many.
type Cardinality int

const (
	// One resolves to a single record.
	One Cardinality = iota
	// Many resolves to an ordered collection.
	Many
)

// AssociationDescriptor declares one named relationship on an entity type:
// the cardinality, the API path used to fetch it, fixed query arguments and
// the mapping from JSON to target records. Descriptors live on the type's
// Schema and are shared by all instances; the per-instance state is the
// cache slot.
type AssociationDescriptor struct {
	Name string
	Kind Cardinality

	// Optional lets a One association resolve an empty response to nil
	// instead of ErrNotFound.
	Optional bool

	// Path builds the fetch path from the owning record. Returning "" means
	// the relationship is absent locally (e.g. an empty reference field).
	Path func(owner *Record) string

	// Args are fixed query arguments sent on every fetch.
	Args Arguments

	// MakeOne maps a JSON object to the target record (Kind == One).
	MakeOne func(c *Client, attrs map[string]interface{}) interface{}

	// MakeMany maps a JSON array to the typed target slice (Kind == Many).
	MakeMany func(c *Client, items []map[string]interface{}) interface{}
}

// slot is the per-instance cache holder for one association. Its state moves
// unresolved -> resolving -> resolved, or -> failed; a failed slot returns
// the same error on every access until Reload resets it.
type slot struct {
	state slotState
	value interface{}
	err   error
}

type slotState int

const (
	slotUnresolved slotState = iota
	slotResolving
	slotResolved
	slotFailed
)

// one resolves a single-cardinality association, caching the mapped record on
// first access. Resolution is serialized per record by the slot mutex.
func (r *Record) one(ctx context.Context, name string) (interface{}, error) {
	d, err := r.descriptor(name, One)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.slot(name)
	switch s.state {
	case slotResolved:
		return s.value, nil
	case slotFailed:
		return nil, s.err
	}

	s.state = slotResolving
	value, err := r.fetchOne(ctx, d, nil)
	if err != nil {
		s.state = slotFailed
		s.err = err
		return nil, err
	}
	s.state = slotResolved
	s.value = value
	return value, nil
}

// many resolves a collection association, caching the mapped slice on first
// access. Element order follows the server response.
func (r *Record) many(ctx context.Context, name string) (interface{}, error) {
	d, err := r.descriptor(name, Many)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.slot(name)
	switch s.state {
	case slotResolved:
		return s.value, nil
	case slotFailed:
		return nil, s.err
	}

	s.state = slotResolving
	value, err := r.fetchMany(ctx, d, nil)
	if err != nil {
		s.state = slotFailed
		s.err = err
		return nil, err
	}
	s.state = slotResolved
	s.value = value
	return value, nil
}

// manyFiltered issues a fresh fetch with caller-supplied arguments. It never
// reads or writes the unfiltered cache slot.
func (r *Record) manyFiltered(ctx context.Context, name string, args Arguments) (interface{}, error) {
	d, err := r.descriptor(name, Many)
	if err != nil {
		return nil, err
	}
	return r.fetchMany(ctx, d, args)
}

// Reload forces an association's cache slot back to unresolved, so the next
// access issues a fresh API call. Unknown names are a no-op.
func (r *Record) Reload(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, name)
}

func (r *Record) slot(name string) *slot {
	s, ok := r.slots[name]
	if !ok {
		s = &slot{}
		r.slots[name] = s
	}
	return s
}

func (r *Record) descriptor(name string, kind Cardinality) (*AssociationDescriptor, error) {
	d, ok := r.schema.association(name)
	if !ok {
		return nil, fmt.Errorf("no association %q declared on %s", name, r.schema.Type)
	}
	if d.Kind != kind {
		return nil, fmt.Errorf("association %q on %s has the wrong cardinality", name, r.schema.Type)
	}
	if r.ID() == "" {
		return nil, fmt.Errorf("cannot resolve %q on unsaved %s: %w", name, r.schema.Type, ErrNotSaved)
	}
	return d, nil
}

func (r *Record) fetchOne(ctx context.Context, d *AssociationDescriptor, args Arguments) (interface{}, error) {
	path := d.Path(r)
	if path == "" {
		if d.Optional {
			return nil, nil
		}
		return nil, fmt.Errorf("%s of %s %s: %w", d.Name, r.schema.Type, r.ID(), ErrNotFound)
	}
	attrs, err := r.client.getObject(ctx, path, d.Args.merge(args))
	if err != nil {
		var apiErr *APIError
		if d.Optional && errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve %s of %s %s: %w", d.Name, r.schema.Type, r.ID(), err)
	}
	if attrs == nil {
		if d.Optional {
			return nil, nil
		}
		return nil, fmt.Errorf("%s of %s %s: %w", d.Name, r.schema.Type, r.ID(), ErrNotFound)
	}
	return d.MakeOne(r.client, attrs), nil
}

func (r *Record) fetchMany(ctx context.Context, d *AssociationDescriptor, args Arguments) (interface{}, error) {
	items, err := r.client.getArray(ctx, d.Path(r), d.Args.merge(args))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s of %s %s: %w", d.Name, r.schema.Type, r.ID(), err)
	}
	return d.MakeMany(r.client, items), nil
}

// childPath builds the usual nested resource path, e.g. boards/<id>/cards.
func childPath(resource, child string) func(*Record) string {
	return func(r *Record) string {
		return resource + "/" + r.ID() + "/" + child
	}
}

// refPath builds a path from an id stored in one of the owner's attributes,
// e.g. a card's idList pointing at lists/<idList>.
func refPath(field, resource string) func(*Record) string {
	return func(r *Record) string {
		ref := r.String(field)
		if ref == "" {
			return ""
		}
		return resource + "/" + ref
	}
}
