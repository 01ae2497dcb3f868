package trello

import (
	"context"
	"fmt"
)

// Organization represents a Trello organization (workspace).
type Organization struct {
	Record
}

var organizationSchema *Schema

func init() {
	organizationSchema = registerSchema(&Schema{
		Type:     "organization",
		Resource: "organizations",
		Fields: []string{
			"id", "name", "displayName", "desc", "url", "website", "logoHash",
		},
		Associations: map[string]*AssociationDescriptor{
			"boards": {
				Name: "boards", Kind: Many,
				Path:     childPath("organizations", "boards"),
				MakeMany: makeBoards,
			},
			"members": {
				Name: "members", Kind: Many,
				Path:     childPath("organizations", "members"),
				MakeMany: makeMembers,
			},
			"actions": {
				Name: "actions", Kind: Many,
				Path:     childPath("organizations", "actions"),
				MakeMany: makeActions,
			},
		},
	})
}

func newOrganization(c *Client, attrs map[string]interface{}) *Organization {
	o := &Organization{}
	o.init(c, organizationSchema)
	o.Load(attrs)
	return o
}

func makeOrganization(c *Client, attrs map[string]interface{}) interface{} {
	return newOrganization(c, attrs)
}

func makeOrganizations(c *Client, items []map[string]interface{}) interface{} {
	orgs := make([]*Organization, 0, len(items))
	for _, attrs := range items {
		orgs = append(orgs, newOrganization(c, attrs))
	}
	return orgs
}

// GetOrganization loads an organization by id or name.
func (c *Client) GetOrganization(ctx context.Context, id string, args Arguments) (*Organization, error) {
	attrs, err := c.getObject(ctx, "organizations/"+id, args)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return newOrganization(c, attrs), nil
}

func (o *Organization) Name() string        { return o.String("name") }
func (o *Organization) DisplayName() string { return o.String("displayName") }
func (o *Organization) Description() string { return o.String("desc") }
func (o *Organization) URL() string         { return o.String("url") }

func (o *Organization) SetDisplayName(name string) { o.put("displayName", name) }
func (o *Organization) SetDescription(desc string) { o.put("desc", desc) }
func (o *Organization) SetWebsite(url string)      { o.put("website", url) }

// Boards returns the organization's boards.
func (o *Organization) Boards(ctx context.Context) ([]*Board, error) {
	v, err := o.many(ctx, "boards")
	if err != nil {
		return nil, err
	}
	return v.([]*Board), nil
}

// Members returns the organization's members.
func (o *Organization) Members(ctx context.Context) ([]*Member, error) {
	v, err := o.many(ctx, "members")
	if err != nil {
		return nil, err
	}
	return v.([]*Member), nil
}

// Actions returns the organization's activity feed.
func (o *Organization) Actions(ctx context.Context) ([]*Action, error) {
	v, err := o.many(ctx, "actions")
	if err != nil {
		return nil, err
	}
	return v.([]*Action), nil
}
