package trello

import (
	"context"
	"fmt"
)

// Member represents one Trello member (user).
type Member struct {
	Record
}

var memberSchema *Schema

func init() {
	memberSchema = registerSchema(&Schema{
		Type:     "member",
		Resource: "members",
		Fields: []string{
			"id", "username", "fullName", "initials", "bio", "url",
			"avatarHash", "avatarUrl", "email", "confirmed", "memberType",
			"idBoards", "idOrganizations",
		},
		Associations: map[string]*AssociationDescriptor{
			"boards": {
				Name: "boards", Kind: Many,
				Path:     childPath("members", "boards"),
				MakeMany: makeBoards,
			},
			"cards": {
				Name: "cards", Kind: Many,
				Path:     childPath("members", "cards"),
				MakeMany: makeCards,
			},
			"organizations": {
				Name: "organizations", Kind: Many,
				Path:     childPath("members", "organizations"),
				MakeMany: makeOrganizations,
			},
			"notifications": {
				Name: "notifications", Kind: Many,
				Path:     childPath("members", "notifications"),
				MakeMany: makeNotifications,
			},
			"actions": {
				Name: "actions", Kind: Many,
				Path:     childPath("members", "actions"),
				MakeMany: makeActions,
			},
		},
	})
}

func newMember(c *Client, attrs map[string]interface{}) *Member {
	m := &Member{}
	m.init(c, memberSchema)
	m.Load(attrs)
	return m
}

func makeMember(c *Client, attrs map[string]interface{}) interface{} {
	return newMember(c, attrs)
}

func makeMembers(c *Client, items []map[string]interface{}) interface{} {
	members := make([]*Member, 0, len(items))
	for _, attrs := range items {
		members = append(members, newMember(c, attrs))
	}
	return members
}

// GetMember loads a member by id or username. "me" resolves to the member
// owning the configured token.
func (c *Client) GetMember(ctx context.Context, id string, args Arguments) (*Member, error) {
	attrs, err := c.getObject(ctx, "members/"+id, args)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return newMember(c, attrs), nil
}

func (m *Member) Username() string { return m.String("username") }
func (m *Member) FullName() string { return m.String("fullName") }
func (m *Member) Initials() string { return m.String("initials") }
func (m *Member) Bio() string      { return m.String("bio") }
func (m *Member) URL() string      { return m.String("url") }

func (m *Member) SetFullName(name string) { m.put("fullName", name) }
func (m *Member) SetInitials(s string)    { m.put("initials", s) }
func (m *Member) SetBio(bio string)       { m.put("bio", bio) }

// Boards returns the boards the member belongs to.
func (m *Member) Boards(ctx context.Context) ([]*Board, error) {
	v, err := m.many(ctx, "boards")
	if err != nil {
		return nil, err
	}
	return v.([]*Board), nil
}

// FilteredBoards issues a fresh fetch with the given arguments, e.g.
// Arguments{"filter": "open"}, bypassing the cache behind Boards.
func (m *Member) FilteredBoards(ctx context.Context, args Arguments) ([]*Board, error) {
	v, err := m.manyFiltered(ctx, "boards", args)
	if err != nil {
		return nil, err
	}
	return v.([]*Board), nil
}

// Cards returns the cards assigned to the member.
func (m *Member) Cards(ctx context.Context) ([]*Card, error) {
	v, err := m.many(ctx, "cards")
	if err != nil {
		return nil, err
	}
	return v.([]*Card), nil
}

// Organizations returns the member's organizations.
func (m *Member) Organizations(ctx context.Context) ([]*Organization, error) {
	v, err := m.many(ctx, "organizations")
	if err != nil {
		return nil, err
	}
	return v.([]*Organization), nil
}

// Notifications returns the member's notifications.
func (m *Member) Notifications(ctx context.Context) ([]*Notification, error) {
	v, err := m.many(ctx, "notifications")
	if err != nil {
		return nil, err
	}
	return v.([]*Notification), nil
}

// Actions returns the member's activity feed.
func (m *Member) Actions(ctx context.Context) ([]*Action, error) {
	v, err := m.many(ctx, "actions")
	if err != nil {
		return nil, err
	}
	return v.([]*Action), nil
}
