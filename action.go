package trello

import (
	"context"
	"fmt"
)

// Action represents one entry in an activity feed: a comment, a card move, a
// board update and so on. The Data payload is type-specific and passed
// through as-is.
type Action struct {
	Record
}

var actionSchema *Schema

func init() {
	actionSchema = registerSchema(&Schema{
		Type:     "action",
		Resource: "actions",
		Fields:   []string{"id", "type", "date", "data", "idMemberCreator", "memberCreator"},
		Associations: map[string]*AssociationDescriptor{
			"board": {
				Name: "board", Kind: One, Optional: true,
				Path:    childPath("actions", "board"),
				MakeOne: makeBoard,
			},
			"card": {
				Name: "card", Kind: One, Optional: true,
				Path:    childPath("actions", "card"),
				MakeOne: makeCard,
			},
			"memberCreator": {
				Name: "memberCreator", Kind: One,
				Path:    refPath("idMemberCreator", "members"),
				MakeOne: makeMember,
			},
		},
	})
}

func newAction(c *Client, attrs map[string]interface{}) *Action {
	a := &Action{}
	a.init(c, actionSchema)
	a.Load(attrs)
	return a
}

func makeActions(c *Client, items []map[string]interface{}) interface{} {
	actions := make([]*Action, 0, len(items))
	for _, attrs := range items {
		actions = append(actions, newAction(c, attrs))
	}
	return actions
}

// GetAction loads an action by id.
func (c *Client) GetAction(ctx context.Context, id string, args Arguments) (*Action, error) {
	attrs, err := c.getObject(ctx, "actions/"+id, args)
	if err != nil {
		return nil, fmt.Errorf("failed to get action: %w", err)
	}
	return newAction(c, attrs), nil
}

func (a *Action) Type() string            { return a.String("type") }
func (a *Action) Date() string            { return a.String("date") }
func (a *Action) MemberCreatorID() string { return a.String("idMemberCreator") }

// Data returns the type-specific payload of the action.
func (a *Action) Data() map[string]interface{} {
	data, _ := a.Get("data").(map[string]interface{})
	return data
}

// Text returns the comment text for commentCard actions, "" otherwise.
func (a *Action) Text() string {
	text, _ := a.Data()["text"].(string)
	return text
}

// Board returns the board the action happened on, or nil when the action is
// not board-scoped.
func (a *Action) Board(ctx context.Context) (*Board, error) {
	v, err := a.one(ctx, "board")
	if err != nil || v == nil {
		return nil, err
	}
	return v.(*Board), nil
}

// Card returns the card the action happened on, or nil when the action is
// not card-scoped.
func (a *Action) Card(ctx context.Context) (*Card, error) {
	v, err := a.one(ctx, "card")
	if err != nil || v == nil {
		return nil, err
	}
	return v.(*Card), nil
}

// MemberCreator returns the member who performed the action.
func (a *Action) MemberCreator(ctx context.Context) (*Member, error) {
	v, err := a.one(ctx, "memberCreator")
	if err != nil {
		return nil, err
	}
	return v.(*Member), nil
}
