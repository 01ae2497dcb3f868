package trello

import (
	"context"
	"fmt"
)

// Token represents a member token together with the permissions it grants.
type Token struct {
	Record
}

var tokenSchema *Schema

func init() {
	tokenSchema = registerSchema(&Schema{
		Type:     "token",
		Resource: "tokens",
		Fields: []string{
			"id", "identifier", "idMember", "permissions", "dateCreated",
			"dateExpires",
		},
		Associations: map[string]*AssociationDescriptor{
			"member": {
				Name: "member", Kind: One,
				Path:    refPath("idMember", "members"),
				MakeOne: makeMember,
			},
			"webhooks": {
				Name: "webhooks", Kind: Many,
				Path:     childPath("tokens", "webhooks"),
				MakeMany: makeWebhooks,
			},
		},
	})
}

func newToken(c *Client, attrs map[string]interface{}) *Token {
	t := &Token{}
	t.init(c, tokenSchema)
	t.Load(attrs)
	return t
}

// GetToken loads a token by its value or id.
func (c *Client) GetToken(ctx context.Context, id string, args Arguments) (*Token, error) {
	attrs, err := c.getObject(ctx, "tokens/"+id, args)
	if err != nil {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}
	return newToken(c, attrs), nil
}

func (t *Token) Identifier() string  { return t.String("identifier") }
func (t *Token) MemberID() string    { return t.String("idMember") }
func (t *Token) DateExpires() string { return t.String("dateExpires") }

// Member returns the member the token belongs to.
func (t *Token) Member(ctx context.Context) (*Member, error) {
	v, err := t.one(ctx, "member")
	if err != nil {
		return nil, err
	}
	return v.(*Member), nil
}

// Webhooks returns the webhooks registered under the token.
func (t *Token) Webhooks(ctx context.Context) ([]*Webhook, error) {
	v, err := t.many(ctx, "webhooks")
	if err != nil {
		return nil, err
	}
	return v.([]*Webhook), nil
}
