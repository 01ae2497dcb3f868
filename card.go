package trello

import (
	"context"
	"fmt"
)

// Card represents one Trello card.
type Card struct {
	Record
}

var cardSchema *Schema

func init() {
	cardSchema = registerSchema(&Schema{
		Type:     "card",
		Resource: "cards",
		Fields: []string{
			"id", "name", "desc", "closed", "idBoard", "idList", "idMembers",
			"idLabels", "idChecklists", "idAttachmentCover", "due", "dueComplete",
			"pos", "url", "shortUrl", "shortLink", "subscribed",
			"dateLastActivity", "badges", "labels",
		},
		Associations: map[string]*AssociationDescriptor{
			"board": {
				Name: "board", Kind: One,
				Path:    refPath("idBoard", "boards"),
				MakeOne: makeBoard,
			},
			"list": {
				Name: "list", Kind: One,
				Path:    refPath("idList", "lists"),
				MakeOne: makeList,
			},
			"members": {
				Name: "members", Kind: Many,
				Path:     childPath("cards", "members"),
				MakeMany: makeMembers,
			},
			"labels": {
				Name: "labels", Kind: Many,
				Path:     childPath("cards", "labels"),
				MakeMany: makeLabels,
			},
			"checklists": {
				Name: "checklists", Kind: Many,
				Path:     childPath("cards", "checklists"),
				MakeMany: makeChecklists,
			},
			"attachments": {
				Name: "attachments", Kind: Many,
				Path:     childPath("cards", "attachments"),
				MakeMany: makeAttachments,
			},
			"actions": {
				Name: "actions", Kind: Many,
				Path:     childPath("cards", "actions"),
				MakeMany: makeActions,
			},
		},
	})
}

func newCard(c *Client, attrs map[string]interface{}) *Card {
	card := &Card{}
	card.init(c, cardSchema)
	card.Load(attrs)
	return card
}

func makeCard(c *Client, attrs map[string]interface{}) interface{} {
	return newCard(c, attrs)
}

func makeCards(c *Client, items []map[string]interface{}) interface{} {
	cards := make([]*Card, 0, len(items))
	for _, attrs := range items {
		cards = append(cards, newCard(c, attrs))
	}
	return cards
}

// NewCard returns an unsaved card bound to the client. Set at least a name
// and idList before calling Save.
func (c *Client) NewCard() *Card {
	card := &Card{}
	card.init(c, cardSchema)
	return card
}

// GetCard loads a card by id.
func (c *Client) GetCard(ctx context.Context, id string, args Arguments) (*Card, error) {
	attrs, err := c.getObject(ctx, "cards/"+id, args)
	if err != nil {
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return newCard(c, attrs), nil
}

func (c *Card) Name() string        { return c.String("name") }
func (c *Card) Description() string { return c.String("desc") }
func (c *Card) Closed() bool        { return c.Bool("closed") }
func (c *Card) BoardID() string     { return c.String("idBoard") }
func (c *Card) ListID() string      { return c.String("idList") }
func (c *Card) MemberIDs() []string { return c.Strings("idMembers") }
func (c *Card) Due() string         { return c.String("due") }
func (c *Card) Position() float64   { return c.Float("pos") }
func (c *Card) ShortURL() string    { return c.String("shortUrl") }

func (c *Card) SetName(name string)        { c.put("name", name) }
func (c *Card) SetDescription(desc string) { c.put("desc", desc) }
func (c *Card) SetClosed(closed bool)      { c.put("closed", closed) }
func (c *Card) SetListID(id string)        { c.put("idList", id) }
func (c *Card) SetDue(due string)          { c.put("due", due) }
func (c *Card) SetPosition(pos float64)    { c.put("pos", pos) }

// Board returns the board the card lives on.
func (c *Card) Board(ctx context.Context) (*Board, error) {
	v, err := c.one(ctx, "board")
	if err != nil {
		return nil, err
	}
	return v.(*Board), nil
}

// List returns the list the card currently sits in.
func (c *Card) List(ctx context.Context) (*List, error) {
	v, err := c.one(ctx, "list")
	if err != nil {
		return nil, err
	}
	return v.(*List), nil
}

// Members returns the members assigned to the card.
func (c *Card) Members(ctx context.Context) ([]*Member, error) {
	v, err := c.many(ctx, "members")
	if err != nil {
		return nil, err
	}
	return v.([]*Member), nil
}

// Labels returns the labels attached to the card.
func (c *Card) Labels(ctx context.Context) ([]*Label, error) {
	v, err := c.many(ctx, "labels")
	if err != nil {
		return nil, err
	}
	return v.([]*Label), nil
}

// Checklists returns the card's checklists.
func (c *Card) Checklists(ctx context.Context) ([]*Checklist, error) {
	v, err := c.many(ctx, "checklists")
	if err != nil {
		return nil, err
	}
	return v.([]*Checklist), nil
}

// Attachments returns the card's attachments.
func (c *Card) Attachments(ctx context.Context) ([]*Attachment, error) {
	v, err := c.many(ctx, "attachments")
	if err != nil {
		return nil, err
	}
	return v.([]*Attachment), nil
}

// Actions returns the card's activity feed.
func (c *Card) Actions(ctx context.Context) ([]*Action, error) {
	v, err := c.many(ctx, "actions")
	if err != nil {
		return nil, err
	}
	return v.([]*Action), nil
}

// FilteredActions issues a fresh, uncached fetch of the card's actions,
// e.g. Arguments{"filter": "commentCard"} for comments only.
func (c *Card) FilteredActions(ctx context.Context, args Arguments) ([]*Action, error) {
	v, err := c.manyFiltered(ctx, "actions", args)
	if err != nil {
		return nil, err
	}
	return v.([]*Action), nil
}

// AddComment posts a comment to the card and returns the resulting action.
func (c *Card) AddComment(ctx context.Context, text string) (*Action, error) {
	raw, err := c.client.Post(ctx, "cards/"+c.ID()+"/actions/comments", Arguments{"text": text})
	if err != nil {
		return nil, fmt.Errorf("failed to post comment: %w", err)
	}
	attrs, err := decodeObject(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to post comment: %w", err)
	}
	return newAction(c.client, attrs), nil
}

// AddAttachment attaches a URL to the card and invalidates the cached
// attachments collection.
func (c *Card) AddAttachment(ctx context.Context, name, attachmentURL string) (*Attachment, error) {
	if c.ID() == "" {
		return nil, fmt.Errorf("cannot attach to card: %w", ErrNotSaved)
	}
	raw, err := c.client.Post(ctx, "cards/"+c.ID()+"/attachments", Arguments{"name": name, "url": attachmentURL})
	if err != nil {
		return nil, fmt.Errorf("failed to add attachment: %w", err)
	}
	attrs, err := decodeObject(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to add attachment: %w", err)
	}
	c.Reload("attachments")
	return newAttachment(c.client, attrs), nil
}

// MoveToList moves the card into another list and updates the local
// attribute on success.
func (c *Card) MoveToList(ctx context.Context, listID string) error {
	if c.ID() == "" {
		return fmt.Errorf("cannot move card: %w", ErrNotSaved)
	}
	if _, err := c.client.Put(ctx, "cards/"+c.ID(), Arguments{"idList": listID}); err != nil {
		return fmt.Errorf("failed to move card %s: %w", c.ID(), err)
	}
	c.put("idList", listID)
	c.baseline["idList"] = listID
	c.Reload("list")
	return nil
}

// AddMemberID assigns a member to the card.
func (c *Card) AddMemberID(ctx context.Context, memberID string) error {
	if c.ID() == "" {
		return fmt.Errorf("cannot assign card: %w", ErrNotSaved)
	}
	if _, err := c.client.Post(ctx, "cards/"+c.ID()+"/idMembers", Arguments{"value": memberID}); err != nil {
		return fmt.Errorf("failed to assign member %s: %w", memberID, err)
	}
	c.Reload("members")
	return nil
}

// RemoveMemberID unassigns a member from the card.
func (c *Card) RemoveMemberID(ctx context.Context, memberID string) error {
	if c.ID() == "" {
		return fmt.Errorf("cannot unassign card: %w", ErrNotSaved)
	}
	if _, err := c.client.Delete(ctx, "cards/"+c.ID()+"/idMembers/"+memberID, Defaults()); err != nil {
		return fmt.Errorf("failed to unassign member %s: %w", memberID, err)
	}
	c.Reload("members")
	return nil
}
