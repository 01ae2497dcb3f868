package trello

import (
	"context"
	"fmt"
)

// Board represents one Trello board.
type Board struct {
	Record
}

var boardSchema *Schema

func init() {
	boardSchema = registerSchema(&Schema{
		Type:     "board",
		Resource: "boards",
		Fields: []string{
			"id", "name", "desc", "descData", "closed", "idOrganization",
			"pinned", "starred", "subscribed", "url", "shortUrl",
			"dateLastActivity", "dateLastView", "prefs", "labelNames",
		},
		Associations: map[string]*AssociationDescriptor{
			"cards": {
				Name: "cards", Kind: Many,
				Path:     childPath("boards", "cards"),
				MakeMany: makeCards,
			},
			"lists": {
				Name: "lists", Kind: Many,
				Path:     childPath("boards", "lists"),
				MakeMany: makeLists,
			},
			"members": {
				Name: "members", Kind: Many,
				Path:     childPath("boards", "members"),
				MakeMany: makeMembers,
			},
			"labels": {
				Name: "labels", Kind: Many,
				Path:     childPath("boards", "labels"),
				MakeMany: makeLabels,
			},
			"checklists": {
				Name: "checklists", Kind: Many,
				Path:     childPath("boards", "checklists"),
				MakeMany: makeChecklists,
			},
			"actions": {
				Name: "actions", Kind: Many,
				Path:     childPath("boards", "actions"),
				MakeMany: makeActions,
			},
			"organization": {
				Name: "organization", Kind: One, Optional: true,
				Path:    refPath("idOrganization", "organizations"),
				MakeOne: makeOrganization,
			},
		},
	})
}

func newBoard(c *Client, attrs map[string]interface{}) *Board {
	b := &Board{}
	b.init(c, boardSchema)
	b.Load(attrs)
	return b
}

func makeBoard(c *Client, attrs map[string]interface{}) interface{} {
	return newBoard(c, attrs)
}

func makeBoards(c *Client, items []map[string]interface{}) interface{} {
	boards := make([]*Board, 0, len(items))
	for _, attrs := range items {
		boards = append(boards, newBoard(c, attrs))
	}
	return boards
}

// NewBoard returns an unsaved board bound to the client. Calling Save issues
// the create and adopts the server-assigned id.
func (c *Client) NewBoard() *Board {
	b := &Board{}
	b.init(c, boardSchema)
	return b
}

// GetBoard loads a board by id.
func (c *Client) GetBoard(ctx context.Context, id string, args Arguments) (*Board, error) {
	attrs, err := c.getObject(ctx, "boards/"+id, args)
	if err != nil {
		return nil, fmt.Errorf("failed to get board: %w", err)
	}
	return newBoard(c, attrs), nil
}

func (b *Board) Name() string        { return b.String("name") }
func (b *Board) Description() string { return b.String("desc") }
func (b *Board) Closed() bool        { return b.Bool("closed") }
func (b *Board) URL() string         { return b.String("url") }
func (b *Board) ShortURL() string    { return b.String("shortUrl") }

func (b *Board) SetName(name string)        { b.put("name", name) }
func (b *Board) SetDescription(desc string) { b.put("desc", desc) }
func (b *Board) SetClosed(closed bool)      { b.put("closed", closed) }

// Cards returns the board's cards, fetching them on first access and caching
// the result on this board instance.
func (b *Board) Cards(ctx context.Context) ([]*Card, error) {
	v, err := b.many(ctx, "cards")
	if err != nil {
		return nil, err
	}
	return v.([]*Card), nil
}

// FilteredCards issues a fresh fetch with the given arguments (e.g.
// filter=closed). It never touches the cache behind Cards.
func (b *Board) FilteredCards(ctx context.Context, args Arguments) ([]*Card, error) {
	v, err := b.manyFiltered(ctx, "cards", args)
	if err != nil {
		return nil, err
	}
	return v.([]*Card), nil
}

// Lists returns the board's lists in server order.
func (b *Board) Lists(ctx context.Context) ([]*List, error) {
	v, err := b.many(ctx, "lists")
	if err != nil {
		return nil, err
	}
	return v.([]*List), nil
}

// Members returns the members of the board.
func (b *Board) Members(ctx context.Context) ([]*Member, error) {
	v, err := b.many(ctx, "members")
	if err != nil {
		return nil, err
	}
	return v.([]*Member), nil
}

// Labels returns the labels defined on the board.
func (b *Board) Labels(ctx context.Context) ([]*Label, error) {
	v, err := b.many(ctx, "labels")
	if err != nil {
		return nil, err
	}
	return v.([]*Label), nil
}

// Checklists returns every checklist on the board.
func (b *Board) Checklists(ctx context.Context) ([]*Checklist, error) {
	v, err := b.many(ctx, "checklists")
	if err != nil {
		return nil, err
	}
	return v.([]*Checklist), nil
}

// Actions returns the board's activity feed.
func (b *Board) Actions(ctx context.Context) ([]*Action, error) {
	v, err := b.many(ctx, "actions")
	if err != nil {
		return nil, err
	}
	return v.([]*Action), nil
}

// FilteredActions issues a fresh, uncached fetch of the board's actions,
// e.g. Arguments{"filter": "commentCard"}.
func (b *Board) FilteredActions(ctx context.Context, args Arguments) ([]*Action, error) {
	v, err := b.manyFiltered(ctx, "actions", args)
	if err != nil {
		return nil, err
	}
	return v.([]*Action), nil
}

// Organization returns the organization owning the board, or nil when the
// board is not in one.
func (b *Board) Organization(ctx context.Context) (*Organization, error) {
	v, err := b.one(ctx, "organization")
	if err != nil || v == nil {
		return nil, err
	}
	return v.(*Organization), nil
}
