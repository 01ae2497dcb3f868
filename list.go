package trello

import (
	"context"
	"fmt"
)

// List represents one column on a board.
type List struct {
	Record
}

var listSchema *Schema

func init() {
	listSchema = registerSchema(&Schema{
		Type:     "list",
		Resource: "lists",
		Fields:   []string{"id", "name", "closed", "idBoard", "pos", "subscribed"},
		Associations: map[string]*AssociationDescriptor{
			"board": {
				Name: "board", Kind: One,
				Path:    refPath("idBoard", "boards"),
				MakeOne: makeBoard,
			},
			"cards": {
				Name: "cards", Kind: Many,
				Path:     childPath("lists", "cards"),
				MakeMany: makeCards,
			},
		},
	})
}

func newList(c *Client, attrs map[string]interface{}) *List {
	l := &List{}
	l.init(c, listSchema)
	l.Load(attrs)
	return l
}

func makeList(c *Client, attrs map[string]interface{}) interface{} {
	return newList(c, attrs)
}

func makeLists(c *Client, items []map[string]interface{}) interface{} {
	lists := make([]*List, 0, len(items))
	for _, attrs := range items {
		lists = append(lists, newList(c, attrs))
	}
	return lists
}

// NewList returns an unsaved list bound to the client. Set a name and
// idBoard before calling Save.
func (c *Client) NewList() *List {
	l := &List{}
	l.init(c, listSchema)
	return l
}

// GetList loads a list by id.
func (c *Client) GetList(ctx context.Context, id string, args Arguments) (*List, error) {
	attrs, err := c.getObject(ctx, "lists/"+id, args)
	if err != nil {
		return nil, fmt.Errorf("failed to get list: %w", err)
	}
	return newList(c, attrs), nil
}

func (l *List) Name() string      { return l.String("name") }
func (l *List) Closed() bool      { return l.Bool("closed") }
func (l *List) BoardID() string   { return l.String("idBoard") }
func (l *List) Position() float64 { return l.Float("pos") }

func (l *List) SetName(name string)     { l.put("name", name) }
func (l *List) SetClosed(closed bool)   { l.put("closed", closed) }
func (l *List) SetPosition(pos float64) { l.put("pos", pos) }
func (l *List) SetBoardID(id string)    { l.put("idBoard", id) }

// Board returns the board the list belongs to.
func (l *List) Board(ctx context.Context) (*Board, error) {
	v, err := l.one(ctx, "board")
	if err != nil {
		return nil, err
	}
	return v.(*Board), nil
}

// Cards returns the cards in the list, in server order.
func (l *List) Cards(ctx context.Context) ([]*Card, error) {
	v, err := l.many(ctx, "cards")
	if err != nil {
		return nil, err
	}
	return v.([]*Card), nil
}

// FilteredCards issues a fresh fetch of the list's cards with the given
// arguments, bypassing the cache behind Cards.
func (l *List) FilteredCards(ctx context.Context, args Arguments) ([]*Card, error) {
	v, err := l.manyFiltered(ctx, "cards", args)
	if err != nil {
		return nil, err
	}
	return v.([]*Card), nil
}
