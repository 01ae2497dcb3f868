package trello

import (
	"context"
	"fmt"
)

// Checklist represents one checklist on a card.
type Checklist struct {
	Record
}

// CheckItem is one entry of a checklist. Check items have no independent
// lifecycle here; they arrive inline with the checklist.
type CheckItem struct {
	ID       string
	Name     string
	State    string
	Position float64
}

var checklistSchema *Schema

func init() {
	checklistSchema = registerSchema(&Schema{
		Type:     "checklist",
		Resource: "checklists",
		Fields:   []string{"id", "name", "idBoard", "idCard", "pos", "checkItems"},
		Associations: map[string]*AssociationDescriptor{
			"board": {
				Name: "board", Kind: One,
				Path:    refPath("idBoard", "boards"),
				MakeOne: makeBoard,
			},
			"card": {
				Name: "card", Kind: One,
				Path:    refPath("idCard", "cards"),
				MakeOne: makeCard,
			},
		},
	})
}

func newChecklist(c *Client, attrs map[string]interface{}) *Checklist {
	cl := &Checklist{}
	cl.init(c, checklistSchema)
	cl.Load(attrs)
	return cl
}

func makeChecklists(c *Client, items []map[string]interface{}) interface{} {
	checklists := make([]*Checklist, 0, len(items))
	for _, attrs := range items {
		checklists = append(checklists, newChecklist(c, attrs))
	}
	return checklists
}

// NewChecklist returns an unsaved checklist bound to the client. Set a name
// and idCard before calling Save.
func (c *Client) NewChecklist() *Checklist {
	cl := &Checklist{}
	cl.init(c, checklistSchema)
	return cl
}

// GetChecklist loads a checklist by id.
func (c *Client) GetChecklist(ctx context.Context, id string, args Arguments) (*Checklist, error) {
	attrs, err := c.getObject(ctx, "checklists/"+id, args)
	if err != nil {
		return nil, fmt.Errorf("failed to get checklist: %w", err)
	}
	return newChecklist(c, attrs), nil
}

func (cl *Checklist) Name() string      { return cl.String("name") }
func (cl *Checklist) BoardID() string   { return cl.String("idBoard") }
func (cl *Checklist) CardID() string    { return cl.String("idCard") }
func (cl *Checklist) Position() float64 { return cl.Float("pos") }

func (cl *Checklist) SetName(name string)     { cl.put("name", name) }
func (cl *Checklist) SetCardID(id string)     { cl.put("idCard", id) }
func (cl *Checklist) SetPosition(pos float64) { cl.put("pos", pos) }

// CheckItems returns the checklist's items as delivered inline by the API.
func (cl *Checklist) CheckItems() []CheckItem {
	raw, ok := cl.Get("checkItems").([]interface{})
	if !ok {
		return nil
	}
	items := make([]CheckItem, 0, len(raw))
	for _, entry := range raw {
		attrs, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		item := CheckItem{}
		if v, ok := attrs["id"].(string); ok {
			item.ID = v
		}
		if v, ok := attrs["name"].(string); ok {
			item.Name = v
		}
		if v, ok := attrs["state"].(string); ok {
			item.State = v
		}
		if v, ok := attrs["pos"].(float64); ok {
			item.Position = v
		}
		items = append(items, item)
	}
	return items
}

// AddCheckItem appends an item to the checklist on the server and refreshes
// the inline checkItems attribute.
func (cl *Checklist) AddCheckItem(ctx context.Context, name string) error {
	if cl.ID() == "" {
		return fmt.Errorf("cannot add check item: %w", ErrNotSaved)
	}
	if _, err := cl.client.Post(ctx, "checklists/"+cl.ID()+"/checkItems", Arguments{"name": name}); err != nil {
		return fmt.Errorf("failed to add check item: %w", err)
	}
	return cl.Refresh(ctx)
}

// Board returns the board the checklist belongs to.
func (cl *Checklist) Board(ctx context.Context) (*Board, error) {
	v, err := cl.one(ctx, "board")
	if err != nil {
		return nil, err
	}
	return v.(*Board), nil
}

// Card returns the card the checklist sits on.
func (cl *Checklist) Card(ctx context.Context) (*Card, error) {
	v, err := cl.one(ctx, "card")
	if err != nil {
		return nil, err
	}
	return v.(*Card), nil
}
