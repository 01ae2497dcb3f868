package trello

import (
	"context"
	"fmt"
)

// Label represents a colored board label.
type Label struct {
	Record
}

var labelSchema *Schema

func init() {
	labelSchema = registerSchema(&Schema{
		Type:     "label",
		Resource: "labels",
		Fields:   []string{"id", "name", "color", "idBoard", "uses"},
		Associations: map[string]*AssociationDescriptor{
			"board": {
				Name: "board", Kind: One,
				Path:    refPath("idBoard", "boards"),
				MakeOne: makeBoard,
			},
		},
	})
}

func newLabel(c *Client, attrs map[string]interface{}) *Label {
	l := &Label{}
	l.init(c, labelSchema)
	l.Load(attrs)
	return l
}

func makeLabels(c *Client, items []map[string]interface{}) interface{} {
	labels := make([]*Label, 0, len(items))
	for _, attrs := range items {
		labels = append(labels, newLabel(c, attrs))
	}
	return labels
}

// NewLabel returns an unsaved label bound to the client. Set a name, color
// and idBoard before calling Save.
func (c *Client) NewLabel() *Label {
	l := &Label{}
	l.init(c, labelSchema)
	return l
}

// GetLabel loads a label by id.
func (c *Client) GetLabel(ctx context.Context, id string, args Arguments) (*Label, error) {
	attrs, err := c.getObject(ctx, "labels/"+id, args)
	if err != nil {
		return nil, fmt.Errorf("failed to get label: %w", err)
	}
	return newLabel(c, attrs), nil
}

func (l *Label) Name() string    { return l.String("name") }
func (l *Label) Color() string   { return l.String("color") }
func (l *Label) BoardID() string { return l.String("idBoard") }

func (l *Label) SetName(name string)   { l.put("name", name) }
func (l *Label) SetColor(color string) { l.put("color", color) }
func (l *Label) SetBoardID(id string)  { l.put("idBoard", id) }

// Board returns the board the label is defined on.
func (l *Label) Board(ctx context.Context) (*Board, error) {
	v, err := l.one(ctx, "board")
	if err != nil {
		return nil, err
	}
	return v.(*Board), nil
}
