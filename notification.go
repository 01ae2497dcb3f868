package trello

import (
	"context"
	"fmt"
)

// Notification represents one entry in a member's notification feed.
type Notification struct {
	Record
}

var notificationSchema *Schema

func init() {
	notificationSchema = registerSchema(&Schema{
		Type:     "notification",
		Resource: "notifications",
		Fields:   []string{"id", "type", "date", "unread", "data", "idMemberCreator"},
		Associations: map[string]*AssociationDescriptor{
			"board": {
				Name: "board", Kind: One, Optional: true,
				Path:    childPath("notifications", "board"),
				MakeOne: makeBoard,
			},
			"card": {
				Name: "card", Kind: One, Optional: true,
				Path:    childPath("notifications", "card"),
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

func newNotification(c *Client, attrs map[string]interface{}) *Notification {
	n := &Notification{}
	n.init(c, notificationSchema)
	n.Load(attrs)
	return n
}

func makeNotifications(c *Client, items []map[string]interface{}) interface{} {
	notifications := make([]*Notification, 0, len(items))
	for _, attrs := range items {
		notifications = append(notifications, newNotification(c, attrs))
	}
	return notifications
}

// GetNotification loads a notification by id.
func (c *Client) GetNotification(ctx context.Context, id string, args Arguments) (*Notification, error) {
	attrs, err := c.getObject(ctx, "notifications/"+id, args)
	if err != nil {
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	return newNotification(c, attrs), nil
}

func (n *Notification) Type() string { return n.String("type") }
func (n *Notification) Date() string { return n.String("date") }
func (n *Notification) Unread() bool { return n.Bool("unread") }

// Data returns the type-specific payload of the notification.
func (n *Notification) Data() map[string]interface{} {
	data, _ := n.Get("data").(map[string]interface{})
	return data
}

// MarkRead marks the notification as read on the server and locally.
func (n *Notification) MarkRead(ctx context.Context) error {
	if n.ID() == "" {
		return fmt.Errorf("cannot mark notification read: %w", ErrNotSaved)
	}
	if _, err := n.client.Put(ctx, "notifications/"+n.ID()+"/unread", Arguments{"value": "false"}); err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", n.ID(), err)
	}
	n.put("unread", false)
	n.baseline["unread"] = false
	return nil
}

// Board returns the board the notification refers to, if any.
func (n *Notification) Board(ctx context.Context) (*Board, error) {
	v, err := n.one(ctx, "board")
	if err != nil || v == nil {
		return nil, err
	}
	return v.(*Board), nil
}

// Card returns the card the notification refers to, if any.
func (n *Notification) Card(ctx context.Context) (*Card, error) {
	v, err := n.one(ctx, "card")
	if err != nil || v == nil {
		return nil, err
	}
	return v.(*Card), nil
}

// MemberCreator returns the member whose activity produced the notification.
func (n *Notification) MemberCreator(ctx context.Context) (*Member, error) {
	v, err := n.one(ctx, "memberCreator")
	if err != nil {
		return nil, err
	}
	return v.(*Member), nil
}
