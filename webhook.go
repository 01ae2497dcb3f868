package trello

import (
	"context"
	"fmt"
)

// Webhook represents a registered callback for changes on a model.
type Webhook struct {
	Record
}

var webhookSchema *Schema

func init() {
	webhookSchema = registerSchema(&Schema{
		Type:         "webhook",
		Resource:     "webhooks",
		Fields:       []string{"id", "description", "idModel", "callbackURL", "active"},
		Associations: map[string]*AssociationDescriptor{},
	})
}

func newWebhook(c *Client, attrs map[string]interface{}) *Webhook {
	w := &Webhook{}
	w.init(c, webhookSchema)
	w.Load(attrs)
	return w
}

func makeWebhooks(c *Client, items []map[string]interface{}) interface{} {
	webhooks := make([]*Webhook, 0, len(items))
	for _, attrs := range items {
		webhooks = append(webhooks, newWebhook(c, attrs))
	}
	return webhooks
}

// NewWebhook returns an unsaved webhook bound to the client.
func (c *Client) NewWebhook() *Webhook {
	w := &Webhook{}
	w.init(c, webhookSchema)
	return w
}

// CreateWebhook registers a callback URL for changes on a model (board,
// card, list or member id) and returns the saved webhook.
func (c *Client) CreateWebhook(ctx context.Context, description, callbackURL, idModel string) (*Webhook, error) {
	w := c.NewWebhook()
	w.SetDescription(description)
	w.SetCallbackURL(callbackURL)
	w.SetModelID(idModel)
	if err := w.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create webhook: %w", err)
	}
	return w, nil
}

// GetWebhook loads a webhook by id.
func (c *Client) GetWebhook(ctx context.Context, id string, args Arguments) (*Webhook, error) {
	attrs, err := c.getObject(ctx, "webhooks/"+id, args)
	if err != nil {
		return nil, fmt.Errorf("failed to get webhook: %w", err)
	}
	return newWebhook(c, attrs), nil
}

func (w *Webhook) Description() string { return w.String("description") }
func (w *Webhook) ModelID() string     { return w.String("idModel") }
func (w *Webhook) CallbackURL() string { return w.String("callbackURL") }
func (w *Webhook) Active() bool        { return w.Bool("active") }

func (w *Webhook) SetDescription(desc string) { w.put("description", desc) }
func (w *Webhook) SetCallbackURL(url string)  { w.put("callbackURL", url) }
func (w *Webhook) SetModelID(id string)       { w.put("idModel", id) }
func (w *Webhook) SetActive(active bool)      { w.put("active", active) }
