package trello

// Attachment represents a file or link attached to a card. Attachments have
// no update lifecycle of their own; they are created and deleted through the
// owning card.
type Attachment struct {
	Record
}

var attachmentSchema *Schema

func init() {
	attachmentSchema = registerSchema(&Schema{
		Type:     "attachment",
		Resource: "attachments",
		Fields: []string{
			"id", "name", "url", "bytes", "date", "idMember", "isUpload",
			"mimeType", "pos", "previews",
		},
		Associations: map[string]*AssociationDescriptor{},
	})
}

func newAttachment(c *Client, attrs map[string]interface{}) *Attachment {
	a := &Attachment{}
	a.init(c, attachmentSchema)
	a.Load(attrs)
	return a
}

func makeAttachments(c *Client, items []map[string]interface{}) interface{} {
	attachments := make([]*Attachment, 0, len(items))
	for _, attrs := range items {
		attachments = append(attachments, newAttachment(c, attrs))
	}
	return attachments
}

func (a *Attachment) Name() string     { return a.String("name") }
func (a *Attachment) URL() string      { return a.String("url") }
func (a *Attachment) MimeType() string { return a.String("mimeType") }
func (a *Attachment) IsUpload() bool   { return a.Bool("isUpload") }
