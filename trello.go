// Package trello is a client library for the Trello web API. It exposes the
// Trello domain objects (boards, cards, lists, members, organizations,
// webhooks and friends) as attribute-backed records with lazily loaded,
// per-instance cached associations.
//
// A caller builds a Config, constructs a Client from it and uses the finder
// methods to load records:
//
//	cfg := &trello.Config{
//		DeveloperPublicKey: os.Getenv("TRELLO_DEVELOPER_PUBLIC_KEY"),
//		MemberToken:        os.Getenv("TRELLO_MEMBER_TOKEN"),
//	}
//	client := trello.NewClient(cfg)
//	board, err := client.GetBoard(ctx, "5abbe4b7ddc1b351ef961414", trello.Defaults())
//
// Accessing a declared association (board.Cards, card.List, ...) issues one
// API call on first access and caches the result on the owning record.
package trello

const (
	// DefaultBaseURL is the host all relative API paths are resolved against.
	DefaultBaseURL = "https://api.trello.com"

	// apiVersion is the version segment prefixed to every request path.
	apiVersion = "1"
)
