package trello

import (
	"context"
	"encoding/json"
	"fmt"
)

// SearchResult groups the typed result sets of one search call.
type SearchResult struct {
	Boards        []*Board
	Cards         []*Card
	Members       []*Member
	Organizations []*Organization
	Actions       []*Action
}

// Search runs a query across boards, cards, members, organizations and
// actions. Arguments narrow the search, e.g.
// Arguments{"modelTypes": "cards"}.
func (c *Client) Search(ctx context.Context, query string, args Arguments) (*SearchResult, error) {
	raw, err := c.Get(ctx, "search", args.merge(Arguments{"query": query}))
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	var payload struct {
		Boards        []map[string]interface{} `json:"boards"`
		Cards         []map[string]interface{} `json:"cards"`
		Members       []map[string]interface{} `json:"members"`
		Organizations []map[string]interface{} `json:"organizations"`
		Actions       []map[string]interface{} `json:"actions"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}
	return &SearchResult{
		Boards:        makeBoards(c, payload.Boards).([]*Board),
		Cards:         makeCards(c, payload.Cards).([]*Card),
		Members:       makeMembers(c, payload.Members).([]*Member),
		Organizations: makeOrganizations(c, payload.Organizations).([]*Organization),
		Actions:       makeActions(c, payload.Actions).([]*Action),
	}, nil
}
