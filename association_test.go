package trello

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestHasOneResolvesOnceAndCaches(t *testing.T) {
	client, stub := newStubClient(routes{
		"GET /1/lists/l1": `{"id":"l1","name":"Doing"}`,
	}.handle)
	card := newCard(client, map[string]interface{}{"id": "c1", "idList": "l1"})

	ctx := context.Background()
	first, err := card.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if got := first.Name(); got != "Doing" {
		t.Fatalf("Name() = %q, want %q", got, "Doing")
	}

	second, err := card.List(ctx)
	if err != nil {
		t.Fatalf("second List failed: %v", err)
	}
	if first != second {
		t.Error("expected the cached list instance on repeated access")
	}
	if n := stub.callCount(); n != 1 {
		t.Errorf("expected 1 HTTP call, got %d", n)
	}

	card.Reload("list")
	if _, err := card.List(ctx); err != nil {
		t.Fatalf("List after Reload failed: %v", err)
	}
	if n := stub.callCount(); n != 2 {
		t.Errorf("expected exactly one new call after Reload, got %d total", n)
	}
}

func TestHasOneFailureIsSticky(t *testing.T) {
	client, stub := newStubClient(func(req *Request) (*Response, error) {
		return jsonResponse(http.StatusInternalServerError, `"boom"`), nil
	})
	card := newCard(client, map[string]interface{}{"id": "c1", "idList": "l1"})

	ctx := context.Background()
	_, err1 := card.List(ctx)
	if err1 == nil {
		t.Fatal("expected resolution to fail")
	}
	_, err2 := card.List(ctx)
	if err2 == nil {
		t.Fatal("expected the cached failure on second access")
	}
	if err1.Error() != err2.Error() {
		t.Errorf("expected the same error re-raised, got %v then %v", err1, err2)
	}
	if n := stub.callCount(); n != 1 {
		t.Errorf("expected 1 HTTP call for both accesses, got %d", n)
	}

	card.Reload("list")
	if _, err := card.List(ctx); err == nil {
		t.Fatal("expected failure again after Reload")
	}
	if n := stub.callCount(); n != 2 {
		t.Errorf("expected a fresh call after Reload, got %d total", n)
	}
}

func TestHasOneOptionalResolvesEmptyToNil(t *testing.T) {
	client, stub := newStubClient(nil)
	board := newBoard(client, map[string]interface{}{"id": "b1"})

	org, err := board.Organization(context.Background())
	if err != nil {
		t.Fatalf("Organization failed: %v", err)
	}
	if org != nil {
		t.Errorf("expected nil organization for a board without one, got %v", org)
	}
	// idOrganization is empty, so there is nothing to fetch.
	if n := stub.callCount(); n != 0 {
		t.Errorf("expected no HTTP call, got %d", n)
	}
}

func TestHasOneMissingIsNotFound(t *testing.T) {
	client, _ := newStubClient(func(req *Request) (*Response, error) {
		return jsonResponse(http.StatusOK, `null`), nil
	})
	card := newCard(client, map[string]interface{}{"id": "c1", "idList": "l1"})

	_, err := card.List(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHasManyPreservesServerOrder(t *testing.T) {
	boardID := uuid.NewString()
	client, _ := newStubClient(routes{
		"GET /1/boards/" + boardID + "/cards": `[{"id":"c2","name":"Second"},{"id":"c1","name":"First"},{"id":"c3","name":"Third"}]`,
	}.handle)
	board := newBoard(client, map[string]interface{}{"id": boardID})

	cards, err := board.Cards(context.Background())
	if err != nil {
		t.Fatalf("Cards failed: %v", err)
	}
	var names []string
	for _, card := range cards {
		names = append(names, card.Name())
	}
	want := []string{"Second", "First", "Third"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("cards out of order: got %v, want %v", names, want)
		}
	}
}

func TestFilteredAccessBypassesCache(t *testing.T) {
	client, stub := newStubClient(func(req *Request) (*Response, error) {
		if req.Args["filter"] == "closed" {
			return jsonResponse(http.StatusOK, `[{"id":"c9","name":"Done"}]`), nil
		}
		return jsonResponse(http.StatusOK, `[{"id":"c1","name":"Open"}]`), nil
	})
	board := newBoard(client, map[string]interface{}{"id": "b1"})
	ctx := context.Background()

	// Filtering before the unfiltered access must not populate the cache.
	closed, err := board.FilteredCards(ctx, Arguments{"filter": "closed"})
	if err != nil {
		t.Fatalf("FilteredCards failed: %v", err)
	}
	if len(closed) != 1 || closed[0].Name() != "Done" {
		t.Fatalf("unexpected filtered result: %v", closed)
	}

	all, err := board.Cards(ctx)
	if err != nil {
		t.Fatalf("Cards failed: %v", err)
	}
	if len(all) != 1 || all[0].Name() != "Open" {
		t.Fatalf("filtered call leaked into the unfiltered cache: %v", all)
	}

	// Filtering after resolution must not serve from or clobber the cache.
	if _, err := board.FilteredCards(ctx, Arguments{"filter": "closed"}); err != nil {
		t.Fatalf("second FilteredCards failed: %v", err)
	}
	if _, err := board.Cards(ctx); err != nil {
		t.Fatalf("cached Cards failed: %v", err)
	}
	if n := stub.callCount(); n != 3 {
		t.Errorf("expected 3 HTTP calls (2 filtered + 1 cached all), got %d", n)
	}
}

func TestAssociationOnUnsavedRecordFails(t *testing.T) {
	client, stub := newStubClient(nil)
	board := client.NewBoard()

	if _, err := board.Cards(context.Background()); !errors.Is(err, ErrNotSaved) {
		t.Errorf("expected ErrNotSaved, got %v", err)
	}
	if n := stub.callCount(); n != 0 {
		t.Errorf("expected no HTTP call, got %d", n)
	}
}

func TestUnknownAssociationName(t *testing.T) {
	client, _ := newStubClient(nil)
	board := newBoard(client, map[string]interface{}{"id": "b1"})

	if _, err := board.many(context.Background(), "nonsense"); err == nil {
		t.Fatal("expected an error for an undeclared association")
	}
	if _, err := board.one(context.Background(), "cards"); err == nil ||
		!strings.Contains(err.Error(), "cardinality") {
		t.Fatal("expected a cardinality mismatch error")
	}
}

func TestFixedArgsAreSentAndMerged(t *testing.T) {
	schema := &Schema{
		Type:     "gadget",
		Resource: "gadgets",
		Fields:   []string{"id"},
		Associations: map[string]*AssociationDescriptor{
			"parts": {
				Name: "parts", Kind: Many,
				Path: childPath("gadgets", "parts"),
				Args: Arguments{"fields": "name"},
				MakeMany: func(c *Client, items []map[string]interface{}) interface{} {
					return items
				},
			},
		},
	}
	registerSchema(schema)

	client, stub := newStubClient(func(req *Request) (*Response, error) {
		return jsonResponse(http.StatusOK, `[]`), nil
	})
	rec := &Record{}
	rec.init(client, schema)
	rec.Load(map[string]interface{}{"id": "g1"})

	if _, err := rec.manyFiltered(context.Background(), "parts", Arguments{"filter": "broken"}); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	req := stub.lastCall()
	if req.Args["fields"] != "name" || req.Args["filter"] != "broken" {
		t.Errorf("expected fixed and caller args merged, got %v", req.Args)
	}
	if !strings.HasSuffix(req.URL, "/1/gadgets/g1/parts") {
		t.Errorf("unexpected URL %s", req.URL)
	}

	if _, err := rec.many(context.Background(), "parts"); err != nil {
		t.Fatalf("cached fetch failed: %v", err)
	}
	if req := stub.lastCall(); req.Args["fields"] != "name" {
		t.Errorf("expected fixed args on the unfiltered fetch, got %v", req.Args)
	}
}
