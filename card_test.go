package trello

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

func TestCardAddComment(t *testing.T) {
	client, stub := newStubClient(routes{
		"POST /1/cards/c1/actions/comments": `{"id":"a1","type":"commentCard","data":{"text":"hello"}}`,
	}.handle)
	card := newCard(client, map[string]interface{}{"id": "c1"})

	action, err := card.AddComment(context.Background(), "hello")
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	req := stub.lastCall()
	if req.Method != http.MethodPost || !strings.HasSuffix(req.URL, "/1/cards/c1/actions/comments") {
		t.Fatalf("unexpected request %s %s", req.Method, req.URL)
	}
	if req.Args["text"] != "hello" {
		t.Errorf("text arg = %q, want hello", req.Args["text"])
	}
	if action.Type() != "commentCard" || action.Text() != "hello" {
		t.Errorf("unexpected action: type %q text %q", action.Type(), action.Text())
	}
}

func TestCardMoveToList(t *testing.T) {
	client, stub := newStubClient(routes{
		"PUT /1/cards/c1": `{}`,
		"GET /1/lists/l1": `{"id":"l1","name":"Doing"}`,
		"GET /1/lists/l2": `{"id":"l2","name":"Done"}`,
	}.handle)
	card := newCard(client, map[string]interface{}{"id": "c1", "idList": "l1"})
	ctx := context.Background()

	list, err := card.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if list.Name() != "Doing" {
		t.Fatalf("Name() = %q, want Doing", list.Name())
	}

	if err := card.MoveToList(ctx, "l2"); err != nil {
		t.Fatalf("MoveToList failed: %v", err)
	}
	if req := stub.lastCall(); req.Args["idList"] != "l2" {
		t.Errorf("idList arg = %q, want l2", req.Args["idList"])
	}
	if got := card.ListID(); got != "l2" {
		t.Errorf("ListID() = %q, want l2", got)
	}
	if dirty := card.Dirty(); len(dirty) != 0 {
		t.Errorf("move should not leave dirty fields, got %v", dirty)
	}

	// The move invalidated the cached list association.
	moved, err := card.List(ctx)
	if err != nil {
		t.Fatalf("List after move failed: %v", err)
	}
	if moved.Name() != "Done" {
		t.Errorf("Name() after move = %q, want Done", moved.Name())
	}
}

func TestCardMemberAssignment(t *testing.T) {
	client, stub := newStubClient(routes{
		"POST /1/cards/c1/idMembers":      `[{"id":"m1"}]`,
		"DELETE /1/cards/c1/idMembers/m1": `{}`,
	}.handle)
	card := newCard(client, map[string]interface{}{"id": "c1"})
	ctx := context.Background()

	if err := card.AddMemberID(ctx, "m1"); err != nil {
		t.Fatalf("AddMemberID failed: %v", err)
	}
	if req := stub.lastCall(); req.Args["value"] != "m1" {
		t.Errorf("value arg = %q, want m1", req.Args["value"])
	}
	if err := card.RemoveMemberID(ctx, "m1"); err != nil {
		t.Fatalf("RemoveMemberID failed: %v", err)
	}
	if req := stub.lastCall(); req.Method != http.MethodDelete {
		t.Errorf("unexpected method %s", req.Method)
	}
}

func TestChecklistCheckItems(t *testing.T) {
	client, _ := newStubClient(nil)
	checklist := newChecklist(client, map[string]interface{}{
		"id":   "cl1",
		"name": "Steps",
		"checkItems": []interface{}{
			map[string]interface{}{"id": "i1", "name": "one", "state": "complete", "pos": 1.0},
			map[string]interface{}{"id": "i2", "name": "two", "state": "incomplete", "pos": 2.0},
		},
	})

	items := checklist.CheckItems()
	if len(items) != 2 {
		t.Fatalf("expected 2 check items, got %d", len(items))
	}
	if items[0].Name != "one" || items[0].State != "complete" {
		t.Errorf("unexpected first item: %+v", items[0])
	}
	if items[1].Position != 2.0 {
		t.Errorf("Position = %v, want 2", items[1].Position)
	}
}

func TestCreateWebhook(t *testing.T) {
	client, stub := newStubClient(routes{
		"POST /1/webhooks": `{"id":"w1","description":"sync","idModel":"b1","callbackURL":"https://example.com/hook","active":true}`,
	}.handle)

	webhook, err := client.CreateWebhook(context.Background(), "sync", "https://example.com/hook", "b1")
	if err != nil {
		t.Fatalf("CreateWebhook failed: %v", err)
	}
	req := stub.lastCall()
	if req.Args["idModel"] != "b1" || req.Args["callbackURL"] != "https://example.com/hook" {
		t.Errorf("unexpected create args: %v", req.Args)
	}
	if webhook.ID() != "w1" || !webhook.Active() {
		t.Errorf("unexpected webhook: id %q active %v", webhook.ID(), webhook.Active())
	}
}

func TestSearch(t *testing.T) {
	client, stub := newStubClient(routes{
		"GET /1/search": `{"boards":[{"id":"b1","name":"Demo"}],"cards":[{"id":"c1","name":"Task"}]}`,
	}.handle)

	result, err := client.Search(context.Background(), "demo", Arguments{"modelTypes": "boards,cards"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if req := stub.lastCall(); req.Args["query"] != "demo" || req.Args["modelTypes"] != "boards,cards" {
		t.Errorf("unexpected search args: %v", req.Args)
	}
	if len(result.Boards) != 1 || result.Boards[0].Name() != "Demo" {
		t.Errorf("unexpected boards: %v", result.Boards)
	}
	if len(result.Cards) != 1 || result.Cards[0].Name() != "Task" {
		t.Errorf("unexpected cards: %v", result.Cards)
	}
	if len(result.Members) != 0 {
		t.Errorf("expected no members, got %v", result.Members)
	}
}
