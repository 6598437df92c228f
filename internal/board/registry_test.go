package board

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"talentboard/internal/domain/nominee"
)

func testRegistry() (*Registry, *fakeClient) {
	client := newFakeClient(testNominee(1, 11, nominee.StatusProposed))
	source := newFakeSource()
	source.summaries[11] = Summary{Name: "Nguyễn Văn A"}
	return NewRegistry(client, source, zerolog.Nop()), client
}

func TestRegistryIsolatesSessions(t *testing.T) {
	registry, _ := testRegistry()
	ctx := context.Background()

	opened, err := registry.Open(ctx, "session-a", testSession(), 7)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got, err := registry.Get("session-a", 7); err != nil || got != opened {
		t.Fatalf("Get own board: %v", err)
	}

	// Another session never sees session-a's board.
	if _, err := registry.Get("session-b", 7); !errors.Is(err, ErrNotOpen) {
		t.Fatalf("Get foreign board: %v", err)
	}

	other, err := registry.Open(ctx, "session-b", testSession(), 7)
	if err != nil {
		t.Fatalf("Open for second session: %v", err)
	}
	if other == opened {
		t.Fatal("sessions share a board instance")
	}
}

func TestRegistryReopenReplacesAndClosesPrevious(t *testing.T) {
	registry, _ := testRegistry()
	ctx := context.Background()

	first, err := registry.Open(ctx, "session-a", testSession(), 7)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	second, err := registry.Open(ctx, "session-a", testSession(), 7)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if first == second {
		t.Fatal("reopen returned the same board")
	}

	// The replaced board is closed: late work against it is dropped.
	if err := first.CompleteDrag(ctx, 1, nominee.StatusInterview); !errors.Is(err, ErrClosed) {
		t.Fatalf("stale board CompleteDrag: %v", err)
	}
	if err := second.CompleteDrag(ctx, 1, nominee.StatusInterview); err != nil {
		t.Fatalf("live board CompleteDrag: %v", err)
	}
}

func TestRegistryCloseSession(t *testing.T) {
	registry, _ := testRegistry()
	ctx := context.Background()

	if _, err := registry.Open(ctx, "session-a", testSession(), 7); err != nil {
		t.Fatalf("Open: %v", err)
	}
	kept, err := registry.Open(ctx, "session-b", testSession(), 7)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	registry.CloseSession("session-a")

	if _, err := registry.Get("session-a", 7); !errors.Is(err, ErrNotOpen) {
		t.Fatalf("closed session still has a board: %v", err)
	}
	if got, err := registry.Get("session-b", 7); err != nil || got != kept {
		t.Fatalf("other session's board lost: %v", err)
	}
}
