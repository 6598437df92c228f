package board

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"talentboard/internal/api"
	"talentboard/internal/domain/nominee"
	"talentboard/internal/session"
)

type fakeClient struct {
	mu       sync.Mutex
	nominees []nominee.Nominee
	nextID   int

	updateErr   error
	updateGate  chan struct{}
	updateCalls []updateCall
	deleteCalls []int
}

type updateCall struct {
	nomineeID int
	input     nominee.UpdateInput
}

func newFakeClient(nominees ...nominee.Nominee) *fakeClient {
	return &fakeClient{nominees: nominees, nextID: 1000}
}

func (c *fakeClient) ListNomineesByProject(ctx context.Context, sess *session.Session, projectID, page, pageSize int) ([]nominee.Nominee, api.Pagination, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]nominee.Nominee, len(c.nominees))
	copy(out, c.nominees)
	return out, api.Pagination{Total: len(out)}, nil
}

func (c *fakeClient) CreateNominee(ctx context.Context, sess *session.Session, input nominee.CreateInput) (nominee.Nominee, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	created := nominee.Nominee{
		NomineeID:   c.nextID,
		CandidateID: input.CandidateID,
		ProjectID:   input.ProjectID,
		Status:      input.Status,
		Campaign:    input.Campaign,
	}
	c.nominees = append(c.nominees, created)
	return created, nil
}

func (c *fakeClient) UpdateNominee(ctx context.Context, sess *session.Session, nomineeID int, input nominee.UpdateInput) (nominee.Nominee, error) {
	if c.updateGate != nil {
		<-c.updateGate
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateCalls = append(c.updateCalls, updateCall{nomineeID: nomineeID, input: input})
	if c.updateErr != nil {
		return nominee.Nominee{}, c.updateErr
	}
	for i := range c.nominees {
		if c.nominees[i].NomineeID == nomineeID {
			if input.Status != nil {
				c.nominees[i].Status = *input.Status
			}
			return c.nominees[i], nil
		}
	}
	return nominee.Nominee{NomineeID: nomineeID, Status: *input.Status}, nil
}

func (c *fakeClient) DeleteNominee(ctx context.Context, sess *session.Session, nomineeID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleteCalls = append(c.deleteCalls, nomineeID)
	return nil
}

func (c *fakeClient) updateCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.updateCalls)
}

type fakeSource struct {
	mu        sync.Mutex
	summaries map[int]Summary
	failing   map[int]bool
	lookups   int
}

func newFakeSource() *fakeSource {
	return &fakeSource{summaries: make(map[int]Summary), failing: make(map[int]bool)}
}

func (s *fakeSource) Lookup(ctx context.Context, sess *session.Session, candidateID int) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lookups++
	if s.failing[candidateID] {
		return Summary{}, errors.New("candidate service down")
	}
	summary, ok := s.summaries[candidateID]
	if !ok {
		return Summary{}, errors.New("no such candidate")
	}
	return summary, nil
}

func testSession() *session.Session {
	return &session.Session{AccessToken: "token", TokenType: "bearer"}
}

func testNominee(nomineeID, candidateID int, status nominee.Status) nominee.Nominee {
	return nominee.Nominee{
		NomineeID:   nomineeID,
		CandidateID: candidateID,
		ProjectID:   7,
		Status:      status,
		Campaign:    "Q3",
	}
}

func loadedBoard(t *testing.T, client *fakeClient, source Source) *Board {
	t.Helper()
	b := New(client, source, testSession(), 7, zerolog.Nop())
	if err := b.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return b
}

func TestColumnsPartitionEveryCardExactlyOnce(t *testing.T) {
	client := newFakeClient(
		testNominee(1, 11, nominee.StatusProposed),
		testNominee(2, 12, nominee.StatusProposed),
		testNominee(3, 13, nominee.StatusInterview),
		testNominee(4, 14, nominee.StatusContracted),
	)
	source := newFakeSource()
	source.summaries[11] = Summary{Name: "Nguyễn Văn A", Phone: "0901"}
	source.summaries[12] = Summary{Name: "Trần Thị B", Phone: "0902"}
	source.summaries[13] = Summary{Name: "Lê Văn C", Phone: "0903"}
	source.summaries[14] = Summary{Name: "Phạm Thị D", Phone: "0904"}

	b := loadedBoard(t, client, source)
	columns := b.Columns()

	if len(columns) != len(nominee.AllStatuses) {
		t.Fatalf("expected %d columns, got %d", len(nominee.AllStatuses), len(columns))
	}
	seen := make(map[int]int)
	total := 0
	for _, column := range columns {
		for _, card := range column.Cards {
			if card.Status != column.Status {
				t.Fatalf("card %d with status %s in column %s", card.NomineeID, card.Status, column.Status)
			}
			seen[card.NomineeID]++
			total++
		}
	}
	if total != 4 {
		t.Fatalf("expected 4 cards across columns, got %d", total)
	}
	for id, count := range seen {
		if count != 1 {
			t.Fatalf("card %d appears %d times", id, count)
		}
	}
}

func TestLoadDegradesFailedLookupsToPlaceholder(t *testing.T) {
	client := newFakeClient(
		testNominee(1, 11, nominee.StatusProposed),
		testNominee(2, 12, nominee.StatusProposed),
	)
	source := newFakeSource()
	source.summaries[11] = Summary{Name: "Nguyễn Văn A", Phone: "0901"}
	source.failing[12] = true

	b := loadedBoard(t, client, source)

	byID := make(map[int]Card)
	for _, card := range b.Cards() {
		byID[card.NomineeID] = card
	}
	if byID[1].CandidateName != "Nguyễn Văn A" {
		t.Fatalf("card 1 name = %q", byID[1].CandidateName)
	}
	if byID[2].CandidateName != "Không tìm thấy" {
		t.Fatalf("card 2 name = %q, want placeholder", byID[2].CandidateName)
	}
	if byID[2].CandidatePhone != "" {
		t.Fatalf("card 2 phone = %q, want empty", byID[2].CandidatePhone)
	}
}

func TestCompleteDragMovesCardAndUpdatesUpstream(t *testing.T) {
	client := newFakeClient(testNominee(1, 11, nominee.StatusProposed))
	source := newFakeSource()
	source.summaries[11] = Summary{Name: "Nguyễn Văn A"}
	b := loadedBoard(t, client, source)

	if _, ok := b.BeginDrag(1); !ok {
		t.Fatal("BeginDrag failed for known card")
	}
	if err := b.CompleteDrag(context.Background(), 1, nominee.StatusInterview); err != nil {
		t.Fatalf("CompleteDrag: %v", err)
	}

	if got := b.Cards()[0].Status; got != nominee.StatusInterview {
		t.Fatalf("card status = %s, want %s", got, nominee.StatusInterview)
	}
	if client.updateCount() != 1 {
		t.Fatalf("expected 1 upstream update, got %d", client.updateCount())
	}
	call := client.updateCalls[0]
	if call.nomineeID != 1 || call.input.Status == nil || *call.input.Status != nominee.StatusInterview {
		t.Fatalf("unexpected update call: %+v", call)
	}
	if call.input.Campaign != nil || call.input.CandidateID != nil {
		t.Fatal("drag update must patch status only")
	}
	if _, ok := b.ActiveDrag(); ok {
		t.Fatal("drag still active after drop")
	}
}

func TestCompleteDragSurvivesReload(t *testing.T) {
	client := newFakeClient(
		testNominee(1, 11, nominee.StatusProposed),
		testNominee(2, 12, nominee.StatusInterview),
	)
	source := newFakeSource()
	source.summaries[11] = Summary{Name: "Nguyễn Văn A"}
	source.summaries[12] = Summary{Name: "Trần Thị B"}
	b := loadedBoard(t, client, source)

	if err := b.CompleteDrag(context.Background(), 1, nominee.StatusNegotiation); err != nil {
		t.Fatalf("CompleteDrag: %v", err)
	}
	moved := b.Columns()

	// The server persisted the update, so a fresh load must reproduce the
	// same partition instead of reverting the card.
	if err := b.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	reloaded := b.Columns()

	for i := range moved {
		if len(moved[i].Cards) != len(reloaded[i].Cards) {
			t.Fatalf("column %s: %d cards before reload, %d after", moved[i].Status, len(moved[i].Cards), len(reloaded[i].Cards))
		}
	}
	found := false
	for _, card := range reloaded[2].Cards {
		if card.NomineeID == 1 {
			found = true
			if card.Status != nominee.StatusNegotiation {
				t.Fatalf("reloaded card status = %s", card.Status)
			}
		}
	}
	if !found {
		t.Fatal("moved card not in its column after reload")
	}
}

func TestCompleteDragNoopsSkipNetwork(t *testing.T) {
	client := newFakeClient(testNominee(1, 11, nominee.StatusProposed))
	source := newFakeSource()
	source.summaries[11] = Summary{Name: "Nguyễn Văn A"}
	b := loadedBoard(t, client, source)

	// Dropped outside any column.
	if err := b.CompleteDrag(context.Background(), 1, ""); err != nil {
		t.Fatalf("drop outside: %v", err)
	}
	// Dropped on its own column.
	if err := b.CompleteDrag(context.Background(), 1, nominee.StatusProposed); err != nil {
		t.Fatalf("drop on same column: %v", err)
	}
	// Card unknown to the board.
	if err := b.CompleteDrag(context.Background(), 99, nominee.StatusInterview); err != nil {
		t.Fatalf("drop of unknown card: %v", err)
	}

	if client.updateCount() != 0 {
		t.Fatalf("no-op drops issued %d upstream updates", client.updateCount())
	}
	if got := b.Cards()[0].Status; got != nominee.StatusProposed {
		t.Fatalf("card status changed to %s by a no-op", got)
	}
}

func TestCompleteDragRejectsUnknownStatus(t *testing.T) {
	client := newFakeClient(testNominee(1, 11, nominee.StatusProposed))
	source := newFakeSource()
	source.summaries[11] = Summary{Name: "Nguyễn Văn A"}
	b := loadedBoard(t, client, source)

	if err := b.CompleteDrag(context.Background(), 1, nominee.Status("HUY")); err == nil {
		t.Fatal("expected error for unknown status")
	}
	if client.updateCount() != 0 {
		t.Fatal("invalid status reached the upstream")
	}
}

func TestCompleteDragIsOptimisticBeforeUpstreamResolves(t *testing.T) {
	client := newFakeClient(testNominee(1, 11, nominee.StatusProposed))
	client.updateGate = make(chan struct{})
	source := newFakeSource()
	source.summaries[11] = Summary{Name: "Nguyễn Văn A"}
	b := loadedBoard(t, client, source)

	done := make(chan error, 1)
	go func() {
		done <- b.CompleteDrag(context.Background(), 1, nominee.StatusInterview)
	}()

	// The card must already sit in the target column while the upstream
	// call is still blocked.
	waitForStatus(t, b, 1, nominee.StatusInterview)

	close(client.updateGate)
	if err := <-done; err != nil {
		t.Fatalf("CompleteDrag: %v", err)
	}
	if got := b.Cards()[0].Status; got != nominee.StatusInterview {
		t.Fatalf("card status = %s after resolve", got)
	}
}

func TestCompleteDragRevertsOnUpstreamFailure(t *testing.T) {
	client := newFakeClient(testNominee(1, 11, nominee.StatusProposed))
	client.updateErr = &api.Error{Status: 500, Detail: "boom"}
	source := newFakeSource()
	source.summaries[11] = Summary{Name: "Nguyễn Văn A"}
	b := loadedBoard(t, client, source)

	err := b.CompleteDrag(context.Background(), 1, nominee.StatusInterview)
	if err == nil {
		t.Fatal("expected error from failed update")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("error %q does not carry the upstream detail", err)
	}
	var upstream *api.Error
	if !errors.As(err, &upstream) {
		t.Fatal("upstream error type lost in wrapping")
	}
	if got := b.Cards()[0].Status; got != nominee.StatusProposed {
		t.Fatalf("card status = %s, want reverted %s", got, nominee.StatusProposed)
	}
}

func TestRevertYieldsToRacingDrag(t *testing.T) {
	client := newFakeClient(testNominee(1, 11, nominee.StatusProposed))
	source := newFakeSource()
	source.summaries[11] = Summary{Name: "Nguyễn Văn A"}
	b := loadedBoard(t, client, source)

	// A second drag moved the card again before the first one's failure
	// came back: the revert must not clobber the newer position.
	b.mu.Lock()
	b.cards[0].Status = nominee.StatusNegotiation
	b.mu.Unlock()

	b.revert(1, nominee.StatusProposed, nominee.StatusInterview)

	if got := b.Cards()[0].Status; got != nominee.StatusNegotiation {
		t.Fatalf("revert clobbered racing drag, status = %s", got)
	}
}

func TestNominateAppendsWithoutReload(t *testing.T) {
	client := newFakeClient(testNominee(1, 11, nominee.StatusProposed))
	source := newFakeSource()
	source.summaries[11] = Summary{Name: "Nguyễn Văn A"}
	source.summaries[12] = Summary{Name: "Trần Thị B", Phone: "0902"}
	b := loadedBoard(t, client, source)

	card, err := b.Nominate(context.Background(), nominee.CreateInput{
		CandidateID: 12,
		Campaign:    "Q3",
	})
	if err != nil {
		t.Fatalf("Nominate: %v", err)
	}
	if card.Status != nominee.StatusProposed {
		t.Fatalf("new card status = %s, want default %s", card.Status, nominee.StatusProposed)
	}
	if card.ProjectID != 7 {
		t.Fatalf("new card project = %d, want board's project", card.ProjectID)
	}
	if card.CandidateName != "Trần Thị B" {
		t.Fatalf("new card name = %q", card.CandidateName)
	}
	if got := len(b.Cards()); got != 2 {
		t.Fatalf("board has %d cards, want 2", got)
	}
}

func TestNominateDegradesFailedLookup(t *testing.T) {
	client := newFakeClient()
	source := newFakeSource()
	source.failing[12] = true
	b := loadedBoard(t, client, source)

	card, err := b.Nominate(context.Background(), nominee.CreateInput{CandidateID: 12, Campaign: "Q3"})
	if err != nil {
		t.Fatalf("Nominate: %v", err)
	}
	if card.CandidateName != "Không tìm thấy" {
		t.Fatalf("card name = %q, want placeholder", card.CandidateName)
	}
}

func TestRemoveDeletesUpstreamAndLocally(t *testing.T) {
	client := newFakeClient(
		testNominee(1, 11, nominee.StatusProposed),
		testNominee(2, 12, nominee.StatusInterview),
	)
	source := newFakeSource()
	source.summaries[11] = Summary{Name: "A"}
	source.summaries[12] = Summary{Name: "B"}
	b := loadedBoard(t, client, source)

	if err := b.Remove(context.Background(), 1); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(client.deleteCalls) != 1 || client.deleteCalls[0] != 1 {
		t.Fatalf("delete calls = %v", client.deleteCalls)
	}
	cards := b.Cards()
	if len(cards) != 1 || cards[0].NomineeID != 2 {
		t.Fatalf("remaining cards = %+v", cards)
	}
}

func TestClosedBoardDropsLateWork(t *testing.T) {
	client := newFakeClient(testNominee(1, 11, nominee.StatusProposed))
	source := newFakeSource()
	source.summaries[11] = Summary{Name: "A"}
	b := loadedBoard(t, client, source)

	b.Close()

	if err := b.CompleteDrag(context.Background(), 1, nominee.StatusInterview); !errors.Is(err, ErrClosed) {
		t.Fatalf("CompleteDrag on closed board: %v", err)
	}
	if _, err := b.Nominate(context.Background(), nominee.CreateInput{CandidateID: 11, Campaign: "Q3"}); !errors.Is(err, ErrClosed) {
		t.Fatalf("Nominate on closed board: %v", err)
	}
	if err := b.Load(context.Background()); !errors.Is(err, ErrClosed) {
		t.Fatalf("Load on closed board: %v", err)
	}
	if _, ok := b.BeginDrag(1); ok {
		t.Fatal("BeginDrag succeeded on closed board")
	}
}

func TestBeginAndCancelDrag(t *testing.T) {
	client := newFakeClient(testNominee(1, 11, nominee.StatusProposed))
	source := newFakeSource()
	source.summaries[11] = Summary{Name: "A", Phone: "0901"}
	b := loadedBoard(t, client, source)

	snapshot, ok := b.BeginDrag(1)
	if !ok {
		t.Fatal("BeginDrag failed")
	}
	if snapshot.NomineeID != 1 || snapshot.CandidateName != "A" {
		t.Fatalf("snapshot = %+v", snapshot)
	}
	if active, ok := b.ActiveDrag(); !ok || active.NomineeID != 1 {
		t.Fatal("ActiveDrag does not report the drag")
	}

	b.CancelDrag()
	if _, ok := b.ActiveDrag(); ok {
		t.Fatal("drag still active after cancel")
	}
	if got := b.Cards()[0].Status; got != nominee.StatusProposed {
		t.Fatalf("cancel changed status to %s", got)
	}

	if _, ok := b.BeginDrag(99); ok {
		t.Fatal("BeginDrag succeeded for unknown card")
	}
}

func waitForStatus(t *testing.T, b *Board, nomineeID int, want nominee.Status) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		for _, card := range b.Cards() {
			if card.NomineeID == nomineeID && card.Status == want {
				return
			}
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("card %d never reached status %s", nomineeID, want)
}
