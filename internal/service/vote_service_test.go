package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"Faceoff/internal/model"

	"github.com/go-sql-driver/mysql"
)

type fakeImageAggregateRepo struct {
	mu       sync.Mutex
	applied  []string
	applyErr error
}

func (f *fakeImageAggregateRepo) ApplyVote(ctx context.Context, imageID, category string, won bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.applyErr != nil {
		return f.applyErr
	}
	f.applied = append(f.applied, imageID)
	return nil
}

func (f *fakeImageAggregateRepo) GetByID(ctx context.Context, imageID string) (*model.ImageAggregate, error) {
	return nil, nil
}

func (f *fakeImageAggregateRepo) GetRandomPair(ctx context.Context, category string) ([]*model.ImageAggregate, error) {
	return nil, nil
}

type fakeUserStatsRepo struct {
	mu    sync.Mutex
	stats map[string]*model.UserStats
	saved []*model.UserStats
}

func (f *fakeUserStatsRepo) GetByCallerID(ctx context.Context, callerID string) (*model.UserStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stats[callerID], nil
}

func (f *fakeUserStatsRepo) SaveStats(ctx context.Context, stats *model.UserStats) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, stats)
	return nil
}

type fakeRollupRepo struct {
	mu         sync.Mutex
	increments []string
	replaced   map[string][]*model.AnalyticsRollup
}

func (f *fakeRollupRepo) IncrementDay(ctx context.Context, rollupType, dateKey, itemID string, won bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.increments = append(f.increments, rollupType+"/"+dateKey+"/"+itemID)
	return nil
}

func (f *fakeRollupRepo) ReplacePeriod(ctx context.Context, period, dateKey string, rows []*model.AnalyticsRollup) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.replaced == nil {
		f.replaced = make(map[string][]*model.AnalyticsRollup)
	}
	f.replaced[period+"/"+dateKey] = rows
	return nil
}

func (f *fakeRollupRepo) GetRollups(ctx context.Context, rollupType, period, dateKey string, limit int) ([]*model.AnalyticsRollup, error) {
	return nil, nil
}

type fakeDedup struct {
	duplicate bool
	marked    []string
}

func (f *fakeDedup) IsDuplicate(ctx context.Context, callerID, winnerID, loserID string) bool {
	return f.duplicate
}

func (f *fakeDedup) MarkVoted(callerID, winnerID, loserID string) {
	f.marked = append(f.marked, callerID)
}

type voteFixture struct {
	svc       *voteServiceImpl
	voteRepo  *fakeVoteRepo
	imageRepo *fakeImageAggregateRepo
	statsRepo *fakeUserStatsRepo
	rollups   *fakeRollupRepo
	dedup     *fakeDedup
}

func newVoteFixture() *voteFixture {
	f := &voteFixture{
		voteRepo:  &fakeVoteRepo{},
		imageRepo: &fakeImageAggregateRepo{},
		statsRepo: &fakeUserStatsRepo{},
		rollups:   &fakeRollupRepo{},
		dedup:     &fakeDedup{},
	}
	f.svc = &voteServiceImpl{
		voteRepo:   f.voteRepo,
		imageRepo:  f.imageRepo,
		statsRepo:  f.statsRepo,
		rollupRepo: f.rollups,
		dedup:      f.dedup,
		publisher:  nil,
		now:        time.Now,
	}
	return f
}

func validSubmission() *VoteSubmission {
	return &VoteSubmission{
		WinnerID:  "img-a",
		LoserID:   "img-b",
		Category:  "animals",
		SessionID: "sess-1",
		CallerID:  "caller-1",
		Country:   "DE",
	}
}

func TestSubmitVote_Success(t *testing.T) {
	f := newVoteFixture()

	voteID, err := f.svc.SubmitVote(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if voteID == "" {
		t.Fatal("voteID must be set")
	}
	if len(f.voteRepo.created) != 1 {
		t.Fatalf("ledger writes = %d, want 1", len(f.voteRepo.created))
	}
	if len(f.imageRepo.applied) != 2 {
		t.Fatalf("aggregate updates = %d, want winner and loser", len(f.imageRepo.applied))
	}
	if len(f.statsRepo.saved) != 1 {
		t.Fatalf("stats writes = %d, want 1", len(f.statsRepo.saved))
	}
	if len(f.dedup.marked) != 1 {
		t.Fatal("accepted vote must be marked in the dedup cache")
	}
}

func TestSubmitVote_MissingFields(t *testing.T) {
	f := newVoteFixture()
	sub := validSubmission()
	sub.SessionID = ""

	_, err := f.svc.SubmitVote(context.Background(), sub)
	if !errors.Is(err, ErrMissingFields) {
		t.Fatalf("err = %v, want ErrMissingFields", err)
	}
	if len(f.voteRepo.created) != 0 {
		t.Fatal("rejected vote must not reach the ledger")
	}
}

func TestSubmitVote_DuplicateWritesNothing(t *testing.T) {
	f := newVoteFixture()
	f.dedup.duplicate = true

	_, err := f.svc.SubmitVote(context.Background(), validSubmission())
	if !errors.Is(err, ErrDuplicateVote) {
		t.Fatalf("err = %v, want ErrDuplicateVote", err)
	}
	if len(f.voteRepo.created) != 0 || len(f.imageRepo.applied) != 0 {
		t.Fatal("duplicate vote must not touch ledger or aggregates")
	}
}

func TestSubmitVote_LedgerKeyConflictIsDuplicate(t *testing.T) {
	f := newVoteFixture()
	f.voteRepo.createErr = &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}

	_, err := f.svc.SubmitVote(context.Background(), validSubmission())
	if !errors.Is(err, ErrDuplicateVote) {
		t.Fatalf("err = %v, want ErrDuplicateVote", err)
	}
}

func TestSubmitVote_LedgerFailure(t *testing.T) {
	f := newVoteFixture()
	f.voteRepo.createErr = errors.New("connection reset")

	_, err := f.svc.SubmitVote(context.Background(), validSubmission())
	if !errors.Is(err, UnExpectedError) {
		t.Fatalf("err = %v, want UnExpectedError", err)
	}
	if len(f.imageRepo.applied) != 0 {
		t.Fatal("failed ledger write must not trigger side updates")
	}
}

func TestSubmitVote_SideEffectFailureStillSucceeds(t *testing.T) {
	f := newVoteFixture()
	f.imageRepo.applyErr = errors.New("lock wait timeout")

	voteID, err := f.svc.SubmitVote(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("aggregate failure must not fail the vote: %v", err)
	}
	if voteID == "" {
		t.Fatal("voteID must still be returned")
	}
}

func TestSubmitVote_AnonymousSkipsStats(t *testing.T) {
	f := newVoteFixture()
	sub := validSubmission()
	sub.CallerID = "anonymous"

	_, err := f.svc.SubmitVote(context.Background(), sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.statsRepo.saved) != 0 {
		t.Fatal("anonymous votes must not write user stats")
	}
}

func TestSubmitVote_StreakCarriedThroughStats(t *testing.T) {
	f := newVoteFixture()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return now }
	f.statsRepo.stats = map[string]*model.UserStats{
		"caller-1": {
			CallerID:      "caller-1",
			TotalVotes:    3,
			CurrentStreak: 2,
			LongestStreak: 2,
			LastVoteDate:  time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		},
	}

	_, err := f.svc.SubmitVote(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.statsRepo.saved) != 1 {
		t.Fatalf("stats writes = %d, want 1", len(f.statsRepo.saved))
	}
	got := f.statsRepo.saved[0]
	if got.CurrentStreak != 3 || got.TotalVotes != 4 {
		t.Fatalf("got streak=%d total=%d, want 3/4", got.CurrentStreak, got.TotalVotes)
	}
}
