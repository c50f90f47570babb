package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"Faceoff/internal/model"
	"Faceoff/internal/pkg/cache"
)

type fakeVoteRepo struct {
	votes     []*model.Vote
	created   []*model.Vote
	createErr error
	recentErr error
	lookups   int
}

func (f *fakeVoteRepo) CreateVote(ctx context.Context, vote *model.Vote) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, vote)
	return nil
}

func (f *fakeVoteRepo) GetRecentByCaller(ctx context.Context, callerID string, since time.Time) ([]*model.Vote, error) {
	f.lookups++
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	return f.votes, nil
}

func (f *fakeVoteRepo) GetVotesInRange(ctx context.Context, start, end time.Time, offset, limit int) ([]*model.Vote, error) {
	if offset >= len(f.votes) {
		return nil, nil
	}
	end2 := offset + limit
	if end2 > len(f.votes) {
		end2 = len(f.votes)
	}
	return f.votes[offset:end2], nil
}

func newTestDedup(repo *fakeVoteRepo) *dedupServiceImpl {
	return &dedupServiceImpl{
		voteRepo: repo,
		cache:    cache.New(100),
		window:   5 * time.Minute,
		now:      time.Now,
	}
}

func TestDedup_DetectsEitherOrdering(t *testing.T) {
	repo := &fakeVoteRepo{votes: []*model.Vote{
		{CallerID: "caller-1", WinnerImageID: "img-a", LoserImageID: "img-b"},
	}}
	s := newTestDedup(repo)

	if !s.IsDuplicate(context.Background(), "caller-1", "img-a", "img-b") {
		t.Fatal("same ordering should be a duplicate")
	}
	if !s.IsDuplicate(context.Background(), "caller-1", "img-b", "img-a") {
		t.Fatal("reversed ordering is the same pair")
	}
}

func TestDedup_FreshPairAllowed(t *testing.T) {
	repo := &fakeVoteRepo{votes: []*model.Vote{
		{CallerID: "caller-1", WinnerImageID: "img-a", LoserImageID: "img-b"},
	}}
	s := newTestDedup(repo)

	if s.IsDuplicate(context.Background(), "caller-1", "img-a", "img-c") {
		t.Fatal("a different pair must not be flagged")
	}
}

func TestDedup_FailsOpenOnRepoError(t *testing.T) {
	repo := &fakeVoteRepo{recentErr: errors.New("connection refused")}
	s := newTestDedup(repo)

	if s.IsDuplicate(context.Background(), "caller-1", "img-a", "img-b") {
		t.Fatal("lookup failure should fail open")
	}
}

func TestDedup_CachesNegativeLookup(t *testing.T) {
	repo := &fakeVoteRepo{}
	s := newTestDedup(repo)

	s.IsDuplicate(context.Background(), "caller-1", "img-a", "img-b")
	s.IsDuplicate(context.Background(), "caller-1", "img-a", "img-b")

	if repo.lookups != 1 {
		t.Fatalf("second call should hit the cache, lookups=%d", repo.lookups)
	}
}

func TestDedup_MarkVotedOverridesCachedMiss(t *testing.T) {
	repo := &fakeVoteRepo{}
	s := newTestDedup(repo)

	if s.IsDuplicate(context.Background(), "caller-1", "img-a", "img-b") {
		t.Fatal("first check should pass")
	}

	s.MarkVoted("caller-1", "img-a", "img-b")

	if !s.IsDuplicate(context.Background(), "caller-1", "img-b", "img-a") {
		t.Fatal("retry right after an accepted vote must be flagged")
	}
	if repo.lookups != 1 {
		t.Fatalf("flag should come from cache, lookups=%d", repo.lookups)
	}
}
