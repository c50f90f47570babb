package service

import (
	"Faceoff/internal/pkg/cache"
	"Faceoff/internal/pkg/consts"
	"Faceoff/internal/pkg/util"
	"Faceoff/internal/repository"
	"context"
	log "log/slog"
	"time"
)

const dedupCacheSize = 50000

// DedupService 判定同一用户在短窗口内是否对同一组图片重复投票。
// 账本查询失败时放行（fail open），可用性优先于严格去重。
type DedupService interface {
	IsDuplicate(ctx context.Context, callerID, winnerID, loserID string) bool
	MarkVoted(callerID, winnerID, loserID string)
}

type dedupServiceImpl struct {
	voteRepo repository.VoteRepo
	cache    *cache.Cache
	window   time.Duration
	now      func() time.Time
}

func NewDedupService(voteRepo repository.VoteRepo, window time.Duration) DedupService {
	return &dedupServiceImpl{
		voteRepo: voteRepo,
		cache:    cache.New(dedupCacheSize),
		window:   window,
		now:      time.Now,
	}
}

func (s *dedupServiceImpl) key(callerID, winnerID, loserID string) string {
	return consts.VoteDedupKey + callerID + ":" + util.PairKey(winnerID, loserID)
}

// IsDuplicate 先查本地缓存，未命中再查投票账本，两种排序都算同一组
func (s *dedupServiceImpl) IsDuplicate(ctx context.Context, callerID, winnerID, loserID string) bool {
	key := s.key(callerID, winnerID, loserID)

	if cached, ok := s.cache.Get(key); ok {
		return cached.(bool)
	}

	since := s.now().Add(-s.window)
	votes, err := s.voteRepo.GetRecentByCaller(ctx, callerID, since)
	if err != nil {
		log.WarnContext(ctx, "dedup lookup failed, failing open", "caller", callerID, "err", err)
		return false
	}

	pair := util.PairKey(winnerID, loserID)
	duplicate := false
	for _, v := range votes {
		if util.PairKey(v.WinnerImageID, v.LoserImageID) == pair {
			duplicate = true
			break
		}
	}

	s.cache.Set(key, duplicate, s.window)
	return duplicate
}

// MarkVoted 投票落库后立即写缓存，覆盖查询阶段缓存的否定结果，
// 让窗口内的快速重试直接命中
func (s *dedupServiceImpl) MarkVoted(callerID, winnerID, loserID string) {
	s.cache.Set(s.key(callerID, winnerID, loserID), true, s.window)
}
