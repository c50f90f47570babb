package service

import (
	"Faceoff/internal/model"
	"Faceoff/internal/pkg/consts"
	"Faceoff/internal/pkg/kafka"
	"Faceoff/internal/pkg/metrics"
	"Faceoff/internal/pkg/util"
	"Faceoff/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

const mysqlDuplicateEntry = 1062

// VoteSubmission 一次投票的完整输入，country 由入口中间件补齐
type VoteSubmission struct {
	WinnerID  string
	LoserID   string
	Category  string
	SessionID string
	CallerID  string
	Country   string
}

type VoteService interface {
	SubmitVote(ctx context.Context, sub *VoteSubmission) (string, error)
}

type voteServiceImpl struct {
	voteRepo   repository.VoteRepo
	imageRepo  repository.ImageAggregateRepo
	statsRepo  repository.UserStatsRepo
	rollupRepo repository.RollupRepo
	dedup      DedupService
	publisher  *kafka.VotePublisher
	now        func() time.Time
}

func NewVoteService(
	voteRepo repository.VoteRepo,
	imageRepo repository.ImageAggregateRepo,
	statsRepo repository.UserStatsRepo,
	rollupRepo repository.RollupRepo,
	dedup DedupService,
	publisher *kafka.VotePublisher,
) VoteService {
	return &voteServiceImpl{
		voteRepo:   voteRepo,
		imageRepo:  imageRepo,
		statsRepo:  statsRepo,
		rollupRepo: rollupRepo,
		dedup:      dedup,
		publisher:  publisher,
		now:        time.Now,
	}
}

// SubmitVote 投票主链路：去重判定和账本写入在关键路径上，
// 账本落库后的计数更新全部并发、尽力而为，失败不影响响应
func (s *voteServiceImpl) SubmitVote(ctx context.Context, sub *VoteSubmission) (string, error) {
	start := s.now()

	if sub.WinnerID == "" || sub.LoserID == "" || sub.Category == "" ||
		sub.SessionID == "" || sub.CallerID == "" {
		metrics.VoteErrors.WithLabelValues("missing_fields").Inc()
		return "", ErrMissingFields
	}

	if s.dedup.IsDuplicate(ctx, sub.CallerID, sub.WinnerID, sub.LoserID) {
		metrics.VoteErrors.WithLabelValues("duplicate").Inc()
		return "", ErrDuplicateVote
	}

	vote := &model.Vote{
		ID:            uuid.NewString(),
		CallerID:      sub.CallerID,
		WinnerImageID: sub.WinnerID,
		LoserImageID:  sub.LoserID,
		Category:      sub.Category,
		SessionID:     sub.SessionID,
		Country:       sub.Country,
		CreatedAt:     start,
	}

	if err := s.voteRepo.CreateVote(ctx, vote); err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			// 同一生成 id 的重试只会留下一条账本记录
			metrics.VoteErrors.WithLabelValues("duplicate").Inc()
			return "", ErrDuplicateVote
		}
		log.ErrorContext(ctx, "vote ledger write failed", "err", err)
		metrics.VoteErrors.WithLabelValues("ledger").Inc()
		return "", UnExpectedError
	}

	s.dedup.MarkVoted(sub.CallerID, sub.WinnerID, sub.LoserID)

	s.applySideEffects(ctx, vote)

	metrics.VotesTotal.WithLabelValues(sub.Category).Inc()
	metrics.VoteDuration.Observe(s.now().Sub(start).Seconds())

	return vote.ID, nil
}

// applySideEffects 账本已是事实来源，这里的四路计数更新每一条都可独立失败
func (s *voteServiceImpl) applySideEffects(ctx context.Context, vote *model.Vote) {
	dateKey := util.DateKey(vote.CreatedAt)

	tasks := []bestEffortTask{
		{"winner_aggregate", func(ctx context.Context) error {
			return s.imageRepo.ApplyVote(ctx, vote.WinnerImageID, vote.Category, true)
		}},
		{"loser_aggregate", func(ctx context.Context) error {
			return s.imageRepo.ApplyVote(ctx, vote.LoserImageID, vote.Category, false)
		}},
		{"day_rollup", func(ctx context.Context) error {
			if err := s.rollupRepo.IncrementDay(ctx, model.RollupTypeImage, dateKey, vote.WinnerImageID, true); err != nil {
				return err
			}
			return s.rollupRepo.IncrementDay(ctx, model.RollupTypeCategory, dateKey, vote.Category, false)
		}},
	}

	if vote.CallerID != consts.AnonymousCaller {
		tasks = append(tasks, bestEffortTask{"user_stats", func(ctx context.Context) error {
			prev, err := s.statsRepo.GetByCallerID(ctx, vote.CallerID)
			if err != nil {
				return err
			}
			return s.statsRepo.SaveStats(ctx, AdvanceStreak(prev, vote.CallerID, vote.CreatedAt))
		}})
	}

	if s.publisher != nil {
		tasks = append(tasks, bestEffortTask{"kafka_publish", func(ctx context.Context) error {
			return s.publisher.Publish(vote)
		}})
	}

	runBestEffort(ctx, tasks)
}
