package consts

const (
	VoteDedupKey      = "vote:dedup:"
	LeaderboardKey    = "leaderboard:"
	UserStatsKey      = "user:stats:"
	ImageAggregateKey = "image:aggregate:"
	AggregateRunLock  = "lock:analytics:run"
	CountryLookupKey  = "geo:country:"
)
