package consts

const (
	// AnonymousCaller 未识别身份的兜底值
	AnonymousCaller = "anonymous"
)

const (
	HeaderAnonymousID        = "X-Anonymous-ID"
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitReset     = "X-RateLimit-Reset"
	HeaderRetryAfter         = "Retry-After"
)
