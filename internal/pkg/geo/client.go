package geo

import (
	"Faceoff/internal/api/config"
	"Faceoff/internal/pkg/cache"
	"context"
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

const countryCacheTTL = 24 * time.Hour

// Client IP 归属地查询客户端，查询失败一律回退 Unknown，不影响投票主链路
type Client struct {
	http    *resty.Client
	cache   *cache.Cache
	enabled bool
}

type lookupResult struct {
	CountryCode string `json:"countryCode"`
}

func NewClient(cfg config.GeoConfig) *Client {
	client := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(time.Duration(cfg.Timeout) * time.Millisecond).
		SetRetryCount(1)

	return &Client{
		http:    client,
		cache:   cache.New(10000),
		enabled: cfg.Enable,
	}
}

// CountryByIP 查询 IP 所在国家码，失败或未启用时返回空串
func (c *Client) CountryByIP(ctx context.Context, ip string) string {
	if !c.enabled || ip == "" {
		return ""
	}

	if cached, ok := c.cache.Get(ip); ok {
		return cached.(string)
	}

	var result lookupResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("ip", ip).
		SetResult(&result).
		Get("/{ip}")
	if err != nil || resp.IsError() {
		log.WarnContext(ctx, "country lookup failed", "ip", ip, "err", err)
		return ""
	}

	c.cache.Set(ip, result.CountryCode, countryCacheTTL)
	return result.CountryCode
}
