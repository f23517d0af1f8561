package transfermarkt

import (
	"bytes"
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"FubolSync/internal/config"
	"FubolSync/internal/utils/httpclient"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// baseHeaders 模拟真实浏览器的固定请求头，UA 另行随机
var baseHeaders = map[string]string{
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.9",
	"Cache-Control":             "no-cache",
	"Pragma":                    "no-cache",
	"DNT":                       "1",
	"Connection":                "keep-alive",
	"Upgrade-Insecure-Requests": "1",
}

// StatusError 数据源返回非 2xx
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("请求 %s 返回状态码 %d", e.URL, e.StatusCode)
}

// Fetcher 礼貌抓取：每次请求前随机等待并轮换 UA，不做重试
type Fetcher struct {
	client     *resty.Client
	userAgents []string
	minDelay   time.Duration
	maxDelay   time.Duration
	sleep      func(ctx context.Context, d time.Duration) error
	logger     *logrus.Logger
}

func NewFetcher(cfg *config.ScraperConfig, logger *logrus.Logger) *Fetcher {
	userAgents := cfg.UserAgents
	if len(userAgents) == 0 {
		userAgents = config.DefaultUserAgents
	}
	f := &Fetcher{
		userAgents: userAgents,
		minDelay:   cfg.MinDelay,
		maxDelay:   cfg.MaxDelay,
		sleep:      sleepContext,
		logger:     logger,
	}

	client := resty.NewWithClient(httpclient.NewHTTPClient(cfg, logger))
	client.SetHeaders(baseHeaders)
	client.OnBeforeRequest(f.beforeRequest)
	f.client = client
	return f
}

// beforeRequest 请求前等待随机时长并挑选 UA
func (f *Fetcher) beforeRequest(_ *resty.Client, req *resty.Request) error {
	delay := f.nextDelay()
	f.logger.WithFields(logrus.Fields{
		"url":   req.URL,
		"delay": delay.String(),
	}).Info("抓取页面，请求前等待")
	if err := f.sleep(req.Context(), delay); err != nil {
		return err
	}
	req.SetHeader("User-Agent", f.userAgents[rand.IntN(len(f.userAgents))])
	return nil
}

// Fetch 发起一次 GET 并解析为 HTML 文档；网络错误和非 2xx 直接返回
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	res, err := f.client.R().SetContext(ctx).Get(pageURL)
	if err != nil {
		return nil, fmt.Errorf("请求 %s 失败: %w", pageURL, err)
	}
	if code := res.StatusCode(); code < 200 || code > 299 {
		return nil, &StatusError{URL: pageURL, StatusCode: code}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return nil, fmt.Errorf("解析 %s 失败: %w", pageURL, err)
	}
	return doc, nil
}

// nextDelay 在 [minDelay, maxDelay] 内均匀取值
func (f *Fetcher) nextDelay() time.Duration {
	if f.maxDelay <= f.minDelay {
		return f.minDelay
	}
	return f.minDelay + time.Duration(rand.Int64N(int64(f.maxDelay-f.minDelay)+1))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
