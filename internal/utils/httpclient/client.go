package httpclient

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/url"
	"time"

	"FubolSync/internal/config"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/sirupsen/logrus"
)

// NewHTTPClient 抓取用HTTP客户端（支持代理、超时、gzip解压、可选 cloudflare 绕过）
func NewHTTPClient(cfg *config.ScraperConfig, logger *logrus.Logger) *http.Client {
	return &http.Client{
		Timeout:   cfg.Timeout,
		Transport: wrapTransport(newBaseTransport(cfg, logger), cfg, logger),
	}
}

// newBaseTransport 底层传输：连接池参数与代理
func newBaseTransport(cfg *config.ScraperConfig, logger *logrus.Logger) *http.Transport {
	transport := &http.Transport{
		MaxIdleConns:        100,
		IdleConnTimeout:     30 * time.Second,
		DisableCompression:  true,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	// 配置代理
	if cfg.Proxy != "" {
		proxyURL, err := url.Parse(cfg.Proxy)
		if err != nil {
			logger.WithError(err).WithField("proxy", cfg.Proxy).Warn("代理地址解析失败，将不使用代理")
		} else {
			transport.Proxy = http.ProxyURL(proxyURL)
			logger.WithField("proxy", cfg.Proxy).Info("HTTP客户端已配置代理")
		}
	}
	return transport
}

// wrapTransport cloudflare 绕过必须直接包裹 *http.Transport 才会写入 TLS 曲线配置，gzip 处理在最外层
func wrapTransport(base *http.Transport, cfg *config.ScraperConfig, logger *logrus.Logger) http.RoundTripper {
	var inner http.RoundTripper = base
	if cfg.CloudflareBypass {
		inner = cloudflarebp.AddCloudFlareByPass(base)
		logger.Info("HTTP客户端已启用 cloudflare 绕过")
	}
	return &compressedTransport{transport: inner, logger: logger}
}

// compressedTransport 主动声明 gzip 并自行解压响应体
type compressedTransport struct {
	transport http.RoundTripper
	logger    *logrus.Logger
}

func (c *compressedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Accept-Encoding", "gzip")
	resp, err := c.transport.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.Header.Get("Content-Encoding") == "gzip" {
		gzReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			c.logger.WithError(err).Warn("gzip解压失败，返回原始响应")
			return resp, nil
		}
		resp.Body = &gzipReadCloser{
			Reader: gzReader,
			closer: resp.Body,
		}
		resp.Header.Del("Content-Encoding")
		resp.Header.Del("Content-Length")
		resp.ContentLength = -1
	}

	return resp, nil
}

// gzipReadCloser 关闭时同时关闭解压 reader 与原始响应体
type gzipReadCloser struct {
	*gzip.Reader
	closer io.ReadCloser
}

func (g *gzipReadCloser) Close() error {
	if err := g.Reader.Close(); err != nil {
		_ = g.closer.Close()
		return err
	}
	return g.closer.Close()
}
