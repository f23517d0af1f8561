package transfermarkt

import (
	"context"
	"fmt"

	"FubolSync/internal/adapter"
	"FubolSync/internal/config"
	"FubolSync/internal/interfaces"
	"FubolSync/internal/model"

	"github.com/sirupsen/logrus"
)

// SourceName 注册表中的数据源名称
const SourceName = "transfermarkt"

func init() {
	adapter.Register(SourceName, NewTransfermarktAdapter)
}

type Adapter struct {
	fetcher   interfaces.PageFetcher
	extractor *Extractor
	logger    *logrus.Logger
}

func NewTransfermarktAdapter(cfg *config.ScraperConfig, logger *logrus.Logger) (interfaces.SourceAdapter, error) {
	return NewAdapterWithFetcher(NewFetcher(cfg, logger), cfg.BaseURL, logger)
}

// NewAdapterWithFetcher 使用自定义 PageFetcher 构建适配器
func NewAdapterWithFetcher(fetcher interfaces.PageFetcher, baseURL string, logger *logrus.Logger) (*Adapter, error) {
	extractor, err := NewExtractor(baseURL, logger)
	if err != nil {
		return nil, err
	}
	return &Adapter{
		fetcher:   fetcher,
		extractor: extractor,
		logger:    logger,
	}, nil
}

// GetName ========== 实现SourceAdapter接口 ==========
func (a *Adapter) GetName() string {
	return "Transfermarkt"
}

func (a *Adapter) SeedLeagues() []model.LeagueSeed {
	return seedLeagues(a.extractor.base)
}

func (a *Adapter) FetchTeams(ctx context.Context, leagueLink string) ([]*model.TeamDraft, error) {
	doc, err := a.fetcher.Fetch(ctx, leagueLink)
	if err != nil {
		return nil, err
	}
	teams, err := a.extractor.ExtractTeams(doc)
	if err != nil {
		return nil, fmt.Errorf("解析联赛页 %s 失败: %w", leagueLink, err)
	}
	return teams, nil
}

func (a *Adapter) FetchPlayers(ctx context.Context, teamLink string) ([]*model.PlayerDraft, error) {
	doc, err := a.fetcher.Fetch(ctx, teamLink)
	if err != nil {
		return nil, err
	}
	players, err := a.extractor.ExtractPlayers(doc)
	if err != nil {
		return nil, fmt.Errorf("解析球队页 %s 失败: %w", teamLink, err)
	}
	return players, nil
}
