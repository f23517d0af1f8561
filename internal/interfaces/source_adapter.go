package interfaces

import (
	"context"

	"FubolSync/internal/model"

	"github.com/PuerkitoBio/goquery"
)

// SourceAdapter 数据源站点必须实现的核心接口
type SourceAdapter interface {
	GetName() string                                                                 // 数据源名称
	SeedLeagues() []model.LeagueSeed                                                 // 内置种子联赛
	FetchTeams(ctx context.Context, leagueLink string) ([]*model.TeamDraft, error)   // 抓取联赛页并解析球队
	FetchPlayers(ctx context.Context, teamLink string) ([]*model.PlayerDraft, error) // 抓取球队页并解析球员
}

// PageFetcher 拉取单个 HTML 页面并返回可查询的文档
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*goquery.Document, error)
}
