package service

import (
	"context"

	"FubolSync/internal/model"
	"FubolSync/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CatalogService 面向前端的只读查询与联赛删除
type CatalogService struct {
	uow    *repository.UnitOfWork
	repos  *repository.Repos
	logger *logrus.Logger
}

func NewCatalogService(db *gorm.DB, logger *logrus.Logger) *CatalogService {
	uow := repository.NewUnitOfWork(db)
	return &CatalogService{
		uow:    uow,
		repos:  uow.Repos(),
		logger: logger,
	}
}

// RunListResult 任务列表返回
type RunListResult struct {
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
	Total    int64              `json:"total"`
	Items    []*model.ScrapeRun `json:"items"`
}

func (s *CatalogService) ListLeagues(ctx context.Context) ([]*model.League, error) {
	return s.repos.Leagues.ListExcluding(ctx, nil)
}

// LeagueTeams 联赛不存在返回 repository.ErrNotFound
func (s *CatalogService) LeagueTeams(ctx context.Context, leagueID uint64) ([]*model.Team, error) {
	if _, err := s.repos.Leagues.GetByID(ctx, leagueID); err != nil {
		return nil, err
	}
	return s.repos.Teams.ListByLeagueIDs(ctx, []uint64{leagueID})
}

// TeamsByLeague 联赛名 → 球队列表
func (s *CatalogService) TeamsByLeague(ctx context.Context) (map[string][]*model.Team, error) {
	leagues, err := s.repos.Leagues.ListExcluding(ctx, nil)
	if err != nil {
		return nil, err
	}
	result := make(map[string][]*model.Team, len(leagues))
	for _, league := range leagues {
		teams, err := s.repos.Teams.ListByLeagueIDs(ctx, []uint64{league.ID})
		if err != nil {
			return nil, err
		}
		result[league.Name] = teams
	}
	return result, nil
}

// TeamPlayers 球队不存在返回 repository.ErrNotFound
func (s *CatalogService) TeamPlayers(ctx context.Context, teamID uint64) ([]*model.Player, error) {
	if _, err := s.repos.Teams.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.repos.Players.ListByTeam(ctx, teamID)
}

// DeleteLeague 删除联赛及其关联，球队保留
func (s *CatalogService) DeleteLeague(ctx context.Context, leagueID uint64) error {
	err := s.uow.InTx(ctx, func(repos *repository.Repos) error {
		return repos.Leagues.Delete(ctx, leagueID)
	})
	if err == nil {
		s.logger.WithField("league_id", leagueID).Info("联赛已删除")
	}
	return err
}

func (s *CatalogService) GetRun(ctx context.Context, runUUID string) (*model.ScrapeRun, error) {
	return s.repos.Runs.GetByUUID(ctx, runUUID)
}

func (s *CatalogService) ListRuns(ctx context.Context, kind model.RunKind, page, pageSize int) (*RunListResult, error) {
	runs, total, err := s.repos.Runs.List(ctx, kind, page, pageSize)
	if err != nil {
		return nil, err
	}
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return &RunListResult{Page: page, PageSize: pageSize, Total: total, Items: runs}, nil
}
