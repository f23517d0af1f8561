package service

import (
	"context"
	"errors"
	"fmt"

	"FubolSync/internal/config"
	"FubolSync/internal/interfaces"
	"FubolSync/internal/model"
	"FubolSync/internal/repository"

	"github.com/sirupsen/logrus"
)

var (
	// ErrLimitTooLarge 球员抓取窗口超过上限
	ErrLimitTooLarge = fmt.Errorf("limit 不能超过 %d", config.MaxPlayersBatch)
	// ErrInvalidSelection 球员抓取参数非法
	ErrInvalidSelection = errors.New("球员抓取参数非法")
)

// PlayerSelection 球员抓取的驱动集合：按联赛过滤优先，其次 offset/limit 窗口，都为空则全部球队
type PlayerSelection struct {
	LeagueIDs []uint64 `json:"league_ids,omitempty"`
	Offset    int      `json:"offset,omitempty"`
	Limit     int      `json:"limit,omitempty"`
}

func (s PlayerSelection) Validate() error {
	if s.Offset < 0 || s.Limit < 0 {
		return fmt.Errorf("%w: offset=%d limit=%d", ErrInvalidSelection, s.Offset, s.Limit)
	}
	if s.Limit > config.MaxPlayersBatch {
		return ErrLimitTooLarge
	}
	return nil
}

// ScrapeService 抓取编排：种子联赛、球队、球员。每次运行顺序执行，遇到第一个错误即终止，已提交的保留
type ScrapeService struct {
	source     interfaces.SourceAdapter
	reconciler *Reconciler
	logger     *logrus.Logger
}

func NewScrapeService(source interfaces.SourceAdapter, logger *logrus.Logger) *ScrapeService {
	return &ScrapeService{
		source:     source,
		reconciler: NewReconciler(logger),
		logger:     logger,
	}
}

// SeedLeagues 写入内置联赛，已存在的同名联赛跳过；整批一次提交。返回新建数量
func (s *ScrapeService) SeedLeagues(ctx context.Context, uow *repository.UnitOfWork) (int, error) {
	created := 0
	err := uow.InTx(ctx, func(repos *repository.Repos) error {
		for _, seed := range s.source.SeedLeagues() {
			existing, err := repos.Leagues.FindByName(ctx, seed.Name)
			if err != nil {
				return fmt.Errorf("查询联赛%s失败: %w", seed.Name, err)
			}
			if existing != nil {
				s.logger.Infof("联赛%s已存在，跳过", seed.Name)
				continue
			}
			if err := repos.Leagues.Create(ctx, seed.ToLeague()); err != nil {
				return fmt.Errorf("保存联赛%s失败: %w", seed.Name, err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.logger.Infof("种子联赛写入完成，新建%d个", created)
	return created, nil
}

// ScrapeTeams 遍历联赛（跳过 avoidLeagueIDs），抓取球队并关联；每个联赛一次提交。返回已提交的联赛数
func (s *ScrapeService) ScrapeTeams(ctx context.Context, uow *repository.UnitOfWork, avoidLeagueIDs []uint64) (int, error) {
	leagues, err := uow.Repos().Leagues.ListExcluding(ctx, avoidLeagueIDs)
	if err != nil {
		return 0, fmt.Errorf("查询联赛失败: %w", err)
	}
	s.logger.WithField("avoid_leagues", avoidLeagueIDs).Infof("开始抓取球队，共%d个联赛", len(leagues))

	committed := 0
	for _, league := range leagues {
		drafts, err := s.source.FetchTeams(ctx, league.Link)
		if err != nil {
			return committed, fmt.Errorf("联赛%s抓取球队失败: %w", league.Name, err)
		}
		s.logger.Infof("联赛%s解析到%d支球队", league.Name, len(drafts))

		linked := 0
		err = uow.InTx(ctx, func(repos *repository.Repos) error {
			for _, draft := range drafts {
				_, isNew, err := s.reconciler.UpsertTeam(ctx, repos, draft, league)
				if err != nil {
					return err
				}
				if isNew {
					linked++
				}
			}
			return nil
		})
		if err != nil {
			return committed, fmt.Errorf("联赛%s球队入库失败: %w", league.Name, err)
		}
		committed++
		s.logger.WithFields(logrus.Fields{
			"league":    league.Name,
			"teams":     len(drafts),
			"new_links": linked,
		}).Info("联赛球队已提交")
	}
	return committed, nil
}

// ScrapePlayers 按选择条件遍历球队，抓取阵容；每支球队一次提交。返回已提交的球队数
func (s *ScrapeService) ScrapePlayers(ctx context.Context, uow *repository.UnitOfWork, sel PlayerSelection) (int, error) {
	if err := sel.Validate(); err != nil {
		return 0, err
	}
	teams, err := s.selectTeams(ctx, uow.Repos(), sel)
	if err != nil {
		return 0, fmt.Errorf("查询球队失败: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"include_leagues": sel.LeagueIDs,
		"offset":          sel.Offset,
		"limit":           sel.Limit,
	}).Infof("开始抓取球员，共%d支球队", len(teams))

	committed := 0
	for _, team := range teams {
		drafts, err := s.source.FetchPlayers(ctx, team.Link)
		if err != nil {
			return committed, fmt.Errorf("球队%s抓取球员失败: %w", team.Name, err)
		}

		role := model.RoleFor(team)
		counts := map[PlayerOutcome]int{}
		err = uow.InTx(ctx, func(repos *repository.Repos) error {
			for _, draft := range drafts {
				outcome, err := s.reconciler.UpsertPlayer(ctx, repos, draft, team, role)
				if err != nil {
					return err
				}
				counts[outcome]++
			}
			return nil
		})
		if err != nil {
			return committed, fmt.Errorf("球队%s球员入库失败: %w", team.Name, err)
		}
		committed++
		s.logger.WithFields(logrus.Fields{
			"team":      team.Name,
			"role":      role,
			"inserted":  counts[PlayerInserted],
			"unchanged": counts[PlayerUnchanged],
			"repointed": counts[PlayerRepointed],
		}).Info("球队球员已提交")
	}
	return committed, nil
}

func (s *ScrapeService) selectTeams(ctx context.Context, repos *repository.Repos, sel PlayerSelection) ([]*model.Team, error) {
	switch {
	case len(sel.LeagueIDs) > 0:
		return repos.Teams.ListByLeagueIDs(ctx, sel.LeagueIDs)
	case sel.Limit > 0:
		return repos.Teams.ListWindow(ctx, sel.Offset, sel.Limit)
	case sel.Offset > 0:
		return repos.Teams.ListWindow(ctx, sel.Offset, -1)
	default:
		return repos.Teams.List(ctx)
	}
}
