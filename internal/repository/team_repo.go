package repository

import (
	"context"
	"errors"

	"FubolSync/internal/model"

	"gorm.io/gorm"
)

// TeamRepository 球队仓储
type TeamRepository interface {
	// FindByTmID 按数据源ID查找，不存在返回 nil
	FindByTmID(ctx context.Context, tmID string) (*model.Team, error)
	Create(ctx context.Context, team *model.Team) error
	// LinkLeague 关联球队与联赛；已关联时不做任何事并返回 false
	LinkLeague(ctx context.Context, teamID, leagueID uint64) (bool, error)
	// List 按ID升序列出全部球队
	List(ctx context.Context) ([]*model.Team, error)
	// ListWindow 按ID升序取 [offset, offset+limit) 窗口
	ListWindow(ctx context.Context, offset, limit int) ([]*model.Team, error)
	// ListByLeagueIDs 列出关联到任一指定联赛的球队（去重，按ID升序）
	ListByLeagueIDs(ctx context.Context, leagueIDs []uint64) ([]*model.Team, error)
	GetByID(ctx context.Context, id uint64) (*model.Team, error)
	CountLinks(ctx context.Context, teamID uint64) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type teamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) FindByTmID(ctx context.Context, tmID string) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).Where("tm_id = ?", tmID).First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) Create(ctx context.Context, team *model.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *teamRepository) LinkLeague(ctx context.Context, teamID, leagueID uint64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.TeamLeagueLink{}).
		Where("team_id = ? AND league_id = ?", teamID, leagueID).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	link := &model.TeamLeagueLink{TeamID: teamID, LeagueID: leagueID}
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *teamRepository) List(ctx context.Context) ([]*model.Team, error) {
	var teams []*model.Team
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) ListWindow(ctx context.Context, offset, limit int) ([]*model.Team, error) {
	if offset < 0 {
		offset = 0
	}
	var teams []*model.Team
	if err := r.db.WithContext(ctx).Order("id ASC").Offset(offset).Limit(limit).Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) ListByLeagueIDs(ctx context.Context, leagueIDs []uint64) ([]*model.Team, error) {
	if len(leagueIDs) == 0 {
		return []*model.Team{}, nil
	}
	linked := r.db.Model(&model.TeamLeagueLink{}).Select("team_id").Where("league_id IN ?", leagueIDs)
	var teams []*model.Team
	if err := r.db.WithContext(ctx).Where("id IN (?)", linked).Order("id ASC").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) GetByID(ctx context.Context, id uint64) (*model.Team, error) {
	var team model.Team
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&team).Error; err != nil {
		return nil, notFound(err)
	}
	return &team, nil
}

func (r *teamRepository) CountLinks(ctx context.Context, teamID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TeamLeagueLink{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

func (r *teamRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Team{}).Count(&count).Error
	return count, err
}
