package repository

import (
	"context"
	"errors"

	"FubolSync/internal/model"

	"gorm.io/gorm"
)

// LeagueRepository 联赛仓储
type LeagueRepository interface {
	// FindByName 按名称查找，不存在返回 nil
	FindByName(ctx context.Context, name string) (*model.League, error)
	Create(ctx context.Context, league *model.League) error
	// ListExcluding 按ID升序列出联赛，跳过 excludeIDs
	ListExcluding(ctx context.Context, excludeIDs []uint64) ([]*model.League, error)
	GetByID(ctx context.Context, id uint64) (*model.League, error)
	// Delete 删除联赛及其球队关联，球队本身保留
	Delete(ctx context.Context, id uint64) error
}

type leagueRepository struct {
	db *gorm.DB
}

func NewLeagueRepository(db *gorm.DB) LeagueRepository {
	return &leagueRepository{db: db}
}

func (r *leagueRepository) FindByName(ctx context.Context, name string) (*model.League, error) {
	var league model.League
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&league).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &league, nil
}

func (r *leagueRepository) Create(ctx context.Context, league *model.League) error {
	return r.db.WithContext(ctx).Create(league).Error
}

func (r *leagueRepository) ListExcluding(ctx context.Context, excludeIDs []uint64) ([]*model.League, error) {
	db := r.db.WithContext(ctx).Model(&model.League{})
	if len(excludeIDs) > 0 {
		db = db.Where("id NOT IN ?", excludeIDs)
	}
	var leagues []*model.League
	if err := db.Order("id ASC").Find(&leagues).Error; err != nil {
		return nil, err
	}
	return leagues, nil
}

func (r *leagueRepository) GetByID(ctx context.Context, id uint64) (*model.League, error) {
	var league model.League
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&league).Error; err != nil {
		return nil, notFound(err)
	}
	return &league, nil
}

func (r *leagueRepository) Delete(ctx context.Context, id uint64) error {
	if err := r.db.WithContext(ctx).Where("league_id = ?", id).Delete(&model.TeamLeagueLink{}).Error; err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.League{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
