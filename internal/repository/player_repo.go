package repository

import (
	"context"
	"errors"

	"FubolSync/internal/model"

	"gorm.io/gorm"
)

// PlayerRepository 球员仓储
type PlayerRepository interface {
	// FindByTmID 按数据源ID查找，不存在返回 nil
	FindByTmID(ctx context.Context, tmID string) (*model.Player, error)
	Create(ctx context.Context, player *model.Player) error
	// AssignTeam 只改写该角色对应的外键列
	AssignTeam(ctx context.Context, playerID uint64, role model.AssociationRole, teamID uint64) error
	// ListByTeam 俱乐部或国家队为该队的球员
	ListByTeam(ctx context.Context, teamID uint64) ([]*model.Player, error)
	CountByTmID(ctx context.Context, tmID string) (int64, error)
}

type playerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) FindByTmID(ctx context.Context, tmID string) (*model.Player, error) {
	var player model.Player
	err := r.db.WithContext(ctx).Where("tm_id = ?", tmID).First(&player).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *playerRepository) Create(ctx context.Context, player *model.Player) error {
	return r.db.WithContext(ctx).Create(player).Error
}

func (r *playerRepository) AssignTeam(ctx context.Context, playerID uint64, role model.AssociationRole, teamID uint64) error {
	return r.db.WithContext(ctx).Model(&model.Player{}).
		Where("id = ?", playerID).
		Update(role.Column(), teamID).Error
}

func (r *playerRepository) ListByTeam(ctx context.Context, teamID uint64) ([]*model.Player, error) {
	var players []*model.Player
	if err := r.db.WithContext(ctx).
		Where("team_id = ? OR national_team_id = ?", teamID, teamID).
		Order("id ASC").
		Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) CountByTmID(ctx context.Context, tmID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Player{}).Where("tm_id = ?", tmID).Count(&count).Error
	return count, err
}
