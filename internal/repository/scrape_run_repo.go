package repository

import (
	"context"

	"FubolSync/internal/model"

	"gorm.io/gorm"
)

// ScrapeRunRepository 抓取任务记录仓储
type ScrapeRunRepository interface {
	Create(ctx context.Context, run *model.ScrapeRun) error
	// Finish 写回任务结束状态
	Finish(ctx context.Context, run *model.ScrapeRun) error
	GetByUUID(ctx context.Context, runUUID string) (*model.ScrapeRun, error)
	List(ctx context.Context, kind model.RunKind, page, pageSize int) ([]*model.ScrapeRun, int64, error)
}

type scrapeRunRepository struct {
	db *gorm.DB
}

func NewScrapeRunRepository(db *gorm.DB) ScrapeRunRepository {
	return &scrapeRunRepository{db: db}
}

func (r *scrapeRunRepository) Create(ctx context.Context, run *model.ScrapeRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *scrapeRunRepository) Finish(ctx context.Context, run *model.ScrapeRun) error {
	return r.db.WithContext(ctx).Model(&model.ScrapeRun{}).
		Where("id = ?", run.ID).
		Updates(map[string]interface{}{
			"status":      run.Status,
			"processed":   run.Processed,
			"error":       run.Error,
			"finished_at": run.FinishedAt,
		}).Error
}

func (r *scrapeRunRepository) GetByUUID(ctx context.Context, runUUID string) (*model.ScrapeRun, error) {
	var run model.ScrapeRun
	if err := r.db.WithContext(ctx).Where("run_uuid = ?", runUUID).First(&run).Error; err != nil {
		return nil, notFound(err)
	}
	return &run, nil
}

func (r *scrapeRunRepository) List(ctx context.Context, kind model.RunKind, page, pageSize int) ([]*model.ScrapeRun, int64, error) {
	page, pageSize = normalizePage(page, pageSize)
	db := r.db.WithContext(ctx).Model(&model.ScrapeRun{})
	if kind != "" {
		db = db.Where("kind = ?", kind)
	}
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var runs []*model.ScrapeRun
	if err := db.Order("id DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&runs).Error; err != nil {
		return nil, 0, err
	}
	return runs, total, nil
}
