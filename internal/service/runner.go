package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"FubolSync/internal/model"
	"FubolSync/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TriggerAPI  = "api"
	TriggerCron = "cron"
)

type jobFunc func(ctx context.Context, uow *repository.UnitOfWork) (int, error)

// JobRunner 后台执行抓取任务：触发后立即返回任务记录，失败只记录日志与任务状态。
// 不同任务之间不做互斥
type JobRunner struct {
	db     *gorm.DB
	scrape *ScrapeService
	runs   repository.ScrapeRunRepository
	logger *logrus.Logger
	wg     sync.WaitGroup
}

func NewJobRunner(db *gorm.DB, scrape *ScrapeService, logger *logrus.Logger) *JobRunner {
	return &JobRunner{
		db:     db,
		scrape: scrape,
		runs:   repository.NewScrapeRunRepository(db),
		logger: logger,
	}
}

func (r *JobRunner) TriggerLeagueSeed(ctx context.Context, trigger string) (*model.ScrapeRun, error) {
	return r.start(ctx, model.RunKindLeagues, trigger, nil, func(ctx context.Context, uow *repository.UnitOfWork) (int, error) {
		return r.scrape.SeedLeagues(ctx, uow)
	})
}

func (r *JobRunner) TriggerTeamScrape(ctx context.Context, trigger string, avoidLeagueIDs []uint64) (*model.ScrapeRun, error) {
	params := map[string]interface{}{"avoid_leagues": avoidLeagueIDs}
	return r.start(ctx, model.RunKindTeams, trigger, params, func(ctx context.Context, uow *repository.UnitOfWork) (int, error) {
		return r.scrape.ScrapeTeams(ctx, uow, avoidLeagueIDs)
	})
}

// TriggerPlayerScrape 参数非法时直接返回错误，不创建任务
func (r *JobRunner) TriggerPlayerScrape(ctx context.Context, trigger string, sel PlayerSelection) (*model.ScrapeRun, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	return r.start(ctx, model.RunKindPlayers, trigger, sel, func(ctx context.Context, uow *repository.UnitOfWork) (int, error) {
		return r.scrape.ScrapePlayers(ctx, uow, sel)
	})
}

// Wait 等待所有进行中的任务结束
func (r *JobRunner) Wait() {
	r.wg.Wait()
}

func (r *JobRunner) start(ctx context.Context, kind model.RunKind, trigger string, params interface{}, job jobFunc) (*model.ScrapeRun, error) {
	run := &model.ScrapeRun{
		RunUUID:   uuid.NewString(),
		Kind:      kind,
		Trigger:   trigger,
		Status:    model.RunStatusRunning,
		StartedAt: time.Now(),
	}
	if params != nil {
		raw, err := json.Marshal(params)
		if err != nil {
			return nil, fmt.Errorf("序列化任务参数失败: %w", err)
		}
		run.Params = datatypes.JSON(raw)
	}
	if err := r.runs.Create(ctx, run); err != nil {
		return nil, fmt.Errorf("创建任务记录失败: %w", err)
	}

	ack := *run
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.execute(run, job)
	}()
	return &ack, nil
}

// execute 任务使用独立的会话与 Background 上下文，不随触发请求结束而取消
func (r *JobRunner) execute(run *model.ScrapeRun, job jobFunc) {
	ctx := context.Background()
	entry := r.logger.WithFields(logrus.Fields{
		"run_id":  run.RunUUID,
		"kind":    run.Kind,
		"trigger": run.Trigger,
	})
	entry.Info("抓取任务开始")

	processed, err := runJob(ctx, repository.NewUnitOfWork(r.db), job)
	finished := time.Now()
	run.Processed = processed
	run.FinishedAt = &finished
	if err != nil {
		msg := err.Error()
		run.Error = &msg
		run.Status = model.RunStatusFailed
		entry.WithError(err).WithField("processed", processed).Error("抓取任务失败")
	} else {
		run.Status = model.RunStatusSucceeded
		entry.WithField("elapsed", finished.Sub(run.StartedAt).String()).Infof("抓取任务完成，共处理%d项", processed)
	}

	if err := r.runs.Finish(ctx, run); err != nil {
		entry.WithError(err).Error("写回任务状态失败")
	}
}

func runJob(ctx context.Context, uow *repository.UnitOfWork, job jobFunc) (processed int, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("任务 panic: %v", p)
		}
	}()
	return job(ctx, uow)
}
