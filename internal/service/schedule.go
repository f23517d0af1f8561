package service

import (
	"context"
	"fmt"
	"sync"

	"FubolSync/internal/config"
	"FubolSync/internal/repository"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler 按 cron 定时触发抓取任务
type Scheduler struct {
	cron   *cron.Cron
	runner *JobRunner
	teams  repository.TeamRepository
	batch  int
	logger *logrus.Logger

	mu           sync.Mutex
	playerOffset int
}

func NewScheduler(cfg config.SyncConfig, runner *JobRunner, teams repository.TeamRepository, logger *logrus.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:   cron.New(cron.WithLogger(cronLogger{logger: logger})),
		runner: runner,
		teams:  teams,
		batch:  cfg.PlayersBatch,
		logger: logger,
	}
	if s.batch <= 0 || s.batch > config.MaxPlayersBatch {
		s.batch = config.MaxPlayersBatch
	}

	jobs := []struct {
		name string
		expr string
		fn   func()
	}{
		{"leagues", cfg.LeaguesCron, s.runLeagues},
		{"teams", cfg.TeamsCron, s.runTeams},
		{"players", cfg.PlayersCron, s.runPlayers},
	}
	for _, j := range jobs {
		if j.expr == "" {
			continue
		}
		if _, err := s.cron.AddFunc(j.expr, j.fn); err != nil {
			return nil, fmt.Errorf("注册定时任务%s失败（%s）: %w", j.name, j.expr, err)
		}
		logger.WithFields(logrus.Fields{"job": j.name, "expr": j.expr}).Info("定时任务已注册")
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop 停止调度，返回的 context 在正在执行的回调结束后完成
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) runLeagues() {
	if _, err := s.runner.TriggerLeagueSeed(context.Background(), TriggerCron); err != nil {
		s.logger.WithError(err).Error("定时触发联赛写入失败")
	}
}

func (s *Scheduler) runTeams() {
	if _, err := s.runner.TriggerTeamScrape(context.Background(), TriggerCron, nil); err != nil {
		s.logger.WithError(err).Error("定时触发球队抓取失败")
	}
}

// runPlayers 每次处理一个窗口，offset 逐次前移，越过球队总数后回到 0
func (s *Scheduler) runPlayers() {
	ctx := context.Background()
	sel, err := s.nextPlayerWindow(ctx)
	if err != nil {
		s.logger.WithError(err).Error("计算球员抓取窗口失败")
		return
	}
	if _, err := s.runner.TriggerPlayerScrape(ctx, TriggerCron, sel); err != nil {
		s.logger.WithError(err).Error("定时触发球员抓取失败")
	}
}

func (s *Scheduler) nextPlayerWindow(ctx context.Context) (PlayerSelection, error) {
	total, err := s.teams.Count(ctx)
	if err != nil {
		return PlayerSelection{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if int64(s.playerOffset) >= total {
		s.playerOffset = 0
	}
	sel := PlayerSelection{Offset: s.playerOffset, Limit: s.batch}
	s.playerOffset += s.batch
	return sel, nil
}

// cronLogger 把 cron 的 key/value 日志转给 logrus
type cronLogger struct {
	logger *logrus.Logger
}

func (l cronLogger) fields(keysAndValues []interface{}) logrus.Fields {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return fields
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.WithFields(l.fields(keysAndValues)).Debugf("cron: %s", msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.WithError(err).WithFields(l.fields(keysAndValues)).Errorf("cron: %s", msg)
}
