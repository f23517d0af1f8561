package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound 查询目标不存在
var ErrNotFound = errors.New("记录不存在")

// Repos 绑定到同一个会话（或事务）的仓储集合
type Repos struct {
	Leagues LeagueRepository
	Teams   TeamRepository
	Players PlayerRepository
	Runs    ScrapeRunRepository
}

func newRepos(db *gorm.DB) *Repos {
	return &Repos{
		Leagues: NewLeagueRepository(db),
		Teams:   NewTeamRepository(db),
		Players: NewPlayerRepository(db),
		Runs:    NewScrapeRunRepository(db),
	}
}

// UnitOfWork 一次编排运行独占的持久化会话，由调用方创建并传入
type UnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db.Session(&gorm.Session{NewDB: true})}
}

// Repos 非事务读写
func (u *UnitOfWork) Repos() *Repos {
	return newRepos(u.db)
}

// InTx 在一个事务中执行 fn：fn 返回 nil 则提交，返回错误或 panic 则回滚。每次调用对应一次提交
func (u *UnitOfWork) InTx(ctx context.Context, fn func(repos *Repos) error) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("开启事务失败: %w", tx.Error)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(newRepos(tx)); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("提交事务失败: %w", err)
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// normalizePage 页码从1开始，每页默认20、最大100
func normalizePage(page, pageSize int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
