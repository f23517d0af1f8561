package model

import (
	"time"

	"gorm.io/datatypes"
)

// ScrapeRun 一次后台抓取任务的记录
type ScrapeRun struct {
	ID         uint64         `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID" json:"-"`
	RunUUID    string         `gorm:"column:run_uuid;type:varchar(64);uniqueIndex;not null;comment:任务唯一ID" json:"run_id"`
	Kind       RunKind        `gorm:"column:kind;type:varchar(16);not null;index;comment:任务类型" json:"kind"`
	Trigger    string         `gorm:"column:trigger_source;type:varchar(16);not null;comment:触发方式：api/cron" json:"trigger"`
	Params     datatypes.JSON `gorm:"column:params;comment:任务参数" json:"params"`
	Status     RunStatus      `gorm:"column:status;type:varchar(16);not null;comment:状态" json:"status"`
	Processed  int            `gorm:"column:processed;type:int;default:0;comment:已提交条目数" json:"processed"`
	Error      *string        `gorm:"column:error;type:text;comment:失败原因" json:"error,omitempty"`
	StartedAt  time.Time      `gorm:"column:started_at;not null;comment:开始时间" json:"started_at"`
	FinishedAt *time.Time     `gorm:"column:finished_at;comment:结束时间" json:"finished_at,omitempty"`
}

func (ScrapeRun) TableName() string { return "scrape_runs" }
