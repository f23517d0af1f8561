package model

import (
	"time"
)

type League struct {
	ID         uint64     `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID" json:"id"`
	Name       string     `gorm:"column:name;type:varchar(128);uniqueIndex;not null;comment:联赛名称" json:"name"`
	LeagueType LeagueType `gorm:"column:league_type;type:varchar(16);not null;default:Clubes;comment:联赛类型" json:"league_type"`
	TmID       *string    `gorm:"column:tm_id;type:varchar(32);index;comment:数据源联赛ID" json:"tm_id"`
	FubolxdID  *uint64    `gorm:"column:fubolxd_id;type:bigint;comment:前端系统ID" json:"fubolxd_id"`
	Link       string     `gorm:"column:link;type:varchar(512);not null;comment:数据源链接" json:"link"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime;comment:创建时间" json:"-"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime;comment:更新时间" json:"-"`
}

type Team struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(128);index;not null;comment:数据源球队名" json:"name"`
	FubolxdName string    `gorm:"column:fubolxd_name;type:varchar(128);not null;comment:展示名" json:"fubolxd_name"`
	TmID        *string   `gorm:"column:tm_id;type:varchar(32);uniqueIndex;comment:数据源球队ID" json:"tm_id"`
	FubolxdID   *uint64   `gorm:"column:fubolxd_id;type:bigint;comment:前端系统ID" json:"fubolxd_id"`
	Link        string    `gorm:"column:link;type:varchar(512);not null;comment:数据源链接" json:"link"`
	TeamType    TeamType  `gorm:"column:team_type;type:varchar(16);not null;default:Club;comment:球队类型" json:"team_type"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime;comment:创建时间" json:"-"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime;comment:更新时间" json:"-"`
}

type Player struct {
	ID             uint64    `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID" json:"id"`
	Name           string    `gorm:"column:name;type:varchar(128);not null;comment:球员名" json:"name"`
	Position       *Position `gorm:"column:position;type:varchar(16);comment:位置" json:"position"`
	TeamID         *uint64   `gorm:"column:team_id;type:bigint;index;comment:俱乐部ID" json:"team_id"`
	NationalTeamID *uint64   `gorm:"column:national_team_id;type:bigint;index;comment:国家队ID" json:"national_team_id"`
	TmID           *string   `gorm:"column:tm_id;type:varchar(32);uniqueIndex;comment:数据源球员ID" json:"tm_id"`
	FubolxdID      *uint64   `gorm:"column:fubolxd_id;type:bigint;comment:前端系统ID" json:"fubolxd_id"`
	Link           string    `gorm:"column:link;type:varchar(512);not null;comment:数据源链接" json:"link"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime;comment:创建时间" json:"-"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime;comment:更新时间" json:"-"`
}

// TeamLeagueLink 球队与联赛多对多关联，(team_id, league_id) 唯一
type TeamLeagueLink struct {
	TeamID   uint64 `gorm:"column:team_id;primaryKey;autoIncrement:false"`
	LeagueID uint64 `gorm:"column:league_id;primaryKey;autoIncrement:false;index"`
}

func (League) TableName() string         { return "leagues" }
func (Team) TableName() string           { return "teams" }
func (Player) TableName() string         { return "players" }
func (TeamLeagueLink) TableName() string { return "team_league_link" }

// AllModels AutoMigrate 顺序
func AllModels() []interface{} {
	return []interface{}{
		&League{},
		&Team{},
		&Player{},
		&TeamLeagueLink{},
		&ScrapeRun{},
	}
}
