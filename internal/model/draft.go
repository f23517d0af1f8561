package model

// TeamDraft 从联赛页解析出的球队（尚未入库）
type TeamDraft struct {
	Name        string // 原始名称
	DisplayName string // 美化后的展示名
	Link        string // 绝对链接
	TmID        string // 数据源球队ID，严格模式下必有
}

// PlayerDraft 从球队阵容页解析出的球员（尚未入库）
type PlayerDraft struct {
	Name     string
	Position *Position // 无法翻译时为 nil
	Link     string
	TmID     *string // 链接不匹配时为 nil，此类球员无法去重
}

// LeagueSeed 内置的种子联赛
type LeagueSeed struct {
	Name       string
	Link       string
	TmID       string // 从链接解析，失败时回退为名称
	LeagueType LeagueType
}

// ToTeam 草稿转为待插入实体
func (d *TeamDraft) ToTeam() *Team {
	tmID := d.TmID
	return &Team{
		Name:        d.Name,
		FubolxdName: d.DisplayName,
		TmID:        &tmID,
		Link:        d.Link,
		TeamType:    TeamTypeClub,
	}
}

// ToPlayer 草稿转为待插入实体（不含球队关联）
func (d *PlayerDraft) ToPlayer() *Player {
	return &Player{
		Name:     d.Name,
		Position: d.Position,
		TmID:     d.TmID,
		Link:     d.Link,
	}
}

// ToLeague 种子转为待插入实体
func (s *LeagueSeed) ToLeague() *League {
	tmID := s.TmID
	leagueType := s.LeagueType
	if leagueType == "" {
		leagueType = LeagueTypeClubs
	}
	return &League{
		Name:       s.Name,
		LeagueType: leagueType,
		TmID:       &tmID,
		Link:       s.Link,
	}
}
