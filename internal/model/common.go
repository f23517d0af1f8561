package model

// LeagueType 联赛类型枚举（俱乐部赛事 / 国家队赛事）
type LeagueType string

const (
	LeagueTypeClubs    LeagueType = "Clubes"
	LeagueTypeNational LeagueType = "Selecciones"
)

// TeamType 球队类型枚举
type TeamType string

const (
	TeamTypeClub     TeamType = "Club"
	TeamTypeNational TeamType = "Seleccion"
)

// Position 球员位置枚举，未识别时为空
type Position string

const (
	PositionGoalkeeper Position = "Arquero"
	PositionDefender   Position = "Defensor"
	PositionMidfielder Position = "Mediocampista"
	PositionForward    Position = "Delantero"
)

// AssociationRole 球员与球队关联的角色：俱乐部 or 国家队
type AssociationRole string

const (
	RoleClub     AssociationRole = "club"
	RoleNational AssociationRole = "national"
)

// Column 角色对应的 players 表外键列
func (r AssociationRole) Column() string {
	if r == RoleNational {
		return "national_team_id"
	}
	return "team_id"
}

// TeamIDOf 返回球员在该角色下关联的球队ID
func (r AssociationRole) TeamIDOf(p *Player) *uint64 {
	if r == RoleNational {
		return p.NationalTeamID
	}
	return p.TeamID
}

// Assign 把球员在该角色下关联到 teamID
func (r AssociationRole) Assign(p *Player, teamID uint64) {
	if r == RoleNational {
		p.NationalTeamID = &teamID
		return
	}
	p.TeamID = &teamID
}

// RoleFor 根据球队类型决定球员关联角色
func RoleFor(t *Team) AssociationRole {
	if t.TeamType == TeamTypeNational {
		return RoleNational
	}
	return RoleClub
}

// RunKind 抓取任务类型
type RunKind string

const (
	RunKindLeagues RunKind = "leagues"
	RunKindTeams   RunKind = "teams"
	RunKindPlayers RunKind = "players"
)

// RunStatus 抓取任务状态
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusSucceeded RunStatus = "succeeded"
	RunStatusFailed    RunStatus = "failed"
)
