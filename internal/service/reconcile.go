package service

import (
	"context"
	"fmt"

	"FubolSync/internal/model"
	"FubolSync/internal/repository"

	"github.com/sirupsen/logrus"
)

// PlayerOutcome 球员 upsert 的结果
type PlayerOutcome int

const (
	PlayerInserted  PlayerOutcome = iota // 新建
	PlayerUnchanged                      // 已在该队，跳过
	PlayerRepointed                      // 已存在于其他队（或无队），改挂到该队
)

func (o PlayerOutcome) String() string {
	switch o {
	case PlayerInserted:
		return "inserted"
	case PlayerUnchanged:
		return "unchanged"
	case PlayerRepointed:
		return "repointed"
	default:
		return "unknown"
	}
}

// Reconciler 以数据源ID为自然键，把草稿合并进已有数据
type Reconciler struct {
	logger *logrus.Logger
}

func NewReconciler(logger *logrus.Logger) *Reconciler {
	return &Reconciler{logger: logger}
}

// UpsertTeam 按 tm_id 复用已有球队（丢弃草稿其余字段），否则新建；再确保与联赛关联。
// 返回的 bool 表示本次是否新增了关联
func (r *Reconciler) UpsertTeam(ctx context.Context, repos *repository.Repos, draft *model.TeamDraft, league *model.League) (*model.Team, bool, error) {
	team, err := repos.Teams.FindByTmID(ctx, draft.TmID)
	if err != nil {
		return nil, false, fmt.Errorf("查询球队%s失败: %w", draft.TmID, err)
	}
	if team == nil {
		team = draft.ToTeam()
		if err := repos.Teams.Create(ctx, team); err != nil {
			return nil, false, fmt.Errorf("保存球队%s失败: %w", draft.Name, err)
		}
	} else {
		r.logger.WithFields(logrus.Fields{
			"team":   team.Name,
			"tm_id":  draft.TmID,
			"league": league.Name,
		}).Debug("球队已存在，仅关联联赛")
	}

	linked, err := repos.Teams.LinkLeague(ctx, team.ID, league.ID)
	if err != nil {
		return nil, false, fmt.Errorf("关联球队%s与联赛%s失败: %w", team.Name, league.Name, err)
	}
	return team, linked, nil
}

// UpsertPlayer role 决定比较与改写的是俱乐部还是国家队外键。
// tm_id 为空的草稿无法去重，总是新建
func (r *Reconciler) UpsertPlayer(ctx context.Context, repos *repository.Repos, draft *model.PlayerDraft, team *model.Team, role model.AssociationRole) (PlayerOutcome, error) {
	var existing *model.Player
	if draft.TmID != nil {
		found, err := repos.Players.FindByTmID(ctx, *draft.TmID)
		if err != nil {
			return 0, fmt.Errorf("查询球员%s失败: %w", *draft.TmID, err)
		}
		existing = found
	}

	if existing == nil {
		player := draft.ToPlayer()
		role.Assign(player, team.ID)
		if err := repos.Players.Create(ctx, player); err != nil {
			return 0, fmt.Errorf("保存球员%s失败: %w", draft.Name, err)
		}
		return PlayerInserted, nil
	}

	if current := role.TeamIDOf(existing); current != nil && *current == team.ID {
		return PlayerUnchanged, nil
	}
	if err := repos.Players.AssignTeam(ctx, existing.ID, role, team.ID); err != nil {
		return 0, fmt.Errorf("更新球员%s所属球队失败: %w", existing.Name, err)
	}
	return PlayerRepointed, nil
}
