package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"FubolSync/internal/model"
	"FubolSync/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeSource 按链接返回预置草稿，记录抓取顺序
type fakeSource struct {
	mu      sync.Mutex
	seeds   []model.LeagueSeed
	teams   map[string][]*model.TeamDraft
	players map[string][]*model.PlayerDraft
	fail    map[string]error
	fetched []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		teams:   map[string][]*model.TeamDraft{},
		players: map[string][]*model.PlayerDraft{},
		fail:    map[string]error{},
	}
}

func (f *fakeSource) GetName() string { return "fake" }

func (f *fakeSource) SeedLeagues() []model.LeagueSeed { return f.seeds }

func (f *fakeSource) record(link string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetched = append(f.fetched, link)
	return f.fail[link]
}

func (f *fakeSource) FetchTeams(_ context.Context, link string) ([]*model.TeamDraft, error) {
	if err := f.record(link); err != nil {
		return nil, err
	}
	return f.teams[link], nil
}

func (f *fakeSource) FetchPlayers(_ context.Context, link string) ([]*model.PlayerDraft, error) {
	if err := f.record(link); err != nil {
		return nil, err
	}
	return f.players[link], nil
}

func (f *fakeSource) fetchedLinks() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.fetched...)
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}

func teamDraft(tmID, name string) *model.TeamDraft {
	return &model.TeamDraft{
		Name:        name,
		DisplayName: name,
		Link:        fmt.Sprintf("https://tm.test/%s/startseite/verein/%s", name, tmID),
		TmID:        tmID,
	}
}

func playerDraft(tmID, name string) *model.PlayerDraft {
	var key *string
	if tmID != "" {
		key = &tmID
	}
	pos := model.PositionForward
	return &model.PlayerDraft{
		Name:     name,
		Position: &pos,
		Link:     "https://tm.test/" + name + "/profil/spieler/" + tmID,
		TmID:     key,
	}
}

func createLeague(t *testing.T, db *gorm.DB, name string) *model.League {
	t.Helper()
	league := &model.League{Name: name, LeagueType: model.LeagueTypeClubs, Link: "https://tm.test/league/" + name}
	require.NoError(t, repository.NewLeagueRepository(db).Create(context.Background(), league))
	return league
}

func createTeam(t *testing.T, db *gorm.DB, tmID, name string, teamType model.TeamType) *model.Team {
	t.Helper()
	team := teamDraft(tmID, name).ToTeam()
	team.TeamType = teamType
	require.NoError(t, repository.NewTeamRepository(db).Create(context.Background(), team))
	return team
}

func countRows(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}
