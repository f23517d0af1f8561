package service

import (
	"context"
	"testing"

	"FubolSync/internal/model"
	"FubolSync/internal/repository"
	"FubolSync/internal/utils/testdb"

	"github.com/stretchr/testify/require"
)

func TestCatalogTeamsByLeague(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repos := repository.NewUnitOfWork(db).Repos()
	premier := createLeague(t, db, "Premier League")
	createLeague(t, db, "Serie A")
	city := createTeam(t, db, "281", "Manchester City", model.TeamTypeClub)
	_, err := repos.Teams.LinkLeague(ctx, city.ID, premier.ID)
	require.NoError(t, err)

	catalog := NewCatalogService(db, quietLogger())
	grouped, err := catalog.TeamsByLeague(ctx)
	require.NoError(t, err)
	require.Len(t, grouped, 2)
	require.Len(t, grouped["Premier League"], 1)
	require.Equal(t, "Manchester City", grouped["Premier League"][0].Name)
	require.Empty(t, grouped["Serie A"])
}

func TestCatalogNotFound(t *testing.T) {
	ctx := context.Background()
	catalog := NewCatalogService(testdb.New(t), quietLogger())

	_, err := catalog.LeagueTeams(ctx, 42)
	require.ErrorIs(t, err, repository.ErrNotFound)
	_, err = catalog.TeamPlayers(ctx, 42)
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.ErrorIs(t, catalog.DeleteLeague(ctx, 42), repository.ErrNotFound)
	_, err = catalog.GetRun(ctx, "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCatalogDeleteLeagueKeepsTeams(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repos := repository.NewUnitOfWork(db).Repos()
	league := createLeague(t, db, "LaLiga")
	barca := createTeam(t, db, "131", "Barcelona", model.TeamTypeClub)
	_, err := repos.Teams.LinkLeague(ctx, barca.ID, league.ID)
	require.NoError(t, err)

	catalog := NewCatalogService(db, quietLogger())
	require.NoError(t, catalog.DeleteLeague(ctx, league.ID))

	require.EqualValues(t, 0, countRows(t, db, &model.League{}))
	require.EqualValues(t, 0, countRows(t, db, &model.TeamLeagueLink{}))
	require.EqualValues(t, 1, countRows(t, db, &model.Team{}))
}

func TestCatalogTeamPlayersIncludesNationalSquad(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repos := repository.NewUnitOfWork(db).Repos()
	r := NewReconciler(quietLogger())
	club := createTeam(t, db, "418", "Real Madrid", model.TeamTypeClub)
	national := createTeam(t, db, "3377", "France", model.TeamTypeNational)
	_, err := r.UpsertPlayer(ctx, repos, playerDraft("342229", "Kylian Mbappe"), club, model.RoleClub)
	require.NoError(t, err)
	_, err = r.UpsertPlayer(ctx, repos, playerDraft("342229", "Kylian Mbappe"), national, model.RoleNational)
	require.NoError(t, err)

	catalog := NewCatalogService(db, quietLogger())
	for _, id := range []uint64{club.ID, national.ID} {
		players, err := catalog.TeamPlayers(ctx, id)
		require.NoError(t, err)
		require.Len(t, players, 1)
	}
}
