package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"FubolSync/internal/model"
	"FubolSync/internal/repository"
	"FubolSync/internal/utils/testdb"

	"github.com/stretchr/testify/require"
)

func TestJobRunnerReturnsAckAndRecordsSuccess(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	league := createLeague(t, db, "Liga Profesional Argentina")

	source := newFakeSource()
	source.teams[league.Link] = []*model.TeamDraft{teamDraft("189", "Boca Juniors"), teamDraft("209", "River Plate")}
	runner := NewJobRunner(db, NewScrapeService(source, quietLogger()), quietLogger())

	ack, err := runner.TriggerTeamScrape(ctx, TriggerAPI, []uint64{999})
	require.NoError(t, err)
	require.NotEmpty(t, ack.RunUUID)
	require.Equal(t, model.RunStatusRunning, ack.Status)
	require.Equal(t, model.RunKindTeams, ack.Kind)
	require.Equal(t, TriggerAPI, ack.Trigger)

	runner.Wait()

	run, err := repository.NewScrapeRunRepository(db).GetByUUID(ctx, ack.RunUUID)
	require.NoError(t, err)
	require.Equal(t, model.RunStatusSucceeded, run.Status)
	require.Equal(t, 1, run.Processed)
	require.Nil(t, run.Error)
	require.NotNil(t, run.FinishedAt)

	var params map[string][]uint64
	require.NoError(t, json.Unmarshal(run.Params, &params))
	require.Equal(t, []uint64{999}, params["avoid_leagues"])
	require.EqualValues(t, 2, countRows(t, db, &model.Team{}))
}

func TestJobRunnerRecordsFailure(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	team := createTeam(t, db, "189", "Boca Juniors", model.TeamTypeClub)

	source := newFakeSource()
	source.fail[team.Link] = errors.New("status 403")
	runner := NewJobRunner(db, NewScrapeService(source, quietLogger()), quietLogger())

	ack, err := runner.TriggerPlayerScrape(ctx, TriggerCron, PlayerSelection{Limit: 10})
	require.NoError(t, err)
	runner.Wait()

	run, err := repository.NewScrapeRunRepository(db).GetByUUID(ctx, ack.RunUUID)
	require.NoError(t, err)
	require.Equal(t, model.RunStatusFailed, run.Status)
	require.Equal(t, TriggerCron, run.Trigger)
	require.NotNil(t, run.Error)
	require.Contains(t, *run.Error, "status 403")
	require.Zero(t, run.Processed)
}

func TestJobRunnerRejectsInvalidSelectionWithoutRun(t *testing.T) {
	db := testdb.New(t)
	runner := NewJobRunner(db, NewScrapeService(newFakeSource(), quietLogger()), quietLogger())

	ack, err := runner.TriggerPlayerScrape(context.Background(), TriggerAPI, PlayerSelection{Limit: 500})
	require.ErrorIs(t, err, ErrLimitTooLarge)
	require.Nil(t, ack)
	require.EqualValues(t, 0, countRows(t, db, &model.ScrapeRun{}))
}

func TestJobRunnerSeedsLeagues(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	source := newFakeSource()
	source.seeds = []model.LeagueSeed{{Name: "Serie A", Link: "https://tm.test/serie-a/startseite/wettbewerb/IT1", TmID: "IT1"}}
	runner := NewJobRunner(db, NewScrapeService(source, quietLogger()), quietLogger())

	ack, err := runner.TriggerLeagueSeed(ctx, TriggerAPI)
	require.NoError(t, err)
	runner.Wait()

	run, err := repository.NewScrapeRunRepository(db).GetByUUID(ctx, ack.RunUUID)
	require.NoError(t, err)
	require.Equal(t, model.RunStatusSucceeded, run.Status)
	require.Equal(t, 1, run.Processed)
}

func TestRunJobRecoversPanic(t *testing.T) {
	processed, err := runJob(context.Background(), nil, func(context.Context, *repository.UnitOfWork) (int, error) {
		panic("boom")
	})
	require.Zero(t, processed)
	require.ErrorContains(t, err, "boom")
}
