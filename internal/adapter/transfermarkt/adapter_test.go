package transfermarkt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"FubolSync/internal/adapter"
	"FubolSync/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func fixtureServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	serve := func(name string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			body, err := os.ReadFile(filepath.Join("testdata", name))
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			_, _ = w.Write(body)
		}
	}
	mux.HandleFunc("/superliga/startseite/wettbewerb/ARGC", serve("league_teams.html"))
	mux.HandleFunc("/ca-boca-juniors/startseite/verein/97", serve("team_players.html"))
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>maintenance</body></html>"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRegistryBuildsTransfermarktAdapter(t *testing.T) {
	require.Contains(t, adapter.ListFactories(), SourceName)

	srv := fixtureServer(t)
	src, err := adapter.New(&config.ScraperConfig{
		Source:  SourceName,
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	}, logrus.New())
	require.NoError(t, err)
	require.Equal(t, "Transfermarkt", src.GetName())

	seeds := src.SeedLeagues()
	require.Len(t, seeds, 14)
	require.Equal(t, srv.URL+"/premier-league/startseite/wettbewerb/GB1", seeds[0].Link)

	teams, err := src.FetchTeams(context.Background(), srv.URL+"/superliga/startseite/wettbewerb/ARGC")
	require.NoError(t, err)
	require.Len(t, teams, 3)
	require.Equal(t, "97", teams[0].TmID)
	// 相对链接按配置的站点根地址补全
	require.Equal(t, srv.URL+"/ca-boca-juniors/startseite/verein/97/saison_id/2024", teams[0].Link)

	players, err := src.FetchPlayers(context.Background(), srv.URL+"/ca-boca-juniors/startseite/verein/97")
	require.NoError(t, err)
	require.Len(t, players, 5)
}

func TestAdapterPropagatesShapeErrors(t *testing.T) {
	srv := fixtureServer(t)
	src, err := adapter.New(&config.ScraperConfig{Source: SourceName, BaseURL: srv.URL, Timeout: 5 * time.Second}, logrus.New())
	require.NoError(t, err)

	_, err = src.FetchTeams(context.Background(), srv.URL+"/broken")
	require.ErrorIs(t, err, ErrShape)

	_, err = src.FetchPlayers(context.Background(), srv.URL+"/missing")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestRegistryUnknownSource(t *testing.T) {
	_, err := adapter.New(&config.ScraperConfig{Source: "sofascore"}, logrus.New())
	require.Error(t, err)
}
