package transfermarkt

import (
	"net/url"
	"regexp"

	"FubolSync/internal/model"
)

var leagueKeyPattern = regexp.MustCompile(`/(?:pokal)?wettbewerb/(\w+)`)

type seedLeague struct {
	name string
	path string
}

// defaultLeagues 内置种子联赛，顺序即入库顺序
var defaultLeagues = []seedLeague{
	// 欧洲五大联赛
	{"Premier League", "/premier-league/startseite/wettbewerb/GB1"},
	{"LaLiga", "/laliga/startseite/wettbewerb/ES1"},
	{"Serie A", "/serie-a/startseite/wettbewerb/IT1"},
	{"Bundesliga", "/bundesliga/startseite/wettbewerb/L1"},
	{"Ligue 1", "/ligue-1/startseite/wettbewerb/FR1"},
	// 欧洲其他
	{"Eredivise", "/eredivisie/startseite/wettbewerb/NL1"},
	{"Primeira Liga", "/liga-nos/startseite/wettbewerb/PO1"},
	// 南美
	{"Liga Profesional Argentina", "/superliga/startseite/wettbewerb/ARGC"},
	{"Brasileirão Série A", "/campeonato-brasileiro-serie-a/startseite/wettbewerb/BRA1"},
	{"Copa Argentina 2025", "/copa-argentina/teilnehmer/pokalwettbewerb/ARCA/saison_id/2024"},
	// 洲际赛事
	{"UEFA Champions League", "/uefa-champions-league/teilnehmer/pokalwettbewerb/CL/saison_id/2025"},
	{"UEFA Europa League", "/europa-league/teilnehmer/pokalwettbewerb/EL/saison_id/2025"},
	{"Copa Libertadores 2025", "/copa-libertadores/teilnehmer/pokalwettbewerb/CLI/saison_id/2024"},
	{"Copa Sudamericana 2025", "/copa-sudamericana/teilnehmer/pokalwettbewerb/CS/saison_id/2024"},
}

// LeagueKey 从联赛链接解析数据源ID，失败时回退为联赛名
func LeagueKey(link, name string) string {
	if m := leagueKeyPattern.FindStringSubmatch(link); m != nil {
		return m[1]
	}
	return name
}

// seedLeagues 按站点根地址展开种子联赛
func seedLeagues(base *url.URL) []model.LeagueSeed {
	seeds := make([]model.LeagueSeed, 0, len(defaultLeagues))
	for _, l := range defaultLeagues {
		link := base.ResolveReference(&url.URL{Path: l.path}).String()
		seeds = append(seeds, model.LeagueSeed{
			Name:       l.name,
			Link:       link,
			TmID:       LeagueKey(link, l.name),
			LeagueType: model.LeagueTypeClubs,
		})
	}
	return seeds
}
