package transfermarkt

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"FubolSync/internal/model"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
)

var (
	// ErrShape 页面缺少预期的表格结构
	ErrShape = errors.New("页面结构不符合预期")
	// ErrTeamKey 球队链接中解析不到数据源ID
	ErrTeamKey = errors.New("无法从链接解析球队ID")

	teamKeyPattern   = regexp.MustCompile(`/verein/(\w+)`)
	playerKeyPattern = regexp.MustCompile(`/spieler/(\d+)`)
)

// Extractor 解析 table.items 列表页
type Extractor struct {
	base   *url.URL
	logger *logrus.Logger
}

func NewExtractor(baseURL string, logger *logrus.Logger) (*Extractor, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("解析站点根地址失败: %w", err)
	}
	if !base.IsAbs() {
		return nil, fmt.Errorf("站点根地址必须为绝对地址: %s", baseURL)
	}
	return &Extractor{base: base, logger: logger}, nil
}

// itemRows 定位 table.items > tbody 的直接子行，嵌套表格的行不计入
func itemRows(doc *goquery.Document) (*goquery.Selection, error) {
	table := doc.Find("table.items").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("%w: 缺少 table.items", ErrShape)
	}
	body := table.ChildrenFiltered("tbody").First()
	if body.Length() == 0 {
		return nil, fmt.Errorf("%w: 缺少 tbody", ErrShape)
	}
	rows := body.ChildrenFiltered("tr")
	if rows.Length() == 0 {
		return nil, fmt.Errorf("%w: tbody 中没有数据行", ErrShape)
	}
	return rows, nil
}

func (e *Extractor) absolute(href string) (string, error) {
	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("%w: 链接非法 %q", ErrShape, href)
	}
	return e.base.ResolveReference(ref).String(), nil
}

// ExtractTeams 严格模式：任一行结构缺失或无法解析球队ID即整页失败
func (e *Extractor) ExtractTeams(doc *goquery.Document) ([]*model.TeamDraft, error) {
	rows, err := itemRows(doc)
	if err != nil {
		return nil, err
	}

	teams := make([]*model.TeamDraft, 0, rows.Length())
	var rowErr error
	rows.EachWithBreak(func(i int, row *goquery.Selection) bool {
		team, err := e.teamFromRow(i+1, row)
		if err != nil {
			rowErr = err
			return false
		}
		teams = append(teams, team)
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}
	return teams, nil
}

func (e *Extractor) teamFromRow(n int, row *goquery.Selection) (*model.TeamDraft, error) {
	cell := row.Find("td.hauptlink, td.no-border-links").First()
	if cell.Length() == 0 {
		return nil, fmt.Errorf("%w: 第%d行缺少球队单元格", ErrShape, n)
	}
	anchor := cell.Find("a").First()
	href, ok := anchor.Attr("href")
	if anchor.Length() == 0 || !ok {
		return nil, fmt.Errorf("%w: 第%d行缺少球队链接", ErrShape, n)
	}
	name := strings.TrimSpace(anchor.Text())
	if name == "" {
		return nil, fmt.Errorf("%w: 第%d行球队名为空", ErrShape, n)
	}
	m := teamKeyPattern.FindStringSubmatch(href)
	if m == nil {
		return nil, fmt.Errorf("%w: %s", ErrTeamKey, href)
	}
	link, err := e.absolute(href)
	if err != nil {
		return nil, err
	}
	return &model.TeamDraft{
		Name:        name,
		DisplayName: PrettyName(name),
		Link:        link,
		TmID:        m[1],
	}, nil
}

// ExtractPlayers 位置单元格缺失或无 title 时跳过该行并告警，其余结构缺失仍然失败
func (e *Extractor) ExtractPlayers(doc *goquery.Document) ([]*model.PlayerDraft, error) {
	rows, err := itemRows(doc)
	if err != nil {
		return nil, err
	}

	players := make([]*model.PlayerDraft, 0, rows.Length())
	var rowErr error
	rows.EachWithBreak(func(i int, row *goquery.Selection) bool {
		posCell := row.Find("td.zentriert, td.rueckennummer").First()
		title, ok := posCell.Attr("title")
		if posCell.Length() == 0 || !ok {
			e.logger.WithField("row", i+1).Warn("位置单元格缺失或没有 title，跳过该行")
			return true
		}
		anchor := row.Find("td.hauptlink").First().Find("a").First()
		href, ok := anchor.Attr("href")
		if anchor.Length() == 0 || !ok {
			rowErr = fmt.Errorf("%w: 第%d行缺少球员链接", ErrShape, i+1)
			return false
		}
		link, err := e.absolute(href)
		if err != nil {
			rowErr = err
			return false
		}

		var tmID *string
		if m := playerKeyPattern.FindStringSubmatch(href); m != nil {
			tmID = &m[1]
		}
		players = append(players, &model.PlayerDraft{
			Name:     strings.TrimSpace(anchor.Text()),
			Position: TranslatePosition(strings.TrimSpace(title)),
			Link:     link,
			TmID:     tmID,
		})
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}
	return players, nil
}
