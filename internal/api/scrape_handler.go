package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"FubolSync/internal/model"
	"FubolSync/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ScrapeHandler 触发后台抓取任务，立即返回确认
type ScrapeHandler struct {
	runner *service.JobRunner
	logger *logrus.Logger
}

func NewScrapeHandler(runner *service.JobRunner, logger *logrus.Logger) *ScrapeHandler {
	return &ScrapeHandler{runner: runner, logger: logger}
}

// UpdateLeagues 写入内置联赛
// POST /leagues/
func (h *ScrapeHandler) UpdateLeagues(c *gin.Context) {
	run, err := h.runner.TriggerLeagueSeed(c.Request.Context(), service.TriggerAPI)
	if err != nil {
		h.fail(c, "触发联赛写入失败", err)
		return
	}
	c.JSON(http.StatusOK, ackBody("League update started in background", run))
}

// UpdateTeams 抓取全部联赛的球队
// POST /leagues/teams/?avoid_leagues=1,2
func (h *ScrapeHandler) UpdateTeams(c *gin.Context) {
	avoid, err := parseIDList(c, "avoid_leagues")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	run, err := h.runner.TriggerTeamScrape(c.Request.Context(), service.TriggerAPI, avoid)
	if err != nil {
		h.fail(c, "触发球队抓取失败", err)
		return
	}
	c.JSON(http.StatusOK, ackBody("Team update started", run))
}

// UpdatePlayers 抓取球队阵容；include_leagues 优先于 offset/limit 窗口
// POST /teams/players/?include_leagues=1&offset=0&limit=50
func (h *ScrapeHandler) UpdatePlayers(c *gin.Context) {
	include, err := parseIDList(c, "include_leagues")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	offset, err := parseIntQuery(c, "offset")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	limit, err := parseIntQuery(c, "limit")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sel := service.PlayerSelection{LeagueIDs: include, Offset: offset, Limit: limit}
	run, err := h.runner.TriggerPlayerScrape(c.Request.Context(), service.TriggerAPI, sel)
	if err != nil {
		h.fail(c, "触发球员抓取失败", err)
		return
	}
	c.JSON(http.StatusOK, ackBody("Player update started", run))
}

func (h *ScrapeHandler) fail(c *gin.Context, msg string, err error) {
	if errors.Is(err, service.ErrLimitTooLarge) || errors.Is(err, service.ErrInvalidSelection) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.logger.WithError(err).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func ackBody(message string, run *model.ScrapeRun) gin.H {
	return gin.H{
		"message": message,
		"run_id":  run.RunUUID,
		"status":  run.Status,
	}
}

// parseIDList 同时支持 ?k=1&k=2 与 ?k=1,2
func parseIDList(c *gin.Context, key string) ([]uint64, error) {
	var ids []uint64
	for _, raw := range c.QueryArray(key) {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseUint(part, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%s 参数非法: %q", key, part)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func parseIntQuery(c *gin.Context, key string) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%s 参数非法: %q", key, raw)
	}
	return v, nil
}
