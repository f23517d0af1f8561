package api

import (
	"errors"
	"net/http"
	"strconv"

	"FubolSync/internal/model"
	"FubolSync/internal/repository"
	"FubolSync/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CatalogHandler 提供给前端的联赛/球队/球员查询接口
type CatalogHandler struct {
	catalog *service.CatalogService
	logger  *logrus.Logger
}

func NewCatalogHandler(catalog *service.CatalogService, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, logger: logger}
}

// ListLeagues GET /leagues/
func (h *CatalogHandler) ListLeagues(c *gin.Context) {
	leagues, err := h.catalog.ListLeagues(c.Request.Context())
	if err != nil {
		h.fail(c, "ListLeagues failed", err)
		return
	}
	c.JSON(http.StatusOK, leagues)
}

// DeleteLeague DELETE /leagues/:id/
func (h *CatalogHandler) DeleteLeague(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.catalog.DeleteLeague(c.Request.Context(), id); err != nil {
		h.fail(c, "DeleteLeague failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "League deleted"})
}

// LeagueTeams GET /leagues/:id/teams/
func (h *CatalogHandler) LeagueTeams(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	teams, err := h.catalog.LeagueTeams(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "LeagueTeams failed", err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// TeamsByLeague GET /teams/
func (h *CatalogHandler) TeamsByLeague(c *gin.Context) {
	grouped, err := h.catalog.TeamsByLeague(c.Request.Context())
	if err != nil {
		h.fail(c, "TeamsByLeague failed", err)
		return
	}
	c.JSON(http.StatusOK, grouped)
}

// TeamPlayers GET /teams/:id/players/
func (h *CatalogHandler) TeamPlayers(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	players, err := h.catalog.TeamPlayers(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "TeamPlayers failed", err)
		return
	}
	c.JSON(http.StatusOK, players)
}

// ListRuns GET /runs/?kind=players&page=1&page_size=20
func (h *CatalogHandler) ListRuns(c *gin.Context) {
	kind := model.RunKind(c.Query("kind"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.catalog.ListRuns(c.Request.Context(), kind, page, pageSize)
	if err != nil {
		h.fail(c, "ListRuns failed", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetRun GET /runs/:run_uuid
func (h *CatalogHandler) GetRun(c *gin.Context) {
	run, err := h.catalog.GetRun(c.Request.Context(), c.Param("run_uuid"))
	if err != nil {
		h.fail(c, "GetRun failed", err)
		return
	}
	c.JSON(http.StatusOK, run)
}

func (h *CatalogHandler) fail(c *gin.Context, msg string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	h.logger.WithError(err).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func pathID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
		return 0, false
	}
	return id, true
}
