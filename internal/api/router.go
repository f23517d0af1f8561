package api

import (
	"net/http"
	"time"

	"FubolSync/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
)

// NewRouter 注册全部路由。调用前应已通过 gin.SetMode 设置运行模式
func NewRouter(cfg *config.ServerConfig, scrape *ScrapeHandler, catalog *CatalogHandler) *gin.Engine {
	r := gin.Default()

	// 白名单为空时不挂 CORS
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// 注册ppof 方便调试和监测性能问题
	pprof.Register(r)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Api funcionando"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	leagues := r.Group("/leagues")
	leagues.POST("/", scrape.UpdateLeagues)
	leagues.GET("/", catalog.ListLeagues)
	leagues.POST("/teams/", scrape.UpdateTeams)
	leagues.DELETE("/:id/", catalog.DeleteLeague)
	leagues.GET("/:id/teams/", catalog.LeagueTeams)

	teams := r.Group("/teams")
	teams.GET("/", catalog.TeamsByLeague)
	teams.POST("/players/", scrape.UpdatePlayers)
	teams.GET("/:id/players/", catalog.TeamPlayers)

	runs := r.Group("/runs")
	runs.GET("/", catalog.ListRuns)
	runs.GET("/:run_uuid", catalog.GetRun)

	return r
}
