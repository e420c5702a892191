// Package api exposes the orchestrator's HTTP surface: site and build
// management, settings, the agent loop, live editing, the WordPress
// webhook, and the SSE event streams.
package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/metrics-lab/staticpress/ent"
	"github.com/metrics-lab/staticpress/pkg/config"
	"github.com/metrics-lab/staticpress/pkg/events"
	"github.com/metrics-lab/staticpress/pkg/liveedit"
	"github.com/metrics-lab/staticpress/pkg/queue"
	"github.com/metrics-lab/staticpress/pkg/services"
)

// Server wires the service layer to the HTTP routes.
type Server struct {
	cfg          *config.Config
	client       *ent.Client
	bus          *events.Bus
	pool         *queue.WorkerPool
	sites        *services.SiteService
	builds       *services.BuildService
	settings     *services.SettingsService
	overrides    *services.OverrideService
	agents       *services.AgentService
	measurements *services.MeasurementService
	alerts       *services.AlertService
	liveEdit     *liveedit.Service
	planner      liveedit.OracleEditPlanner
	logger       *slog.Logger
}

// NewServer creates the API server.
func NewServer(
	cfg *config.Config,
	client *ent.Client,
	bus *events.Bus,
	pool *queue.WorkerPool,
	sites *services.SiteService,
	builds *services.BuildService,
	settingsService *services.SettingsService,
	overrides *services.OverrideService,
	agents *services.AgentService,
	measurements *services.MeasurementService,
	alerts *services.AlertService,
	liveEdit *liveedit.Service,
	planner liveedit.OracleEditPlanner,
) *Server {
	return &Server{
		cfg:          cfg,
		client:       client,
		bus:          bus,
		pool:         pool,
		sites:        sites,
		builds:       builds,
		settings:     settingsService,
		overrides:    overrides,
		agents:       agents,
		measurements: measurements,
		alerts:       alerts,
		liveEdit:     liveEdit,
		planner:      planner,
		logger:       slog.With("component", "api"),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	// Unauthenticated: liveness, metrics, and the signed webhook.
	r.GET("/health", s.health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/webhooks/wordpress", s.wordpressWebhook)

	authed := r.Group("/", bearerAuth(s.cfg.APIKey()))

	sites := authed.Group("/sites")
	sites.POST("", s.createSite)
	sites.GET("", s.listSites)
	sites.GET("/:id", s.getSite)
	sites.PUT("/:id", s.updateSite)
	sites.DELETE("/:id", s.deleteSite)
	sites.GET("/:id/status", s.siteStatus)

	sites.POST("/:id/builds", s.triggerBuild)
	sites.GET("/:id/builds", s.listBuilds)
	sites.GET("/:id/builds/:buildId", s.getBuild)
	sites.GET("/:id/builds/:buildId/logs", s.buildLogs)
	sites.POST("/:id/builds/:buildId/cancel", s.cancelBuild)
	sites.POST("/:id/builds/:buildId/retry", s.retryBuild)
	sites.POST("/:id/builds/cancel-stale", s.cancelStale)
	sites.GET("/:id/builds/stream", s.buildStream)

	sites.GET("/:id/settings", s.getSettings)
	sites.PUT("/:id/settings", s.updateSettings)
	sites.GET("/:id/settings/diff", s.settingsDiff)
	sites.POST("/:id/settings/reset", s.resetSettings)
	sites.GET("/:id/settings/history", s.settingsHistory)
	sites.POST("/:id/settings/rollback/:histId", s.rollbackSettings)

	sites.POST("/:id/asset-overrides", s.upsertOverride)
	sites.GET("/:id/asset-overrides", s.listOverrides)
	sites.GET("/:id/asset-overrides/:oid", s.getOverride)
	sites.DELETE("/:id/asset-overrides/:oid", s.deleteOverride)

	sites.POST("/:id/ai/optimize", s.startAgent)
	sites.GET("/:id/ai/status", s.agentStatus)
	sites.POST("/:id/ai/resume", s.resumeAgent)
	sites.POST("/:id/ai/stop", s.stopAgent)
	sites.GET("/:id/ai/report", s.agentReport)
	sites.GET("/:id/ai/stream", s.agentStream)

	sites.GET("/:id/live-edit/status", s.liveEditStatus)
	sites.GET("/:id/live-edit/files", s.liveEditFiles)
	sites.GET("/:id/live-edit/file", s.liveEditFile)
	sites.POST("/:id/live-edit/chat", s.liveEditChat)
	sites.POST("/:id/live-edit/audit", s.liveEditAudit)
	sites.POST("/:id/live-edit/deploy", s.liveEditDeploy)
	sites.GET("/:id/live-edit/stream", s.liveEditStream)

	sites.GET("/:id/measurements", s.listMeasurements)
	sites.POST("/:id/alert-rules", s.createAlertRule)
	sites.GET("/:id/alert-rules", s.listAlertRules)
	sites.DELETE("/:id/alert-rules/:ruleId", s.deleteAlertRule)
	sites.GET("/:id/alerts", s.listAlerts)

	return r
}

// health reports pool and database liveness.
func (s *Server) health(c *gin.Context) {
	ph := s.pool.Health()
	status := http.StatusOK
	state := "healthy"
	if !ph.IsHealthy {
		status = http.StatusServiceUnavailable
		state = "unhealthy"
	}
	c.JSON(status, gin.H{
		"status": state,
		"pool":   ph,
	})
}
