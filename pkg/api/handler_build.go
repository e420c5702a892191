package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/metrics-lab/staticpress/pkg/events"
	"github.com/metrics-lab/staticpress/pkg/models"
	"github.com/metrics-lab/staticpress/pkg/queue"
)

// triggerBuild enqueues a build for the site. 202: the build runs
// asynchronously on the worker pool.
func (s *Server) triggerBuild(c *gin.Context) {
	var req models.TriggerBuildRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}
	}
	resp, err := s.builds.TriggerBuild(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resp)
}

func (s *Server) listBuilds(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	builds, err := s.builds.ListBuilds(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.BuildListResponse{Builds: builds, Total: len(builds)})
}

func (s *Server) getBuild(c *gin.Context) {
	found, err := s.builds.GetBuild(c.Request.Context(), c.Param("id"), c.Param("buildId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.BuildResponse{Build: found})
}

func (s *Server) buildLogs(c *gin.Context) {
	logs, err := s.builds.GetLogs(c.Request.Context(), c.Param("id"), c.Param("buildId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

func (s *Server) cancelBuild(c *gin.Context) {
	if err := s.builds.CancelBuild(c.Request.Context(), c.Param("id"), c.Param("buildId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelling"})
}

func (s *Server) retryBuild(c *gin.Context) {
	resp, err := s.builds.RetryBuild(c.Request.Context(), c.Param("id"), c.Param("buildId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resp)
}

// cancelStale force-cancels every non-terminal build and job for the
// site. Recovery hatch after a worker died holding the slot.
func (s *Server) cancelStale(c *gin.Context) {
	siteID := c.Param("id")
	if _, err := s.sites.GetSite(c.Request.Context(), siteID); err != nil {
		respondError(c, err)
		return
	}
	cancelled, err := queue.CancelStale(c.Request.Context(), s.client, siteID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": cancelled})
}

// buildStream bridges the site's build topic onto SSE.
func (s *Server) buildStream(c *gin.Context) {
	events.StreamSSE(c, s.bus, events.BuildTopic(c.Param("id")))
}
