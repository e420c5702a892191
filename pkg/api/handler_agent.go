package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/metrics-lab/staticpress/ent"
	"github.com/metrics-lab/staticpress/ent/agentrun"
	"github.com/metrics-lab/staticpress/pkg/events"
	"github.com/metrics-lab/staticpress/pkg/models"
	"github.com/metrics-lab/staticpress/pkg/services"
)

// startAgent begins an oracle-supervised optimize run.
func (s *Server) startAgent(c *gin.Context) {
	var req models.StartAgentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}
	}
	resp, err := s.agents.StartRun(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resp)
}

// agentStatus reports the latest run plus whether it can be resumed:
// an unfinished run with a checkpoint whose workspace still exists.
func (s *Server) agentStatus(c *gin.Context) {
	run, err := s.agents.LatestRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == services.ErrNotFound {
			c.JSON(http.StatusOK, gin.H{"run": nil, "can_resume": false})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"run":        models.AgentRunResponse{AgentRun: run},
		"can_resume": canResume(run),
	})
}

// canResume gates resume on the checkpoint and the on-disk workspace.
func canResume(run *ent.AgentRun) bool {
	if run.Phase == agentrun.PhaseComplete || run.Phase == agentrun.PhaseFailed {
		return false
	}
	if len(run.Checkpoint) == 0 || run.WorkspaceDir == nil {
		return false
	}
	info, err := os.Stat(*run.WorkspaceDir)
	return err == nil && info.IsDir()
}

func (s *Server) resumeAgent(c *gin.Context) {
	run, err := s.agents.LatestRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp, err := s.agents.ResumeRun(c.Request.Context(), c.Param("id"), run.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resp)
}

func (s *Server) stopAgent(c *gin.Context) {
	run, err := s.agents.LatestRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := s.agents.StopRun(c.Request.Context(), c.Param("id"), run.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "stopping"})
}

func (s *Server) agentReport(c *gin.Context) {
	report, err := s.agents.Report(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// agentStream bridges the site's agent topic onto SSE.
func (s *Server) agentStream(c *gin.Context) {
	events.StreamSSE(c, s.bus, events.AgentTopic(c.Param("id")))
}
