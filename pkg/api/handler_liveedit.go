package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/metrics-lab/staticpress/pkg/events"
	"github.com/metrics-lab/staticpress/pkg/models"
)

// liveEditStatus reports workspace presence and the site's edge URL.
func (s *Server) liveEditStatus(c *gin.Context) {
	siteID := c.Param("id")
	site, err := s.sites.GetSite(c.Request.Context(), siteID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"site_id":          siteID,
		"workspace_exists": s.liveEdit.WorkspaceExists(siteID),
		"edge_url":         site.EdgeURL,
	})
}

func (s *Server) liveEditFiles(c *gin.Context) {
	resp, err := s.liveEdit.ListFiles(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// liveEditFile serves one workspace file, selected by the path query
// parameter.
func (s *Server) liveEditFile(c *gin.Context) {
	rel := strings.TrimPrefix(c.Query("path"), "/")
	resp, err := s.liveEdit.ReadFile(c.Request.Context(), c.Param("id"), rel)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// liveEditChat runs one plan or execute turn of the edit protocol.
func (s *Server) liveEditChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	resp, err := s.liveEdit.Chat(c.Request.Context(), s.planner, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) liveEditAudit(c *gin.Context) {
	var req models.AuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	resp, err := s.liveEdit.Audit(c.Request.Context(), s.planner, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) liveEditDeploy(c *gin.Context) {
	resp, err := s.liveEdit.Deploy(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// liveEditStream bridges the site's live-edit topic onto SSE.
func (s *Server) liveEditStream(c *gin.Context) {
	events.StreamSSE(c, s.bus, events.LiveEditTopic(c.Param("id"), c.Query("stream")))
}
