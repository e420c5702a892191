package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/metrics-lab/staticpress/pkg/models"
)

func (s *Server) getSettings(c *gin.Context) {
	resp, err := s.settings.GetSettings(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateSettings merges a sparse override into the site's settings.
// The actor is taken from proxy headers unless the body names one.
func (s *Server) updateSettings(c *gin.Context) {
	var req models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Actor == "" {
		req.Actor = extractActor(c)
	}
	resp, err := s.settings.UpdateSettings(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// settingsDiff returns only the overridden-leaf boolean tree.
func (s *Server) settingsDiff(c *gin.Context) {
	resp, err := s.settings.GetSettings(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"diff": resp.Diff})
}

func (s *Server) resetSettings(c *gin.Context) {
	resp, err := s.settings.ResetSettings(c.Request.Context(), c.Param("id"), extractActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) settingsHistory(c *gin.Context) {
	rows, err := s.settings.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SettingsHistoryResponse{History: rows})
}

func (s *Server) rollbackSettings(c *gin.Context) {
	resp, err := s.settings.Rollback(c.Request.Context(), c.Param("id"), c.Param("histId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
