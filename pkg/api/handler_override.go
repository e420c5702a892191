package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/metrics-lab/staticpress/pkg/models"
)

// upsertOverride creates or replaces the override for {site, pattern}.
func (s *Server) upsertOverride(c *gin.Context) {
	var req models.CreateAssetOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	row, err := s.overrides.UpsertOverride(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.AssetOverrideResponse{AssetOverride: row})
}

func (s *Server) listOverrides(c *gin.Context) {
	rows, err := s.overrides.ListOverrides(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.AssetOverrideListResponse{Overrides: rows})
}

func (s *Server) getOverride(c *gin.Context) {
	row, err := s.overrides.GetOverride(c.Request.Context(), c.Param("id"), c.Param("oid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.AssetOverrideResponse{AssetOverride: row})
}

func (s *Server) deleteOverride(c *gin.Context) {
	if err := s.overrides.DeleteOverride(c.Request.Context(), c.Param("id"), c.Param("oid")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
