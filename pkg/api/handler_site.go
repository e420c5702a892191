package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/metrics-lab/staticpress/pkg/models"
)

// createSite registers a site. The webhook secret is returned exactly
// once, in this response.
func (s *Server) createSite(c *gin.Context) {
	var req models.CreateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	created, secret, err := s.sites.CreateSite(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"site":           created,
		"webhook_secret": secret,
	})
}

func (s *Server) listSites(c *gin.Context) {
	sites, err := s.sites.ListSites(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SiteListResponse{Sites: sites, Total: len(sites)})
}

func (s *Server) getSite(c *gin.Context) {
	found, err := s.sites.GetSite(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SiteResponse{Site: found})
}

func (s *Server) updateSite(c *gin.Context) {
	var req models.UpdateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	updated, err := s.sites.UpdateSite(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SiteResponse{Site: updated})
}

func (s *Server) deleteSite(c *gin.Context) {
	if err := s.sites.DeleteSite(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// siteStatus serves the denormalized status snapshot.
func (s *Server) siteStatus(c *gin.Context) {
	status, err := s.sites.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
