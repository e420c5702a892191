package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/metrics-lab/staticpress/pkg/models"
)

func (s *Server) listMeasurements(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	rows, err := s.measurements.ListMeasurements(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MeasurementListResponse{Measurements: rows})
}

func (s *Server) createAlertRule(c *gin.Context) {
	var req models.AlertRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	rule, err := s.alerts.CreateRule(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.AlertRuleResponse{AlertRule: rule})
}

func (s *Server) listAlertRules(c *gin.Context) {
	rules, err := s.alerts.ListRules(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

func (s *Server) deleteAlertRule(c *gin.Context) {
	if err := s.alerts.DeleteRule(c.Request.Context(), c.Param("id"), c.Param("ruleId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listAlerts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	alerts, err := s.alerts.ListAlerts(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.AlertLogResponse{Alerts: alerts})
}
