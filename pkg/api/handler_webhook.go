package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/metrics-lab/staticpress/pkg/models"
	"github.com/metrics-lab/staticpress/pkg/services"
)

// signatureHeader carries the hex HMAC-SHA256 of the raw request body,
// keyed with the site's webhook secret.
const signatureHeader = "X-Staticpress-Signature"

// webhookPayload is the content-changed signal sent by the WordPress
// plugin.
type webhookPayload struct {
	SiteID string `json:"site_id"`
	Event  string `json:"event,omitempty"`
}

// wordpressWebhook accepts a signed content-changed signal and enqueues
// a partial rebuild. Authenticated by signature, not by bearer token.
func (s *Server) wordpressWebhook(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil || payload.SiteID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook payload"})
		return
	}

	secret, err := s.sites.WebhookSecret(c.Request.Context(), payload.SiteID)
	if err != nil {
		// Same response for unknown site and bad signature: no oracle
		// for secret guessing.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}
	if !verifySignature(body, c.GetHeader(signatureHeader), secret) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	resp, err := s.builds.TriggerBuild(c.Request.Context(), payload.SiteID, models.TriggerBuildRequest{
		Scope:       "partial",
		TriggeredBy: "webhook",
	})
	if err != nil {
		// A signal during an active build is expected; the running build
		// picks up the content on its own crawl.
		if errors.Is(err, services.ErrAlreadyInProgress) {
			c.JSON(http.StatusOK, gin.H{"status": "ignored", "reason": "build already in progress"})
			return
		}
		respondError(c, err)
		return
	}

	s.logger.Info("Webhook accepted", "site_id", payload.SiteID, "build_id", resp.BuildID)
	c.JSON(http.StatusAccepted, resp)
}

// verifySignature checks the hex HMAC-SHA256 of body against the
// header value in constant time.
func verifySignature(body []byte, header, secret string) bool {
	if header == "" || secret == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(header))
}
