// Package http provides HTTP handlers for analytics operations.
// The insights endpoints sit in front of the tiered provider chain; responses
// always carry a schema-complete bundle plus the tier that produced it.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/journalite/internal/analytics/http/dto"
	analyticsUseCase "github.com/allisson/journalite/internal/analytics/usecase"
	entriesDomain "github.com/allisson/journalite/internal/entries/domain"
	entriesUseCase "github.com/allisson/journalite/internal/entries/usecase"
	"github.com/allisson/journalite/internal/httputil"
	customValidation "github.com/allisson/journalite/internal/validation"
)

// InsightsHandler handles HTTP requests for analytics operations.
type InsightsHandler struct {
	analyticsUseCase analyticsUseCase.AnalyticsUseCase
	entryUseCase     entriesUseCase.EntryUseCase
	logger           *slog.Logger
}

// NewInsightsHandler creates a new insights handler with required dependencies.
func NewInsightsHandler(
	analytics analyticsUseCase.AnalyticsUseCase,
	entries entriesUseCase.EntryUseCase,
	logger *slog.Logger,
) *InsightsHandler {
	return &InsightsHandler{
		analyticsUseCase: analytics,
		entryUseCase:     entries,
		logger:           logger,
	}
}

// GenerateHandler derives the full insights bundle for a user.
// POST /v1/insights
// Entries may be supplied inline; otherwise the user's stored entries are
// loaded and decrypted first. Returns 200 OK with the envelope.
func (h *InsightsHandler) GenerateHandler(c *gin.Context) {
	var req dto.GenerateInsightsRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	entries := req.ToEntries()
	if entries == nil {
		stored, fieldErrs, err := h.entryUseCase.List(
			c.Request.Context(),
			entriesDomain.EntryFilter{UserID: req.UserID},
		)
		if err != nil {
			httputil.HandleErrorGin(c, err, h.logger)
			return
		}
		// Entries with failed fields carry sentinel text; they still count
		if len(fieldErrs) > 0 {
			h.logger.Warn("insights input includes entries with undecryptable fields",
				slog.String("user_id", req.UserID),
				slog.Int("failed_fields", len(fieldErrs)),
			)
		}
		entries = stored
	}

	envelope, err := h.analyticsUseCase.GenerateInsights(
		c.Request.Context(),
		req.UserID,
		entries,
		analyticsUseCase.GenerateOptions{ForceRefresh: req.ForceRefresh},
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, envelope)
}

// DetectMoodHandler runs mood detection over free text.
// POST /v1/mood/detect
// Returns 200 OK with the detected mood, confidence, and matched keywords.
func (h *InsightsHandler) DetectMoodHandler(c *gin.Context) {
	var req dto.DetectMoodRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	detection, err := h.analyticsUseCase.DetectMood(c.Request.Context(), req.Text)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, detection)
}

// HealthHandler reports remote analytics tier reachability.
// GET /v1/analytics/health
// Returns 200 OK; the heuristic tier is always available so the endpoint
// never fails.
func (h *InsightsHandler) HealthHandler(c *gin.Context) {
	status := h.analyticsUseCase.HealthCheck(c.Request.Context())
	c.JSON(http.StatusOK, status)
}
