// Package http provides HTTP handlers for journal entry operations.
// Entry title and content are encrypted before they reach storage and
// decrypted on the way out; handlers only ever see the use case surface.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	entriesDomain "github.com/allisson/journalite/internal/entries/domain"
	"github.com/allisson/journalite/internal/entries/http/dto"
	entriesUseCase "github.com/allisson/journalite/internal/entries/usecase"
	"github.com/allisson/journalite/internal/httputil"
	customValidation "github.com/allisson/journalite/internal/validation"
)

// EntryHandler handles HTTP requests for journal entry operations.
type EntryHandler struct {
	entryUseCase entriesUseCase.EntryUseCase
	logger       *slog.Logger
}

// NewEntryHandler creates a new entry handler with required dependencies.
func NewEntryHandler(entryUseCase entriesUseCase.EntryUseCase, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{
		entryUseCase: entryUseCase,
		logger:       logger,
	}
}

// CreateHandler creates a new journal entry.
// POST /v1/entries
// Returns 201 Created with the entry as stored, decrypted.
func (h *EntryHandler) CreateHandler(c *gin.Context) {
	var req dto.WriteEntryRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	entry, err := h.entryUseCase.Create(c.Request.Context(), req.ToEntry())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Echo the plaintext the caller sent, not the stored ciphertext
	response := dto.MapEntryToResponse(entry)
	response.Title = req.Title
	response.Content = req.Content
	c.JSON(http.StatusCreated, response)
}

// GetHandler retrieves and decrypts a single entry.
// GET /v1/entries/:id?user_id=U
// Returns 200 OK; decryption failures are reported as warnings while the
// affected fields carry sentinel content.
func (h *EntryHandler) GetHandler(c *gin.Context) {
	entryID, userID, ok := h.entryIdentity(c)
	if !ok {
		return
	}

	entry, fieldErrs, err := h.entryUseCase.Get(c.Request.Context(), entryID, userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.GetEntryResponse{
		Entry:    dto.MapEntryToResponse(entry),
		Warnings: dto.MapFieldErrors(fieldErrs),
	}
	c.JSON(http.StatusOK, response)
}

// ListHandler retrieves entries for a user with optional filters.
// GET /v1/entries?user_id=U&mood=M&since=T&until=T&offset=0&limit=50
// Returns 200 OK with entries newest first.
func (h *EntryHandler) ListHandler(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("user_id cannot be empty"), h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	filter := entriesDomain.EntryFilter{
		UserID: userID,
		Mood:   c.Query("mood"),
		Limit:  uint(limit),
		Offset: uint(offset),
	}

	if filter.Since, err = parseTimeParam(c.Query("since")); err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid since parameter: %w", err), h.logger)
		return
	}
	if filter.Until, err = parseTimeParam(c.Query("until")); err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid until parameter: %w", err), h.logger)
		return
	}

	entries, fieldErrs, err := h.entryUseCase.List(c.Request.Context(), filter)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEntriesToListResponse(entries, fieldErrs))
}

// UpdateHandler updates an existing entry.
// PUT /v1/entries/:id
// Returns 200 OK with the updated entry.
func (h *EntryHandler) UpdateHandler(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid entry id"), h.logger)
		return
	}

	var req dto.WriteEntryRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	entry := req.ToEntry()
	entry.ID = entryID

	updated, err := h.entryUseCase.Update(c.Request.Context(), entry)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapEntryToResponse(updated)
	response.Title = req.Title
	response.Content = req.Content
	c.JSON(http.StatusOK, response)
}

// DeleteHandler removes an entry.
// DELETE /v1/entries/:id?user_id=U
// Returns 204 No Content.
func (h *EntryHandler) DeleteHandler(c *gin.Context) {
	entryID, userID, ok := h.entryIdentity(c)
	if !ok {
		return
	}

	if err := h.entryUseCase.Delete(c.Request.Context(), entryID, userID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// entryIdentity extracts the entry id path parameter and user_id query parameter.
func (h *EntryHandler) entryIdentity(c *gin.Context) (uuid.UUID, string, bool) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid entry id"), h.logger)
		return uuid.Nil, "", false
	}

	userID := c.Query("user_id")
	if userID == "" {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("user_id cannot be empty"), h.logger)
		return uuid.Nil, "", false
	}

	return entryID, userID, true
}

func parseTimeParam(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, value)
}
