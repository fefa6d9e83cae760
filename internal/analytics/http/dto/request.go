// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	entriesDomain "github.com/allisson/journalite/internal/entries/domain"
	customValidation "github.com/allisson/journalite/internal/validation"
)

// InsightEntry is a journal entry supplied inline with an insights request.
// Title and content are plaintext; encrypted entries must be read through the
// entries API before analysis.
type InsightEntry struct {
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

// GenerateInsightsRequest contains the parameters for generating an insights bundle.
// When Entries is empty the server loads the user's stored entries instead.
type GenerateInsightsRequest struct {
	UserID       string         `json:"user_id" binding:"required"`
	Entries      []InsightEntry `json:"entries"`
	ForceRefresh bool           `json:"force_refresh"`
}

// Validate checks if the generate insights request is valid.
func (r *GenerateInsightsRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.UserID, validation.Required, customValidation.NotBlank),
	)
}

// ToEntries converts inline entries into domain entries owned by the requesting user.
func (r *GenerateInsightsRequest) ToEntries() []*entriesDomain.Entry {
	if len(r.Entries) == 0 {
		return nil
	}
	entries := make([]*entriesDomain.Entry, 0, len(r.Entries))
	for _, item := range r.Entries {
		entries = append(entries, &entriesDomain.Entry{
			UserID:    r.UserID,
			Title:     entriesDomain.PlainField(item.Title),
			Content:   entriesDomain.PlainField(item.Content),
			Mood:      item.Mood,
			Tags:      item.Tags,
			CreatedAt: item.CreatedAt,
		})
	}
	return entries
}

// DetectMoodRequest contains the parameters for mood detection over free text.
type DetectMoodRequest struct {
	Text string `json:"text" binding:"required"`
}

// Validate checks if the detect mood request is valid.
func (r *DetectMoodRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Text, validation.Required, customValidation.NotBlank),
	)
}
