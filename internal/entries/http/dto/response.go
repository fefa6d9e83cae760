package dto

import (
	"time"

	entriesDomain "github.com/allisson/journalite/internal/entries/domain"
)

// EntryResponse represents a journal entry in API responses.
// Title and content are plaintext here; decryption happens in the use case.
type EntryResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	ImageRefs []string  `json:"image_refs,omitempty"`
	Private   bool      `json:"private"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FieldWarning reports a field that could not be decrypted for an entry.
type FieldWarning struct {
	EntryID string `json:"entry_id"`
	Field   string `json:"field"`
}

// ListEntriesResponse wraps a page of entries plus any decryption warnings.
type ListEntriesResponse struct {
	Entries  []EntryResponse `json:"entries"`
	Warnings []FieldWarning  `json:"warnings,omitempty"`
}

// GetEntryResponse wraps a single entry plus any decryption warnings.
type GetEntryResponse struct {
	Entry    EntryResponse  `json:"entry"`
	Warnings []FieldWarning `json:"warnings,omitempty"`
}

// MapEntryToResponse converts a domain entry to an API response.
func MapEntryToResponse(entry *entriesDomain.Entry) EntryResponse {
	return EntryResponse{
		ID:        entry.ID.String(),
		UserID:    entry.UserID,
		Title:     entry.Title.Value,
		Content:   entry.Content.Value,
		Mood:      entry.Mood,
		Tags:      entry.Tags,
		ImageRefs: entry.ImageRefs,
		Private:   entry.Private,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}

// MapEntriesToListResponse converts domain entries and field errors to a list response.
func MapEntriesToListResponse(
	entries []*entriesDomain.Entry,
	fieldErrs []*entriesDomain.FieldError,
) ListEntriesResponse {
	response := ListEntriesResponse{
		Entries:  make([]EntryResponse, 0, len(entries)),
		Warnings: MapFieldErrors(fieldErrs),
	}
	for _, entry := range entries {
		response.Entries = append(response.Entries, MapEntryToResponse(entry))
	}
	return response
}

// MapFieldErrors converts field errors to response warnings.
func MapFieldErrors(fieldErrs []*entriesDomain.FieldError) []FieldWarning {
	if len(fieldErrs) == 0 {
		return nil
	}
	warnings := make([]FieldWarning, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		warnings = append(warnings, FieldWarning{EntryID: fieldErr.EntryID, Field: fieldErr.Field})
	}
	return warnings
}
