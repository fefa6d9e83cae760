// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	entriesDomain "github.com/allisson/journalite/internal/entries/domain"
	customValidation "github.com/allisson/journalite/internal/validation"
)

// WriteEntryRequest contains the parameters for creating or updating a journal entry.
type WriteEntryRequest struct {
	UserID    string   `json:"user_id" binding:"required"`
	Title     string   `json:"title"`
	Content   string   `json:"content" binding:"required"`
	Mood      string   `json:"mood"`
	Tags      []string `json:"tags"`
	ImageRefs []string `json:"image_refs"`
	Private   bool     `json:"private"`
}

// Validate checks if the write entry request is valid.
func (r *WriteEntryRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.UserID, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Content, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Mood, customValidation.KnownMood),
		validation.Field(&r.Title, validation.Length(0, 500)),
	)
}

// ToEntry converts the request into a plaintext domain entry.
func (r *WriteEntryRequest) ToEntry() *entriesDomain.Entry {
	return &entriesDomain.Entry{
		UserID:    r.UserID,
		Title:     entriesDomain.PlainField(r.Title),
		Content:   entriesDomain.PlainField(r.Content),
		Mood:      r.Mood,
		Tags:      r.Tags,
		ImageRefs: r.ImageRefs,
		Private:   r.Private,
	}
}
