package entity

import (
	"time"

	"github.com/google/uuid"
)

// TravelStory is a single journal entry. Every story belongs to exactly
// one user; UserID is set from the authenticated identity at creation and
// never changes afterwards.
type TravelStory struct {
	ID               uuid.UUID // The unique identifier for the story.
	UserID           uuid.UUID // The owning account. Immutable after creation.
	Title            string    // Short headline of the story.
	Story            string    // The body text of the journal entry.
	VisitedLocations []string  // Free-form place labels attached to the story.
	ImageURL         string    // URL of the cover photo. Falls back to the configured placeholder.
	VisitedDate      time.Time // When the trip happened, supplied by the client.
	IsFavourite      bool      // Favourite flag toggled from the story list.
	CreatedAt        time.Time // Timestamp of when the story was written.
	UpdatedAt        time.Time // Timestamp of the last edit.
}
