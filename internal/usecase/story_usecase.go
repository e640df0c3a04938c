package usecase

import (
	"context"
	"time"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
)

// StoryInput defines the editable fields of a story. The owner is never
// part of the input; it always comes from the authenticated identity.
type StoryInput struct {
	Title            string
	Story            string
	VisitedLocations []string
	ImageURL         string
	VisitedDate      time.Time
}

// UploadImageInput carries an uploaded cover photo.
type UploadImageInput struct {
	Filename string
	Data     []byte
}

// StoryUsecase defines the interface for story-related business
// operations. Every operation takes the authenticated user ID and only
// ever touches that user's stories.
type StoryUsecase interface {
	AddStory(ctx context.Context, userID uuid.UUID, input *StoryInput) (*entity.TravelStory, error)
	ListStories(ctx context.Context, userID uuid.UUID) ([]*entity.TravelStory, error)
	EditStory(ctx context.Context, userID, storyID uuid.UUID, input *StoryInput) (*entity.TravelStory, error)
	DeleteStory(ctx context.Context, userID, storyID uuid.UUID) error
	SetFavourite(ctx context.Context, userID, storyID uuid.UUID, isFavourite bool) (*entity.TravelStory, error)
	SearchStories(ctx context.Context, userID uuid.UUID, query string) ([]*entity.TravelStory, error)
	FilterStories(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.TravelStory, error)

	UploadImage(ctx context.Context, userID uuid.UUID, input *UploadImageInput) (string, error)
	DeleteImage(ctx context.Context, userID uuid.UUID, imageURL string) error

	StoryQR(ctx context.Context, userID, storyID uuid.UUID) ([]byte, error)
}
