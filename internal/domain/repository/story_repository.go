package repository

import (
	"context"
	"errors"
	"time"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStoryNotFound is returned when a story does not exist for the given
// owner. A story owned by a different user yields the same error, so the
// caller cannot distinguish "not yours" from "does not exist".
var ErrStoryNotFound = errors.New("travel story not found")

// StoryRepository defines the standard operations for story persistence.
// Every lookup and mutation is scoped by the owning user ID; there is no
// way to reach another user's stories through this interface.
type StoryRepository interface {
	// Create persists a new story for its owner.
	Create(ctx context.Context, story *entity.TravelStory) error

	// FindByIDAndOwner retrieves a single story owned by the given user.
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.TravelStory, error)

	// FindAllByOwner lists all stories of a user, favourites first.
	FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.TravelStory, error)

	// SearchByOwner matches the query against title, body and visited
	// locations of the user's stories, favourites first.
	SearchByOwner(ctx context.Context, ownerID uuid.UUID, query string) ([]*entity.TravelStory, error)

	// FilterByVisitedDate lists the user's stories whose visited date
	// falls inside [start, end], favourites first.
	FilterByVisitedDate(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]*entity.TravelStory, error)

	// Update persists changes to an existing story of the given owner.
	Update(ctx context.Context, story *entity.TravelStory) error

	// DeleteByIDAndOwner removes a story owned by the given user.
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error
}
