// Package response defines the JSON wire format of the API. The envelope
// carries an `error` flag plus a message, matching what the web client
// expects; payload types embed it.
package response

import (
	"time"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Envelope is the common part of every JSON response body.
type Envelope struct {
	Error   bool   `json:"error"`
	Message string `json:"message,omitempty"`
}

// UserView is the public projection of an account. The password hash
// never leaves the persistence layer boundary.
type UserView struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`
}

// StoryView is the public projection of a travel story.
type StoryView struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Story            string    `json:"story"`
	VisitedLocations []string  `json:"visitedLocation"`
	ImageURL         string    `json:"imageUrl"`
	VisitedDate      time.Time `json:"visitedDate"`
	IsFavourite      bool      `json:"isFavourite"`
	CreatedOn        time.Time `json:"createdOn"`
}

// AuthPayload is returned by create-account and login.
type AuthPayload struct {
	Envelope
	User        *UserView `json:"user"`
	AccessToken string    `json:"accessToken"`
}

// UserPayload is returned by get-user.
type UserPayload struct {
	Envelope
	User *UserView `json:"user"`
}

// StoryPayload is returned by single-story operations.
type StoryPayload struct {
	Envelope
	Story *StoryView `json:"story"`
}

// StoriesPayload is returned by list, search and filter.
type StoriesPayload struct {
	Envelope
	Stories []*StoryView `json:"stories"`
}

// ImagePayload is returned by image-upload.
type ImagePayload struct {
	Envelope
	ImageURL string `json:"imageUrl"`
}

// OK writes a success payload. The payload's embedded Envelope should
// carry Error=false (the zero value) and an optional message.
func OK(c echo.Context, statusCode int, payload any) error {
	return c.JSON(statusCode, payload)
}

// Fail writes an error envelope with the given status and message.
func Fail(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Envelope{Error: true, Message: message})
}

// NewUserView projects a domain user onto the wire format.
func NewUserView(user *entity.User) *UserView {
	if user == nil {
		return nil
	}

	return &UserView{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
	}
}

// NewStoryView projects a domain story onto the wire format.
func NewStoryView(story *entity.TravelStory) *StoryView {
	if story == nil {
		return nil
	}

	return &StoryView{
		ID:               story.ID,
		Title:            story.Title,
		Story:            story.Story,
		VisitedLocations: story.VisitedLocations,
		ImageURL:         story.ImageURL,
		VisitedDate:      story.VisitedDate,
		IsFavourite:      story.IsFavourite,
		CreatedOn:        story.CreatedAt,
	}
}

// NewStoryViews projects a slice of domain stories onto the wire format.
func NewStoryViews(stories []*entity.TravelStory) []*StoryView {
	views := make([]*StoryView, 0, len(stories))
	for _, story := range stories {
		views = append(views, NewStoryView(story))
	}

	return views
}
