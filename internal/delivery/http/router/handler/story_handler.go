package handler

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"atlas/internal/delivery/http/response"
	"atlas/internal/delivery/reqctx"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// maxImageSize caps in-memory reads of uploaded cover photos.
const maxImageSize = 10 << 20 // 10 MiB

type storyRequest struct {
	Title            string   `json:"title" validate:"required"`
	Story            string   `json:"story" validate:"required"`
	VisitedLocations []string `json:"visitedLocation" validate:"required,min=1"`
	ImageURL         string   `json:"imageUrl"`
	VisitedDate      int64    `json:"visitedDate" validate:"required"`
}

type favouriteRequest struct {
	IsFavourite *bool `json:"isFavourite" validate:"required"`
}

// StoryHandler holds dependencies for travel-story handlers. Every route
// it serves sits behind the auth middleware, so the owner identity is
// always present in the request context.
type StoryHandler struct {
	uc usecase.StoryUsecase
}

// NewStoryHandler is the constructor for StoryHandler, injected by Fx.
func NewStoryHandler(uc usecase.StoryUsecase) *StoryHandler {
	return &StoryHandler{uc: uc}
}

func (r *storyRequest) toInput() *usecase.StoryInput {
	return &usecase.StoryInput{
		Title:            r.Title,
		Story:            r.Story,
		VisitedLocations: r.VisitedLocations,
		ImageURL:         r.ImageURL,
		VisitedDate:      time.UnixMilli(r.VisitedDate).UTC(),
	}
}

// AddStory creates a travel story owned by the authenticated user.
func (h *StoryHandler) AddStory(c echo.Context) error {
	userID, ok := reqctx.UserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req storyRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	story, err := h.uc.AddStory(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, http.StatusCreated, response.StoryPayload{
		Envelope: response.Envelope{Message: "Travel story added successfully"},
		Story:    response.NewStoryView(story),
	})
}

// GetAllStories lists the authenticated user's stories, favourites first.
func (h *StoryHandler) GetAllStories(c echo.Context) error {
	userID, ok := reqctx.UserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	stories, err := h.uc.ListStories(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, http.StatusOK, response.StoriesPayload{
		Stories: response.NewStoryViews(stories),
	})
}

// EditStory replaces the editable fields of an owned story.
func (h *StoryHandler) EditStory(c echo.Context) error {
	userID, ok := reqctx.UserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	storyID, err := parseStoryID(c)
	if err != nil {
		return err
	}

	var req storyRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	story, err := h.uc.EditStory(c.Request().Context(), userID, storyID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, http.StatusOK, response.StoryPayload{
		Envelope: response.Envelope{Message: "Update Successful"},
		Story:    response.NewStoryView(story),
	})
}

// DeleteStory removes an owned story and, best effort, its cover photo.
func (h *StoryHandler) DeleteStory(c echo.Context) error {
	userID, ok := reqctx.UserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	storyID, err := parseStoryID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteStory(c.Request().Context(), userID, storyID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, http.StatusOK, response.Envelope{
		Message: "Travel story deleted successfully",
	})
}

// UpdateIsFavourite toggles the favourite flag of an owned story.
func (h *StoryHandler) UpdateIsFavourite(c echo.Context) error {
	userID, ok := reqctx.UserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	storyID, err := parseStoryID(c)
	if err != nil {
		return err
	}

	var req favouriteRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	story, err := h.uc.SetFavourite(c.Request().Context(), userID, storyID, *req.IsFavourite)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, http.StatusOK, response.StoryPayload{
		Envelope: response.Envelope{Message: "Update Successful"},
		Story:    response.NewStoryView(story),
	})
}

// SearchStories matches the user's stories against a free-text query.
func (h *StoryHandler) SearchStories(c echo.Context) error {
	userID, ok := reqctx.UserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	query := c.QueryParam("query")
	if query == "" {
		return response.Fail(c, http.StatusBadRequest, "query is required")
	}

	stories, err := h.uc.SearchStories(c.Request().Context(), userID, query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, http.StatusOK, response.StoriesPayload{
		Stories: response.NewStoryViews(stories),
	})
}

// FilterStories lists stories whose visited date falls inside a range.
// The bounds arrive as Unix milliseconds, matching the web client.
func (h *StoryHandler) FilterStories(c echo.Context) error {
	userID, ok := reqctx.UserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	start, err := parseMillis(c.QueryParam("startDate"))
	if err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid date range")
	}
	end, err := parseMillis(c.QueryParam("endDate"))
	if err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid date range")
	}

	stories, err := h.uc.FilterStories(c.Request().Context(), userID, start, end)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, http.StatusOK, response.StoriesPayload{
		Stories: response.NewStoryViews(stories),
	})
}

// UploadImage stores a multipart cover photo and returns its public URL.
func (h *StoryHandler) UploadImage(c echo.Context) error {
	userID, ok := reqctx.UserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return domainerrors.ErrImageRequired
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "open uploaded image")
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxImageSize))
	if err != nil {
		return errors.Wrap(err, "read uploaded image")
	}

	imageURL, err := h.uc.UploadImage(c.Request().Context(), userID, &usecase.UploadImageInput{
		Filename: fileHeader.Filename,
		Data:     data,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, http.StatusCreated, response.ImagePayload{
		Envelope: response.Envelope{Message: "Image uploaded successfully"},
		ImageURL: imageURL,
	})
}

// DeleteImage removes a previously uploaded cover photo.
func (h *StoryHandler) DeleteImage(c echo.Context) error {
	userID, ok := reqctx.UserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	imageURL := c.QueryParam("imageUrl")
	if imageURL == "" {
		return response.Fail(c, http.StatusBadRequest, "imageUrl parameter is required")
	}

	if err := h.uc.DeleteImage(c.Request().Context(), userID, imageURL); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, http.StatusOK, response.Envelope{
		Message: "Image deleted successfully",
	})
}

// StoryQR renders a PNG QR code pointing at the story's share URL.
func (h *StoryHandler) StoryQR(c echo.Context) error {
	userID, ok := reqctx.UserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	storyID, err := parseStoryID(c)
	if err != nil {
		return err
	}

	png, err := h.uc.StoryQR(c.Request().Context(), userID, storyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// parseStoryID reads the :id path parameter. A malformed ID cannot match
// any story, so it reports the same 404 as a miss.
func parseStoryID(c echo.Context) (uuid.UUID, error) {
	storyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrStoryNotFound
	}

	return storyID, nil
}

func parseMillis(raw string) (time.Time, error) {
	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "parse unix millis")
	}

	return time.UnixMilli(millis).UTC(), nil
}
