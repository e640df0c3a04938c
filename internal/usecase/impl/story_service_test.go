package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"atlas/config"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPlaceholderURL = "http://localhost:8000/assets/placeholder.png"

func newStoryService(storyRepo *fakeStoryRepo, storage *fakeStorage) usecase.StoryUsecase {
	cfg := &config.Config{
		Storage: &config.StorageConfig{PlaceholderImageURL: testPlaceholderURL},
	}

	return NewStoryService(StoryServiceParams{
		StoryRepo: storyRepo,
		Storage:   storage,
		QRCode:    fakeQRCode{},
		Config:    cfg,
		Logger:    slog.New(slog.DiscardHandler),
	})
}

func storyInput(title string) *usecase.StoryInput {
	return &usecase.StoryInput{
		Title:            title,
		Story:            "We saw the northern lights.",
		VisitedLocations: []string{"Tromsø"},
		VisitedDate:      time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
	}
}

func TestStoryService_AddStory(t *testing.T) {
	svc := newStoryService(newFakeStoryRepo(), newFakeStorage())
	owner := uuid.New()

	story, err := svc.AddStory(context.Background(), owner, storyInput("Aurora"))
	require.NoError(t, err)

	assert.Equal(t, owner, story.UserID)
	assert.Equal(t, "Aurora", story.Title)
	assert.False(t, story.IsFavourite)
	assert.Equal(t, testPlaceholderURL, story.ImageURL, "missing cover photo falls back to the placeholder")
}

func TestStoryService_AddStory_KeepsProvidedImage(t *testing.T) {
	svc := newStoryService(newFakeStoryRepo(), newFakeStorage())

	input := storyInput("Aurora")
	input.ImageURL = "http://localhost:8000/uploads/aurora.png"

	story, err := svc.AddStory(context.Background(), uuid.New(), input)
	require.NoError(t, err)
	assert.Equal(t, input.ImageURL, story.ImageURL)
}

func TestStoryService_EditStory(t *testing.T) {
	svc := newStoryService(newFakeStoryRepo(), newFakeStorage())
	owner := uuid.New()

	story, err := svc.AddStory(context.Background(), owner, storyInput("Aurora"))
	require.NoError(t, err)

	input := storyInput("Aurora, revisited")
	updated, err := svc.EditStory(context.Background(), owner, story.ID, input)
	require.NoError(t, err)

	assert.Equal(t, "Aurora, revisited", updated.Title)
	assert.Equal(t, owner, updated.UserID, "ownership never changes on edit")
}

func TestStoryService_EditStory_ForeignStory(t *testing.T) {
	svc := newStoryService(newFakeStoryRepo(), newFakeStorage())
	owner := uuid.New()

	story, err := svc.AddStory(context.Background(), owner, storyInput("Aurora"))
	require.NoError(t, err)

	_, err = svc.EditStory(context.Background(), uuid.New(), story.ID, storyInput("Hijacked"))
	requireStoryNotFound(t, err)

	// The owner still sees the original title.
	kept, err := svc.EditStory(context.Background(), owner, story.ID, storyInput("Aurora"))
	require.NoError(t, err)
	assert.Equal(t, "Aurora", kept.Title)
}

func TestStoryService_DeleteStory(t *testing.T) {
	storyRepo := newFakeStoryRepo()
	storage := newFakeStorage()
	svc := newStoryService(storyRepo, storage)
	owner := uuid.New()

	input := storyInput("Aurora")
	input.ImageURL = "http://localhost:8000/uploads/aurora.png"
	story, err := svc.AddStory(context.Background(), owner, input)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteStory(context.Background(), owner, story.ID))

	_, err = svc.EditStory(context.Background(), owner, story.ID, storyInput("Gone"))
	requireStoryNotFound(t, err)

	assert.Equal(t, []string{input.ImageURL}, storage.deleted, "cover photo is cleaned up with the story")
}

func TestStoryService_DeleteStory_SkipsPlaceholderCleanup(t *testing.T) {
	storage := newFakeStorage()
	svc := newStoryService(newFakeStoryRepo(), storage)
	owner := uuid.New()

	story, err := svc.AddStory(context.Background(), owner, storyInput("Aurora"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteStory(context.Background(), owner, story.ID))
	assert.Empty(t, storage.deleted, "the shared placeholder must never be deleted")
}

func TestStoryService_DeleteStory_ForeignStory(t *testing.T) {
	svc := newStoryService(newFakeStoryRepo(), newFakeStorage())
	owner := uuid.New()

	story, err := svc.AddStory(context.Background(), owner, storyInput("Aurora"))
	require.NoError(t, err)

	requireStoryNotFound(t, svc.DeleteStory(context.Background(), uuid.New(), story.ID))
}

func TestStoryService_SetFavourite(t *testing.T) {
	svc := newStoryService(newFakeStoryRepo(), newFakeStorage())
	owner := uuid.New()

	story, err := svc.AddStory(context.Background(), owner, storyInput("Aurora"))
	require.NoError(t, err)

	updated, err := svc.SetFavourite(context.Background(), owner, story.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.IsFavourite)

	updated, err = svc.SetFavourite(context.Background(), owner, story.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsFavourite)
}

func TestStoryService_ListStories_OwnerScopedFavouritesFirst(t *testing.T) {
	svc := newStoryService(newFakeStoryRepo(), newFakeStorage())
	owner := uuid.New()
	other := uuid.New()

	first, err := svc.AddStory(context.Background(), owner, storyInput("Fjords"))
	require.NoError(t, err)
	second, err := svc.AddStory(context.Background(), owner, storyInput("Aurora"))
	require.NoError(t, err)
	_, err = svc.AddStory(context.Background(), other, storyInput("Not yours"))
	require.NoError(t, err)

	_, err = svc.SetFavourite(context.Background(), owner, first.ID, true)
	require.NoError(t, err)

	stories, err := svc.ListStories(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, stories, 2)
	assert.Equal(t, first.ID, stories[0].ID, "favourites sort ahead of newer stories")
	assert.Equal(t, second.ID, stories[1].ID)
}

func TestStoryService_SearchStories(t *testing.T) {
	svc := newStoryService(newFakeStoryRepo(), newFakeStorage())
	owner := uuid.New()
	other := uuid.New()

	_, err := svc.AddStory(context.Background(), owner, storyInput("Aurora over Tromsø"))
	require.NoError(t, err)
	_, err = svc.AddStory(context.Background(), owner, storyInput("Lisbon trams"))
	require.NoError(t, err)
	_, err = svc.AddStory(context.Background(), other, storyInput("Aurora elsewhere"))
	require.NoError(t, err)

	stories, err := svc.SearchStories(context.Background(), owner, "aurora")
	require.NoError(t, err)
	require.Len(t, stories, 1)
	assert.Equal(t, "Aurora over Tromsø", stories[0].Title)
}

func TestStoryService_FilterStories(t *testing.T) {
	svc := newStoryService(newFakeStoryRepo(), newFakeStorage())
	owner := uuid.New()

	march := storyInput("March trip")
	june := storyInput("June trip")
	june.VisitedDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.AddStory(context.Background(), owner, march)
	require.NoError(t, err)
	_, err = svc.AddStory(context.Background(), owner, june)
	require.NoError(t, err)

	stories, err := svc.FilterStories(context.Background(), owner,
		time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, stories, 1)
	assert.Equal(t, "June trip", stories[0].Title)
}

func TestStoryService_UploadAndDeleteImage(t *testing.T) {
	storage := newFakeStorage()
	svc := newStoryService(newFakeStoryRepo(), storage)
	owner := uuid.New()

	imageURL, err := svc.UploadImage(context.Background(), owner, &usecase.UploadImageInput{
		Filename: "aurora.png",
		Data:     []byte("png-bytes"),
	})
	require.NoError(t, err)
	assert.Contains(t, storage.stored, imageURL)

	require.NoError(t, svc.DeleteImage(context.Background(), owner, imageURL))
	assert.NotContains(t, storage.stored, imageURL)
}

func TestStoryService_StoryQR(t *testing.T) {
	svc := newStoryService(newFakeStoryRepo(), newFakeStorage())
	owner := uuid.New()

	story, err := svc.AddStory(context.Background(), owner, storyInput("Aurora"))
	require.NoError(t, err)

	png, err := svc.StoryQR(context.Background(), owner, story.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	_, err = svc.StoryQR(context.Background(), uuid.New(), story.ID)
	requireStoryNotFound(t, err)
}

func requireStoryNotFound(t *testing.T, err error) {
	t.Helper()

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode())
	assert.Equal(t, "Travel story not found", appErr.Message())
}
