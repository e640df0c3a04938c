package impl

import (
	"context"
	"log/slog"
	"time"

	"atlas/config"
	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/domain/service"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// storyService implements the StoryUsecase interface. The ownership guard
// lives in the repository calls: every lookup and mutation is scoped by
// the authenticated user's ID, so a foreign story behaves exactly like a
// missing one.
type storyService struct {
	storyRepo      repository.StoryRepository
	storage        service.StorageService
	qrcode         service.QRCodeService
	placeholderURL string
	logger         *slog.Logger
}

// StoryServiceParams holds dependencies for storyService, injected by Fx.
type StoryServiceParams struct {
	fx.In

	StoryRepo repository.StoryRepository
	Storage   service.StorageService
	QRCode    service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewStoryService is the constructor for storyService.
func NewStoryService(params StoryServiceParams) usecase.StoryUsecase {
	placeholderURL := ""
	if params.Config.Storage != nil {
		placeholderURL = params.Config.Storage.PlaceholderImageURL
	}

	return &storyService{
		storyRepo:      params.StoryRepo,
		storage:        params.Storage,
		qrcode:         params.QRCode,
		placeholderURL: placeholderURL,
		logger:         params.Logger,
	}
}

// AddStory persists a new story owned by the authenticated user.
func (srv *storyService) AddStory(ctx context.Context, userID uuid.UUID, input *usecase.StoryInput) (*entity.TravelStory, error) {
	story := &entity.TravelStory{
		UserID:           userID,
		Title:            input.Title,
		Story:            input.Story,
		VisitedLocations: input.VisitedLocations,
		ImageURL:         srv.imageURLOrPlaceholder(input.ImageURL),
		VisitedDate:      input.VisitedDate,
	}

	if err := srv.storyRepo.Create(ctx, story); err != nil {
		srv.logger.Error("Failed to add story", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to add story")
	}

	srv.logger.Debug("Story added", slog.Any("userID", userID), slog.Any("storyID", story.ID))

	return story, nil
}

// ListStories returns all stories of the user, favourites first.
func (srv *storyService) ListStories(ctx context.Context, userID uuid.UUID) ([]*entity.TravelStory, error) {
	stories, err := srv.storyRepo.FindAllByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stories")
	}

	return stories, nil
}

// EditStory updates an existing story of the user.
func (srv *storyService) EditStory(ctx context.Context, userID, storyID uuid.UUID, input *usecase.StoryInput) (*entity.TravelStory, error) {
	story, err := srv.storyRepo.FindByIDAndOwner(ctx, storyID, userID)
	if err != nil {
		return nil, storyErr(err)
	}

	story.Title = input.Title
	story.Story = input.Story
	story.VisitedLocations = input.VisitedLocations
	story.ImageURL = srv.imageURLOrPlaceholder(input.ImageURL)
	story.VisitedDate = input.VisitedDate

	if err := srv.storyRepo.Update(ctx, story); err != nil {
		srv.logger.Error("Failed to edit story", slog.Any("storyID", storyID), slog.Any("error", err))

		return nil, storyErr(err)
	}

	return story, nil
}

// DeleteStory removes a story of the user and then its stored cover
// photo. The blob delete is best-effort: the story is already gone and a
// stray file is preferable to a story that cannot be deleted.
func (srv *storyService) DeleteStory(ctx context.Context, userID, storyID uuid.UUID) error {
	story, err := srv.storyRepo.FindByIDAndOwner(ctx, storyID, userID)
	if err != nil {
		return storyErr(err)
	}

	if err := srv.storyRepo.DeleteByIDAndOwner(ctx, storyID, userID); err != nil {
		return storyErr(err)
	}

	if story.ImageURL != "" && story.ImageURL != srv.placeholderURL {
		if err := srv.storage.Delete(ctx, story.ImageURL); err != nil {
			srv.logger.Warn("Failed to delete story cover photo",
				slog.Any("storyID", storyID),
				slog.String("imageUrl", story.ImageURL),
				slog.Any("error", err))
		}
	}

	srv.logger.Debug("Story deleted", slog.Any("userID", userID), slog.Any("storyID", storyID))

	return nil
}

// SetFavourite flips the favourite flag on a story of the user.
func (srv *storyService) SetFavourite(ctx context.Context, userID, storyID uuid.UUID, isFavourite bool) (*entity.TravelStory, error) {
	story, err := srv.storyRepo.FindByIDAndOwner(ctx, storyID, userID)
	if err != nil {
		return nil, storyErr(err)
	}

	story.IsFavourite = isFavourite

	if err := srv.storyRepo.Update(ctx, story); err != nil {
		return nil, storyErr(err)
	}

	return story, nil
}

// SearchStories matches the query against the user's stories.
func (srv *storyService) SearchStories(ctx context.Context, userID uuid.UUID, query string) ([]*entity.TravelStory, error) {
	stories, err := srv.storyRepo.SearchByOwner(ctx, userID, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search stories")
	}

	return stories, nil
}

// FilterStories returns the user's stories visited inside [start, end].
func (srv *storyService) FilterStories(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.TravelStory, error) {
	stories, err := srv.storyRepo.FilterByVisitedDate(ctx, userID, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "failed to filter stories")
	}

	return stories, nil
}

// UploadImage stores a cover photo and returns its public URL.
func (srv *storyService) UploadImage(ctx context.Context, userID uuid.UUID, input *usecase.UploadImageInput) (string, error) {
	imageURL, err := srv.storage.Store(ctx, input.Filename, input.Data)
	if err != nil {
		srv.logger.Warn("Failed to store uploaded image", slog.Any("userID", userID), slog.Any("error", err))

		return "", err
	}

	return imageURL, nil
}

// DeleteImage removes a previously uploaded cover photo by its URL.
func (srv *storyService) DeleteImage(ctx context.Context, userID uuid.UUID, imageURL string) error {
	if err := srv.storage.Delete(ctx, imageURL); err != nil {
		return errors.Wrap(err, "failed to delete image")
	}

	return nil
}

// StoryQR renders a share QR code for a story of the user. Ownership is
// checked first so the endpoint cannot be used to probe foreign stories.
func (srv *storyService) StoryQR(ctx context.Context, userID, storyID uuid.UUID) ([]byte, error) {
	if _, err := srv.storyRepo.FindByIDAndOwner(ctx, storyID, userID); err != nil {
		return nil, storyErr(err)
	}

	png, err := srv.qrcode.GenerateStoryQR(storyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render story QR")
	}

	return png, nil
}

func (srv *storyService) imageURLOrPlaceholder(imageURL string) string {
	if imageURL == "" {
		return srv.placeholderURL
	}

	return imageURL
}

// storyErr translates the repository's not-found sentinel into the
// client-facing not-found error. Everything else passes through and is
// handled as an internal failure.
func storyErr(err error) error {
	if errors.Is(err, repository.ErrStoryNotFound) {
		return domainerrors.ErrStoryNotFound.WrapMessage("story lookup failed")
	}

	return err
}
