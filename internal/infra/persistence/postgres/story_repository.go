package postgres

import (
	"context"
	"time"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storyRepository implements the repository.StoryRepository interface
// using GORM. Every query filters by the owning user ID, which is how
// the ownership guard is enforced at the persistence layer.
type storyRepository struct {
	db *gorm.DB
}

// NewStoryRepository is the constructor for storyRepository.
func NewStoryRepository(db *gorm.DB) repository.StoryRepository {
	return &storyRepository{db: db}
}

// Create persists a new story for its owner.
func (repo *storyRepository) Create(ctx context.Context, story *entity.TravelStory) error {
	storyM := fromStoryDomain(story)

	if err := repo.db.WithContext(ctx).Create(storyM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err)
	}

	story.ID = storyM.ID
	story.CreatedAt = storyM.CreatedAt
	story.UpdatedAt = storyM.UpdatedAt

	return nil
}

// FindByIDAndOwner retrieves a single story owned by the given user. A
// story that exists under a different owner is reported as not found.
func (repo *storyRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.TravelStory, error) {
	var storyM model.TravelStoryModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&storyM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find story by id")
	}

	return toStoryDomain(&storyM), nil
}

// FindAllByOwner lists all stories of a user, favourites first.
func (repo *storyRepository) FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.TravelStory, error) {
	var storyModels []model.TravelStoryModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("is_favourite DESC, created_at DESC").
		Find(&storyModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stories")
	}

	return toStoryDomainSlice(storyModels), nil
}

// SearchByOwner matches the query against title, body and visited
// locations of the user's stories.
func (repo *storyRepository) SearchByOwner(ctx context.Context, ownerID uuid.UUID, query string) ([]*entity.TravelStory, error) {
	pattern := "%" + query + "%"

	var storyModels []model.TravelStoryModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Where("title ILIKE ? OR story ILIKE ? OR visited_locations::text ILIKE ?", pattern, pattern, pattern).
		Order("is_favourite DESC, created_at DESC").
		Find(&storyModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search stories")
	}

	return toStoryDomainSlice(storyModels), nil
}

// FilterByVisitedDate lists the user's stories visited inside [start, end].
func (repo *storyRepository) FilterByVisitedDate(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]*entity.TravelStory, error) {
	var storyModels []model.TravelStoryModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Where("visited_date BETWEEN ? AND ?", start, end).
		Order("is_favourite DESC, created_at DESC").
		Find(&storyModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to filter stories by visited date")
	}

	return toStoryDomainSlice(storyModels), nil
}

// Update persists changes to an existing story of the given owner. The
// WHERE clause keeps the write owner-scoped even if the entity was
// tampered with between read and write.
func (repo *storyRepository) Update(ctx context.Context, story *entity.TravelStory) error {
	storyM := fromStoryDomain(story)

	result := repo.db.WithContext(ctx).
		Model(&model.TravelStoryModel{}).
		Where("id = ? AND user_id = ?", story.ID, story.UserID).
		Select("Title", "Story", "VisitedLocations", "ImageURL", "VisitedDate", "IsFavourite").
		Updates(storyM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoryNotFound
	}

	return nil
}

// DeleteByIDAndOwner removes a story owned by the given user.
func (repo *storyRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.TravelStoryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoryNotFound
	}

	return nil
}

// --- Mapper functions ---

func toStoryDomain(data *model.TravelStoryModel) *entity.TravelStory {
	if data == nil {
		return nil
	}

	return &entity.TravelStory{
		ID:               data.ID,
		UserID:           data.UserID,
		Title:            data.Title,
		Story:            data.Story,
		VisitedLocations: data.VisitedLocations,
		ImageURL:         data.ImageURL,
		VisitedDate:      data.VisitedDate,
		IsFavourite:      data.IsFavourite,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func toStoryDomainSlice(models []model.TravelStoryModel) []*entity.TravelStory {
	stories := make([]*entity.TravelStory, 0, len(models))
	for i := range models {
		stories = append(stories, toStoryDomain(&models[i]))
	}

	return stories
}

func fromStoryDomain(data *entity.TravelStory) *model.TravelStoryModel {
	if data == nil {
		return nil
	}

	return &model.TravelStoryModel{
		ID:               data.ID,
		UserID:           data.UserID,
		Title:            data.Title,
		Story:            data.Story,
		VisitedLocations: data.VisitedLocations,
		ImageURL:         data.ImageURL,
		VisitedDate:      data.VisitedDate,
		IsFavourite:      data.IsFavourite,
	}
}
