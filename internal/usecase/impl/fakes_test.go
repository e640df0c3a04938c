package impl

import (
	"context"
	"sort"
	"strings"
	"time"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"
	"atlas/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// In-memory fakes used across the service tests. They enforce the same
// contracts as the GORM-backed implementations (email uniqueness, owner
// scoping, favourites-first ordering) so the services are exercised
// against realistic repository behavior.

type fakeUserRepo struct {
	users      map[uuid.UUID]*entity.User
	createErr  error
	findErr    error
	createCall int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.createCall++
	if r.createErr != nil {
		return r.createErr
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = user

	return nil
}

type fakeStoryRepo struct {
	stories map[uuid.UUID]*entity.TravelStory
}

func newFakeStoryRepo() *fakeStoryRepo {
	return &fakeStoryRepo{stories: map[uuid.UUID]*entity.TravelStory{}}
}

func (r *fakeStoryRepo) Create(_ context.Context, story *entity.TravelStory) error {
	story.ID = uuid.New()
	story.CreatedAt = time.Now()
	story.UpdatedAt = story.CreatedAt
	clone := *story
	r.stories[story.ID] = &clone

	return nil
}

func (r *fakeStoryRepo) FindByIDAndOwner(_ context.Context, id, ownerID uuid.UUID) (*entity.TravelStory, error) {
	story, ok := r.stories[id]
	if !ok || story.UserID != ownerID {
		return nil, repository.ErrStoryNotFound
	}
	clone := *story

	return &clone, nil
}

func (r *fakeStoryRepo) FindAllByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.TravelStory, error) {
	var out []*entity.TravelStory
	for _, story := range r.stories {
		if story.UserID == ownerID {
			clone := *story
			out = append(out, &clone)
		}
	}
	sortFavouritesFirst(out)

	return out, nil
}

func (r *fakeStoryRepo) SearchByOwner(_ context.Context, ownerID uuid.UUID, query string) ([]*entity.TravelStory, error) {
	query = strings.ToLower(query)
	var out []*entity.TravelStory
	for _, story := range r.stories {
		if story.UserID != ownerID {
			continue
		}
		haystack := strings.ToLower(story.Title + " " + story.Story + " " + strings.Join(story.VisitedLocations, " "))
		if strings.Contains(haystack, query) {
			clone := *story
			out = append(out, &clone)
		}
	}
	sortFavouritesFirst(out)

	return out, nil
}

func (r *fakeStoryRepo) FilterByVisitedDate(_ context.Context, ownerID uuid.UUID, start, end time.Time) ([]*entity.TravelStory, error) {
	var out []*entity.TravelStory
	for _, story := range r.stories {
		if story.UserID != ownerID {
			continue
		}
		if story.VisitedDate.Before(start) || story.VisitedDate.After(end) {
			continue
		}
		clone := *story
		out = append(out, &clone)
	}
	sortFavouritesFirst(out)

	return out, nil
}

func (r *fakeStoryRepo) Update(_ context.Context, story *entity.TravelStory) error {
	existing, ok := r.stories[story.ID]
	if !ok || existing.UserID != story.UserID {
		return repository.ErrStoryNotFound
	}
	clone := *story
	clone.UpdatedAt = time.Now()
	r.stories[story.ID] = &clone

	return nil
}

func (r *fakeStoryRepo) DeleteByIDAndOwner(_ context.Context, id, ownerID uuid.UUID) error {
	existing, ok := r.stories[id]
	if !ok || existing.UserID != ownerID {
		return repository.ErrStoryNotFound
	}
	delete(r.stories, id)

	return nil
}

func sortFavouritesFirst(stories []*entity.TravelStory) {
	sort.SliceStable(stories, func(i, j int) bool {
		if stories[i].IsFavourite != stories[j].IsFavourite {
			return stories[i].IsFavourite
		}

		return stories[i].CreatedAt.After(stories[j].CreatedAt)
	})
}

type fakeRepoFactory struct {
	userRepo  *fakeUserRepo
	storyRepo *fakeStoryRepo
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository   { return f.userRepo }
func (f *fakeRepoFactory) StoryRepo() repository.StoryRepository { return f.storyRepo }

type fakeTxManager struct {
	factory *fakeRepoFactory
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repos repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

type fakeHasher struct {
	hashErr error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type fakeTokenService struct {
	issueErr error
}

func (s *fakeTokenService) Issue(userID uuid.UUID) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}

	return "token-for-" + userID.String(), nil
}

func (s *fakeTokenService) Verify(string) (*service.Claims, error) {
	panic("not used in service tests")
}

type fakeStorage struct {
	stored  map[string][]byte
	deleted []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{stored: map[string][]byte{}}
}

func (s *fakeStorage) Store(_ context.Context, filename string, data []byte) (string, error) {
	url := "http://localhost:8000/uploads/" + filename
	s.stored[url] = data

	return url, nil
}

func (s *fakeStorage) Delete(_ context.Context, imageURL string) error {
	s.deleted = append(s.deleted, imageURL)
	delete(s.stored, imageURL)

	return nil
}

type fakeQRCode struct{}

func (fakeQRCode) GenerateStoryQR(uuid.UUID) ([]byte, error) {
	return []byte{0x89, 'P', 'N', 'G'}, nil
}

var errBoom = errors.New("boom")
