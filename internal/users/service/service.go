package service

import (
	"context"
	"errors"
	"strings"

	"usersvc/internal/users/importer"
	"usersvc/internal/users/model"
	"usersvc/internal/users/repository"
)

var (
	ErrNotFound = errors.New("user not found")
	// ErrConflict: creating a record whose email or phone already exists
	ErrConflict = errors.New("user with this email already exists")
	// ErrEmailInUse: updating a record to an email held by another record
	ErrEmailInUse = errors.New("email already exists with another user")
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type UserService interface {
	Create(ctx context.Context, cand model.CandidateUser) (*model.User, error)
	Get(ctx context.Context, id string) (*model.User, error)
	Update(ctx context.Context, id string, update model.UserUpdate) (*model.User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q model.ListQuery) ([]*model.User, int64, error)
	BulkImport(ctx context.Context, rows []importer.Row) *model.BulkImportResult
}

type Service struct {
	Repo repository.UserRepository
}

func NewService(repo repository.UserRepository) *Service {
	return &Service{Repo: repo}
}

// NormalizeEmail lower-cases and trims an email. Emails are normalized
// at every write and lookup so matching is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) Create(ctx context.Context, cand model.CandidateUser) (*model.User, error) {
	cand.FirstName = strings.TrimSpace(cand.FirstName)
	cand.LastName = strings.TrimSpace(cand.LastName)
	cand.PhoneNumber = strings.TrimSpace(cand.PhoneNumber)
	cand.Email = NormalizeEmail(cand.Email)

	if verr := cand.Validate(); verr != nil {
		return nil, verr
	}

	// Pre-check for a friendly conflict; the unique index still guards races
	_, err := s.Repo.FindByEmail(ctx, cand.Email)
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user, err := s.Repo.Insert(ctx, cand.User())
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) Get(ctx context.Context, id string) (*model.User, error) {
	user, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) Update(ctx context.Context, id string, update model.UserUpdate) (*model.User, error) {
	if verr := update.Validate(); verr != nil {
		return nil, verr
	}

	if update.Email != nil {
		email := NormalizeEmail(*update.Email)
		update.Email = &email

		// Reject an email change that collides with a different record
		existing, err := s.Repo.FindByEmail(ctx, email)
		if err == nil && existing.ID.Hex() != id {
			return nil, ErrEmailInUse
		}
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	user, err := s.Repo.UpdateByID(ctx, id, &update)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrEmailInUse
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.Repo.DeleteByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Service) List(ctx context.Context, q model.ListQuery) ([]*model.User, int64, error) {
	page := q.Page
	if page < 1 {
		page = defaultPage
	}
	limit := q.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	filter := model.UserFilter{Search: strings.TrimSpace(q.Search)}
	skip := int64(page-1) * int64(limit)

	return s.Repo.Find(ctx, filter, skip, int64(limit))
}
