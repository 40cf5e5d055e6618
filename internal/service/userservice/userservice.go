package userservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"ewallet/internal/domain"
	"ewallet/internal/pg"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByUniqueField(ctx context.Context, field, value string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateStatus(ctx context.Context, id int, status domain.Status) error
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
}

type PurseRepo interface {
	FindActiveByUserID(ctx context.Context, userID int) ([]domain.Purse, error)
	UpdateStatus(ctx context.Context, id int, status domain.Status) error
}

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already taken")
	ErrPhoneTaken    = errors.New("phone already taken")
)

type Service struct {
	userRepo  Repo
	purseRepo PurseRepo
	txManager pg.TXManager
}

func New(userRepo Repo, purseRepo PurseRepo, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:  userRepo,
		purseRepo: purseRepo,
		txManager: txManager,
	}
}

// checkUnique verifies that username, email and phone are not taken by a
// different user. excludeID is 0 on creation.
func (s *Service) checkUnique(ctx context.Context, user *domain.User, excludeID int) error {
	checks := []struct {
		field string
		value string
		err   error
	}{
		{"username", user.Username, ErrUsernameTaken},
		{"email", user.Email, ErrEmailTaken},
		{"phone", user.Phone, ErrPhoneTaken},
	}
	for _, check := range checks {
		existing, err := s.userRepo.FindByUniqueField(ctx, check.field, check.value)
		if err != nil {
			zap.L().Error("failed to check uniqueness", zap.String("field", check.field), zap.Error(err))
			return err
		}
		if existing != nil && existing.ID != excludeID {
			zap.L().Info("uniqueness check failed", zap.String("field", check.field), zap.String("value", check.value))
			return check.err
		}
	}
	return nil
}

func (s *Service) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := s.checkUnique(ctx, user, 0); err != nil {
		return nil, err
	}

	user.Status = domain.StatusActive
	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("failed to create user", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user created", zap.Int("user_id", created.ID), zap.String("username", created.Username))
	return created, nil
}

func (s *Service) GetUser(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get user", zap.Error(err))
		return nil, err
	}
	if user == nil || user.Status != domain.StatusActive {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) GetUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *Service) UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if _, err := s.GetUser(ctx, user.ID); err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, user, user.ID); err != nil {
		return nil, err
	}

	updated, err := s.userRepo.Update(ctx, user)
	if err != nil {
		zap.L().Error("failed to update user", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user updated", zap.Int("user_id", updated.ID))
	return updated, nil
}

// DeactivateUser hides the user and deactivates all owned purses in the
// same transaction, so a half-deactivated account is never observable.
func (s *Service) DeactivateUser(ctx context.Context, id int) error {
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		purses, err := s.purseRepo.FindActiveByUserID(ctx, id)
		if err != nil {
			return err
		}
		for _, purse := range purses {
			if err := s.purseRepo.UpdateStatus(ctx, purse.ID, domain.StatusInactive); err != nil {
				return err
			}
		}
		return s.userRepo.UpdateStatus(ctx, id, domain.StatusInactive)
	})
	if err != nil {
		zap.L().Error("failed to deactivate user", zap.Error(err))
		return err
	}

	zap.L().Info("user deactivated", zap.Int("user_id", id))
	return nil
}
