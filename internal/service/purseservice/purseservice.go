package purseservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"ewallet/internal/domain"
)

// Repo is the full purse repository surface. Narrower views of it are
// consumed by the transfer and user services.
type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Purse, error)
	GetForUpdate(ctx context.Context, id int) (*domain.Purse, error)
	Create(ctx context.Context, purse *domain.Purse) (*domain.Purse, error)
	UpdateBalance(ctx context.Context, id int, balance float64) error
	UpdateStatus(ctx context.Context, id int, status domain.Status) error
	List(ctx context.Context, userID, limit, offset int) ([]domain.Purse, error)
	FindActiveByUserID(ctx context.Context, userID int) ([]domain.Purse, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

var (
	ErrPurseNotFound = errors.New("purse not found")
	ErrUserNotFound  = errors.New("user not found")
)

type Service struct {
	purseRepo Repo
	userRepo  UserRepo
}

func New(purseRepo Repo, userRepo UserRepo) *Service {
	return &Service{
		purseRepo: purseRepo,
		userRepo:  userRepo,
	}
}

// CreatePurse opens a purse in the given currency for an existing active
// user. New purses always start with a zero balance.
func (s *Service) CreatePurse(ctx context.Context, userID int, currency domain.Currency) (*domain.Purse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user", zap.Error(err))
		return nil, err
	}
	if user == nil || user.Status != domain.StatusActive {
		zap.L().Info("purse creation rejected: user doesn't exist", zap.Int("user_id", userID))
		return nil, ErrUserNotFound
	}

	purse, err := s.purseRepo.Create(ctx, &domain.Purse{
		UserID:   userID,
		Currency: currency,
		Balance:  0,
		Status:   domain.StatusActive,
	})
	if err != nil {
		zap.L().Error("failed to create purse", zap.Error(err))
		return nil, err
	}

	zap.L().Info("purse created", zap.Int("purse_id", purse.ID), zap.Int("user_id", userID), zap.String("currency", currency.String()))
	return purse, nil
}

func (s *Service) GetPurse(ctx context.Context, id int) (*domain.Purse, error) {
	purse, err := s.purseRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get purse", zap.Error(err))
		return nil, err
	}
	if purse == nil || purse.Status != domain.StatusActive {
		return nil, ErrPurseNotFound
	}
	return purse, nil
}

func (s *Service) GetPurses(ctx context.Context, userID, limit, offset int) ([]domain.Purse, error) {
	purses, err := s.purseRepo.List(ctx, userID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch purses", zap.Error(err))
		return nil, err
	}
	return purses, nil
}

// UpdateBalance is the administrative balance edit; transfers never go
// through here.
func (s *Service) UpdateBalance(ctx context.Context, id int, balance float64) (*domain.Purse, error) {
	purse, err := s.GetPurse(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.purseRepo.UpdateBalance(ctx, id, balance); err != nil {
		zap.L().Error("failed to update purse balance", zap.Error(err))
		return nil, err
	}
	purse.Balance = balance

	zap.L().Info("purse balance updated", zap.Int("purse_id", id), zap.Float64("balance", balance))
	return purse, nil
}

// DeactivatePurse hides the purse from listings and transfers. The
// balance and the transaction history are left as they are.
func (s *Service) DeactivatePurse(ctx context.Context, id int) error {
	if _, err := s.GetPurse(ctx, id); err != nil {
		return err
	}

	if err := s.purseRepo.UpdateStatus(ctx, id, domain.StatusInactive); err != nil {
		zap.L().Error("failed to deactivate purse", zap.Error(err))
		return err
	}

	zap.L().Info("purse deactivated", zap.Int("purse_id", id))
	return nil
}
