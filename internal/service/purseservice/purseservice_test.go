package purseservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"ewallet/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	purseRepo := NewMockRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)

	service := New(purseRepo, userRepo)
	return service, purseRepo, userRepo
}

func TestCreatePurse(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		userID      int
		prepareMock func(purseRepo *MockRepo, userRepo *MockUserRepo)
		wantErr     error
	}{
		{
			name:   "Success",
			userID: 1,
			prepareMock: func(purseRepo *MockRepo, userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByID(ctx, 1).Return(&domain.User{ID: 1, Status: domain.StatusActive}, nil)
				purseRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, purse *domain.Purse) (*domain.Purse, error) {
					purse.ID = 1
					return purse, nil
				})
			},
		},
		{
			name:   "UserNotFound",
			userID: 42,
			prepareMock: func(purseRepo *MockRepo, userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByID(ctx, 42).Return(nil, nil)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name:   "UserDeactivated",
			userID: 2,
			prepareMock: func(purseRepo *MockRepo, userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByID(ctx, 2).Return(&domain.User{ID: 2, Status: domain.StatusInactive}, nil)
			},
			wantErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, purseRepo, userRepo := NewMock(t)
			tt.prepareMock(purseRepo, userRepo)

			purse, err := service.CreatePurse(ctx, tt.userID, domain.CurrencyUSD)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, purse)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.userID, purse.UserID)
			assert.Equal(t, domain.CurrencyUSD, purse.Currency)
			assert.Equal(t, 0.0, purse.Balance)
			assert.Equal(t, domain.StatusActive, purse.Status)
		})
	}
}

func TestGetPurse(t *testing.T) {
	ctx := context.Background()
	service, purseRepo, _ := NewMock(t)

	purseRepo.EXPECT().FindByID(ctx, 1).Return(&domain.Purse{ID: 1, Status: domain.StatusActive}, nil)
	purse, err := service.GetPurse(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, purse.ID)

	purseRepo.EXPECT().FindByID(ctx, 2).Return(nil, nil)
	purse, err = service.GetPurse(ctx, 2)
	assert.ErrorIs(t, err, ErrPurseNotFound)
	assert.Nil(t, purse)

	purseRepo.EXPECT().FindByID(ctx, 3).Return(&domain.Purse{ID: 3, Status: domain.StatusInactive}, nil)
	purse, err = service.GetPurse(ctx, 3)
	assert.ErrorIs(t, err, ErrPurseNotFound)
	assert.Nil(t, purse)
}

func TestGetPurses(t *testing.T) {
	ctx := context.Background()
	service, purseRepo, _ := NewMock(t)

	expected := []domain.Purse{{ID: 1}, {ID: 2}}
	purseRepo.EXPECT().List(ctx, 0, 10, 0).Return(expected, nil)

	purses, err := service.GetPurses(ctx, 0, 10, 0)
	assert.NoError(t, err)
	assert.Equal(t, expected, purses)

	purseRepo.EXPECT().List(ctx, 1, 10, 0).Return(nil, errors.New("database error"))
	purses, err = service.GetPurses(ctx, 1, 10, 0)
	assert.Error(t, err)
	assert.Nil(t, purses)
}

func TestUpdateBalance(t *testing.T) {
	ctx := context.Background()
	service, purseRepo, _ := NewMock(t)

	purseRepo.EXPECT().FindByID(ctx, 1).Return(&domain.Purse{ID: 1, Balance: 100, Status: domain.StatusActive}, nil)
	purseRepo.EXPECT().UpdateBalance(ctx, 1, 500.0).Return(nil)

	purse, err := service.UpdateBalance(ctx, 1, 500)
	assert.NoError(t, err)
	assert.Equal(t, 500.0, purse.Balance)

	purseRepo.EXPECT().FindByID(ctx, 2).Return(nil, nil)
	purse, err = service.UpdateBalance(ctx, 2, 500)
	assert.ErrorIs(t, err, ErrPurseNotFound)
	assert.Nil(t, purse)
}

func TestDeactivatePurse(t *testing.T) {
	ctx := context.Background()
	service, purseRepo, _ := NewMock(t)

	purseRepo.EXPECT().FindByID(ctx, 1).Return(&domain.Purse{ID: 1, Status: domain.StatusActive}, nil)
	purseRepo.EXPECT().UpdateStatus(ctx, 1, domain.StatusInactive).Return(nil)
	assert.NoError(t, service.DeactivatePurse(ctx, 1))

	// already deactivated purses are not found again
	purseRepo.EXPECT().FindByID(ctx, 1).Return(&domain.Purse{ID: 1, Status: domain.StatusInactive}, nil)
	assert.ErrorIs(t, service.DeactivatePurse(ctx, 1), ErrPurseNotFound)
}
