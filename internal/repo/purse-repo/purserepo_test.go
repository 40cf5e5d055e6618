package purserepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"ewallet/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	return repo, mockDB
}

func purseRows(purse *domain.Purse) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "user_id", "currency", "balance", "status", "created_at", "modified_at"}).
		AddRow(purse.ID, purse.UserID, purse.Currency, purse.Balance, purse.Status, purse.CreatedAt, purse.ModifiedAt)
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := regexp.QuoteMeta(`
        SELECT id, user_id, currency, balance, status, created_at, modified_at
        FROM purses
        WHERE id = $1
    `)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.Purse
	}{
		{
			name: "Existing purse",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(1).
					WillReturnRows(purseRows(&domain.Purse{
						ID: 1, UserID: 2, Currency: domain.CurrencyUSD, Balance: 100.0,
						Status: domain.StatusActive, CreatedAt: now, ModifiedAt: now,
					}))
			},
			result: &domain.Purse{
				ID: 1, UserID: 2, Currency: domain.CurrencyUSD, Balance: 100.0,
				Status: domain.StatusActive, CreatedAt: now, ModifiedAt: now,
			},
		},
		{
			name: "Non-existing purse returns nil",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(99).WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, user_id, currency, balance, status, created_at, modified_at
        FROM purses
        WHERE id = $1
        FOR UPDATE
    `)

	t.Run("Locks and returns the purse", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(1).
			WillReturnRows(purseRows(&domain.Purse{ID: 1, UserID: 2, Currency: domain.CurrencyEUR, Balance: 50.0, Status: domain.StatusActive}))

		purse, err := repo.GetForUpdate(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, 1, purse.ID)
		assert.Equal(t, 50.0, purse.Balance)
	})

	t.Run("Non-existing purse returns nil", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(99).WillReturnError(pgx.ErrNoRows)

		purse, err := repo.GetForUpdate(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, purse)
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        INSERT INTO purses (user_id, currency, balance, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, user_id, currency, balance, status, created_at, modified_at
    `)

	t.Run("Successfully creates purse", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(1, domain.CurrencyUSD, 0.0, domain.StatusActive).
			WillReturnRows(purseRows(&domain.Purse{ID: 1, UserID: 1, Currency: domain.CurrencyUSD, Balance: 0, Status: domain.StatusActive}))

		created, err := repo.Create(context.Background(), &domain.Purse{
			UserID:   1,
			Currency: domain.CurrencyUSD,
			Balance:  0,
			Status:   domain.StatusActive,
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, created.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(1, domain.CurrencyUSD, 0.0, domain.StatusActive).
			WillReturnError(errors.New("database error"))

		created, err := repo.Create(context.Background(), &domain.Purse{
			UserID:   1,
			Currency: domain.CurrencyUSD,
			Status:   domain.StatusActive,
		})
		assert.Error(t, err)
		assert.Nil(t, created)
	})
}

func TestRepository_UpdateBalance(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        UPDATE purses
        SET balance = $1, modified_at = now()
        WHERE id = $2
    `)

	t.Run("Successfully updates balance", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(900.0, 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.UpdateBalance(context.Background(), 1, 900.0))
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(900.0, 1).
			WillReturnError(errors.New("database error"))

		assert.Error(t, repo.UpdateBalance(context.Background(), 1, 900.0))
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        UPDATE purses
        SET status = $1, modified_at = now()
        WHERE id = $2
    `)

	mock.ExpectExec(query).
		WithArgs(domain.StatusInactive, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.UpdateStatus(context.Background(), 1, domain.StatusInactive))
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("All active purses", func(t *testing.T) {
		query := regexp.QuoteMeta(`SELECT id, user_id, currency, balance, status, created_at, modified_at FROM purses WHERE status = $1 ORDER BY id LIMIT 10 OFFSET 0`)
		mock.ExpectQuery(query).
			WithArgs(domain.StatusActive).
			WillReturnRows(purseRows(&domain.Purse{ID: 1, UserID: 1, Currency: domain.CurrencyUSD, Status: domain.StatusActive}).
				AddRow(2, 2, domain.CurrencyEUR, 0.0, domain.StatusActive, time.Time{}, time.Time{}))

		purses, err := repo.List(context.Background(), 0, 10, 0)
		assert.NoError(t, err)
		assert.Len(t, purses, 2)
	})

	t.Run("Filtered by owner", func(t *testing.T) {
		query := regexp.QuoteMeta(`SELECT id, user_id, currency, balance, status, created_at, modified_at FROM purses WHERE status = $1 AND user_id = $2 ORDER BY id LIMIT 10 OFFSET 0`)
		mock.ExpectQuery(query).
			WithArgs(domain.StatusActive, 7).
			WillReturnRows(purseRows(&domain.Purse{ID: 3, UserID: 7, Currency: domain.CurrencyGBP, Status: domain.StatusActive}))

		purses, err := repo.List(context.Background(), 7, 10, 0)
		assert.NoError(t, err)
		assert.Len(t, purses, 1)
		assert.Equal(t, 7, purses[0].UserID)
	})
}

func TestRepository_FindActiveByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, user_id, currency, balance, status, created_at, modified_at
        FROM purses
        WHERE user_id = $1 AND status = $2
        ORDER BY id
    `)

	mock.ExpectQuery(query).
		WithArgs(1, domain.StatusActive).
		WillReturnRows(purseRows(&domain.Purse{ID: 10, UserID: 1, Currency: domain.CurrencyUAH, Status: domain.StatusActive}))

	purses, err := repo.FindActiveByUserID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, purses, 1)
	assert.Equal(t, 10, purses[0].ID)
}
