package purserepo

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"ewallet/internal/domain"
	"ewallet/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const purseColumns = `id, user_id, currency, balance, status, created_at, modified_at`

func scanPurse(row pgx.Row) (*domain.Purse, error) {
	var purse domain.Purse
	err := row.Scan(&purse.ID, &purse.UserID, &purse.Currency, &purse.Balance, &purse.Status, &purse.CreatedAt, &purse.ModifiedAt)
	if err != nil {
		return nil, err
	}
	return &purse, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Purse, error) {
	query := `
        SELECT id, user_id, currency, balance, status, created_at, modified_at
        FROM purses
        WHERE id = $1
    `
	purse, err := scanPurse(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find purse", zap.Error(err))
		return nil, err
	}
	return purse, nil
}

// GetForUpdate locks the purse row for the rest of the surrounding
// transaction. Only meaningful inside a TXManager unit.
func (r *Repository) GetForUpdate(ctx context.Context, id int) (*domain.Purse, error) {
	query := `
        SELECT id, user_id, currency, balance, status, created_at, modified_at
        FROM purses
        WHERE id = $1
        FOR UPDATE
    `
	purse, err := scanPurse(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock purse", zap.Error(err))
		return nil, err
	}
	return purse, nil
}

func (r *Repository) Create(ctx context.Context, purse *domain.Purse) (*domain.Purse, error) {
	query := `
        INSERT INTO purses (user_id, currency, balance, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, user_id, currency, balance, status, created_at, modified_at
    `
	created, err := scanPurse(r.db.QueryRow(ctx, query, purse.UserID, purse.Currency, purse.Balance, purse.Status))
	if err != nil {
		zap.L().Error("can't save purse", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) UpdateBalance(ctx context.Context, id int, balance float64) error {
	query := `
        UPDATE purses
        SET balance = $1, modified_at = now()
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, balance, id)
	if err != nil {
		zap.L().Error("can't update purse balance", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status domain.Status) error {
	query := `
        UPDATE purses
        SET status = $1, modified_at = now()
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("can't update purse status", zap.Error(err))
		return err
	}
	return nil
}

// List returns active purses, newest first. A non-zero userID narrows the
// list to one owner.
func (r *Repository) List(ctx context.Context, userID, limit, offset int) ([]domain.Purse, error) {
	builder := squirrel.Select(purseColumns).
		From("purses").
		Where(squirrel.Eq{"status": domain.StatusActive}).
		OrderBy("id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar)
	if userID != 0 {
		builder = builder.Where(squirrel.Eq{"user_id": userID})
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get purses", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var purses []domain.Purse
	for rows.Next() {
		purse, err := scanPurse(rows)
		if err != nil {
			zap.L().Error("can't scan purse row", zap.Error(err))
			return nil, err
		}
		purses = append(purses, *purse)
	}
	return purses, nil
}

// FindActiveByUserID is used by the user deactivation cascade.
func (r *Repository) FindActiveByUserID(ctx context.Context, userID int) ([]domain.Purse, error) {
	query := `
        SELECT id, user_id, currency, balance, status, created_at, modified_at
        FROM purses
        WHERE user_id = $1 AND status = $2
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, userID, domain.StatusActive)
	if err != nil {
		zap.L().Error("can't get user purses", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var purses []domain.Purse
	for rows.Next() {
		purse, err := scanPurse(rows)
		if err != nil {
			zap.L().Error("can't scan purse row", zap.Error(err))
			return nil, err
		}
		purses = append(purses, *purse)
	}
	return purses, nil
}
