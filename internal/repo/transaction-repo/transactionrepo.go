package transactionrepo

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

const transactionColumns = `id, purse_from_id, purse_to_id, purse_from_currency, purse_to_currency, purse_from_amount, purse_to_amount, created_at`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var trx domain.Transaction
	err := row.Scan(&trx.ID, &trx.PurseFromID, &trx.PurseToID,
		&trx.PurseFromCurrency, &trx.PurseToCurrency,
		&trx.PurseFromAmount, &trx.PurseToAmount, &trx.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &trx, nil
}

// Create inserts the audit record of a completed transfer. Records are
// never updated or deleted afterwards.
func (r *Repository) Create(ctx context.Context, trx *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (purse_from_id, purse_to_id, purse_from_currency, purse_to_currency, purse_from_amount, purse_to_amount, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, purse_from_id, purse_to_id, purse_from_currency, purse_to_currency, purse_from_amount, purse_to_amount, created_at
    `
	created, err := scanTransaction(r.db.QueryRow(ctx, query,
		trx.PurseFromID, trx.PurseToID,
		trx.PurseFromCurrency, trx.PurseToCurrency,
		trx.PurseFromAmount, trx.PurseToAmount, trx.CreatedAt))
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Transaction, error) {
	query := `
        SELECT id, purse_from_id, purse_to_id, purse_from_currency, purse_to_currency, purse_from_amount, purse_to_amount, created_at
        FROM transactions
        WHERE id = $1
    `
	trx, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find transaction", zap.Error(err))
		return nil, err
	}
	return trx, nil
}

// List returns transactions, newest first. A non-zero purseID narrows the
// list to transfers that touched that purse on either side.
func (r *Repository) List(ctx context.Context, purseID, limit, offset int) ([]domain.Transaction, error) {
	builder := squirrel.Select(transactionColumns).
		From("transactions").
		OrderBy("created_at DESC, id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar)
	if purseID != 0 {
		builder = builder.Where(squirrel.Or{
			squirrel.Eq{"purse_from_id": purseID},
			squirrel.Eq{"purse_to_id": purseID},
		})
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		trx, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, *trx)
	}
	return transactions, nil
}
