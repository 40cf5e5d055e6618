package userrepo

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

const userColumns = `id, username, email, phone, first_name, last_name, birth_date, status, created_at, modified_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.Phone,
		&user.FirstName, &user.LastName, &user.BirthDate,
		&user.Status, &user.CreatedAt, &user.ModifiedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `
        SELECT id, username, email, phone, first_name, last_name, birth_date, status, created_at, modified_at
        FROM users
        WHERE id = $1
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// FindByUniqueField looks a user up by one of the unique columns
// (username, email or phone); used for uniqueness checks.
func (r *Repository) FindByUniqueField(ctx context.Context, field, value string) (*domain.User, error) {
	query, args, err := squirrel.Select(userColumns).
		From("users").
		Where(squirrel.Eq{field: value}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.String("field", field), zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (username, email, phone, first_name, last_name, birth_date, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, username, email, phone, first_name, last_name, birth_date, status, created_at, modified_at
    `
	created, err := scanUser(r.db.QueryRow(ctx, query,
		user.Username, user.Email, user.Phone,
		user.FirstName, user.LastName, user.BirthDate, user.Status))
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        UPDATE users
        SET username = $1, email = $2, phone = $3, first_name = $4, last_name = $5, birth_date = $6, modified_at = now()
        WHERE id = $7
        RETURNING id, username, email, phone, first_name, last_name, birth_date, status, created_at, modified_at
    `
	updated, err := scanUser(r.db.QueryRow(ctx, query,
		user.Username, user.Email, user.Phone,
		user.FirstName, user.LastName, user.BirthDate, user.ID))
	if err != nil {
		zap.L().Error("can't update user", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status domain.Status) error {
	query := `
        UPDATE users
        SET status = $1, modified_at = now()
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("can't update user status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	query, args, err := squirrel.Select(userColumns).
		From("users").
		Where(squirrel.Eq{"status": domain.StatusActive}).
		OrderBy("id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}
