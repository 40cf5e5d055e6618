package domain

import "time"

// Status is the logical-deletion state of a user or purse. Inactive rows
// are hidden from listings and transfers but are never removed.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type User struct {
	ID         int       `db:"id"`
	Username   string    `db:"username"`
	Email      string    `db:"email"`
	Phone      string    `db:"phone"`
	FirstName  string    `db:"first_name"`
	LastName   string    `db:"last_name"`
	BirthDate  time.Time `db:"birth_date"`
	Status     Status    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
	ModifiedAt time.Time `db:"modified_at"`
}

type Purse struct {
	ID         int       `db:"id"`
	UserID     int       `db:"user_id"`
	Currency   Currency  `db:"currency"`
	Balance    float64   `db:"balance"`
	Status     Status    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
	ModifiedAt time.Time `db:"modified_at"`
}

// Transaction is the immutable audit record of one completed transfer.
// Currencies are snapshotted at transfer time, not re-derived later.
type Transaction struct {
	ID                int       `db:"id"`
	PurseFromID       int       `db:"purse_from_id"`
	PurseToID         int       `db:"purse_to_id"`
	PurseFromCurrency Currency  `db:"purse_from_currency"`
	PurseToCurrency   Currency  `db:"purse_to_currency"`
	PurseFromAmount   float64   `db:"purse_from_amount"`
	PurseToAmount     float64   `db:"purse_to_amount"`
	CreatedAt         time.Time `db:"created_at"`
}
