package dto

import "time"

type PurseCreateRequestDTO struct {
	UserID   int    `json:"user_id" example:"1" validate:"required,gt=0"`
	Currency string `json:"currency" example:"USD" validate:"required,oneof=USD EUR GBP UAH"`
}

// PurseUpdateRequestDTO is the administrative balance edit.
type PurseUpdateRequestDTO struct {
	Balance float64 `json:"balance" example:"250.5" validate:"gte=0"`
}

type PurseResponseDTO struct {
	ID         int       `json:"id" example:"1"`
	UserID     int       `json:"user_id" example:"1"`
	Currency   string    `json:"currency" example:"USD"`
	Balance    float64   `json:"balance" example:"1000"`
	CreatedAt  time.Time `json:"created_at" example:"2023-03-01T12:00:00Z"`
	ModifiedAt time.Time `json:"modified_at" example:"2023-03-01T12:00:00Z"`
}
