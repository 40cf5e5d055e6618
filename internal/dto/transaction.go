package dto

import "time"

type TransferRequestDTO struct {
	PurseFromID int     `json:"purse_from_id" example:"1" validate:"required,gt=0"`
	PurseToID   int     `json:"purse_to_id" example:"2" validate:"required,gt=0"`
	Amount      float64 `json:"purse_from_amount" example:"100" validate:"required,gt=0"`
}

type TransactionResponseDTO struct {
	ID                int       `json:"id" example:"1"`
	PurseFromID       int       `json:"purse_from_id" example:"1"`
	PurseToID         int       `json:"purse_to_id" example:"2"`
	PurseFromCurrency string    `json:"purse_from_currency" example:"USD"`
	PurseToCurrency   string    `json:"purse_to_currency" example:"EUR"`
	PurseFromAmount   float64   `json:"purse_from_amount" example:"100"`
	PurseToAmount     float64   `json:"purse_to_amount" example:"95"`
	CreatedAt         time.Time `json:"created_at" example:"2023-03-01T12:00:00Z"`
}
