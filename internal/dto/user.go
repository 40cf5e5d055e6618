package dto

import "time"

type UserCreateRequestDTO struct {
	Username  string `json:"username" example:"johndoe" validate:"required,min=3,max=50"`
	Email     string `json:"email" example:"john@example.com" validate:"required,email,max=50"`
	Phone     string `json:"phone" example:"+380501234567" validate:"required,phone"`
	FirstName string `json:"first_name" example:"John" validate:"required,max=50"`
	LastName  string `json:"last_name" example:"Doe" validate:"required,max=50"`
	BirthDate string `json:"birth_date" example:"1990-05-21" validate:"required,datetime=2006-01-02"`
}

type UserUpdateRequestDTO struct {
	Username  string `json:"username" example:"johndoe" validate:"required,min=3,max=50"`
	Email     string `json:"email" example:"john@example.com" validate:"required,email,max=50"`
	Phone     string `json:"phone" example:"+380501234567" validate:"required,phone"`
	FirstName string `json:"first_name" example:"John" validate:"required,max=50"`
	LastName  string `json:"last_name" example:"Doe" validate:"required,max=50"`
	BirthDate string `json:"birth_date" example:"1990-05-21" validate:"required,datetime=2006-01-02"`
}

type UserResponseDTO struct {
	ID         int       `json:"id" example:"1"`
	Username   string    `json:"username" example:"johndoe"`
	Email      string    `json:"email" example:"john@example.com"`
	Phone      string    `json:"phone" example:"+380501234567"`
	FirstName  string    `json:"first_name" example:"John"`
	LastName   string    `json:"last_name" example:"Doe"`
	BirthDate  string    `json:"birth_date" example:"1990-05-21"`
	CreatedAt  time.Time `json:"created_at" example:"2023-03-01T12:00:00Z"`
	ModifiedAt time.Time `json:"modified_at" example:"2023-03-01T12:00:00Z"`
}
