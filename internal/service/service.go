package service

import (
	"ewallet/internal/handlers/purses"
	"ewallet/internal/handlers/transactions"
	"ewallet/internal/handlers/users"

	"ewallet/internal/pg"
	"ewallet/internal/rates"
	"ewallet/internal/repo"
	"ewallet/internal/service/purseservice"
	"ewallet/internal/service/transferservice"
	"ewallet/internal/service/userservice"
)

type Services struct {
	UserService     users.Service
	PurseService    purses.Service
	TransferService transactions.Service
}

func New(repo *repo.Repositories, rateTable *rates.Table, txManager pg.TXManager) *Services {
	userService := userservice.New(repo.UserRepo, repo.PurseRepo, txManager)
	purseService := purseservice.New(repo.PurseRepo, repo.UserRepo)
	transferService := transferservice.New(repo.PurseRepo, repo.TransactionRepo, rateTable, txManager)

	return &Services{
		UserService:     userService,
		PurseService:    purseService,
		TransferService: transferService,
	}
}
