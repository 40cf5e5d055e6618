package repo

import (
	"ewallet/internal/pg"
	purserepo "ewallet/internal/repo/purse-repo"
	transactionrepo "ewallet/internal/repo/transaction-repo"
	userrepo "ewallet/internal/repo/user-repo"
	"ewallet/internal/service/purseservice"
	"ewallet/internal/service/transferservice"
	"ewallet/internal/service/userservice"
)

type Repositories struct {
	UserRepo        userservice.Repo
	PurseRepo       purseservice.Repo
	TransactionRepo transferservice.TransactionRepo
}

func New(conn pg.Database) *Repositories {
	userRepo := userrepo.New(conn)
	purseRepo := purserepo.New(conn)
	transactionRepo := transactionrepo.New(conn)

	return &Repositories{
		UserRepo:        userRepo,
		PurseRepo:       purseRepo,
		TransactionRepo: transactionRepo,
	}
}
