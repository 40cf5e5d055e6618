package main

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ewallet/internal/config"
	"ewallet/internal/domain"
	"ewallet/internal/pg"
	"ewallet/internal/rates"
	"ewallet/internal/repo"
	"ewallet/internal/service"
	"ewallet/pkg/logger"
)

const (
	userCount        = 9
	pursesPerUser    = 2
	transactionCount = 20
)

// Fills the database with fake users, purses and transactions for local
// development and manual testing.
func main() {
	ctx := context.Background()

	cfg := config.New()
	if err := logger.InitLogger(cfg); err != nil {
		log.Fatal().Err(err).Msg("Can't init logger")
	}

	pool, err := pgxpool.New(ctx, cfg.Database)
	if err != nil {
		zap.L().Fatal("can't build pgx pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Fatal("migrations failed", zap.Error(err))
	}

	repos := repo.New(pg.New(pool))
	services := service.New(repos, rates.New(), pg.NewTXManager(pool))

	currencies := domain.Currencies()

	var mu sync.Mutex
	var purseIDs []int

	g, gCtx := errgroup.WithContext(ctx)
	for i := 0; i < userCount; i++ {
		i := i
		g.Go(func() error {
			user, err := services.UserService.CreateUser(gCtx, &domain.User{
				Username:  gofakeit.Username(),
				Email:     gofakeit.Email(),
				Phone:     fmt.Sprintf("+3805012345%02d", i),
				FirstName: gofakeit.FirstName(),
				LastName:  gofakeit.LastName(),
				BirthDate: gofakeit.DateRange(gofakeit.Date().AddDate(-60, 0, 0), gofakeit.Date()),
			})
			if err != nil {
				return err
			}

			for j := 0; j < pursesPerUser; j++ {
				purse, err := services.PurseService.CreatePurse(gCtx, user.ID, currencies[rand.Intn(len(currencies))])
				if err != nil {
					return err
				}
				if _, err := services.PurseService.UpdateBalance(gCtx, purse.ID, float64(rand.Intn(10000))); err != nil {
					return err
				}
				mu.Lock()
				purseIDs = append(purseIDs, purse.ID)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Fatal("can't seed users", zap.Error(err))
	}

	seeded := 0
	for attempts := 0; seeded < transactionCount && attempts < transactionCount*20; attempts++ {
		from := purseIDs[rand.Intn(len(purseIDs))]
		to := purseIDs[rand.Intn(len(purseIDs))]
		if from == to {
			continue
		}
		if _, err := services.TransferService.Transfer(ctx, from, to, float64(1+rand.Intn(100))); err != nil {
			// a purse can run dry, just pick another pair
			zap.L().Debug("seed transfer skipped", zap.Error(err))
			continue
		}
		seeded++
	}

	zap.L().Info("database seeded",
		zap.Int("users", userCount),
		zap.Int("purses", len(purseIDs)),
		zap.Int("transactions", seeded))
}
