package transferservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"ewallet/internal/domain"
	"ewallet/internal/pg"
)

type PurseRepo interface {
	GetForUpdate(ctx context.Context, id int) (*domain.Purse, error)
	UpdateBalance(ctx context.Context, id int, balance float64) error
}

type TransactionRepo interface {
	Create(ctx context.Context, trx *domain.Transaction) (*domain.Transaction, error)
	FindByID(ctx context.Context, id int) (*domain.Transaction, error)
	List(ctx context.Context, purseID, limit, offset int) ([]domain.Transaction, error)
}

type RateTable interface {
	Get(from, to domain.Currency) (float64, error)
}

var (
	ErrPurseNotFound     = errors.New("purse not found")
	ErrSamePurse         = errors.New("source and destination purses are the same")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("transfer amount must be positive")
)

type Service struct {
	purseRepo       PurseRepo
	transactionRepo TransactionRepo
	rates           RateTable
	txManager       pg.TXManager
}

func New(purseRepo PurseRepo, transactionRepo TransactionRepo, rates RateTable, txManager pg.TXManager) *Service {
	return &Service{
		purseRepo:       purseRepo,
		transactionRepo: transactionRepo,
		rates:           rates,
		txManager:       txManager,
	}
}

// Transfer moves value between two purses, converting currency via the
// rate table when they differ, and records the transaction. The debit,
// the credit and the record insert commit as one unit; a precondition
// failure leaves both balances untouched.
func (s *Service) Transfer(ctx context.Context, purseFromID, purseToID int, amount float64) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var trx *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		purseFrom, err := s.purseRepo.GetForUpdate(ctx, purseFromID)
		if err != nil {
			return err
		}
		if purseFrom == nil || purseFrom.Status != domain.StatusActive {
			zap.L().Info("transfer rejected: source purse doesn't exist", zap.Int("purse_id", purseFromID))
			return ErrPurseNotFound
		}

		purseTo, err := s.purseRepo.GetForUpdate(ctx, purseToID)
		if err != nil {
			return err
		}
		if purseTo == nil || purseTo.Status != domain.StatusActive {
			zap.L().Info("transfer rejected: destination purse doesn't exist", zap.Int("purse_id", purseToID))
			return ErrPurseNotFound
		}

		if purseFrom.ID == purseTo.ID {
			zap.L().Info("transfer rejected: source and destination are the same", zap.Int("purse_id", purseFromID))
			return ErrSamePurse
		}

		if purseFrom.Balance < amount {
			zap.L().Info("transfer rejected: insufficient funds",
				zap.Int("purse_id", purseFromID),
				zap.Float64("balance", purseFrom.Balance),
				zap.Float64("amount", amount))
			return ErrInsufficientFunds
		}

		toAmount := amount
		if purseFrom.Currency != purseTo.Currency {
			rate, err := s.rates.Get(purseFrom.Currency, purseTo.Currency)
			if err != nil {
				zap.L().Error("transfer rejected: no rate for pair",
					zap.String("from", purseFrom.Currency.String()),
					zap.String("to", purseTo.Currency.String()))
				return err
			}
			toAmount = amount * rate
		}

		if err := s.purseRepo.UpdateBalance(ctx, purseFrom.ID, purseFrom.Balance-amount); err != nil {
			return err
		}
		if err := s.purseRepo.UpdateBalance(ctx, purseTo.ID, purseTo.Balance+toAmount); err != nil {
			return err
		}

		trx, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			PurseFromID:       purseFrom.ID,
			PurseToID:         purseTo.ID,
			PurseFromCurrency: purseFrom.Currency,
			PurseToCurrency:   purseTo.Currency,
			PurseFromAmount:   amount,
			PurseToAmount:     toAmount,
			CreatedAt:         time.Now(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("transfer completed",
		zap.Int("transaction_id", trx.ID),
		zap.Int("purse_from_id", trx.PurseFromID),
		zap.Int("purse_to_id", trx.PurseToID),
		zap.Float64("purse_from_amount", trx.PurseFromAmount),
		zap.Float64("purse_to_amount", trx.PurseToAmount))
	return trx, nil
}

var ErrTransactionNotFound = errors.New("transaction not found")

func (s *Service) GetTransaction(ctx context.Context, id int) (*domain.Transaction, error) {
	trx, err := s.transactionRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get transaction", zap.Error(err))
		return nil, err
	}
	if trx == nil {
		return nil, ErrTransactionNotFound
	}
	return trx, nil
}

func (s *Service) GetTransactions(ctx context.Context, purseID, limit, offset int) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.List(ctx, purseID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}
