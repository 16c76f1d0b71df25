package repository

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"customer-rewards/internal/domain"
	"customer-rewards/internal/errors"
)

type transactionRepository struct {
	db     SQLExecutor
	logger *slog.Logger
}

func NewTransactionRepository(db SQLExecutor, logger *slog.Logger) domain.TransactionRepository {
	return &transactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *transactionRepository) CreateTransaction(tx *domain.Transaction) error {
	query := `
		INSERT INTO transactions (customer_id, date, amount, product, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	now := time.Now()
	err := r.db.QueryRow(
		query,
		tx.CustomerID,
		tx.Date,
		tx.Amount.String(),
		tx.Product,
		now,
	).Scan(&tx.ID)

	if err != nil {
		r.logger.Error("Failed to create transaction",
			"customer_id", tx.CustomerID,
			"amount", tx.Amount,
			"error", err)
		return errors.NewAppError(errors.InternalError, "failed to create transaction").WithDetails(err.Error())
	}

	tx.CreatedAt = now
	r.logger.Info("Transaction created successfully", "transaction_id", tx.ID, "customer_id", tx.CustomerID)
	return nil
}

func (r *transactionRepository) GetTransactionsByCustomerID(customerID int64) ([]domain.Transaction, error) {
	query := `
		SELECT id, customer_id, date, amount, product, created_at
		FROM transactions
		WHERE customer_id = $1
		ORDER BY date, id
	`

	return r.queryTransactions(query, customerID)
}

func (r *transactionRepository) GetTransactionsByCustomerIDAndDateRange(customerID int64, start, end time.Time) ([]domain.Transaction, error) {
	// BETWEEN is inclusive on both ends, matching the report contract.
	query := `
		SELECT id, customer_id, date, amount, product, created_at
		FROM transactions
		WHERE customer_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date, id
	`

	return r.queryTransactions(query, customerID, start, end)
}

func (r *transactionRepository) queryTransactions(query string, args ...interface{}) ([]domain.Transaction, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Error("Failed to query transactions", "error", err)
		return nil, errors.NewAppError(errors.InternalError, "failed to query transactions").WithDetails(err.Error())
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		var amountStr string

		if err := rows.Scan(
			&tx.ID,
			&tx.CustomerID,
			&tx.Date,
			&amountStr,
			&tx.Product,
			&tx.CreatedAt,
		); err != nil {
			r.logger.Error("Failed to scan transaction", "error", err)
			return nil, errors.NewAppError(errors.InternalError, "failed to scan transaction").WithDetails(err.Error())
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, errors.NewAppError(errors.InternalError, "failed to parse amount").WithDetails(err.Error())
		}
		tx.Amount = amount

		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.NewAppError(errors.InternalError, "failed to read transactions").WithDetails(err.Error())
	}

	return transactions, nil
}
