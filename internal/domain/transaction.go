package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Transaction struct {
	ID         int64           `json:"id"`
	CustomerID int64           `json:"customer_id"`
	Date       time.Time       `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Product    string          `json:"product"`
	CreatedAt  time.Time       `json:"created_at"`
}

type TransactionRepository interface {
	CreateTransaction(tx *Transaction) error
	GetTransactionsByCustomerID(customerID int64) ([]Transaction, error)
	// GetTransactionsByCustomerIDAndDateRange returns transactions dated within
	// [start, end], inclusive on both ends.
	GetTransactionsByCustomerIDAndDateRange(customerID int64, start, end time.Time) ([]Transaction, error)
}
