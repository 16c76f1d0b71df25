package service

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"customer-rewards/internal/domain"
	"customer-rewards/internal/errors"
	"customer-rewards/internal/repository"
)

type CustomerService struct {
	store    *repository.Store
	obscurer domain.PhoneObscurer
	logger   *slog.Logger
}

func NewCustomerService(store *repository.Store, obscurer domain.PhoneObscurer, logger *slog.Logger) *CustomerService {
	return &CustomerService{
		store:    store,
		obscurer: obscurer,
		logger:   logger,
	}
}

type CreateCustomerRequest struct {
	CustName     string
	PhoneNo      string
	Transactions []TransactionInput
}

type TransactionInput struct {
	Date    time.Time
	Amount  decimal.Decimal
	Product string
}

// CustomerTransactionView is the persisted transaction as echoed back from
// onboarding; it carries no points, which are always computed at read time.
type CustomerTransactionView struct {
	ID      int64  `json:"id"`
	Date    string `json:"date"`
	Amount  string `json:"amount"`
	Product string `json:"product"`
}

type CustomerView struct {
	ID           int64                     `json:"id"`
	CustName     string                    `json:"cust_name"`
	PhoneNo      string                    `json:"phone_no"`
	Transactions []CustomerTransactionView `json:"transactions"`
}

// CreateCustomer persists a new customer together with any supplied
// transactions. Each transaction is linked to the generated customer id, the
// phone number is obscured before the write, and the whole write happens in
// one database transaction. A nil transaction list means zero transactions.
func (s *CustomerService) CreateCustomer(req *CreateCustomerRequest) (*CustomerView, error) {
	s.logger.Info("Creating customer", "cust_name", req.CustName, "transactions", len(req.Transactions))

	if req.CustName == "" {
		return nil, errors.NewAppError(errors.InvalidInput, "customer name is required")
	}
	if req.PhoneNo == "" {
		return nil, errors.NewAppError(errors.InvalidInput, "phone number is required")
	}

	obscured, err := s.obscurer.Obscure(req.PhoneNo)
	if err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		CustName: req.CustName,
		PhoneNo:  obscured,
	}

	err = s.store.WithTransaction(func(txStore *repository.Store) error {
		if err := txStore.Customer().CreateCustomer(customer); err != nil {
			return err
		}

		for _, input := range req.Transactions {
			tx := domain.Transaction{
				CustomerID: customer.ID,
				Date:       input.Date,
				Amount:     input.Amount,
				Product:    input.Product,
			}
			if err := txStore.Transaction().CreateTransaction(&tx); err != nil {
				return err
			}
			customer.Transactions = append(customer.Transactions, tx)
		}

		return nil
	})

	if err != nil {
		s.logger.Error("Failed to create customer", "cust_name", req.CustName, "error", err)
		return nil, err
	}

	s.logger.Info("Customer created successfully", "customer_id", customer.ID)
	return newCustomerView(customer), nil
}

func newCustomerView(customer *domain.Customer) *CustomerView {
	transactions := make([]CustomerTransactionView, 0, len(customer.Transactions))
	for _, tx := range customer.Transactions {
		transactions = append(transactions, CustomerTransactionView{
			ID:      tx.ID,
			Date:    tx.Date.Format(dateLayout),
			Amount:  tx.Amount.String(),
			Product: tx.Product,
		})
	}

	return &CustomerView{
		ID:           customer.ID,
		CustName:     customer.CustName,
		PhoneNo:      customer.PhoneNo,
		Transactions: transactions,
	}
}
