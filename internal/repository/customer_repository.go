package repository

import (
	"database/sql"
	"log/slog"
	"time"

	"customer-rewards/internal/domain"
	"customer-rewards/internal/errors"
)

type customerRepository struct {
	db     SQLExecutor
	logger *slog.Logger
}

func NewCustomerRepository(db SQLExecutor, logger *slog.Logger) domain.CustomerRepository {
	return &customerRepository{
		db:     db,
		logger: logger,
	}
}

func (r *customerRepository) CreateCustomer(customer *domain.Customer) error {
	query := `
		INSERT INTO customers (cust_name, phone_no, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	now := time.Now()
	err := r.db.QueryRow(
		query,
		customer.CustName,
		customer.PhoneNo,
		now,
		now,
	).Scan(&customer.ID)

	if err != nil {
		r.logger.Error("Failed to create customer", "cust_name", customer.CustName, "error", err)
		return errors.NewAppError(errors.InternalError, "failed to create customer").WithDetails(err.Error())
	}

	customer.CreatedAt = now
	customer.UpdatedAt = now
	r.logger.Info("Customer created successfully", "customer_id", customer.ID)
	return nil
}

// GetCustomer returns nil, nil when no customer has the given id; the caller
// decides how a miss is reported.
func (r *customerRepository) GetCustomer(id int64) (*domain.Customer, error) {
	query := `
		SELECT id, cust_name, phone_no, created_at, updated_at
		FROM customers WHERE id = $1
	`

	var customer domain.Customer
	err := r.db.QueryRow(query, id).Scan(
		&customer.ID,
		&customer.CustName,
		&customer.PhoneNo,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			r.logger.Warn("Customer not found", "customer_id", id)
			return nil, nil
		}
		r.logger.Error("Failed to get customer", "customer_id", id, "error", err)
		return nil, errors.NewAppError(errors.InternalError, "failed to get customer").WithDetails(err.Error())
	}

	return &customer, nil
}
