package service

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-rewards/internal/domain"
	"customer-rewards/internal/errors"
	"customer-rewards/internal/reward"
)

type fakeCustomerRepo struct {
	customers map[int64]*domain.Customer
	err       error
}

func (f *fakeCustomerRepo) CreateCustomer(customer *domain.Customer) error {
	if f.err != nil {
		return f.err
	}
	customer.ID = int64(len(f.customers) + 1)
	if f.customers == nil {
		f.customers = make(map[int64]*domain.Customer)
	}
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) GetCustomer(id int64) (*domain.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.customers[id], nil
}

type fakeTransactionRepo struct {
	transactions []domain.Transaction
	err          error
}

func (f *fakeTransactionRepo) CreateTransaction(tx *domain.Transaction) error {
	if f.err != nil {
		return f.err
	}
	tx.ID = int64(len(f.transactions) + 1)
	f.transactions = append(f.transactions, *tx)
	return nil
}

func (f *fakeTransactionRepo) GetTransactionsByCustomerID(customerID int64) ([]domain.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Transaction
	for _, tx := range f.transactions {
		if tx.CustomerID == customerID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) GetTransactionsByCustomerIDAndDateRange(customerID int64, start, end time.Time) ([]domain.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Transaction
	for _, tx := range f.transactions {
		if tx.CustomerID != customerID {
			continue
		}
		if tx.Date.Before(start) || tx.Date.After(end) {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}

func mustDecimal(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	require.NoError(t, err)
	return d
}

func newTestRewardService(customers *fakeCustomerRepo, transactions *fakeTransactionRepo) *RewardService {
	return NewRewardService(customers, transactions, DefaultMessages(), testLogger())
}

func TestGetRewardReportSingleTransaction(t *testing.T) {
	customers := &fakeCustomerRepo{customers: map[int64]*domain.Customer{
		1: {ID: 1, CustName: "John Doe", PhoneNo: "$2a$10$stored"},
	}}
	transactions := &fakeTransactionRepo{transactions: []domain.Transaction{
		{ID: 10, CustomerID: 1, Date: mustDate(t, "2024-01-15"), Amount: mustDecimal(t, "150.0"), Product: "Laptop"},
	}}
	svc := newTestRewardService(customers, transactions)

	report, err := svc.GetRewardReport(1, mustDate(t, "2024-01-01"), mustDate(t, "2024-01-31"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), report.CustomerID)
	assert.Equal(t, "John Doe", report.CustName)
	assert.Equal(t, "$2a$10$stored", report.PhoneNo)
	assert.Equal(t, int64(150), report.TotalRewards)
	require.Len(t, report.Transactions, 1)
	assert.Equal(t, int64(150), report.Transactions[0].RewardPoints)
	assert.Equal(t, "2024-01-15", report.Transactions[0].Date)
	assert.Equal(t, []reward.MonthlyReward{{Year: 2024, Month: "January", Points: 150}}, report.MonthlyRewards)
	assert.Equal(t, TimeFrame{StartDate: "2024-01-01", EndDate: "2024-01-31"}, report.TimeFrame)
}

func TestGetRewardReportZeroPointMonthIncluded(t *testing.T) {
	customers := &fakeCustomerRepo{customers: map[int64]*domain.Customer{
		1: {ID: 1, CustName: "John Doe", PhoneNo: "$2a$10$stored"},
	}}
	transactions := &fakeTransactionRepo{transactions: []domain.Transaction{
		{ID: 1, CustomerID: 1, Date: mustDate(t, "2024-01-20"), Amount: mustDecimal(t, "75.0"), Product: "Headphones"},
		{ID: 2, CustomerID: 1, Date: mustDate(t, "2024-02-05"), Amount: mustDecimal(t, "40.0"), Product: "Book"},
	}}
	svc := newTestRewardService(customers, transactions)

	report, err := svc.GetRewardReport(1, mustDate(t, "2024-01-01"), mustDate(t, "2024-02-28"))
	require.NoError(t, err)

	assert.Equal(t, int64(25), report.TotalRewards)
	assert.Equal(t, []reward.MonthlyReward{
		{Year: 2024, Month: "January", Points: 25},
		{Year: 2024, Month: "February", Points: 0},
	}, report.MonthlyRewards)
}

func TestGetRewardReportRangeIsInclusive(t *testing.T) {
	customers := &fakeCustomerRepo{customers: map[int64]*domain.Customer{
		1: {ID: 1, CustName: "John Doe", PhoneNo: "stored"},
	}}
	transactions := &fakeTransactionRepo{transactions: []domain.Transaction{
		{ID: 1, CustomerID: 1, Date: mustDate(t, "2024-01-01"), Amount: mustDecimal(t, "120"), Product: "a"},
		{ID: 2, CustomerID: 1, Date: mustDate(t, "2024-01-31"), Amount: mustDecimal(t, "120"), Product: "b"},
	}}
	svc := newTestRewardService(customers, transactions)

	report, err := svc.GetRewardReport(1, mustDate(t, "2024-01-01"), mustDate(t, "2024-01-31"))
	require.NoError(t, err)
	assert.Len(t, report.Transactions, 2)
	assert.Equal(t, int64(180), report.TotalRewards)
}

func TestGetRewardReportCustomerNotFound(t *testing.T) {
	svc := newTestRewardService(&fakeCustomerRepo{}, &fakeTransactionRepo{})

	_, err := svc.GetRewardReport(42, mustDate(t, "2024-01-01"), mustDate(t, "2024-01-31"))
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.CustomerNotFound, appErr.Code)
	assert.Contains(t, appErr.Message, "42")
}

func TestGetRewardReportNoTransactionsInRange(t *testing.T) {
	customers := &fakeCustomerRepo{customers: map[int64]*domain.Customer{
		1: {ID: 1, CustName: "John Doe", PhoneNo: "stored"},
	}}
	transactions := &fakeTransactionRepo{transactions: []domain.Transaction{
		{ID: 1, CustomerID: 1, Date: mustDate(t, "2024-06-15"), Amount: mustDecimal(t, "150"), Product: "Laptop"},
	}}
	svc := newTestRewardService(customers, transactions)

	_, err := svc.GetRewardReport(1, mustDate(t, "2024-01-01"), mustDate(t, "2024-01-31"))
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.TransactionsNotFound, appErr.Code)
}

func TestGetRewardReportInvertedRangeSurfacesAsNotFound(t *testing.T) {
	customers := &fakeCustomerRepo{customers: map[int64]*domain.Customer{
		1: {ID: 1, CustName: "John Doe", PhoneNo: "stored"},
	}}
	transactions := &fakeTransactionRepo{transactions: []domain.Transaction{
		{ID: 1, CustomerID: 1, Date: mustDate(t, "2024-01-15"), Amount: mustDecimal(t, "150"), Product: "Laptop"},
	}}
	svc := newTestRewardService(customers, transactions)

	// The service does not re-validate the range; an inverted one simply
	// matches nothing.
	_, err := svc.GetRewardReport(1, mustDate(t, "2024-01-31"), mustDate(t, "2024-01-01"))
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.TransactionsNotFound, appErr.Code)
}

func TestGetRewardReportStorageFailurePropagates(t *testing.T) {
	storageErr := errors.NewAppError(errors.InternalError, "boom")
	svc := newTestRewardService(&fakeCustomerRepo{err: storageErr}, &fakeTransactionRepo{})

	_, err := svc.GetRewardReport(1, mustDate(t, "2024-01-01"), mustDate(t, "2024-01-31"))
	assert.Equal(t, storageErr, err)
}

func TestListTransactions(t *testing.T) {
	transactions := &fakeTransactionRepo{transactions: []domain.Transaction{
		{ID: 1, CustomerID: 1, Date: mustDate(t, "2024-01-15"), Amount: mustDecimal(t, "150.0"), Product: "Laptop"},
		{ID: 2, CustomerID: 1, Date: mustDate(t, "2024-02-05"), Amount: mustDecimal(t, "40.0"), Product: "Book"},
		{ID: 3, CustomerID: 2, Date: mustDate(t, "2024-02-06"), Amount: mustDecimal(t, "75.0"), Product: "Other"},
	}}
	svc := newTestRewardService(&fakeCustomerRepo{}, transactions)

	views, err := svc.ListTransactions(1)
	require.NoError(t, err)

	require.Len(t, views, 2)
	assert.Equal(t, int64(150), views[0].RewardPoints)
	assert.Equal(t, "Laptop", views[0].Product)
	assert.Equal(t, int64(0), views[1].RewardPoints)
}

func TestListTransactionsEmptyIsValid(t *testing.T) {
	svc := newTestRewardService(&fakeCustomerRepo{}, &fakeTransactionRepo{})

	views, err := svc.ListTransactions(1)
	require.NoError(t, err)
	assert.Empty(t, views)
}
