package service

import (
	"log/slog"
	"time"

	"customer-rewards/internal/domain"
	"customer-rewards/internal/errors"
	"customer-rewards/internal/reward"
)

// Messages holds the human-readable texts used when a reward lookup comes up
// empty. Passing them in at construction keeps the wording out of the
// business logic and out of any global lookup.
type Messages struct {
	CustomerNotFound     string
	TransactionsNotFound string
}

func DefaultMessages() Messages {
	return Messages{
		CustomerNotFound:     "customer not found",
		TransactionsNotFound: "no transactions found in the requested period",
	}
}

type RewardService struct {
	customerRepo    domain.CustomerRepository
	transactionRepo domain.TransactionRepository
	messages        Messages
	logger          *slog.Logger
}

func NewRewardService(
	customerRepo domain.CustomerRepository,
	transactionRepo domain.TransactionRepository,
	messages Messages,
	logger *slog.Logger,
) *RewardService {
	return &RewardService{
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
		messages:        messages,
		logger:          logger,
	}
}

type TransactionView struct {
	ID           int64  `json:"id"`
	Date         string `json:"date"`
	Amount       string `json:"amount"`
	Product      string `json:"product"`
	RewardPoints int64  `json:"reward_points"`
}

type TimeFrame struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type RewardReport struct {
	CustomerID     int64                  `json:"customer_id"`
	CustName       string                 `json:"cust_name"`
	PhoneNo        string                 `json:"phone_no"`
	Transactions   []TransactionView      `json:"transactions"`
	MonthlyRewards []reward.MonthlyReward `json:"monthly_rewards"`
	TotalRewards   int64                  `json:"total_rewards"`
	TimeFrame      TimeFrame              `json:"time_frame"`
}

const dateLayout = "2006-01-02"

// GetRewardReport builds the reward report for a customer over the inclusive
// [start, end] range. A missing customer and an empty range both fail; the
// service never substitutes a zero-valued report for "no activity".
func (s *RewardService) GetRewardReport(customerID int64, start, end time.Time) (*RewardReport, error) {
	s.logger.Info("Building reward report",
		"customer_id", customerID,
		"start_date", start.Format(dateLayout),
		"end_date", end.Format(dateLayout))

	customer, err := s.customerRepo.GetCustomer(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, errors.NewAppErrorf(errors.CustomerNotFound, "%s: %d", s.messages.CustomerNotFound, customerID)
	}

	transactions, err := s.transactionRepo.GetTransactionsByCustomerIDAndDateRange(customerID, start, end)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, errors.NewAppError(errors.TransactionsNotFound, s.messages.TransactionsNotFound)
	}

	result := reward.Calculate(transactions)

	report := &RewardReport{
		CustomerID:     customer.ID,
		CustName:       customer.CustName,
		PhoneNo:        customer.PhoneNo,
		Transactions:   newTransactionViews(result.Transactions),
		MonthlyRewards: result.Monthly,
		TotalRewards:   result.Total,
		TimeFrame: TimeFrame{
			StartDate: start.Format(dateLayout),
			EndDate:   end.Format(dateLayout),
		},
	}

	s.logger.Info("Reward report built",
		"customer_id", customerID,
		"transactions", len(report.Transactions),
		"total_rewards", report.TotalRewards)
	return report, nil
}

// ListTransactions returns every transaction for the customer, each carrying
// freshly computed points. An empty list is a valid result here.
func (s *RewardService) ListTransactions(customerID int64) ([]TransactionView, error) {
	s.logger.Info("Listing transactions", "customer_id", customerID)

	transactions, err := s.transactionRepo.GetTransactionsByCustomerID(customerID)
	if err != nil {
		return nil, err
	}

	views := make([]TransactionView, 0, len(transactions))
	for _, tx := range transactions {
		views = append(views, newTransactionView(tx, reward.CalculatePoints(tx.Amount)))
	}
	return views, nil
}

func newTransactionView(tx domain.Transaction, points int64) TransactionView {
	return TransactionView{
		ID:           tx.ID,
		Date:         tx.Date.Format(dateLayout),
		Amount:       tx.Amount.String(),
		Product:      tx.Product,
		RewardPoints: points,
	}
}

func newTransactionViews(scored []reward.ScoredTransaction) []TransactionView {
	views := make([]TransactionView, 0, len(scored))
	for _, st := range scored {
		views = append(views, newTransactionView(st.Transaction, st.Points))
	}
	return views
}
