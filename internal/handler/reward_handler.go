package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"customer-rewards/internal/errors"
	"customer-rewards/internal/service"
)

// RewardProvider is the slice of the reward service this handler needs.
type RewardProvider interface {
	ListTransactions(customerID int64) ([]service.TransactionView, error)
	GetRewardReport(customerID int64, start, end time.Time) (*service.RewardReport, error)
}

type RewardHandler struct {
	rewardService RewardProvider
}

func NewRewardHandler(rewardService RewardProvider) *RewardHandler {
	return &RewardHandler{
		rewardService: rewardService,
	}
}

func (h *RewardHandler) GetCustomerTransactions(w http.ResponseWriter, r *http.Request) {
	customerID, ok := parseCustomerID(w, r)
	if !ok {
		return
	}

	transactions, err := h.rewardService.ListTransactions(customerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, transactions)
}

func (h *RewardHandler) GetRewardsForCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, ok := parseCustomerID(w, r)
	if !ok {
		return
	}

	start, ok := parseDateParam(w, r, "startDate")
	if !ok {
		return
	}
	end, ok := parseDateParam(w, r, "endDate")
	if !ok {
		return
	}

	// Range sanity belongs here at the boundary; the service queries with
	// whatever range it is handed.
	if start.After(end) {
		writeError(w, errors.NewAppError(errors.InvalidInput, "startDate must not be after endDate"))
		return
	}

	report, err := h.rewardService.GetRewardReport(customerID, start, end)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func parseCustomerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	vars := mux.Vars(r)
	customerID, err := strconv.ParseInt(vars["customer_id"], 10, 64)
	if err != nil || customerID <= 0 {
		writeError(w, errors.NewAppError(errors.InvalidInput, "customer id must be a positive integer"))
		return 0, false
	}
	return customerID, true
}

func parseDateParam(w http.ResponseWriter, r *http.Request, name string) (time.Time, bool) {
	value := r.URL.Query().Get(name)
	if value == "" {
		writeError(w, errors.NewAppErrorf(errors.InvalidInput, "%s query parameter is required", name))
		return time.Time{}, false
	}

	date, err := time.Parse(dateLayout, value)
	if err != nil {
		writeError(w, errors.NewAppErrorf(errors.InvalidInput, "invalid %s, expected YYYY-MM-DD", name).WithDetails(err.Error()))
		return time.Time{}, false
	}
	return date, true
}
