package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"customer-rewards/internal/errors"
	"customer-rewards/internal/service"
)

const dateLayout = "2006-01-02"

// CustomerCreator is the slice of the customer service this handler needs.
type CustomerCreator interface {
	CreateCustomer(req *service.CreateCustomerRequest) (*service.CustomerView, error)
}

type CustomerHandler struct {
	customerService CustomerCreator
}

func NewCustomerHandler(customerService CustomerCreator) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

type CreateCustomerRequest struct {
	CustName     string               `json:"cust_name"`
	PhoneNo      string               `json:"phone_no"`
	Transactions []TransactionRequest `json:"transactions"`
}

type TransactionRequest struct {
	Date    string `json:"date"`
	Amount  string `json:"amount"`
	Product string `json:"product"`
}

func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewAppError(errors.InvalidInput, "invalid request body").WithDetails(err.Error()))
		return
	}

	transactions := make([]service.TransactionInput, 0, len(req.Transactions))
	for _, tx := range req.Transactions {
		date, err := time.Parse(dateLayout, tx.Date)
		if err != nil {
			writeError(w, errors.NewAppError(errors.InvalidInput, "invalid transaction date, expected YYYY-MM-DD").WithDetails(err.Error()))
			return
		}

		amount, err := decimal.NewFromString(tx.Amount)
		if err != nil {
			writeError(w, errors.NewAppError(errors.InvalidAmount, "invalid transaction amount format").WithDetails(err.Error()))
			return
		}

		transactions = append(transactions, service.TransactionInput{
			Date:    date,
			Amount:  amount,
			Product: tx.Product,
		})
	}

	customer, err := h.customerService.CreateCustomer(&service.CreateCustomerRequest{
		CustName:     req.CustName,
		PhoneNo:      req.PhoneNo,
		Transactions: transactions,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, customer)
}
