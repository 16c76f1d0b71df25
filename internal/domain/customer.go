package domain

import (
	"time"
)

type Customer struct {
	ID           int64         `json:"id"`
	CustName     string        `json:"cust_name"`
	PhoneNo      string        `json:"phone_no"`
	Transactions []Transaction `json:"transactions"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type CustomerRepository interface {
	CreateCustomer(customer *Customer) error
	GetCustomer(id int64) (*Customer, error)
}

// PhoneObscurer applies a one-way transform to a phone number before it is
// persisted. The stored form is never decoded back to plaintext.
type PhoneObscurer interface {
	Obscure(plaintext string) (string, error)
}
