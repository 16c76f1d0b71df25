// Package obscure provides the one-way transform applied to a customer's
// phone number before it is persisted.
package obscure

import (
	"golang.org/x/crypto/bcrypt"

	"customer-rewards/internal/domain"
	"customer-rewards/internal/errors"
)

type BcryptObscurer struct {
	cost int
}

func NewBcryptObscurer() *BcryptObscurer {
	return &BcryptObscurer{cost: bcrypt.DefaultCost}
}

var _ domain.PhoneObscurer = (*BcryptObscurer)(nil)

// Obscure hashes the plaintext with bcrypt. The result is salted, so repeated
// calls produce different values; nothing in the system ever needs to reverse
// or compare them.
func (o *BcryptObscurer) Obscure(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), o.cost)
	if err != nil {
		return "", errors.NewAppError(errors.InternalError, "failed to obscure phone number").WithDetails(err.Error())
	}
	return string(hash), nil
}
