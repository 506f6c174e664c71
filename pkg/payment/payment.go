package payment

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrDeclined is returned by a gateway that refuses the authorization.
var ErrDeclined = errors.New("payment declined")

// Gateway authorizes a payment for a user. The checkout engine treats any
// error as a failed payment and does not commit the order.
type Gateway interface {
	Authorize(userID string, amount decimal.Decimal) error
}

// StubGateway approves every authorization. It stands in for a real payment
// processor so the checkout engine's transactional behavior is exercised
// identically with or without one.
type StubGateway struct{}

// NewStubGateway creates a new StubGateway.
func NewStubGateway() *StubGateway {
	return &StubGateway{}
}

// Authorize always succeeds.
func (g *StubGateway) Authorize(userID string, amount decimal.Decimal) error {
	return nil
}
