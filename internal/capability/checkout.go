package capability

import (
	"context"
	"fmt"
	"math/rand"

	"zero-actions/internal/models"
)

// SimulatedCheckout stands in for a real payment integration. Outcomes
// are random with a configured failure rate; nothing is purchased.
type SimulatedCheckout struct {
	failureRate float64
	roll        func() float64
}

// NewSimulatedCheckout creates a simulated checkout. failureRate is
// clamped to [0, 1].
func NewSimulatedCheckout(failureRate float64) *SimulatedCheckout {
	if failureRate < 0 {
		failureRate = 0
	}
	if failureRate > 1 {
		failureRate = 1
	}
	return &SimulatedCheckout{
		failureRate: failureRate,
		roll:        rand.Float64,
	}
}

// Execute implements Checkout.
func (c *SimulatedCheckout) Execute(_ context.Context, purchase *models.Purchase) error {
	if c.roll() < c.failureRate {
		return fmt.Errorf("checkout declined for %q", purchase.ProductName)
	}
	return nil
}
