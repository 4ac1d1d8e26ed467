// internal/domain/payment/processor.go
package payment

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// TestCardNumber always authorizes, for demos and automated tests
const TestCardNumber = "4111111111111111"

// Card represents the card details submitted at checkout
type Card struct {
	CardNumber     string `json:"cardNumber"`
	ExpiryDate     string `json:"expiryDate"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholderName"`
}

// Result represents the outcome of a charge attempt
type Result struct {
	Success       bool      `json:"success"`
	TransactionID string    `json:"transactionId,omitempty"`
	Message       string    `json:"message"`
	ProcessedAt   time.Time `json:"processedAt"`
}

// Processor simulates a card payment gateway. No money moves anywhere.
//
// Non-test cards fail 10% of the time on purpose; the storefront uses this
// to exercise the payment-failed path during demos.
type Processor struct {
	randFloat func() float64
}

// NewProcessor creates a processor backed by the global random source
func NewProcessor() *Processor {
	return &Processor{randFloat: rand.Float64}
}

// NewProcessorWithRand creates a processor with an injected random source
// so charge outcomes are deterministic in tests
func NewProcessorWithRand(randFloat func() float64) *Processor {
	return &Processor{randFloat: randFloat}
}

// Charge attempts to authorize the given amount against the card
func (p *Processor) Charge(card Card, amount float64) Result {
	now := time.Now().UTC()

	if card.CardNumber == "" || card.ExpiryDate == "" || card.CVV == "" {
		return Result{
			Success:     false,
			Message:     "Missing required card details",
			ProcessedAt: now,
		}
	}

	if card.CardNumber != TestCardNumber && p.randFloat() < 0.1 {
		return Result{
			Success:     false,
			Message:     "Payment declined by issuer",
			ProcessedAt: now,
		}
	}

	return Result{
		Success:       true,
		TransactionID: "txn_" + uuid.New().String(),
		Message:       "Payment authorized",
		ProcessedAt:   now,
	}
}
