package payments

import (
	"context"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
)

// Session describes the payable session to create with the processor
type Session struct {
	AmountCents int64
	Description string
	SuccessURL  string
	CancelURL   string
}

// Processor creates a payable session with an external payment provider and
// returns the URL the customer is redirected to. The provider's protocol is
// a black box to the rest of the system.
type Processor interface {
	CreatePayableSession(ctx context.Context, s Session) (string, error)
}

// StripeProcessor implements Processor on Stripe Checkout
type StripeProcessor struct{}

func NewStripeProcessor(secretKey string) *StripeProcessor {
	stripe.Key = secretKey
	return &StripeProcessor{}
}

func (p *StripeProcessor) CreatePayableSession(ctx context.Context, s Session) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(string(stripe.CurrencyUSD)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(s.Description),
				},
				UnitAmount: stripe.Int64(s.AmountCents),
			},
			Quantity: stripe.Int64(1),
		}},
		SuccessURL: stripe.String(s.SuccessURL),
		CancelURL:  stripe.String(s.CancelURL),
	}
	params.Context = ctx
	sess, err := session.New(params)
	if err != nil {
		return "", err
	}
	return sess.URL, nil
}
