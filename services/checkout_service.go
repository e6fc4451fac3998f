package services

import (
	"context"
	"math"
	"regexp"
	"time"

	"github.com/diptansh-1/restaurant-app/store"
)

// Checkout is a two-step wizard: delivery details, then payment. Each
// transition is a pure function of the current step and the validated
// input; StepCompleted is terminal.
type Step string

const (
	StepDelivery  Step = "delivery"
	StepPayment   Step = "payment"
	StepCompleted Step = "completed"
)

type DeliveryDetails struct {
	Address      string `json:"address"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
	Instructions string `json:"instructions"`
}

type PaymentDetails struct {
	CardName   string `json:"cardName"`
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

// FieldErrors maps a field name to its inline validation message.
type FieldErrors map[string]string

var (
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	expiryRe     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRe        = regexp.MustCompile(`^\d{3,4}$`)
)

func ValidateDelivery(in DeliveryDetails) FieldErrors {
	errs := FieldErrors{}
	if in.Address == "" {
		errs["address"] = "Address is required"
	}
	if in.City == "" {
		errs["city"] = "City is required"
	}
	if in.ZipCode == "" {
		errs["zipCode"] = "ZIP code is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidatePayment(in PaymentDetails) FieldErrors {
	errs := FieldErrors{}
	if in.CardName == "" {
		errs["cardName"] = "Name on card is required"
	}
	switch {
	case in.CardNumber == "":
		errs["cardNumber"] = "Card number is required"
	case !cardNumberRe.MatchString(in.CardNumber):
		errs["cardNumber"] = "Card number must be 16 digits"
	}
	switch {
	case in.ExpiryDate == "":
		errs["expiryDate"] = "Expiry date is required"
	case !expiryRe.MatchString(in.ExpiryDate):
		errs["expiryDate"] = "Expiry date must be in MM/YY format"
	}
	switch {
	case in.CVV == "":
		errs["cvv"] = "CVV is required"
	case !cvvRe.MatchString(in.CVV):
		errs["cvv"] = "CVV must be 3 or 4 digits"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Pricing constants shared with order reconstruction.
const (
	BaseDeliveryFee = 30.0
	PerKmFee        = 5.0
	TaxRate         = 0.05
)

func DeliveryFee(distanceKm float64) float64 {
	return math.Max(BaseDeliveryFee, distanceKm*PerKmFee)
}

type CheckoutService struct {
	Cart   *CartService
	Orders *OrderService
}

func NewCheckoutService(cart *CartService, orders *OrderService) *CheckoutService {
	return &CheckoutService{Cart: cart, Orders: orders}
}

// SubmitDelivery validates the delivery form. On success the details are
// persisted (so stepping back to the form keeps the entered values) and the
// wizard advances to payment.
func (s *CheckoutService) SubmitDelivery(st store.Store, in DeliveryDetails) (Step, FieldErrors, error) {
	if errs := ValidateDelivery(in); errs != nil {
		return StepDelivery, errs, nil
	}
	if err := st.Set(store.KeyDeliveryDetails, in); err != nil {
		return StepDelivery, nil, err
	}
	return StepPayment, nil, nil
}

// Delivery returns the previously entered delivery details, if any.
func (s *CheckoutService) Delivery(st store.Store) (DeliveryDetails, bool) {
	var d DeliveryDetails
	ok, _ := st.Get(store.KeyDeliveryDetails, &d)
	return d, ok
}

// SubmitPayment validates the payment form and, on success, finalizes the
// order: the cart is snapshotted into an immutable order record, the record
// is persisted for the restaurant, and the cart is cleared.
func (s *CheckoutService) SubmitPayment(ctx context.Context, st store.Store, restaurantID uint, in PaymentDetails) (Step, FieldErrors, *OrderRecord, error) {
	// Payment is only reachable after a valid delivery submit; without
	// saved delivery details the wizard is still on its initial step.
	address, saved := s.Delivery(st)
	if !saved {
		return StepDelivery, ValidateDelivery(address), nil, nil
	}

	if errs := ValidatePayment(in); errs != nil {
		return StepPayment, errs, nil, nil
	}

	rest, err := s.Cart.Catalog.FindByID(restaurantID)
	if err != nil {
		return StepPayment, nil, nil, err
	}

	lines := s.Cart.Lines(st, restaurantID)
	subtotal := s.Cart.Subtotal(lines)

	at, _ := s.Cart.Location.Resolve(ctx, st)
	distance := s.Cart.Estimator.DistanceKm(at, rest.Location())

	rec := &OrderRecord{
		OrderNumber:     newOrderNumber(),
		Restaurant:      SnapshotOf(rest),
		Lines:           lines,
		Subtotal:        subtotal,
		DeliveryFee:     DeliveryFee(distance),
		Tax:             subtotal * TaxRate,
		DeliveryAddress: address,
		CreatedAt:       time.Now().UTC(),
	}
	rec.Total = rec.Subtotal + rec.DeliveryFee + rec.Tax

	if err := s.Orders.Save(st, restaurantID, rec); err != nil {
		return StepPayment, nil, nil, err
	}
	if err := s.Cart.Clear(st, restaurantID); err != nil {
		return StepPayment, nil, nil, err
	}
	return StepCompleted, nil, rec, nil
}
