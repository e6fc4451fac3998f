package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diptansh-1/restaurant-app/store"
)

func validDelivery() DeliveryDetails {
	return DeliveryDetails{
		Address: "42 MG Road",
		City:    "Delhi",
		ZipCode: "110001",
	}
}

func validPayment() PaymentDetails {
	return PaymentDetails{
		CardName:   "A Customer",
		CardNumber: "4242424242424242",
		ExpiryDate: "12/99",
		CVV:        "123",
	}
}

func TestSubmitDeliveryMissingAddressStaysPut(t *testing.T) {
	env := newTestEnv()

	in := validDelivery()
	in.Address = ""
	step, errs, err := env.checkout.SubmitDelivery(env.st, in)
	require.NoError(t, err)
	assert.Equal(t, StepDelivery, step)
	assert.Contains(t, errs, "address")
	assert.NotContains(t, errs, "city")

	// nothing was persisted on an invalid submit
	_, saved := env.checkout.Delivery(env.st)
	assert.False(t, saved)
}

func TestSubmitDeliveryAdvancesAndPersists(t *testing.T) {
	env := newTestEnv()

	step, errs, err := env.checkout.SubmitDelivery(env.st, validDelivery())
	require.NoError(t, err)
	assert.Nil(t, errs)
	assert.Equal(t, StepPayment, step)

	// stepping back keeps the entered values
	d, saved := env.checkout.Delivery(env.st)
	require.True(t, saved)
	assert.Equal(t, "42 MG Road", d.Address)
}

func TestValidatePayment(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*PaymentDetails)
		field  string
	}{
		{"short card number", func(p *PaymentDetails) { p.CardNumber = "123" }, "cardNumber"},
		{"card number with letters", func(p *PaymentDetails) { p.CardNumber = "4242abcd42424242" }, "cardNumber"},
		{"missing name", func(p *PaymentDetails) { p.CardName = "" }, "cardName"},
		{"bad expiry month", func(p *PaymentDetails) { p.ExpiryDate = "13/25" }, "expiryDate"},
		{"expiry without slash", func(p *PaymentDetails) { p.ExpiryDate = "1225" }, "expiryDate"},
		{"cvv too short", func(p *PaymentDetails) { p.CVV = "12" }, "cvv"},
		{"cvv too long", func(p *PaymentDetails) { p.CVV = "12345" }, "cvv"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validPayment()
			tc.mutate(&in)
			errs := ValidatePayment(in)
			assert.Contains(t, errs, tc.field)
		})
	}

	assert.Nil(t, ValidatePayment(validPayment()))
	// four-digit CVV is fine
	in := validPayment()
	in.CVV = "1234"
	assert.Nil(t, ValidatePayment(in))
}

func TestSubmitPaymentRequiresDeliveryStep(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.cart.AddItem(ctx, env.st, 1, 11)
	require.NoError(t, err)

	// payment submitted without ever passing the delivery step: the
	// wizard stays on its initial step and no order is finalized
	step, errs, rec, err := env.checkout.SubmitPayment(ctx, env.st, 1, validPayment())
	require.NoError(t, err)
	assert.Equal(t, StepDelivery, step)
	assert.Contains(t, errs, "address")
	assert.Nil(t, rec)

	// cart untouched, nothing persisted
	assert.Len(t, env.cart.Lines(env.st, 1), 1)
	var stored OrderRecord
	ok, _ := env.st.Get(store.OrderKey(1), &stored)
	assert.False(t, ok)
}

func TestSubmitPaymentInvalidStaysPut(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.cart.AddItem(ctx, env.st, 1, 11)
	require.NoError(t, err)
	_, _, err = env.checkout.SubmitDelivery(env.st, validDelivery())
	require.NoError(t, err)

	in := validPayment()
	in.CardNumber = "123"
	step, errs, rec, err := env.checkout.SubmitPayment(ctx, env.st, 1, in)
	require.NoError(t, err)
	assert.Equal(t, StepPayment, step)
	assert.Contains(t, errs, "cardNumber")
	assert.Nil(t, rec)

	// cart untouched
	assert.Len(t, env.cart.Lines(env.st, 1), 1)
}

func TestSubmitPaymentFinalizesOrder(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	// subtotal 500: two Classic Burgers at 250
	_, err := env.cart.AddItem(ctx, env.st, 1, 11)
	require.NoError(t, err)
	_, err = env.cart.AddItem(ctx, env.st, 1, 11)
	require.NoError(t, err)

	step, errs, err := env.checkout.SubmitDelivery(env.st, validDelivery())
	require.NoError(t, err)
	require.Nil(t, errs)
	require.Equal(t, StepPayment, step)

	step, errs, rec, err := env.checkout.SubmitPayment(ctx, env.st, 1, validPayment())
	require.NoError(t, err)
	require.Nil(t, errs)
	require.NotNil(t, rec)
	assert.Equal(t, StepCompleted, step)

	// pinned randomness: same-point distance is 0.5 km, so the minimum fee
	// applies; tax is five percent of the subtotal
	assert.InDelta(t, 500, rec.Subtotal, 1e-9)
	assert.InDelta(t, 30, rec.DeliveryFee, 1e-9)
	assert.InDelta(t, 25, rec.Tax, 1e-9)
	assert.InDelta(t, 555, rec.Total, 1e-9)

	assert.Equal(t, "42 MG Road", rec.DeliveryAddress.Address)
	assert.Equal(t, uint(1), rec.Restaurant.ID)
	assert.GreaterOrEqual(t, rec.OrderNumber, 10000)
	assert.Less(t, rec.OrderNumber, 100000)

	// cart cleared, record stored under both keys
	assert.Empty(t, env.cart.Lines(env.st, 1))
	var stored OrderRecord
	ok, _ := env.st.Get(store.OrderKey(1), &stored)
	require.True(t, ok)
	assert.Equal(t, rec.OrderNumber, stored.OrderNumber)
	ok, _ = env.st.Get(store.KeyLastOrder, &stored)
	require.True(t, ok)
	assert.Equal(t, rec.OrderNumber, stored.OrderNumber)
}

func TestOrderRecordIsSnapshot(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.cart.AddItem(ctx, env.st, 1, 11)
	require.NoError(t, err)
	_, _, err = env.checkout.SubmitDelivery(env.st, validDelivery())
	require.NoError(t, err)
	_, _, rec, err := env.checkout.SubmitPayment(ctx, env.st, 1, validPayment())
	require.NoError(t, err)

	// mutating the live cart after completion must not affect the record
	_, err = env.cart.AddItem(ctx, env.st, 1, 12)
	require.NoError(t, err)

	var stored OrderRecord
	ok, _ := env.st.Get(store.OrderKey(1), &stored)
	require.True(t, ok)
	assert.Equal(t, rec.Lines, stored.Lines)
	require.Len(t, stored.Lines, 1)
	assert.Equal(t, uint(11), stored.Lines[0].MenuItemID)
}

func TestDeliveryFee(t *testing.T) {
	assert.InDelta(t, 30, DeliveryFee(0.5), 1e-9)
	assert.InDelta(t, 30, DeliveryFee(6), 1e-9)
	// 10 km rides above the fee floor
	assert.InDelta(t, 50, DeliveryFee(10), 1e-9)
	assert.InDelta(t, 500, DeliveryFee(100), 1e-9)
}
