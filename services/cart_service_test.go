package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diptansh-1/restaurant-app/store"
)

func TestCartAddAndRemoveQuantities(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := env.cart.AddItem(ctx, env.st, 1, 11)
		require.NoError(t, err)
	}

	lines := env.cart.Lines(env.st, 1)
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Qty)

	lines, err := env.cart.RemoveItem(env.st, 1, 11)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Qty)

	_, err = env.cart.RemoveItem(env.st, 1, 11)
	require.NoError(t, err)
	lines, err = env.cart.RemoveItem(env.st, 1, 11)
	require.NoError(t, err)

	// line deleted, not left at quantity zero
	assert.Empty(t, lines)
	assert.Empty(t, env.cart.Lines(env.st, 1))
}

func TestCartDistinctLines(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.cart.AddItem(ctx, env.st, 1, 11)
	require.NoError(t, err)
	_, err = env.cart.AddItem(ctx, env.st, 1, 12)
	require.NoError(t, err)
	_, err = env.cart.AddItem(ctx, env.st, 1, 11)
	require.NoError(t, err)

	lines := env.cart.Lines(env.st, 1)
	require.Len(t, lines, 2)
	assert.InDelta(t, 250*2+199, env.cart.Subtotal(lines), 1e-9)
}

func TestCartSurvivesReload(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.cart.AddItem(ctx, env.st, 1, 11)
	require.NoError(t, err)

	// a fresh service over the same state sees the cart
	other := NewCartService(env.catalog, env.cart.Estimator, env.location)
	lines := other.Lines(env.st, 1)
	require.Len(t, lines, 1)
	assert.Equal(t, "Classic Burger", lines[0].Name)
}

func TestCartRejectsOutOfRangeRestaurant(t *testing.T) {
	env := newTestEnv()

	// session resolves to Delhi; restaurant 2 is in Mumbai, ~1150 km away
	_, err := env.cart.AddItem(context.Background(), env.st, 2, 21)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Empty(t, env.cart.Lines(env.st, 2))
}

func TestCartRejectsForeignMenuItem(t *testing.T) {
	env := newTestEnv()

	// item 21 belongs to restaurant 2
	_, err := env.cart.AddItem(context.Background(), env.st, 1, 21)
	assert.Error(t, err)
}

func TestCartCorruptStateDegradesToEmpty(t *testing.T) {
	env := newTestEnv()
	env.st.Put(store.CartKey(1), "{broken json")

	assert.Empty(t, env.cart.Lines(env.st, 1))

	// and the cart is usable again after a mutation
	lines, err := env.cart.AddItem(context.Background(), env.st, 1, 11)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestCartClear(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.cart.AddItem(ctx, env.st, 1, 11)
	require.NoError(t, err)
	require.NoError(t, env.cart.Clear(env.st, 1))
	assert.Empty(t, env.cart.Lines(env.st, 1))
}

func TestCartsAreScopedPerRestaurant(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.cart.AddItem(ctx, env.st, 1, 11)
	require.NoError(t, err)

	// restaurant 2's cart is untouched (and never merged)
	assert.Empty(t, env.cart.Lines(env.st, 2))
}
