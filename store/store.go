package store

import "fmt"

// State keys, matching the storefront's localStorage layout.
const (
	KeyLocation        = "userSelectedLocation"
	KeyDeliveryDetails = "deliveryDetails"
	KeyLastOrder       = "lastOrder"
)

func CartKey(restaurantID uint) string {
	return fmt.Sprintf("cart-%d", restaurantID)
}

func OrderKey(restaurantID uint) string {
	return fmt.Sprintf("orderData-%d", restaurantID)
}

// Store is per-session key-value state with JSON values. Get reports false
// for a missing key; a corrupt value is logged and also reported as
// missing, so callers always degrade to defaults instead of failing.
type Store interface {
	Get(key string, out any) (bool, error)
	Set(key string, v any) error
	Delete(key string) error
}
