package services

import (
	"context"
	"math/rand"
	"time"

	"github.com/diptansh-1/restaurant-app/entity"
	"github.com/diptansh-1/restaurant-app/pkg/geo"
	"github.com/diptansh-1/restaurant-app/store"
)

// RestaurantSnapshot is the slice of catalog data frozen into an order.
type RestaurantSnapshot struct {
	ID       uint           `json:"id"`
	Name     string         `json:"name"`
	Cuisine  string         `json:"cuisine"`
	Location geo.Coordinate `json:"location"`
}

func SnapshotOf(r *entity.Restaurant) RestaurantSnapshot {
	return RestaurantSnapshot{ID: r.ID, Name: r.Name, Cuisine: r.Cuisine, Location: r.Location()}
}

// OrderRecord is the immutable snapshot of a completed checkout. A later
// order for the same restaurant supersedes the stored record.
type OrderRecord struct {
	OrderNumber     int                `json:"orderNumber"`
	Restaurant      RestaurantSnapshot `json:"restaurant"`
	Lines           []CartLine         `json:"items"`
	Subtotal        float64            `json:"subtotal"`
	DeliveryFee     float64            `json:"deliveryFee"`
	Tax             float64            `json:"tax"`
	Total           float64            `json:"total"`
	DeliveryAddress DeliveryDetails    `json:"deliveryAddress"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// newOrderNumber is a 5-digit display number, not a durable identifier.
func newOrderNumber() int {
	return 10000 + rand.Intn(90000)
}

type OrderService struct {
	Catalog   Catalog
	Cart      *CartService
	Estimator *geo.Estimator
	Location  *LocationService
}

func NewOrderService(catalog Catalog, cart *CartService, est *geo.Estimator, loc *LocationService) *OrderService {
	return &OrderService{Catalog: catalog, Cart: cart, Estimator: est, Location: loc}
}

// Save persists the record under the restaurant's key and as the session's
// most recent order.
func (s *OrderService) Save(st store.Store, restaurantID uint, rec *OrderRecord) error {
	if err := st.Set(store.OrderKey(restaurantID), rec); err != nil {
		return err
	}
	return st.Set(store.KeyLastOrder, rec)
}

// orderResolver is one strategy in the confirmation lookup chain.
type orderResolver func(ctx context.Context, st store.Store, restaurantID uint) (*OrderRecord, bool)

// LoadLatest finds renderable confirmation data for the restaurant. The
// strategies run in order, first success wins, and the final one always
// produces a placeholder, so the result is never absent.
func (s *OrderService) LoadLatest(ctx context.Context, st store.Store, restaurantID uint) *OrderRecord {
	resolvers := []orderResolver{
		s.fromStoredOrder,
		s.fromLastOrder,
		s.fromCart,
		s.placeholder,
	}
	for _, resolve := range resolvers {
		if rec, ok := resolve(ctx, st, restaurantID); ok {
			st.Set(store.KeyLastOrder, rec)
			return rec
		}
	}
	return nil // unreachable; placeholder always resolves
}

func (s *OrderService) fromStoredOrder(ctx context.Context, st store.Store, restaurantID uint) (*OrderRecord, bool) {
	var rec OrderRecord
	if ok, _ := st.Get(store.OrderKey(restaurantID), &rec); !ok {
		return nil, false
	}
	if rec.OrderNumber == 0 {
		rec.OrderNumber = newOrderNumber()
	}
	return &rec, true
}

// fromLastOrder only applies when the most recent order of the session was
// for this restaurant.
func (s *OrderService) fromLastOrder(ctx context.Context, st store.Store, restaurantID uint) (*OrderRecord, bool) {
	var rec OrderRecord
	if ok, _ := st.Get(store.KeyLastOrder, &rec); !ok {
		return nil, false
	}
	if rec.Restaurant.ID != restaurantID {
		return nil, false
	}
	return &rec, true
}

// fromCart rebuilds a best-effort order from whatever cart and location
// state survived.
func (s *OrderService) fromCart(ctx context.Context, st store.Store, restaurantID uint) (*OrderRecord, bool) {
	lines := s.Cart.Lines(st, restaurantID)
	if len(lines) == 0 {
		return nil, false
	}
	rest, err := s.Catalog.FindByID(restaurantID)
	if err != nil {
		return nil, false
	}

	subtotal := s.Cart.Subtotal(lines)
	at, _ := s.Location.Resolve(ctx, st)
	distance := s.Estimator.DistanceKm(at, rest.Location())

	address, _ := s.deliveryDetails(st)
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
	return rec, true
}

// placeholder terminates the chain with deterministic renderable data.
func (s *OrderService) placeholder(ctx context.Context, st store.Store, restaurantID uint) (*OrderRecord, bool) {
	snap := RestaurantSnapshot{ID: restaurantID}
	if rest, err := s.Catalog.FindByID(restaurantID); err == nil {
		snap = SnapshotOf(rest)
	}
	address, _ := s.deliveryDetails(st)
	return &OrderRecord{
		OrderNumber:     newOrderNumber(),
		Restaurant:      snap,
		Lines:           []CartLine{},
		DeliveryFee:     BaseDeliveryFee,
		Total:           BaseDeliveryFee,
		DeliveryAddress: address,
		CreatedAt:       time.Now().UTC(),
	}, true
}

func (s *OrderService) deliveryDetails(st store.Store) (DeliveryDetails, bool) {
	var d DeliveryDetails
	ok, _ := st.Get(store.KeyDeliveryDetails, &d)
	return d, ok
}
