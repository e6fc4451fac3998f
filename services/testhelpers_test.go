package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/diptansh-1/restaurant-app/entity"
	"github.com/diptansh-1/restaurant-app/pkg/geo"
	"github.com/diptansh-1/restaurant-app/store"
)

var (
	testDelhi  = geo.Coordinate{Lat: 28.6139, Lng: 77.2090}
	testMumbai = geo.Coordinate{Lat: 19.0760, Lng: 72.8777}
)

// zeroSource removes the mock randomness: perturbation factor 0, same-point
// distance exactly 0.5 km, ETA exactly base 10 + travel at 15 km/h.
type zeroSource struct{}

func (zeroSource) Float64() float64 { return 0 }
func (zeroSource) Intn(n int) int   { return 0 }

type stubCatalog struct {
	rests map[uint]*entity.Restaurant
}

func newStubCatalog() *stubCatalog {
	burger := &entity.Restaurant{
		Model: gorm.Model{ID: 1},
		Name:  "Burger Palace", Cuisine: "American",
		Lat: testDelhi.Lat, Lng: testDelhi.Lng,
		Menu: []entity.MenuItem{
			{Model: gorm.Model{ID: 11}, Name: "Classic Burger", Price: 250, RestaurantID: 1},
			{Model: gorm.Model{ID: 12}, Name: "Veggie Burger", Price: 199, RestaurantID: 1},
		},
	}
	faraway := &entity.Restaurant{
		Model: gorm.Model{ID: 2},
		Name:  "Coastal Curry", Cuisine: "Indian",
		Lat: testMumbai.Lat, Lng: testMumbai.Lng,
		Menu: []entity.MenuItem{
			{Model: gorm.Model{ID: 21}, Name: "Fish Curry", Price: 350, RestaurantID: 2},
		},
	}
	return &stubCatalog{rests: map[uint]*entity.Restaurant{1: burger, 2: faraway}}
}

func (s *stubCatalog) FindAll() ([]entity.Restaurant, error) {
	out := make([]entity.Restaurant, 0, len(s.rests))
	for _, r := range s.rests {
		out = append(out, *r)
	}
	return out, nil
}

func (s *stubCatalog) FindByID(id uint) (*entity.Restaurant, error) {
	r, ok := s.rests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (s *stubCatalog) FindMenuItem(restaurantID, itemID uint) (*entity.MenuItem, error) {
	r, ok := s.rests[restaurantID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for i := range r.Menu {
		if r.Menu[i].ID == itemID {
			return &r.Menu[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type testEnv struct {
	st       *store.MemoryStore
	catalog  *stubCatalog
	cart     *CartService
	orders   *OrderService
	checkout *CheckoutService
	location *LocationService
}

// newTestEnv wires the services over an in-memory store with pinned
// randomness and the session located at the default coordinate.
func newTestEnv() *testEnv {
	st := store.NewMemoryStore()
	catalog := newStubCatalog()
	est := geo.NewEstimatorWithSource(zeroSource{})
	loc := NewLocationService(UnsupportedLocator{}, testDelhi, 50*time.Millisecond)
	cart := NewCartService(catalog, est, loc)
	orders := NewOrderService(catalog, cart, est, loc)
	checkout := NewCheckoutService(cart, orders)
	return &testEnv{st: st, catalog: catalog, cart: cart, orders: orders, checkout: checkout, location: loc}
}
