package services

import (
	"context"
	"errors"

	"github.com/diptansh-1/restaurant-app/entity"
	"github.com/diptansh-1/restaurant-app/pkg/geo"
	"github.com/diptansh-1/restaurant-app/store"
)

// Catalog is the read side of the restaurant catalog.
// *repository.RestaurantRepository implements it.
type Catalog interface {
	FindAll() ([]entity.Restaurant, error)
	FindByID(id uint) (*entity.Restaurant, error)
	FindMenuItem(restaurantID, itemID uint) (*entity.MenuItem, error)
}

// CartLine is one menu item and its quantity. Qty never persists at zero;
// removing the last unit deletes the line.
type CartLine struct {
	MenuItemID uint    `json:"menuItemId"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unitPrice"`
	Qty        int     `json:"qty"`
}

var ErrOutOfRange = errors.New("restaurant is outside the delivery zone")

// CartService keeps one cart per restaurant in the session state.
type CartService struct {
	Catalog   Catalog
	Estimator *geo.Estimator
	Location  *LocationService
}

func NewCartService(catalog Catalog, est *geo.Estimator, loc *LocationService) *CartService {
	return &CartService{Catalog: catalog, Estimator: est, Location: loc}
}

// Lines loads the cart for a restaurant. Missing or corrupt state is an
// empty cart, never an error.
func (s *CartService) Lines(st store.Store, restaurantID uint) []CartLine {
	var lines []CartLine
	if ok, _ := st.Get(store.CartKey(restaurantID), &lines); !ok {
		return nil
	}
	return lines
}

// AddItem puts one more unit of the menu item into the restaurant's cart.
// Additions are rejected while the restaurant is out of delivery range of
// the session's location.
func (s *CartService) AddItem(ctx context.Context, st store.Store, restaurantID, itemID uint) ([]CartLine, error) {
	rest, err := s.Catalog.FindByID(restaurantID)
	if err != nil {
		return nil, err
	}

	if !s.ServiceableFrom(ctx, st, rest) {
		return nil, ErrOutOfRange
	}

	item, err := s.Catalog.FindMenuItem(restaurantID, itemID)
	if err != nil {
		return nil, errors.New("menu item not in this restaurant")
	}

	lines := s.Lines(st, restaurantID)
	found := false
	for i := range lines {
		if lines[i].MenuItemID == item.ID {
			lines[i].Qty++
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, CartLine{
			MenuItemID: item.ID,
			Name:       item.Name,
			UnitPrice:  item.Price,
			Qty:        1,
		})
	}

	if err := st.Set(store.CartKey(restaurantID), lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// RemoveItem takes one unit out, deleting the line at quantity one.
func (s *CartService) RemoveItem(st store.Store, restaurantID, itemID uint) ([]CartLine, error) {
	lines := s.Lines(st, restaurantID)
	for i := range lines {
		if lines[i].MenuItemID != itemID {
			continue
		}
		if lines[i].Qty > 1 {
			lines[i].Qty--
		} else {
			lines = append(lines[:i], lines[i+1:]...)
		}
		if len(lines) == 0 {
			return nil, st.Delete(store.CartKey(restaurantID))
		}
		if err := st.Set(store.CartKey(restaurantID), lines); err != nil {
			return nil, err
		}
		return lines, nil
	}
	return lines, nil
}

func (s *CartService) Subtotal(lines []CartLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.UnitPrice * float64(l.Qty)
	}
	return total
}

func (s *CartService) Clear(st store.Store, restaurantID uint) error {
	return st.Delete(store.CartKey(restaurantID))
}

// ServiceableFrom classifies the restaurant against the session location.
func (s *CartService) ServiceableFrom(ctx context.Context, st store.Store, rest *entity.Restaurant) bool {
	at, _ := s.Location.Resolve(ctx, st)
	d := s.Estimator.DistanceKm(at, rest.Location())
	return geo.Serviceable(d)
}
