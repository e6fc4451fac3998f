package entity

import (
	"gorm.io/gorm"

	"github.com/diptansh-1/restaurant-app/pkg/geo"
)

type Restaurant struct {
	gorm.Model
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Cuisine     string  `json:"cuisine"`
	Rating      float64 `json:"rating"`
	PriceRange  string  `json:"priceRange"`
	Description string  `json:"description"`

	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`

	Menu []MenuItem `json:"menu" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (r *Restaurant) Location() geo.Coordinate {
	return geo.Coordinate{Lat: r.Lat, Lng: r.Lng}
}
