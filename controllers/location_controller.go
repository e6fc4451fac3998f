// controllers/location_controller.go
package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diptansh-1/restaurant-app/pkg/geo"
	"github.com/diptansh-1/restaurant-app/pkg/geocode"
	"github.com/diptansh-1/restaurant-app/pkg/resp"
	"github.com/diptansh-1/restaurant-app/services"
	"github.com/diptansh-1/restaurant-app/store"
	"github.com/diptansh-1/restaurant-app/utils"
)

type LocationController struct {
	DB       *gorm.DB
	Location *services.LocationService
	Geocoder *geocode.Client
}

func NewLocationController(db *gorm.DB, loc *services.LocationService, gc *geocode.Client) *LocationController {
	return &LocationController{DB: db, Location: loc, Geocoder: gc}
}

// GET /location
func (ctl *LocationController) Get(c *gin.Context) {
	st := store.ForSession(ctl.DB, utils.CurrentSessionID(c))

	at, note := ctl.Location.Resolve(c.Request.Context(), st)
	city := ctl.Geocoder.CityName(c.Request.Context(), at)

	resp.OK(c, gin.H{
		"location": at,
		"city":     city,
		"note":     note,
	})
}

// PUT /location sets a map-picked coordinate.
func (ctl *LocationController) Put(c *gin.Context) {
	var body struct {
		Lat *float64 `json:"lat" binding:"required"`
		Lng *float64 `json:"lng" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	st := store.ForSession(ctl.DB, utils.CurrentSessionID(c))
	loc := geo.Coordinate{Lat: *body.Lat, Lng: *body.Lng}
	if err := ctl.Location.SetLocation(st, loc); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"location": loc})
}
