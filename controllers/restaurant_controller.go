// controllers/restaurant_controller.go
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diptansh-1/restaurant-app/entity"
	"github.com/diptansh-1/restaurant-app/pkg/geo"
	"github.com/diptansh-1/restaurant-app/pkg/resp"
	"github.com/diptansh-1/restaurant-app/repository"
	"github.com/diptansh-1/restaurant-app/services"
	"github.com/diptansh-1/restaurant-app/store"
	"github.com/diptansh-1/restaurant-app/utils"
)

type RestaurantController struct {
	DB        *gorm.DB
	Repo      *repository.RestaurantRepository
	Estimator *geo.Estimator
	Location  *services.LocationService
}

func NewRestaurantController(db *gorm.DB, repo *repository.RestaurantRepository, est *geo.Estimator, loc *services.LocationService) *RestaurantController {
	return &RestaurantController{DB: db, Repo: repo, Estimator: est, Location: loc}
}

// ====== Response DTO ======

type DeliveryEstimate struct {
	DistanceKm    float64 `json:"distanceKm"`
	DistanceLabel string  `json:"distanceLabel"`
	ETAMinutes    int     `json:"etaMinutes"`
	ETALabel      string  `json:"etaLabel"`
	Serviceable   bool    `json:"serviceable"`
}

type RestaurantResponse struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Cuisine    string  `json:"cuisine"`
	Rating     float64 `json:"rating"`
	PriceRange string  `json:"priceRange"`

	Estimate DeliveryEstimate `json:"estimate"`
}

type RestaurantDetailResponse struct {
	RestaurantResponse
	Description  string            `json:"description"`
	Menu         []entity.MenuItem `json:"menu"`
	LocationNote string            `json:"locationNote,omitempty"`
}

func (ctl *RestaurantController) estimateFor(at geo.Coordinate, r *entity.Restaurant) DeliveryEstimate {
	d := ctl.Estimator.DistanceKm(at, r.Location())
	eta := ctl.Estimator.ETAMinutes(d)
	return DeliveryEstimate{
		DistanceKm:    d,
		DistanceLabel: geo.FormatDistance(d),
		ETAMinutes:    eta,
		ETALabel:      geo.FormatDuration(eta),
		Serviceable:   geo.Serviceable(d),
	}
}

// GET /restaurants
func (ctl *RestaurantController) List(c *gin.Context) {
	st := store.ForSession(ctl.DB, utils.CurrentSessionID(c))
	at, _ := ctl.Location.Resolve(c.Request.Context(), st)

	rests, err := ctl.Repo.FindAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	items := make([]RestaurantResponse, 0, len(rests))
	for i := range rests {
		r := &rests[i]
		items = append(items, RestaurantResponse{
			ID: r.ID, Name: r.Name, Image: r.Image, Cuisine: r.Cuisine,
			Rating: r.Rating, PriceRange: r.PriceRange,
			Estimate: ctl.estimateFor(at, r),
		})
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /restaurants/:id
func (ctl *RestaurantController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	r, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}

	st := store.ForSession(ctl.DB, utils.CurrentSessionID(c))
	at, note := ctl.Location.Resolve(c.Request.Context(), st)

	out := RestaurantDetailResponse{
		RestaurantResponse: RestaurantResponse{
			ID: r.ID, Name: r.Name, Image: r.Image, Cuisine: r.Cuisine,
			Rating: r.Rating, PriceRange: r.PriceRange,
			Estimate: ctl.estimateFor(at, r),
		},
		Description:  r.Description,
		Menu:         r.Menu,
		LocationNote: note,
	}
	resp.OK(c, out)
}
