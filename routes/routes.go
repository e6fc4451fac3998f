package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diptansh-1/restaurant-app/configs"
	"github.com/diptansh-1/restaurant-app/controllers"
	"github.com/diptansh-1/restaurant-app/middlewares"
	"github.com/diptansh-1/restaurant-app/pkg/geo"
	"github.com/diptansh-1/restaurant-app/pkg/geocode"
	"github.com/diptansh-1/restaurant-app/repository"
	"github.com/diptansh-1/restaurant-app/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.Use(middlewares.SessionMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Shared services
	estimator := geo.NewEstimator()
	restRepo := repository.NewRestaurantRepository(db)
	locSvc := services.NewLocationService(
		services.UnsupportedLocator{},
		geo.Coordinate{Lat: cfg.DefaultLat, Lng: cfg.DefaultLng},
		cfg.LocationTimeout,
	)
	geocoder := geocode.New(cfg.GeocoderURL, cfg.DefaultCity)
	cartSvc := services.NewCartService(restRepo, estimator, locSvc)
	orderSvc := services.NewOrderService(restRepo, cartSvc, estimator, locSvc)
	checkoutSvc := services.NewCheckoutService(cartSvc, orderSvc)

	// Controllers
	restCtrl := controllers.NewRestaurantController(db, restRepo, estimator, locSvc)
	locCtrl := controllers.NewLocationController(db, locSvc, geocoder)
	cartCtrl := controllers.NewCartController(db, cartSvc)
	checkoutCtrl := controllers.NewCheckoutController(db, checkoutSvc)
	orderCtrl := controllers.NewOrderController(db, orderSvc)

	// Session location
	r.GET("/location", locCtrl.Get)
	r.PUT("/location", locCtrl.Put)

	// Catalog
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)

	// Cart, checkout and confirmation for one restaurant
	rest := r.Group("/restaurants/:id")
	{
		rest.GET("/cart", cartCtrl.Get)
		rest.POST("/cart/items", cartCtrl.Add)
		rest.DELETE("/cart/items/:itemId", cartCtrl.RemoveItem)
		rest.DELETE("/cart", cartCtrl.Clear)

		rest.GET("/checkout/delivery", checkoutCtrl.Delivery)
		rest.POST("/checkout/delivery", checkoutCtrl.SubmitDelivery)
		rest.POST("/checkout/payment", checkoutCtrl.SubmitPayment)

		rest.GET("/order/confirmation", orderCtrl.Confirmation)
	}
}
