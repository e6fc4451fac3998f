// controllers/checkout_controller.go
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diptansh-1/restaurant-app/pkg/resp"
	"github.com/diptansh-1/restaurant-app/services"
	"github.com/diptansh-1/restaurant-app/store"
	"github.com/diptansh-1/restaurant-app/utils"
)

type CheckoutController struct {
	DB  *gorm.DB
	Svc *services.CheckoutService
}

func NewCheckoutController(db *gorm.DB, s *services.CheckoutService) *CheckoutController {
	return &CheckoutController{DB: db, Svc: s}
}

func (h *CheckoutController) state(c *gin.Context) store.Store {
	return store.ForSession(h.DB, utils.CurrentSessionID(c))
}

// Checkout is unreachable for restaurants outside the delivery radius.
func (h *CheckoutController) guard(c *gin.Context, st store.Store, restID uint) bool {
	rest, err := h.Svc.Cart.Catalog.FindByID(restID)
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return false
	}
	if !h.Svc.Cart.ServiceableFrom(c.Request.Context(), st, rest) {
		resp.Conflict(c, "restaurant is outside the delivery zone")
		return false
	}
	return true
}

// GET /restaurants/:id/checkout/delivery returns saved delivery details so
// stepping back to the form keeps previously entered values.
func (h *CheckoutController) Delivery(c *gin.Context) {
	d, ok := h.Svc.Delivery(h.state(c))
	resp.OK(c, gin.H{"delivery": d, "saved": ok})
}

// POST /restaurants/:id/checkout/delivery
func (h *CheckoutController) SubmitDelivery(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))
	st := h.state(c)
	if !h.guard(c, st, uint(restID)) {
		return
	}

	var in services.DeliveryDetails
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	step, fieldErrs, err := h.Svc.SubmitDelivery(st, in)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if fieldErrs != nil {
		resp.UnprocessableEntity(c, fieldErrs)
		return
	}
	resp.OK(c, gin.H{"step": step})
}

// POST /restaurants/:id/checkout/payment
func (h *CheckoutController) SubmitPayment(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))
	st := h.state(c)
	if !h.guard(c, st, uint(restID)) {
		return
	}

	var in services.PaymentDetails
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	step, fieldErrs, order, err := h.Svc.SubmitPayment(c.Request.Context(), st, uint(restID), in)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if fieldErrs != nil {
		resp.UnprocessableEntity(c, fieldErrs)
		return
	}
	resp.Created(c, gin.H{"step": step, "order": order})
}
