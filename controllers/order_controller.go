// controllers/order_controller.go
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

type OrderController struct {
	DB  *gorm.DB
	Svc *services.OrderService
}

func NewOrderController(db *gorm.DB, s *services.OrderService) *OrderController {
	return &OrderController{DB: db, Svc: s}
}

// GET /restaurants/:id/order/confirmation
//
// Always renders: the lookup chain behind LoadLatest terminates in a
// placeholder record.
func (h *OrderController) Confirmation(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))
	st := store.ForSession(h.DB, utils.CurrentSessionID(c))

	rec := h.Svc.LoadLatest(c.Request.Context(), st, uint(restID))
	resp.OK(c, rec)
}
