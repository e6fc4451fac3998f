// controllers/cart_controller.go
package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diptansh-1/restaurant-app/pkg/resp"
	"github.com/diptansh-1/restaurant-app/services"
	"github.com/diptansh-1/restaurant-app/store"
	"github.com/diptansh-1/restaurant-app/utils"
)

type CartController struct {
	DB  *gorm.DB
	Svc *services.CartService
}

func NewCartController(db *gorm.DB, s *services.CartService) *CartController {
	return &CartController{DB: db, Svc: s}
}

func (h *CartController) state(c *gin.Context) store.Store {
	return store.ForSession(h.DB, utils.CurrentSessionID(c))
}

// GET /restaurants/:id/cart
func (h *CartController) Get(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))
	st := h.state(c)

	lines := h.Svc.Lines(st, uint(restID))
	resp.OK(c, gin.H{"items": lines, "subtotal": h.Svc.Subtotal(lines)})
}

// POST /restaurants/:id/cart/items
func (h *CartController) Add(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))

	var body struct {
		MenuItemID uint `json:"menuItemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	st := h.state(c)
	lines, err := h.Svc.AddItem(c.Request.Context(), st, uint(restID), body.MenuItemID)
	if err != nil {
		if errors.Is(err, services.ErrOutOfRange) {
			resp.Conflict(c, err.Error())
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"items": lines, "subtotal": h.Svc.Subtotal(lines)})
}

// DELETE /restaurants/:id/cart/items/:itemId
func (h *CartController) RemoveItem(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))
	itemID, _ := strconv.Atoi(c.Param("itemId"))

	st := h.state(c)
	lines, err := h.Svc.RemoveItem(st, uint(restID), uint(itemID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": lines, "subtotal": h.Svc.Subtotal(lines)})
}

// DELETE /restaurants/:id/cart
func (h *CartController) Clear(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))

	if err := h.Svc.Clear(h.state(c), uint(restID)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
