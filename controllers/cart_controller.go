package controllers

import (
	"fmt"
	"net/http"

	"preorder/pkg/resp"
	"preorder/services"
	"preorder/utils"

	"github.com/gin-gonic/gin"
)

const cartSessionHeader = "X-Cart-Session"

type CartController struct {
	Svc    *services.CartService
	Orders *services.OrderService
}

func NewCartController(s *services.CartService, orders *services.OrderService) *CartController {
	return &CartController{Svc: s, Orders: orders}
}

// cartSession: header ก่อน ถ้าไม่มีใช้ user ที่ login
func cartSession(c *gin.Context) string {
	if sid := c.GetHeader(cartSessionHeader); sid != "" {
		return sid
	}
	if uid := utils.CurrentUserID(c); uid != 0 {
		return fmt.Sprintf("user:%d", uid)
	}
	return ""
}

func cartView(c *gin.Context, status int, cart any, total any) {
	c.JSON(status, gin.H{"ok": true, "data": gin.H{"cart": cart, "total": total}})
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	cart, err := h.Svc.Get(c.Request.Context(), cartSession(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	cartView(c, http.StatusOK, cart, cart.Total())
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var body struct {
		MealID   string `json:"mealId" binding:"required"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cart, err := h.Svc.Add(c.Request.Context(), cartSession(c), body.MealID, body.Quantity)
	if err != nil {
		resp.Error(c, err)
		return
	}
	cartView(c, http.StatusCreated, cart, cart.Total())
}

// PATCH /cart/items
func (h *CartController) UpdateQty(c *gin.Context) {
	var body struct {
		MealID   string `json:"mealId" binding:"required"`
		Quantity *int   `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cart, err := h.Svc.SetQuantity(c.Request.Context(), cartSession(c), body.MealID, *body.Quantity)
	if err != nil {
		resp.Error(c, err)
		return
	}
	cartView(c, http.StatusOK, cart, cart.Total())
}

// DELETE /cart/items/:mealId
func (h *CartController) RemoveItem(c *gin.Context) {
	cart, err := h.Svc.Remove(c.Request.Context(), cartSession(c), c.Param("mealId"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	cartView(c, http.StatusOK, cart, cart.Total())
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(c.Request.Context(), cartSession(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, nil)
}

// POST /cart/checkout
func (h *CartController) Checkout(c *gin.Context) {
	var info services.CustomerInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	info.OwnerID = utils.CurrentOwner(c)

	order, err := h.Svc.Checkout(c.Request.Context(), cartSession(c), info)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// POST /orders/:id/reorder
func (h *CartController) Reorder(c *gin.Context) {
	order, err := h.Orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	if !canView(c, order.OwnerID) {
		resp.NotFound(c, "order not found")
		return
	}
	cart, skipped, err := h.Svc.Reorder(c.Request.Context(), cartSession(c), order)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "total": cart.Total(), "skipped": skipped})
}
