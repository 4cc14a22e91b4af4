package controllers

import (
	"preorder/pkg/resp"
	"preorder/services"

	"github.com/gin-gonic/gin"
)

// AdminOrderController คือหน้าจัดการออเดอร์ของโรงอาหาร
type AdminOrderController struct {
	Orders        *services.OrderService
	Notifications *services.NotificationService
}

func NewAdminOrderController(o *services.OrderService, n *services.NotificationService) *AdminOrderController {
	return &AdminOrderController{Orders: o, Notifications: n}
}

// GET /admin/orders?status=&q=
func (h *AdminOrderController) List(c *gin.Context) {
	orders, err := h.Orders.ListAll(c.Request.Context(), c.Query("status"), c.Query("q"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders, "count": len(orders)})
}

// GET /admin/stats
func (h *AdminOrderController) Stats(c *gin.Context) {
	stats, err := h.Orders.Stats(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, stats)
}

type updateStatusReq struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// PATCH /admin/orders
func (h *AdminOrderController) UpdateStatus(c *gin.Context) {
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.OrderID == "" || req.Status == "" {
		resp.BadRequest(c, "orderId and status are required")
		return
	}
	order, err := h.Orders.SetStatus(c.Request.Context(), req.OrderID, req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /admin/orders/:id/ready
func (h *AdminOrderController) NotifyReady(c *gin.Context) {
	n, err := h.Notifications.NotifyReady(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, n)
}
