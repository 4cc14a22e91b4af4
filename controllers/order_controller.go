package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"preorder/entity"
	"preorder/pkg/resp"
	"preorder/services"
	"preorder/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// ===== Create Order =====

type OrderItemIn struct {
	ID       string `json:"id"`
	MealID   string `json:"mealId"`
	Quantity int    `json:"quantity"`
}

type CreateOrderReq struct {
	services.CustomerInfo
	Items []OrderItemIn `json:"items"`
	// ยอดที่ฝั่ง client คำนวณมา ใช้เทียบเท่านั้น ไม่เอาไปบันทึก
	Total *decimal.Decimal `json:"total"`
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	lines := make([]services.LineInput, 0, len(req.Items))
	for _, it := range req.Items {
		id := it.MealID
		if id == "" {
			id = it.ID
		}
		lines = append(lines, services.LineInput{MealID: id, Quantity: it.Quantity})
	}
	req.CustomerInfo.OwnerID = utils.CurrentOwner(c)

	order, err := oc.Svc.Submit(c.Request.Context(), req.CustomerInfo, lines)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if req.Total != nil && !req.Total.Equal(order.TotalAmount) {
		log.Printf("order %s: client total %s differs from computed %s", order.ID, req.Total, order.TotalAmount)
	}
	resp.Created(c, order)
}

// ===== My Orders =====

// GET /orders (admin ใส่ ?owner= เพื่อดูของคนอื่นได้)
func (oc *OrderController) List(c *gin.Context) {
	owner := utils.CurrentUserID(c)
	if q := c.Query("owner"); q != "" && utils.CurrentRole(c) == entity.RoleAdmin {
		v, err := strconv.ParseUint(q, 10, 64)
		if err != nil {
			resp.BadRequest(c, "owner must be a user id")
			return
		}
		owner = uint(v)
	}
	if owner == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	orders, err := oc.Svc.ListForOwner(c.Request.Context(), owner)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders, "count": len(orders)})
}

// GET /orders/:id (เฉพาะเจ้าของออเดอร์หรือ admin)
func (oc *OrderController) Detail(c *gin.Context) {
	order, ok := oc.load(c)
	if !ok {
		return
	}
	resp.OK(c, order)
}

// GET /orders/:id/receipt
func (oc *OrderController) Receipt(c *gin.Context) {
	order, ok := oc.load(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="receipt-%s.txt"`, order.ID))
	c.String(http.StatusOK, services.Receipt(order, time.Now()))
}

func (oc *OrderController) load(c *gin.Context) (*entity.Order, bool) {
	order, err := oc.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return nil, false
	}
	if !canView(c, order.OwnerID) {
		resp.NotFound(c, "order not found")
		return nil, false
	}
	return order, true
}

func canView(c *gin.Context, owner *uint) bool {
	if utils.CurrentRole(c) == entity.RoleAdmin {
		return true
	}
	uid := utils.CurrentUserID(c)
	return owner != nil && uid != 0 && *owner == uid
}
