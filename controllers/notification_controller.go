package controllers

import (
	"strconv"

	"preorder/pkg/resp"
	"preorder/services"
	"preorder/utils"

	"github.com/gin-gonic/gin"
)

type NotificationController struct{ Svc *services.NotificationService }

func NewNotificationController(s *services.NotificationService) *NotificationController {
	return &NotificationController{Svc: s}
}

type notifyReq struct {
	OrderID      string `json:"orderId"`
	StudentEmail string `json:"studentEmail"`
	Message      string `json:"message"`
}

// POST /notifications
func (h *NotificationController) Create(c *gin.Context) {
	var req notifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	n, err := h.Svc.Notify(c.Request.Context(), req.OrderID, req.StudentEmail, req.Message)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, n)
}

// recipient: ?email= หรือ email ใน token
func recipient(c *gin.Context) string {
	if e := c.Query("email"); e != "" {
		return e
	}
	return utils.CurrentEmail(c)
}

// GET /notifications?email=
func (h *NotificationController) List(c *gin.Context) {
	email := recipient(c)
	items, err := h.Svc.ListForRecipient(c.Request.Context(), email)
	if err != nil {
		resp.Error(c, err)
		return
	}
	unread, err := h.Svc.UnreadCount(c.Request.Context(), email)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "unread": unread})
}

// PATCH /notifications/:id/read?email=
func (h *NotificationController) MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid notification id")
		return
	}
	n, err := h.Svc.MarkRead(c.Request.Context(), uint(id), recipient(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, n)
}

// PATCH /notifications/read-all?email=
func (h *NotificationController) MarkAllRead(c *gin.Context) {
	n, err := h.Svc.MarkAllRead(c.Request.Context(), recipient(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": n})
}
