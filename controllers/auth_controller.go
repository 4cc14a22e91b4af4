package controllers

import (
	"errors"
	"net/http"

	"preorder/entity"
	"preorder/pkg/resp"
	"preorder/services"
	"preorder/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Name      string `json:"name" binding:"required"`
	StudentID string `json:"studentId"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

func userView(u *entity.User) gin.H {
	return gin.H{
		"id": u.ID, "email": u.Email, "name": u.Name,
		"studentId": u.StudentID, "role": u.Role,
	}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := a.Svc.Register(c.Request.Context(), req.Email, req.Password, req.Name, req.StudentID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, userView(user))
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := a.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "user": userView(user)})
}

// GET /auth/me (ต้อง login)
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Svc.GetProfile(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, userView(user))
}
