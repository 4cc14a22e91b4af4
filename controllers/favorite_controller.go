package controllers

import (
	"preorder/pkg/resp"
	"preorder/services"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct{ Svc *services.FavoriteService }

func NewFavoriteController(s *services.FavoriteService) *FavoriteController {
	return &FavoriteController{Svc: s}
}

// GET /favorites?email=
func (h *FavoriteController) List(c *gin.Context) {
	ids, err := h.Svc.List(c.Request.Context(), recipient(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"mealIds": ids})
}

// POST /favorites
func (h *FavoriteController) Add(c *gin.Context) {
	var body struct {
		Email  string `json:"email"`
		MealID string `json:"mealId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	fav, err := h.Svc.Add(c.Request.Context(), body.Email, body.MealID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, fav)
}

// DELETE /favorites?email=&mealId=
func (h *FavoriteController) Remove(c *gin.Context) {
	if err := h.Svc.Remove(c.Request.Context(), recipient(c), c.Query("mealId")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, nil)
}
