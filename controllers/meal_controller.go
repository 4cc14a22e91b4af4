package controllers

import (
	"preorder/pkg/resp"
	"preorder/services"

	"github.com/gin-gonic/gin"
)

type MealController struct{ Svc *services.CatalogService }

func NewMealController(s *services.CatalogService) *MealController { return &MealController{Svc: s} }

// GET /meals?category=
func (h *MealController) List(c *gin.Context) {
	meals := h.Svc.List(c.Query("category"))
	resp.OK(c, gin.H{"items": meals, "count": len(meals)})
}

// GET /meals/categories
func (h *MealController) Categories(c *gin.Context) {
	resp.OK(c, h.Svc.Categories())
}

// GET /meals/:id
func (h *MealController) Detail(c *gin.Context) {
	meal, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, meal)
}
