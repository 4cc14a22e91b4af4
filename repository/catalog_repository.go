package repository

import (
	"preorder/entity"
	"preorder/pkg/apperr"
)

// CatalogRepository is an in-memory, read-only index over the configured meals.
type CatalogRepository struct {
	meals []entity.Meal
	byID  map[string]int
}

func NewCatalogRepository(meals []entity.Meal) *CatalogRepository {
	r := &CatalogRepository{
		meals: append([]entity.Meal(nil), meals...),
		byID:  make(map[string]int, len(meals)),
	}
	for i, m := range r.meals {
		r.byID[m.ID] = i
	}
	return r
}

func (r *CatalogRepository) FindByID(id string) (entity.Meal, error) {
	i, ok := r.byID[id]
	if !ok {
		return entity.Meal{}, apperr.NotFound("meal %s not found", id)
	}
	return r.meals[i], nil
}

// All returns a copy in catalog order.
func (r *CatalogRepository) All() []entity.Meal {
	return append([]entity.Meal(nil), r.meals...)
}
