package services

import (
	"strings"

	"preorder/entity"
	"preorder/repository"
)

// MealLookup resolves a meal id to its canonical catalog record.
type MealLookup interface {
	Get(id string) (entity.Meal, error)
}

type CatalogService struct {
	repo *repository.CatalogRepository
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// List คืนเมนูทั้งหมด หรือเฉพาะหมวด (ไม่สนตัวพิมพ์เล็ก/ใหญ่)
func (s *CatalogService) List(category string) []entity.Meal {
	all := s.repo.All()
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, "all") {
		return all
	}
	out := make([]entity.Meal, 0, len(all))
	for _, m := range all {
		if strings.EqualFold(m.Category, category) {
			out = append(out, m)
		}
	}
	return out
}

func (s *CatalogService) Get(id string) (entity.Meal, error) {
	return s.repo.FindByID(strings.TrimSpace(id))
}

// Categories in the order they first appear in the catalog.
func (s *CatalogService) Categories() []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, m := range s.repo.All() {
		if m.Category != "" && !seen[m.Category] {
			seen[m.Category] = true
			out = append(out, m.Category)
		}
	}
	return out
}
