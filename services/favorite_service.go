package services

import (
	"context"
	"strings"

	"preorder/entity"
	"preorder/pkg/apperr"
	"preorder/repository"
)

type FavoriteService struct {
	repo    *repository.FavoriteRepository
	catalog MealLookup
}

func NewFavoriteService(repo *repository.FavoriteRepository, catalog MealLookup) *FavoriteService {
	return &FavoriteService{repo: repo, catalog: catalog}
}

func (s *FavoriteService) Add(ctx context.Context, email, mealID string) (*entity.Favorite, error) {
	email, mealID, err := favoriteKey(email, mealID)
	if err != nil {
		return nil, err
	}
	if _, err := s.catalog.Get(mealID); err != nil {
		return nil, err
	}
	f := &entity.Favorite{StudentEmail: email, MealID: mealID}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Remove is idempotent.
func (s *FavoriteService) Remove(ctx context.Context, email, mealID string) error {
	email, mealID, err := favoriteKey(email, mealID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, email, mealID)
}

func (s *FavoriteService) List(ctx context.Context, email string) ([]string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, apperr.Validation("email is required")
	}
	return s.repo.ListMealIDs(ctx, email)
}

func favoriteKey(email, mealID string) (string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	mealID = strings.TrimSpace(mealID)
	if email == "" || mealID == "" {
		return "", "", apperr.Validation("studentEmail and mealId are required")
	}
	return email, mealID, nil
}
