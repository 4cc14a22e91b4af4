package services

import (
	"fmt"
	"testing"

	"preorder/configs"
	"preorder/entity"
	"preorder/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, configs.SetupDatabase(db))
	return db
}

func testMeals() []entity.Meal {
	return []entity.Meal{
		{ID: "m1", Name: "Nasi Lemak", Price: decimal.RequireFromString("12.50"), Category: "Rice"},
		{ID: "m10", Name: "Laksa", Price: decimal.NewFromInt(10), Category: "Noodles"},
		{ID: "m5", Name: "Teh Tarik", Price: decimal.NewFromInt(5), Category: "Drinks"},
	}
}

func newTestCatalog() *CatalogService {
	return NewCatalogService(repository.NewCatalogRepository(testMeals()))
}

func newTestOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewOrderService(db, repository.NewOrderRepository(db), newTestCatalog()), db
}

func alice() CustomerInfo {
	return CustomerInfo{
		StudentName: "Alice Tan",
		StudentID:   "S100",
		Email:       "a@x.com",
		OrderDate:   "2025-03-01",
	}
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
