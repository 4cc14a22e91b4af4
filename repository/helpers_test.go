package repository

import (
	"fmt"
	"testing"

	"preorder/configs"
	"preorder/entity"

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

func seedOrder(t *testing.T, db *gorm.DB, name string, status entity.OrderStatus, total int64) *entity.Order {
	t.Helper()
	o := &entity.Order{
		StudentName: name,
		StudentID:   "S-" + name,
		Email:       "student@x.com",
		OrderDate:   "2025-03-01",
		PickupTime:  entity.PickupLunch,
		TotalAmount: decimal.NewFromInt(total),
		Status:      status,
	}
	repo := NewOrderRepository(db)
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		if err := repo.CreateOrder(tx, o); err != nil {
			return err
		}
		return repo.CreateOrderItems(tx, []entity.OrderItem{
			{OrderID: o.ID, MealID: "m1", MealName: "Meal", Quantity: 1, UnitPrice: decimal.NewFromInt(total)},
		})
	}))
	return o
}
