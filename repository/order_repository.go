package repository

import (
	"context"
	"strings"

	"preorder/entity"
	"preorder/pkg/apperr"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

// CreateOrder inserts only the order row; items go through CreateOrderItems in the same tx.
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Omit("Items").Create(o).Error
}

func (r *OrderRepository) CreateOrderItems(tx *gorm.DB, items []entity.OrderItem) error {
	return tx.Create(&items).Error
}

func (r *OrderRepository) GetOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.WithContext(ctx).
		Preload("Items", orderItemsByID).
		Where("id = ?", orderID).
		First(&o).Error
	if err != nil {
		return nil, notFoundOr(err, "order", orderID)
	}
	return &o, nil
}

func (r *OrderRepository) OrderExists(ctx context.Context, orderID string) (bool, error) {
	var cnt int64
	if err := r.DB.WithContext(ctx).Model(&entity.Order{}).Where("id = ?", orderID).Count(&cnt).Error; err != nil {
		return false, apperr.Persistence("count orders", err)
	}
	return cnt > 0, nil
}

// UpdateStatusGuard เปลี่ยนสถานะเฉพาะเมื่อสถานะปัจจุบันยังเป็น from (compare-and-swap)
// คืนจำนวนแถวที่ถูกแก้: 0 = มีคนอื่นเปลี่ยนไปก่อนแล้ว
func (r *OrderRepository) UpdateStatusGuard(ctx context.Context, orderID string, from, to entity.OrderStatus) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return 0, apperr.Persistence("update order status", res.Error)
	}
	return res.RowsAffected, nil
}

// ---------------- Listing ----------------

// ListOrdersForOwner → รายการ order ของผู้ใช้ ใหม่สุดก่อน
func (r *OrderRepository) ListOrdersForOwner(ctx context.Context, ownerID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.WithContext(ctx).
		Preload("Items", orderItemsByID).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").Order("id DESC").
		Find(&out).Error
	if err != nil {
		return nil, apperr.Persistence("list owner orders", err)
	}
	return out, nil
}

type OrderFilter struct {
	Status *entity.OrderStatus
	Search string
}

// ListOrders is the admin view: status filter AND search over name/student id/email
// (matched against Order.SearchKey).
func (r *OrderRepository) ListOrders(ctx context.Context, f OrderFilter) ([]entity.Order, error) {
	q := r.DB.WithContext(ctx).Model(&entity.Order{}).Preload("Items", orderItemsByID)
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + escapeLike(strings.ToLower(s)) + "%"
		q = q.Where(`search_key LIKE ? ESCAPE '\'`, like)
	}

	var out []entity.Order
	if err := q.Order("created_at DESC").Order("id DESC").Find(&out).Error; err != nil {
		return nil, apperr.Persistence("list orders", err)
	}
	return out, nil
}

type StatusTotal struct {
	Status entity.OrderStatus
	Count  int64
	Amount decimal.Decimal
}

// StatusTotals sums in Go so totals stay exact on every driver.
func (r *OrderRepository) StatusTotals(ctx context.Context) (map[entity.OrderStatus]*StatusTotal, error) {
	var rows []struct {
		Status      entity.OrderStatus
		TotalAmount decimal.Decimal
	}
	if err := r.DB.WithContext(ctx).Model(&entity.Order{}).
		Select("status, total_amount").
		Scan(&rows).Error; err != nil {
		return nil, apperr.Persistence("order totals", err)
	}

	out := make(map[entity.OrderStatus]*StatusTotal, len(entity.AllStatuses))
	for _, st := range entity.AllStatuses {
		out[st] = &StatusTotal{Status: st, Amount: decimal.Zero}
	}
	for _, row := range rows {
		t, ok := out[row.Status]
		if !ok {
			t = &StatusTotal{Status: row.Status, Amount: decimal.Zero}
			out[row.Status] = t
		}
		t.Count++
		t.Amount = t.Amount.Add(row.TotalAmount)
	}
	return out, nil
}

func orderItemsByID(db *gorm.DB) *gorm.DB {
	return db.Order("order_items.id ASC")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
