package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"preorder/entity"
	"preorder/pkg/apperr"
	"preorder/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB      *gorm.DB
	Repo    *repository.OrderRepository
	Catalog MealLookup

	validate *validator.Validate
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, catalog MealLookup) *OrderService {
	return &OrderService{DB: db, Repo: repo, Catalog: catalog, validate: newValidator()}
}

// ----- Inputs -----

type CustomerInfo struct {
	StudentName string `json:"studentName" validate:"required"`
	StudentID   string `json:"studentId" validate:"required"`
	Email       string `json:"email" validate:"required"`
	OrderDate   string `json:"date" validate:"required,datetime=2006-01-02"`
	PickupTime  string `json:"pickupTime" validate:"omitempty,oneof=lunch break"`
	Notes       string `json:"notes"`

	// ผู้ใช้ที่ login อยู่ (ถ้ามี)
	OwnerID *uint `json:"-"`
}

func (c *CustomerInfo) normalize() {
	c.StudentName = strings.TrimSpace(c.StudentName)
	c.StudentID = strings.TrimSpace(c.StudentID)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.OrderDate = strings.TrimSpace(c.OrderDate)
	c.PickupTime = strings.ToLower(strings.TrimSpace(c.PickupTime))
	c.Notes = strings.TrimSpace(c.Notes)
}

// LineInput is one requested meal. Any client name/price is ignored; the catalog prices it.
type LineInput struct {
	MealID   string `json:"mealId"`
	Quantity int    `json:"quantity"`
}

// ----- Submit -----

// Submit validates, prices every line from the catalog, and writes the order and its
// items in one transaction. The returned order always has status pending.
func (s *OrderService) Submit(ctx context.Context, info CustomerInfo, lines []LineInput) (*entity.Order, error) {
	order, err := s.submit(ctx, info, lines)
	if err != nil {
		ordersSubmitted.WithLabelValues(outcomeOf(err)).Inc()
		return nil, err
	}
	ordersSubmitted.WithLabelValues("ok").Inc()
	return order, nil
}

func (s *OrderService) submit(ctx context.Context, info CustomerInfo, lines []LineInput) (*entity.Order, error) {
	info.normalize()
	if err := s.validate.Struct(info); err != nil {
		return nil, validationError(err)
	}
	if len(lines) == 0 {
		return nil, apperr.Validation("items is required")
	}

	items, total, err := s.priceLines(lines)
	if err != nil {
		return nil, err
	}

	pickup := entity.PickupTime(info.PickupTime)
	if pickup == "" {
		pickup = entity.PickupLunch
	}

	order := &entity.Order{
		ID:          uuid.NewString(),
		StudentName: info.StudentName,
		StudentID:   info.StudentID,
		Email:       info.Email,
		OrderDate:   info.OrderDate,
		PickupTime:  pickup,
		Notes:       info.Notes,
		TotalAmount: total,
		Status:      entity.StatusPending,
		OwnerID:     info.OwnerID,
	}
	for i := range items {
		items[i].OrderID = order.ID
	}

	// order + items ต้องสำเร็จพร้อมกัน ไม่งั้น rollback ทั้งคู่
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, order); err != nil {
			return err
		}
		return s.Repo.CreateOrderItems(tx, items)
	})
	if err != nil {
		return nil, apperr.Persistence("create order", err)
	}

	order.Items = items
	return order, nil
}

// priceLines merges duplicate meal ids and computes the authoritative total.
func (s *OrderService) priceLines(lines []LineInput) ([]entity.OrderItem, decimal.Decimal, error) {
	items := make([]entity.OrderItem, 0, len(lines))
	index := make(map[string]int, len(lines))
	total := decimal.Zero

	for i, ln := range lines {
		mealID := strings.TrimSpace(ln.MealID)
		if mealID == "" {
			return nil, decimal.Zero, apperr.Validation("items[%d].mealId is required", i)
		}
		if ln.Quantity < 1 || ln.Quantity > entity.MaxLineQuantity {
			return nil, decimal.Zero, fmt.Errorf("%w: items[%d].quantity must be between 1 and %d",
				apperr.ErrInvalidQuantity, i, entity.MaxLineQuantity)
		}
		meal, err := s.Catalog.Get(mealID)
		if err != nil {
			return nil, decimal.Zero, err
		}

		if j, ok := index[meal.ID]; ok {
			if items[j].Quantity > entity.MaxLineQuantity-ln.Quantity {
				return nil, decimal.Zero, fmt.Errorf("%w: meal %s exceeds %d in total",
					apperr.ErrInvalidQuantity, meal.ID, entity.MaxLineQuantity)
			}
			items[j].Quantity += ln.Quantity
		} else {
			index[meal.ID] = len(items)
			items = append(items, entity.OrderItem{
				MealID:    meal.ID,
				MealName:  meal.Name,
				Quantity:  ln.Quantity,
				UnitPrice: meal.Price,
			})
		}
		total = total.Add(meal.Price.Mul(decimal.NewFromInt(int64(ln.Quantity))))
	}
	return items, total, nil
}

// ----- Read paths -----

func (s *OrderService) Get(ctx context.Context, orderID string) (*entity.Order, error) {
	return s.Repo.GetOrder(ctx, strings.TrimSpace(orderID))
}

func (s *OrderService) ListForOwner(ctx context.Context, ownerID uint) ([]entity.Order, error) {
	return s.Repo.ListOrdersForOwner(ctx, ownerID)
}

// ListAll is the staff view. status "" or "all" disables the status filter.
func (s *OrderService) ListAll(ctx context.Context, status, search string) ([]entity.Order, error) {
	var f repository.OrderFilter
	status = strings.ToLower(strings.TrimSpace(status))
	if status != "" && status != "all" {
		st, err := entity.ParseOrderStatus(status)
		if err != nil {
			return nil, apperr.Validation("%v", err)
		}
		f.Status = &st
	}
	f.Search = search
	return s.Repo.ListOrders(ctx, f)
}

type OrderStats struct {
	TotalOrders int64                        `json:"totalOrders"`
	ByStatus    map[entity.OrderStatus]int64 `json:"byStatus"`
	Revenue     decimal.Decimal              `json:"revenue"`
}

// Stats: cancelled orders do not count towards revenue.
func (s *OrderService) Stats(ctx context.Context) (*OrderStats, error) {
	totals, err := s.Repo.StatusTotals(ctx)
	if err != nil {
		return nil, err
	}
	out := &OrderStats{ByStatus: make(map[entity.OrderStatus]int64, len(totals)), Revenue: decimal.Zero}
	for st, t := range totals {
		out.TotalOrders += t.Count
		out.ByStatus[st] = t.Count
		if st != entity.StatusCancelled {
			out.Revenue = out.Revenue.Add(t.Amount)
		}
	}
	return out, nil
}

// Receipt renders a plain-text receipt for download.
func Receipt(o *entity.Order, generated time.Time) string {
	var b strings.Builder
	b.WriteString("ORDER RECEIPT\n====================\n")
	fmt.Fprintf(&b, "Order ID: %s\n", o.ID)
	fmt.Fprintf(&b, "Student Name: %s\n", o.StudentName)
	fmt.Fprintf(&b, "Student ID: %s\n", o.StudentID)
	fmt.Fprintf(&b, "Email: %s\n", o.Email)
	fmt.Fprintf(&b, "Order Date: %s\n", o.OrderDate)
	fmt.Fprintf(&b, "Pickup Time: %s\n", o.PickupTime.Label())
	fmt.Fprintf(&b, "Status: %s\n\n", strings.ToUpper(o.Status.String()))
	b.WriteString("ITEMS ORDERED:\n")
	for _, it := range o.Items {
		fmt.Fprintf(&b, "- %s x%d @ RM%s = RM%s\n",
			it.MealName, it.Quantity, it.UnitPrice.StringFixed(2), it.LineTotal().StringFixed(2))
	}
	fmt.Fprintf(&b, "\nTotal Amount: RM%s\n", o.TotalAmount.StringFixed(2))
	b.WriteString("====================\n")
	fmt.Fprintf(&b, "Generated: %s\n", generated.Format("2006-01-02 15:04:05"))
	return b.String()
}
