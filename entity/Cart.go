package entity

import (
	"preorder/pkg/apperr"

	"github.com/shopspring/decimal"
)

// MaxLineQuantity caps one meal line in a cart or an order.
const MaxLineQuantity = 99

type CartLine struct {
	MealID    string          `json:"mealId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
}

func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is a session's working set of meals before submission.
// Lines keep insertion order for display; MealID is unique across lines.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

func (c *Cart) indexOf(mealID string) int {
	for i := range c.Lines {
		if c.Lines[i].MealID == mealID {
			return i
		}
	}
	return -1
}

// Add merges into an existing line or appends a new one with quantity 1.
func (c *Cart) Add(m Meal) {
	_ = c.AddQuantity(m, 1)
}

func (c *Cart) AddQuantity(m Meal, qty int) error {
	if qty < 1 || qty > MaxLineQuantity {
		return apperr.ErrInvalidQuantity
	}
	if i := c.indexOf(m.ID); i >= 0 {
		if c.Lines[i].Quantity > MaxLineQuantity-qty {
			return apperr.ErrInvalidQuantity
		}
		c.Lines[i].Quantity += qty
		return nil
	}
	c.Lines = append(c.Lines, CartLine{
		MealID:    m.ID,
		Name:      m.Name,
		UnitPrice: m.Price,
		Quantity:  qty,
	})
	return nil
}

// SetQuantity removes the line when qty <= 0, otherwise sets it.
func (c *Cart) SetQuantity(mealID string, qty int) error {
	if qty <= 0 {
		c.Remove(mealID)
		return nil
	}
	return c.SetLineQuantity(mealID, qty)
}

// SetLineQuantity is the strict setter: it never removes lines.
func (c *Cart) SetLineQuantity(mealID string, qty int) error {
	if qty < 1 || qty > MaxLineQuantity {
		return apperr.ErrInvalidQuantity
	}
	i := c.indexOf(mealID)
	if i < 0 {
		return apperr.NotFound("meal %q is not in the cart", mealID)
	}
	c.Lines[i].Quantity = qty
	return nil
}

func (c *Cart) Remove(mealID string) {
	if i := c.indexOf(mealID); i >= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	}
}

func (c *Cart) Line(mealID string) (CartLine, bool) {
	if i := c.indexOf(mealID); i >= 0 {
		return c.Lines[i], true
	}
	return CartLine{}, false
}

// Total is derived from the lines on every call.
func (c *Cart) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.Lines {
		sum = sum.Add(l.LineTotal())
	}
	return sum
}

func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) IsEmpty() bool { return len(c.Lines) == 0 }

func (c *Cart) Clear() { c.Lines = nil }
