// Package cart implements the cart as a pure reducer: every transition is a
// total function of (state, action) with no I/O, so the same logic serves
// both the session-cart API and any client that mirrors it.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/Bekfastjam/LocalBake/entity"
)

// LineItem is a menu item plus the quantity requested for it.
type LineItem struct {
	entity.MenuItem
	Quantity int `json:"quantity"`
}

// State holds the cart's line items and the business they belong to.
// BusinessID 0 means the cart is not locked to any business yet. A non-empty
// cart only ever holds items from a single business.
type State struct {
	Items      []LineItem `json:"items"`
	BusinessID uint       `json:"businessId"`
}

// Empty returns a fresh empty cart state.
func Empty() State {
	return State{Items: []LineItem{}}
}

// Action is one of AddItem, RemoveItem, UpdateQuantity or Clear.
type Action interface {
	isAction()
}

// AddItem puts one unit of Item into the cart. Adding from a business other
// than the cart's current one replaces the whole cart with the new item.
type AddItem struct {
	Item       entity.MenuItem
	BusinessID uint
}

// RemoveItem drops the line item with the given menu item id; no-op if absent.
type RemoveItem struct {
	ID uint
}

// UpdateQuantity sets a line item's quantity. Quantity <= 0 removes the line.
type UpdateQuantity struct {
	ID       uint
	Quantity int
}

// Clear resets the cart to empty.
type Clear struct{}

func (AddItem) isAction()        {}
func (RemoveItem) isAction()     {}
func (UpdateQuantity) isAction() {}
func (Clear) isAction()          {}

// Reduce applies an action to a state and returns the next state. The input
// state is never mutated; returned slices are always fresh copies.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case AddItem:
		if s.BusinessID != 0 && s.BusinessID != a.BusinessID {
			// cross-business add resets the cart
			return State{
				Items:      []LineItem{{MenuItem: a.Item, Quantity: 1}},
				BusinessID: a.BusinessID,
			}
		}
		items := make([]LineItem, len(s.Items))
		copy(items, s.Items)
		for i := range items {
			if items[i].ID == a.Item.ID {
				items[i].Quantity++
				return State{Items: items, BusinessID: s.BusinessID}
			}
		}
		items = append(items, LineItem{MenuItem: a.Item, Quantity: 1})
		return State{Items: items, BusinessID: a.BusinessID}

	case RemoveItem:
		return State{Items: without(s.Items, a.ID), BusinessID: s.BusinessID}

	case UpdateQuantity:
		if a.Quantity <= 0 {
			return State{Items: without(s.Items, a.ID), BusinessID: s.BusinessID}
		}
		items := make([]LineItem, len(s.Items))
		copy(items, s.Items)
		for i := range items {
			if items[i].ID == a.ID {
				items[i].Quantity = a.Quantity
			}
		}
		return State{Items: items, BusinessID: s.BusinessID}

	case Clear:
		return Empty()
	}
	return s
}

func without(items []LineItem, id uint) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

// Total is the sum of price*quantity over all line items. An unparseable
// price counts as zero. Recomputed on every call; nothing is cached.
func (s State) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.Items {
		price, err := decimal.NewFromString(it.Price)
		if err != nil {
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// ItemCount is the sum of quantities over all line items.
func (s State) ItemCount() int {
	n := 0
	for _, it := range s.Items {
		n += it.Quantity
	}
	return n
}
