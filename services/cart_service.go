package services

import (
	"fmt"
	"sync"

	"github.com/Bekfastjam/LocalBake/cart"
	"github.com/Bekfastjam/LocalBake/entity"
)

// CartService holds one cart.State per session id. All transitions go
// through cart.Reduce; this wrapper only adds the concurrency discipline
// the pure reducer does not need on its own.
type CartService struct {
	mu    sync.Mutex
	carts map[string]cart.State
}

func NewCartService() *CartService {
	return &CartService{carts: make(map[string]cart.State)}
}

type AddToCartIn struct {
	BusinessID uint            `json:"businessId" binding:"required"`
	Item       entity.MenuItem `json:"item" binding:"required"`
}

func (s *CartService) Get(sessionID string) cart.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state(sessionID)
}

func (s *CartService) Add(sessionID string, in *AddToCartIn) cart.State {
	return s.dispatch(sessionID, cart.AddItem{Item: in.Item, BusinessID: in.BusinessID})
}

func (s *CartService) UpdateQuantity(sessionID string, itemID uint, quantity int) cart.State {
	return s.dispatch(sessionID, cart.UpdateQuantity{ID: itemID, Quantity: quantity})
}

func (s *CartService) Remove(sessionID string, itemID uint) cart.State {
	return s.dispatch(sessionID, cart.RemoveItem{ID: itemID})
}

func (s *CartService) Clear(sessionID string) cart.State {
	return s.dispatch(sessionID, cart.Clear{})
}

// Checkout turns the session's cart into an order submission and clears the
// cart only when the order service accepted it.
func (s *CartService) Checkout(sessionID string, orders *OrderService, in *CreateOrderIn) (*entity.Order, error) {
	s.mu.Lock()
	state := s.state(sessionID)
	s.mu.Unlock()

	if len(state.Items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrValidation)
	}

	items := make([]OrderItemIn, 0, len(state.Items))
	for _, line := range state.Items {
		items = append(items, OrderItemIn{
			MenuItemID: line.ID,
			Quantity:   line.Quantity,
			Price:      line.Price,
		})
	}
	in.BusinessID = state.BusinessID
	in.TotalAmount = state.Total().StringFixed(2)

	order, err := orders.Create(in, items)
	if err != nil {
		return nil, err
	}
	s.Clear(sessionID)
	return order, nil
}

func (s *CartService) dispatch(sessionID string, a cart.Action) cart.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := cart.Reduce(s.state(sessionID), a)
	s.carts[sessionID] = next
	return next
}

// state must be called with mu held.
func (s *CartService) state(sessionID string) cart.State {
	if st, ok := s.carts[sessionID]; ok {
		return st
	}
	return cart.Empty()
}
