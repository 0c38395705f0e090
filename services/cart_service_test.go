package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bekfastjam/LocalBake/entity"
	"github.com/Bekfastjam/LocalBake/services"
)

func addIn(id, businessID uint, price string) *services.AddToCartIn {
	return &services.AddToCartIn{
		BusinessID: businessID,
		Item:       entity.MenuItem{ID: id, BusinessID: businessID, Name: "item", Price: price},
	}
}

func TestCartServiceSessionsAreIsolated(t *testing.T) {
	svc := services.NewCartService()

	svc.Add("session-a", addIn(1, 1, "3.50"))
	svc.Add("session-a", addIn(1, 1, "3.50"))
	svc.Add("session-b", addIn(2, 2, "5.00"))

	a := svc.Get("session-a")
	require.Len(t, a.Items, 1)
	assert.Equal(t, 2, a.Items[0].Quantity)
	assert.Equal(t, uint(1), a.BusinessID)

	b := svc.Get("session-b")
	require.Len(t, b.Items, 1)
	assert.Equal(t, uint(2), b.BusinessID)

	assert.Empty(t, svc.Get("session-c").Items)
}

func TestCartServiceUpdateAndRemove(t *testing.T) {
	svc := services.NewCartService()
	sid := "s1"

	svc.Add(sid, addIn(1, 1, "2.00"))
	svc.Add(sid, addIn(2, 1, "3.00"))

	state := svc.UpdateQuantity(sid, 1, 3)
	assert.Equal(t, "9.00", state.Total().StringFixed(2))

	state = svc.Remove(sid, 2)
	require.Len(t, state.Items, 1)
	assert.Equal(t, "6.00", state.Total().StringFixed(2))

	state = svc.Clear(sid)
	assert.Empty(t, state.Items)
	assert.Equal(t, uint(0), state.BusinessID)
}

func TestCheckoutCreatesOrderAndClearsCart(t *testing.T) {
	db := openTestDB(t)
	orders := newOrderService(db)
	b := seedBusiness(t, db, entity.Business{Name: "Bakery", Category: "bakery"})

	svc := services.NewCartService()
	sid := "s1"
	svc.Add(sid, addIn(7, b.ID, "3.50"))
	svc.Add(sid, addIn(7, b.ID, "3.50"))

	order, err := svc.Checkout(sid, orders, &services.CreateOrderIn{
		CustomerName:  "Jamie Doe",
		CustomerEmail: "jamie@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "7.00", order.TotalAmount)
	assert.Equal(t, b.ID, order.BusinessID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)

	items, err := orders.Items(order.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, uint(7), items[0].MenuItemID)
	assert.Equal(t, 2, items[0].Quantity)

	assert.Empty(t, svc.Get(sid).Items)
}

func TestCheckoutEmptyCartFails(t *testing.T) {
	db := openTestDB(t)
	orders := newOrderService(db)

	svc := services.NewCartService()
	_, err := svc.Checkout("empty", orders, &services.CreateOrderIn{
		CustomerName:  "Jamie Doe",
		CustomerEmail: "jamie@example.com",
	})
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestCheckoutFailureKeepsCart(t *testing.T) {
	db := openTestDB(t)
	orders := newOrderService(db)

	svc := services.NewCartService()
	sid := "s1"
	// business 42 does not exist, so the order service rejects the checkout
	svc.Add(sid, addIn(1, 42, "3.50"))

	_, err := svc.Checkout(sid, orders, &services.CreateOrderIn{
		CustomerName:  "Jamie Doe",
		CustomerEmail: "jamie@example.com",
	})
	assert.ErrorIs(t, err, services.ErrBusinessNotFound)
	assert.Len(t, svc.Get(sid).Items, 1)
}
