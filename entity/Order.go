package entity

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID                  uint       `json:"id" gorm:"primaryKey"`
	CustomerName        string     `json:"customerName"`
	CustomerEmail       string     `json:"customerEmail" gorm:"index"`
	CustomerPhone       string     `json:"customerPhone"`
	BusinessID          uint       `json:"businessId"`
	Status              string     `json:"status"`
	TotalAmount         string     `json:"totalAmount"` // decimal string, 2 fractional digits
	SpecialInstructions string     `json:"specialInstructions"`
	PickupTime          *time.Time `json:"pickupTime"`
	CreatedAt           time.Time  `json:"createdAt"`
}
