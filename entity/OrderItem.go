package entity

type OrderItem struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	OrderID    uint   `json:"orderId" gorm:"index"`
	MenuItemID uint   `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
	Price      string `json:"price"` // snapshot of the menu price at order time
}
