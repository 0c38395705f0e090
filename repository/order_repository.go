package repository

import (
	"gorm.io/gorm"

	"github.com/Bekfastjam/LocalBake/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	items := make([]entity.OrderItem, 0)
	err := r.DB.Where("order_id = ?", orderID).Order("id").Find(&items).Error
	return items, err
}

func (r *OrderRepository) FindByEmail(email string) ([]entity.Order, error) {
	orders := make([]entity.Order, 0)
	err := r.DB.Where("customer_email = ?", email).Order("id").Find(&orders).Error
	return orders, err
}

// UpdateStatus overwrites the status column and reports whether a row matched.
func (r *OrderRepository) UpdateStatus(orderID uint, status string) (bool, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
