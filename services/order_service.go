package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Bekfastjam/LocalBake/entity"
	"github.com/Bekfastjam/LocalBake/repository"
)

// StatusNotifier receives order status changes; the websocket hub implements
// it. Kept as an interface here so services never import ws.
type StatusNotifier interface {
	OrderStatusChanged(o *entity.Order)
}

type OrderService struct {
	DB           *gorm.DB
	Repo         *repository.OrderRepository
	BusinessRepo *repository.BusinessRepository

	notifier StatusNotifier
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, businessRepo *repository.BusinessRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, BusinessRepo: businessRepo}
}

func (s *OrderService) SetNotifier(n StatusNotifier) {
	s.notifier = n
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	MenuItemID uint   `json:"menuItemId" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required"`
	Price      string `json:"price" binding:"required"`
}

type CreateOrderIn struct {
	CustomerName        string     `json:"customerName"`
	CustomerEmail       string     `json:"customerEmail"`
	CustomerPhone       string     `json:"customerPhone"`
	BusinessID          uint       `json:"businessId"`
	TotalAmount         string     `json:"totalAmount"`
	SpecialInstructions string     `json:"specialInstructions"`
	PickupTime          *time.Time `json:"pickupTime"`
}

// Create validates the submission and writes the order together with all of
// its items in one transaction. The submitted totalAmount must equal the
// recomputed sum of price*quantity; item prices are stored as submitted
// (snapshots, deliberately not re-priced against the current menu).
func (s *OrderService) Create(in *CreateOrderIn, items []OrderItemIn) (*entity.Order, error) {
	if strings.TrimSpace(in.CustomerName) == "" {
		return nil, fmt.Errorf("%w: customerName is required", ErrValidation)
	}
	if strings.TrimSpace(in.CustomerEmail) == "" {
		return nil, fmt.Errorf("%w: customerEmail is required", ErrValidation)
	}
	if in.BusinessID == 0 {
		return nil, fmt.Errorf("%w: businessId is required", ErrValidation)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", ErrValidation)
	}

	total := decimal.Zero
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item quantity must be positive", ErrValidation)
		}
		price, err := decimal.NewFromString(it.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid item price %q", ErrValidation, it.Price)
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	submitted, err := decimal.NewFromString(in.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid totalAmount %q", ErrValidation, in.TotalAmount)
	}
	if !submitted.Equal(total) {
		return nil, fmt.Errorf("%w: totalAmount %s does not match item total %s",
			ErrValidation, submitted.StringFixed(2), total.StringFixed(2))
	}

	if _, err := s.BusinessRepo.FindByID(in.BusinessID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}

	order := entity.Order{
		CustomerName:        in.CustomerName,
		CustomerEmail:       in.CustomerEmail,
		CustomerPhone:       in.CustomerPhone,
		BusinessID:          in.BusinessID,
		Status:              entity.OrderStatusPending,
		TotalAmount:         total.StringFixed(2),
		SpecialInstructions: in.SpecialInstructions,
		PickupTime:          in.PickupTime,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, it := range items {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: it.MenuItemID,
				Quantity:   it.Quantity,
				Price:      it.Price,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) Get(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *OrderService) Items(orderID uint) ([]entity.OrderItem, error) {
	return s.Repo.GetOrderItems(orderID)
}

func (s *OrderService) ByEmail(email string) ([]entity.Order, error) {
	return s.Repo.FindByEmail(email)
}

// UpdateStatus overwrites the status with any known value; transitions
// between known states are not restricted. Unknown values are rejected.
func (s *OrderService) UpdateStatus(orderID uint, status string) (*entity.Order, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	ok, err := s.Repo.UpdateStatus(orderID, status)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrOrderNotFound
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if s.notifier != nil {
		s.notifier.OrderStatusChanged(o)
	}
	return o, nil
}
