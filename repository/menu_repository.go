package repository

import (
	"gorm.io/gorm"

	"github.com/Bekfastjam/LocalBake/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// FindByBusiness returns the items owned by a business in insertion order.
// An unknown business id yields an empty slice, not an error.
func (r *MenuRepository) FindByBusiness(businessID uint) ([]entity.MenuItem, error) {
	items := make([]entity.MenuItem, 0)
	err := r.DB.Where("business_id = ?", businessID).Order("id").Find(&items).Error
	return items, err
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}
