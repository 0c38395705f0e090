package repository

import (
	"gorm.io/gorm"

	"github.com/Bekfastjam/LocalBake/entity"
)

type BusinessRepository struct {
	DB *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) *BusinessRepository {
	return &BusinessRepository{DB: db}
}

// FindAll returns every business in insertion (id) order.
func (r *BusinessRepository) FindAll() ([]entity.Business, error) {
	businesses := make([]entity.Business, 0)
	err := r.DB.Order("id").Find(&businesses).Error
	return businesses, err
}

func (r *BusinessRepository) FindByID(id uint) (*entity.Business, error) {
	var b entity.Business
	if err := r.DB.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BusinessRepository) Create(b *entity.Business) error {
	return r.DB.Create(b).Error
}
