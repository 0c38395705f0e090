package repository

import (
	"gorm.io/gorm"

	"github.com/Bekfastjam/LocalBake/entity"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

// FindByBusiness returns a business's reviews newest first. Seeded reviews
// share a timestamp, so id breaks the tie deterministically.
func (r *ReviewRepository) FindByBusiness(businessID uint) ([]entity.Review, error) {
	reviews := make([]entity.Review, 0)
	err := r.DB.Where("business_id = ?", businessID).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error
	return reviews, err
}

// Create stores a review; gorm assigns CreatedAt server-side.
func (r *ReviewRepository) Create(rv *entity.Review) error {
	return r.DB.Create(rv).Error
}
