package entity

import "time"

type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	BusinessID uint      `json:"businessId" gorm:"index"`
	AuthorName string    `json:"authorName"`
	Rating     int       `json:"rating"` // 1-5 stars
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"` // server-assigned
}
