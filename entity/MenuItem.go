package entity

type MenuItem struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	BusinessID  uint   `json:"businessId" gorm:"index"`
	Category    string `json:"category"` // "pastries", "breads", "beverages", ...
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"` // decimal string, 2 fractional digits
}
