package entity

// Location is informational only; nothing filters or sorts on it.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Business struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name"`
	Category    string `json:"category"` // "bakery", "cafe", "patisserie", ...
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Website     string `json:"website"`
	ImageURL    string `json:"imageUrl"`
	Rating      string `json:"rating"`      // decimal, 1 fractional digit
	ReviewCount int    `json:"reviewCount"`
	IsOpen      bool   `json:"isOpen"`
	OpenUntil   string `json:"openUntil"` // "6:00 PM" or "Opens 7:00 AM"
	Distance    string `json:"distance"`  // miles, empty when unknown

	Tags     []string          `json:"tags" gorm:"serializer:json"`
	Hours    map[string]string `json:"hours" gorm:"serializer:json"` // weekday -> hours or "Closed"
	Location Location          `json:"location" gorm:"serializer:json"`
}

// HasTag reports whether tag is in the business's tag set.
func (b *Business) HasTag(tag string) bool {
	for _, t := range b.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
