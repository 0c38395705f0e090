package configs

import (
	"log"

	"github.com/Bekfastjam/LocalBake/entity"
)

// SeedData loads the sample catalog on first start. Skipped when businesses
// already exist so restarts against a persistent DB stay idempotent.
func SeedData() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.Business{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("seed: businesses already present, skipping")
		return nil
	}

	businesses := []entity.Business{
		{
			Name:        "Sunshine Bakery",
			Category:    "bakery",
			Description: "Family-owned bakery serving fresh artisan breads, pastries, and organic coffee since 1985. Known for our sourdough and seasonal fruit tarts.",
			Address:     "123 Main St, Downtown",
			Phone:       "(555) 123-4567",
			Website:     "sunbakery.com",
			ImageURL:    "https://images.unsplash.com/photo-1554118811-1e0d58224f24?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=250",
			Rating:      "4.8",
			ReviewCount: 156,
			IsOpen:      true,
			OpenUntil:   "6:00 PM",
			Distance:    "0.3",
			Tags:        []string{"vegan", "organic", "wifi"},
			Hours: map[string]string{
				"monday": "7:00 AM - 6:00 PM", "tuesday": "7:00 AM - 6:00 PM",
				"wednesday": "7:00 AM - 6:00 PM", "thursday": "7:00 AM - 6:00 PM",
				"friday": "7:00 AM - 7:00 PM", "saturday": "8:00 AM - 7:00 PM",
				"sunday": "8:00 AM - 5:00 PM",
			},
			Location: entity.Location{Lat: 40.7128, Lng: -74.0060},
		},
		{
			Name:        "Brew & Bite Cafe",
			Category:    "cafe",
			Description: "Modern coffee house specializing in single-origin brews and locally-sourced light bites.",
			Address:     "456 Oak Avenue, Midtown",
			Phone:       "(555) 234-5678",
			Website:     "brewbite.com",
			ImageURL:    "https://images.unsplash.com/photo-1501339847302-ac426a4a7cbb?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=250",
			Rating:      "4.6",
			ReviewCount: 89,
			IsOpen:      true,
			OpenUntil:   "8:00 PM",
			Distance:    "0.5",
			Tags:        []string{"wifi", "late-hours"},
			Hours: map[string]string{
				"monday": "6:00 AM - 8:00 PM", "tuesday": "6:00 AM - 8:00 PM",
				"wednesday": "6:00 AM - 8:00 PM", "thursday": "6:00 AM - 8:00 PM",
				"friday": "6:00 AM - 9:00 PM", "saturday": "7:00 AM - 9:00 PM",
				"sunday": "7:00 AM - 7:00 PM",
			},
			Location: entity.Location{Lat: 40.7589, Lng: -73.9851},
		},
		{
			Name:        "French Corner",
			Category:    "patisserie",
			Description: "Authentic French patisserie offering handcrafted macarons, croissants, and classic pastries.",
			Address:     "789 Elm Street, Arts District",
			Phone:       "(555) 345-6789",
			Website:     "frenchcorner.com",
			ImageURL:    "https://images.unsplash.com/photo-1578985545062-69928b1d9587?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=250",
			Rating:      "4.9",
			ReviewCount: 203,
			IsOpen:      false,
			OpenUntil:   "Opens 7:00 AM",
			Distance:    "0.7",
			Tags:        []string{"gluten-free", "specialty"},
			Hours: map[string]string{
				"monday": "7:00 AM - 6:00 PM", "tuesday": "7:00 AM - 6:00 PM",
				"wednesday": "7:00 AM - 6:00 PM", "thursday": "7:00 AM - 6:00 PM",
				"friday": "7:00 AM - 7:00 PM", "saturday": "8:00 AM - 7:00 PM",
				"sunday": "Closed",
			},
			Location: entity.Location{Lat: 40.7505, Lng: -73.9934},
		},
		{
			Name:        "Daily Grind Coffee",
			Category:    "cafe",
			Description: "Neighborhood coffee shop with locally roasted beans and homemade pastries.",
			Address:     "321 Pine Road, Tech Hub",
			Phone:       "(555) 456-7890",
			Website:     "dailygrind.com",
			ImageURL:    "https://images.unsplash.com/photo-1559925393-8be0ec4767c8?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=250",
			Rating:      "4.4",
			ReviewCount: 67,
			IsOpen:      true,
			OpenUntil:   "5:00 PM",
			Distance:    "1.2",
			Tags:        []string{"local", "work-friendly"},
			Hours: map[string]string{
				"monday": "6:00 AM - 5:00 PM", "tuesday": "6:00 AM - 5:00 PM",
				"wednesday": "6:00 AM - 5:00 PM", "thursday": "6:00 AM - 5:00 PM",
				"friday": "6:00 AM - 6:00 PM", "saturday": "7:00 AM - 6:00 PM",
				"sunday": "8:00 AM - 4:00 PM",
			},
			Location: entity.Location{Lat: 40.7419, Lng: -73.9891},
		},
		{
			Name:        "Sweet Spot Donuts",
			Category:    "bakery",
			Description: "Artisan donut shop specializing in unique flavors and gourmet cold brew coffee.",
			Address:     "654 Birch Lane, Old Town",
			Phone:       "(555) 567-8901",
			Website:     "sweetspotdonuts.com",
			ImageURL:    "https://images.unsplash.com/photo-1551024709-8f23befc6f87?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=250",
			Rating:      "4.7",
			ReviewCount: 124,
			IsOpen:      true,
			OpenUntil:   "3:00 PM",
			Distance:    "0.9",
			Tags:        []string{"fresh", "unique"},
			Hours: map[string]string{
				"monday": "6:00 AM - 3:00 PM", "tuesday": "6:00 AM - 3:00 PM",
				"wednesday": "6:00 AM - 3:00 PM", "thursday": "6:00 AM - 3:00 PM",
				"friday": "6:00 AM - 4:00 PM", "saturday": "7:00 AM - 4:00 PM",
				"sunday": "7:00 AM - 2:00 PM",
			},
			Location: entity.Location{Lat: 40.7282, Lng: -74.0776},
		},
		{
			Name:        "Artisan Bread Co",
			Category:    "bakery",
			Description: "Traditional bakery focusing on sourdough and artisan breads using heritage grains.",
			Address:     "987 Cedar Avenue, Historic Quarter",
			Phone:       "(555) 678-9012",
			Website:     "artisanbread.com",
			ImageURL:    "https://images.unsplash.com/photo-1509440159596-0249088772ff?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=250",
			Rating:      "4.5",
			ReviewCount: 92,
			IsOpen:      true,
			OpenUntil:   "4:00 PM",
			Distance:    "1.1",
			Tags:        []string{"organic", "artisan"},
			Hours: map[string]string{
				"monday": "7:00 AM - 4:00 PM", "tuesday": "7:00 AM - 4:00 PM",
				"wednesday": "7:00 AM - 4:00 PM", "thursday": "7:00 AM - 4:00 PM",
				"friday": "7:00 AM - 5:00 PM", "saturday": "8:00 AM - 5:00 PM",
				"sunday": "8:00 AM - 3:00 PM",
			},
			Location: entity.Location{Lat: 40.7645, Lng: -73.9654},
		},
	}
	for i := range businesses {
		if err := db.Create(&businesses[i]).Error; err != nil {
			return err
		}
	}

	menuItems := []entity.MenuItem{
		// Sunshine Bakery
		{BusinessID: 1, Category: "pastries", Name: "Chocolate Croissant", Description: "Buttery pastry with dark chocolate", Price: "3.50"},
		{BusinessID: 1, Category: "pastries", Name: "Almond Danish", Description: "Sweet almond cream filling", Price: "4.25"},
		{BusinessID: 1, Category: "pastries", Name: "Blueberry Muffin", Description: "Fresh local blueberries", Price: "2.75"},
		{BusinessID: 1, Category: "pastries", Name: "Cinnamon Roll", Description: "House-made with cream cheese glaze", Price: "3.75"},
		{BusinessID: 1, Category: "breads", Name: "Sourdough Loaf", Description: "Traditional San Francisco style", Price: "6.50"},
		{BusinessID: 1, Category: "breads", Name: "Whole Wheat", Description: "Organic whole grain", Price: "7.25"},
		{BusinessID: 1, Category: "breads", Name: "Focaccia", Description: "Rosemary and olive oil", Price: "5.75"},
		{BusinessID: 1, Category: "breads", Name: "Baguette", Description: "Classic French style", Price: "4.50"},
		{BusinessID: 1, Category: "beverages", Name: "Espresso", Description: "Single or double shot", Price: "2.50"},
		{BusinessID: 1, Category: "beverages", Name: "Cappuccino", Description: "With steamed milk foam", Price: "4.25"},
		{BusinessID: 1, Category: "beverages", Name: "Cold Brew", Description: "Smooth and refreshing", Price: "3.75"},
		{BusinessID: 1, Category: "beverages", Name: "Chai Latte", Description: "Spiced tea with steamed milk", Price: "4.50"},
		// Brew & Bite Cafe
		{BusinessID: 2, Category: "beverages", Name: "Single Origin Pour Over", Description: "Rotating seasonal selection", Price: "5.00"},
		{BusinessID: 2, Category: "beverages", Name: "Nitro Cold Brew", Description: "Creamy nitrogen-infused", Price: "4.50"},
		{BusinessID: 2, Category: "light-bites", Name: "Avocado Toast", Description: "Multigrain bread, lime, chili flakes", Price: "8.50"},
		{BusinessID: 2, Category: "light-bites", Name: "Breakfast Sandwich", Description: "Egg, cheese, bacon on brioche", Price: "9.25"},
		// French Corner
		{BusinessID: 3, Category: "pastries", Name: "Classic Macarons", Description: "Assorted flavors (6 pack)", Price: "12.00"},
		{BusinessID: 3, Category: "pastries", Name: "Pain au Chocolat", Description: "Traditional French pastry", Price: "3.25"},
		{BusinessID: 3, Category: "pastries", Name: "Eclair", Description: "Choux pastry with vanilla cream", Price: "4.75"},
		{BusinessID: 3, Category: "pastries", Name: "Tarte Tatin", Description: "Upside-down apple tart", Price: "5.50"},
	}
	for i := range menuItems {
		if err := db.Create(&menuItems[i]).Error; err != nil {
			return err
		}
	}

	reviews := []entity.Review{
		{BusinessID: 1, AuthorName: "Sarah Johnson", Rating: 5, Comment: "Amazing sourdough bread! The crust is perfectly crispy and the inside is so soft and flavorful. Their chocolate croissants are to die for. Will definitely be back!"},
		{BusinessID: 1, AuthorName: "Mike Chen", Rating: 4, Comment: "Great local bakery with friendly staff. The coffee is excellent and pairs perfectly with their pastries. Only minor complaint is that they sometimes run out of popular items by afternoon."},
		{BusinessID: 1, AuthorName: "Emily Rodriguez", Rating: 5, Comment: "Love this place! As someone with dietary restrictions, I appreciate that they clearly label all their vegan and gluten-free options. The almond Danish is incredible!"},
		{BusinessID: 2, AuthorName: "David Kim", Rating: 4, Comment: "Perfect spot for remote work. Great WiFi, comfortable seating, and excellent coffee. The avocado toast is fresh and delicious."},
		{BusinessID: 3, AuthorName: "Marie Dubois", Rating: 5, Comment: "Authentic French pastries that remind me of Paris! The macarons are perfection - crispy shell, chewy interior, and amazing flavors."},
	}
	for i := range reviews {
		if err := db.Create(&reviews[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("seed: %d businesses, %d menu items, %d reviews", len(businesses), len(menuItems), len(reviews))
	return nil
}
