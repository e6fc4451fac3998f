package configs

import (
	"log"

	"github.com/diptansh-1/restaurant-app/entity"
)

// SeedCatalog loads the mock restaurant catalog on first start. Catalog
// rows are static after seeding.
func SeedCatalog() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("catalog already seeded")
		return nil
	}

	restaurants := []entity.Restaurant{
		{
			Name:        "Burger Palace",
			Image:       "/images/restaurants/burger.jpg",
			Cuisine:     "American",
			Rating:      4.5,
			PriceRange:  "$$",
			Description: "Gourmet burgers made with premium ingredients. Our patties are 100% grass-fed beef, and we offer vegetarian options.",
			Lat:         28.6139, Lng: 77.2090, // Delhi
			Menu: []entity.MenuItem{
				{Name: "Classic Burger", Price: 199, Description: "Beef patty with lettuce, tomato, onion, and our special sauce"},
				{Name: "Cheese Burger", Price: 299, Description: "Classic burger with American cheese"},
				{Name: "Bacon Burger", Price: 499, Description: "Classic burger with crispy bacon and cheese"},
				{Name: "Veggie Burger", Price: 399, Description: "Plant-based patty with all the fixings"},
			},
		},
		{
			Name:        "Pizza Express",
			Image:       "/images/restaurants/pizza.jpg",
			Cuisine:     "Italian",
			Rating:      4.3,
			PriceRange:  "$$",
			Description: "Authentic Italian pizzas baked in a wood-fired oven. We use imported Italian ingredients for the perfect taste.",
			Lat:         28.6129, Lng: 77.2295, // Central Delhi
			Menu: []entity.MenuItem{
				{Name: "Margherita", Price: 199, Description: "Tomato sauce, mozzarella, and basil"},
				{Name: "Pepperoni", Price: 295, Description: "Tomato sauce, mozzarella, and pepperoni"},
				{Name: "Vegetarian", Price: 119, Description: "Tomato sauce, mozzarella, and mixed vegetables"},
				{Name: "Hawaiian", Price: 129, Description: "Tomato sauce, mozzarella, ham, and pineapple"},
			},
		},
		{
			Name:        "Sushi Master",
			Image:       "/images/restaurants/sushi.jpg",
			Cuisine:     "Japanese",
			Rating:      4.7,
			PriceRange:  "$$$",
			Description: "Premium sushi prepared by master chefs. We use only the freshest fish, delivered daily.",
			Lat:         28.6304, Lng: 77.2177, // New Delhi
			Menu: []entity.MenuItem{
				{Name: "California Roll (6 pcs)", Price: 799, Description: "Crab, avocado, cucumber, and tobiko"},
				{Name: "Salmon Nigiri (2 pcs)", Price: 599, Description: "Fresh salmon on rice"},
				{Name: "Tuna Roll (6 pcs)", Price: 899, Description: "Tuna, cucumber, and spicy mayo"},
				{Name: "Veggie Roll (6 pcs)", Price: 699, Description: "Avocado, cucumber, and carrot"},
			},
		},
		{
			Name:        "Curry House",
			Image:       "/images/restaurants/curry.jpg",
			Cuisine:     "Indian",
			Rating:      4.4,
			PriceRange:  "$$",
			Description: "Authentic Indian curries and dishes. Our chefs use traditional spices and cooking methods.",
			Lat:         28.5355, Lng: 77.2410, // South Delhi
			Menu: []entity.MenuItem{
				{Name: "Chicken Tikka Masala", Price: 499, Description: "Tender chicken in a rich, creamy tomato sauce"},
				{Name: "Paneer Butter Masala", Price: 399, Description: "Cottage cheese in a creamy tomato gravy"},
				{Name: "Dal Makhani", Price: 299, Description: "Black lentils slow-cooked with butter and cream"},
				{Name: "Garlic Naan", Price: 99, Description: "Fresh baked bread with garlic and butter"},
			},
		},
	}

	for i := range restaurants {
		if err := db.Create(&restaurants[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("seeded %d restaurants", len(restaurants))
	return nil
}
