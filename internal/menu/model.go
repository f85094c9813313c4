package menu

import "time"

// Menu categories shown on the storefront.
const (
	CategoryStarter    = "starter"
	CategoryMainCourse = "main_course"
	CategoryDessert    = "dessert"
	CategoryBeverage   = "beverage"
)

func Categories() []string {
	return []string{
		CategoryStarter,
		CategoryMainCourse,
		CategoryDessert,
		CategoryBeverage,
	}
}

type MenuItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl"`
	IsActive    bool      `json:"isActive"`
	IsPopular   bool      `json:"isPopular"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
