package repository

import (
	"context"
	"fmt"

	"food-ordering-backend/internal/models"
)

// seedMenu is the categorized starter menu, prices in Indian Rupees.
var seedMenu = []models.Food{
	// Main course
	{Name: "Butter Chicken", Price: 349.00, Description: "Tender chicken in rich tomato and butter curry sauce", Category: "main-course"},
	{Name: "Tandoori Chicken", Price: 459.00, Description: "Marinated chicken grilled in traditional tandoor oven", Category: "main-course"},
	{Name: "Fish Curry", Price: 359.00, Description: "Fresh fish cooked in coconut and spice curry", Category: "main-course"},
	{Name: "Lamb Rogan Josh", Price: 429.00, Description: "Slow-cooked lamb in aromatic Kashmiri spices", Category: "main-course"},
	{Name: "Classic Burger", Price: 299.00, Description: "Juicy beef patty with lettuce, tomato, onion, and special sauce", Category: "main-course"},
	{Name: "Margherita Pizza", Price: 399.00, Description: "Fresh mozzarella, tomato sauce, and basil on thin crust", Category: "main-course"},
	{Name: "BBQ Ribs", Price: 499.00, Description: "Slow-cooked pork ribs with smoky BBQ sauce", Category: "main-course"},
	{Name: "Grilled Salmon", Price: 549.00, Description: "Fresh Atlantic salmon with herbs and lemon", Category: "main-course"},

	// Rice dishes
	{Name: "Chicken Biryani", Price: 389.00, Description: "Aromatic basmati rice with spiced chicken and saffron", Category: "rice-dishes"},
	{Name: "Mutton Biryani", Price: 449.00, Description: "Fragrant basmati rice with tender mutton pieces", Category: "rice-dishes"},
	{Name: "Vegetable Biryani", Price: 299.00, Description: "Mixed vegetables with basmati rice and aromatic spices", Category: "rice-dishes"},
	{Name: "Hyderabadi Dum Biryani", Price: 529.00, Description: "Royal style slow-cooked biryani with authentic spices", Category: "rice-dishes"},
	{Name: "Rajma Rice", Price: 199.00, Description: "Kidney bean curry served with steamed basmati rice", Category: "rice-dishes"},

	// Curries
	{Name: "Dal Makhani", Price: 259.00, Description: "Rich black lentils cooked in butter and cream", Category: "curries"},
	{Name: "Palak Paneer", Price: 279.00, Description: "Cottage cheese cubes in creamy spinach curry", Category: "curries"},
	{Name: "Aloo Gobi", Price: 189.00, Description: "Dry curry of potatoes and cauliflower with spices", Category: "curries"},
	{Name: "Paneer Butter Masala", Price: 319.00, Description: "Cottage cheese in rich tomato-based gravy", Category: "curries"},
	{Name: "Chole Bhature", Price: 179.00, Description: "Spicy chickpeas with fluffy fried bread", Category: "curries"},

	// Appetizers
	{Name: "Paneer Tikka", Price: 299.00, Description: "Grilled cottage cheese cubes with Indian spices", Category: "appetizers"},
	{Name: "Chicken Wings", Price: 279.00, Description: "Spicy buffalo wings served with blue cheese dip", Category: "appetizers"},
	{Name: "Samosa (4 pcs)", Price: 119.00, Description: "Crispy triangular pastry with spiced potato filling", Category: "appetizers"},
	{Name: "Spring Rolls (6 pcs)", Price: 159.00, Description: "Crispy vegetable spring rolls with sweet chili sauce", Category: "appetizers"},
	{Name: "Chicken Caesar Salad", Price: 249.00, Description: "Crisp romaine lettuce with grilled chicken and parmesan", Category: "appetizers"},
	{Name: "Masala Dosa", Price: 149.00, Description: "Crispy crepe with spiced potato filling", Category: "appetizers"},

	// Beverages
	{Name: "Fresh Lime Soda", Price: 79.00, Description: "Refreshing lime drink with mint and soda", Category: "beverages"},
	{Name: "Mango Lassi", Price: 89.00, Description: "Sweet yogurt drink with fresh mango", Category: "beverages"},
	{Name: "Masala Chai", Price: 49.00, Description: "Traditional spiced tea with milk", Category: "beverages"},
	{Name: "Cold Coffee", Price: 99.00, Description: "Iced coffee with milk and ice cream", Category: "beverages"},
	{Name: "Fresh Juice", Price: 79.00, Description: "Seasonal fresh fruit juice", Category: "beverages"},

	// Desserts
	{Name: "Gulab Jamun (4 pcs)", Price: 129.00, Description: "Sweet milk dumplings in sugar syrup", Category: "desserts"},
	{Name: "Chocolate Brownie", Price: 149.00, Description: "Rich chocolate brownie with vanilla ice cream", Category: "desserts"},
	{Name: "Ras Malai (3 pcs)", Price: 159.00, Description: "Soft cottage cheese dumplings in sweetened milk", Category: "desserts"},
	{Name: "Ice Cream Sundae", Price: 119.00, Description: "Three scoops with chocolate sauce and nuts", Category: "desserts"},
	{Name: "Kulfi Falooda", Price: 139.00, Description: "Traditional ice cream with vermicelli and rose syrup", Category: "desserts"},
}

// SeedMenu inserts the starter menu when the foods table is empty.
// It never touches an existing menu, so restarts are safe.
func SeedMenu(ctx context.Context, foods FoodRepository) (int, error) {
	existing, err := foods.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to check existing menu: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	for i := range seedMenu {
		food := seedMenu[i]
		if _, err := foods.Create(ctx, &food); err != nil {
			return i, fmt.Errorf("failed to seed %q: %w", food.Name, err)
		}
	}
	return len(seedMenu), nil
}
