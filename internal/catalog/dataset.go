package catalog

import "github.com/example/diet-planner/internal/models"

// SeedFoods is the static food dataset loaded into the database on startup.
// Nutrition values are per 100g. The halal tag is present on every record
// because the dataset contains no pork or non-halal meat; the budget tag is
// derived from cost level at load time (see FoodRecord.Normalize).
var SeedFoods = []models.FoodRecord{
	// Proteins
	{
		Name:      "Grilled Chicken Breast",
		Category:  models.CategoryProtein,
		Per100g:   models.NutrientProfile{Calories: 165, Protein: 31.0, Fat: 3.6, Carbs: 0.0},
		Tags:      []models.DietTag{models.TagNonVeg, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostMedium,
	},
	{
		Name:      "Wild Atlantic Salmon",
		Category:  models.CategoryProtein,
		Per100g:   models.NutrientProfile{Calories: 208, Protein: 25.4, Fat: 12.4, Carbs: 0.0},
		Tags:      []models.DietTag{models.TagNonVeg, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostHigh,
	},
	{
		Name:      "Lean Ground Turkey",
		Category:  models.CategoryProtein,
		Per100g:   models.NutrientProfile{Calories: 135, Protein: 30.1, Fat: 0.7, Carbs: 0.0},
		Tags:      []models.DietTag{models.TagNonVeg, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostMedium,
	},
	{
		Name:      "Atlantic Cod Fillet",
		Category:  models.CategoryProtein,
		Per100g:   models.NutrientProfile{Calories: 82, Protein: 18.0, Fat: 0.7, Carbs: 0.0},
		Tags:      []models.DietTag{models.TagNonVeg, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostMedium,
	},
	{
		Name:      "Fresh Tuna Steak",
		Category:  models.CategoryProtein,
		Per100g:   models.NutrientProfile{Calories: 144, Protein: 25.0, Fat: 4.9, Carbs: 0.0},
		Tags:      []models.DietTag{models.TagNonVeg, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostHigh,
	},
	{
		Name:      "Extra Firm Tofu",
		Category:  models.CategoryProtein,
		Per100g:   models.NutrientProfile{Calories: 144, Protein: 17.3, Fat: 8.7, Carbs: 2.8},
		FiberG:    2.3,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostLow,
	},
	{
		Name:      "Organic Tempeh",
		Category:  models.CategoryProtein,
		Per100g:   models.NutrientProfile{Calories: 190, Protein: 20.3, Fat: 10.8, Carbs: 7.6},
		FiberG:    9.0,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostMedium,
	},
	{
		Name:      "Homemade Seitan",
		Category:  models.CategoryProtein,
		Per100g:   models.NutrientProfile{Calories: 370, Protein: 75.2, Fat: 1.9, Carbs: 14.2},
		FiberG:    1.9,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostLow,
	},
	{
		Name:      "Red Lentils (cooked)",
		Category:  models.CategoryProtein,
		Per100g:   models.NutrientProfile{Calories: 116, Protein: 9.0, Fat: 0.4, Carbs: 20.1},
		FiberG:    7.9,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostLow,
	},
	{
		Name:      "Roasted Chickpeas",
		Category:  models.CategoryProtein,
		Per100g:   models.NutrientProfile{Calories: 164, Protein: 8.9, Fat: 2.6, Carbs: 27.4},
		FiberG:    7.6,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostLow,
	},
	{
		Name:      "Organic Black Beans",
		Category:  models.CategoryProtein,
		Per100g:   models.NutrientProfile{Calories: 132, Protein: 8.9, Fat: 0.5, Carbs: 23.7},
		FiberG:    8.7,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostLow,
	},
	{
		Name:      "Pasture-Raised Eggs",
		Category:  models.CategoryProtein,
		Per100g:   models.NutrientProfile{Calories: 155, Protein: 13.0, Fat: 11.0, Carbs: 1.1},
		Tags:      []models.DietTag{models.TagVeg, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostMedium,
	},
	{
		Name:      "Plain Greek Yogurt (0% fat)",
		Category:  models.CategoryProtein,
		Per100g:   models.NutrientProfile{Calories: 59, Protein: 10.3, Fat: 0.4, Carbs: 3.6},
		Tags:      []models.DietTag{models.TagVeg, models.TagHalal},
		CostLevel: models.CostMedium,
	},

	// Carbohydrates
	{
		Name:      "Tricolor Quinoa (cooked)",
		Category:  models.CategoryCarbohydrate,
		Per100g:   models.NutrientProfile{Calories: 120, Protein: 4.4, Fat: 1.9, Carbs: 21.8},
		FiberG:    2.8,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostMedium,
	},
	{
		Name:      "Short Grain Brown Rice",
		Category:  models.CategoryCarbohydrate,
		Per100g:   models.NutrientProfile{Calories: 111, Protein: 2.6, Fat: 0.9, Carbs: 22.0},
		FiberG:    1.8,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostLow,
	},
	{
		Name:      "Steel Cut Oats (dry)",
		Category:  models.CategoryCarbohydrate,
		Per100g:   models.NutrientProfile{Calories: 389, Protein: 16.9, Fat: 6.9, Carbs: 66.3},
		FiberG:    10.6,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostLow,
	},
	{
		Name:      "Orange Sweet Potato (baked)",
		Category:  models.CategoryCarbohydrate,
		Per100g:   models.NutrientProfile{Calories: 90, Protein: 2.0, Fat: 0.2, Carbs: 20.7},
		FiberG:    3.3,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostLow,
	},
	{
		Name:      "Whole Wheat Pasta (cooked)",
		Category:  models.CategoryCarbohydrate,
		Per100g:   models.NutrientProfile{Calories: 124, Protein: 5.3, Fat: 1.1, Carbs: 25.1},
		FiberG:    3.2,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostLow,
	},

	// Vegetables
	{
		Name:      "Baby Spinach (fresh)",
		Category:  models.CategoryVegetable,
		Per100g:   models.NutrientProfile{Calories: 23, Protein: 2.9, Fat: 0.4, Carbs: 3.6},
		FiberG:    2.2,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostLow,
	},
	{
		Name:      "Curly Kale (fresh)",
		Category:  models.CategoryVegetable,
		Per100g:   models.NutrientProfile{Calories: 35, Protein: 2.9, Fat: 0.4, Carbs: 8.8},
		FiberG:    3.6,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostLow,
	},
	{
		Name:      "Wild Arugula",
		Category:  models.CategoryVegetable,
		Per100g:   models.NutrientProfile{Calories: 25, Protein: 2.6, Fat: 0.7, Carbs: 3.7},
		FiberG:    1.6,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostMedium,
	},
	{
		Name:      "Organic Broccoli (steamed)",
		Category:  models.CategoryVegetable,
		Per100g:   models.NutrientProfile{Calories: 35, Protein: 2.8, Fat: 0.4, Carbs: 7.0},
		FiberG:    2.6,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostLow,
	},
	{
		Name:      "Roasted Cauliflower",
		Category:  models.CategoryVegetable,
		Per100g:   models.NutrientProfile{Calories: 25, Protein: 1.9, Fat: 0.3, Carbs: 5.0},
		FiberG:    2.0,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostLow,
	},
	{
		Name:      "Brussels Sprouts (roasted)",
		Category:  models.CategoryVegetable,
		Per100g:   models.NutrientProfile{Calories: 43, Protein: 3.4, Fat: 0.3, Carbs: 8.9},
		FiberG:    3.8,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostMedium,
	},
	{
		Name:      "Rainbow Carrots (raw)",
		Category:  models.CategoryVegetable,
		Per100g:   models.NutrientProfile{Calories: 41, Protein: 0.9, Fat: 0.2, Carbs: 9.6},
		FiberG:    2.8,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostLow,
	},
	{
		Name:      "Golden Beets (roasted)",
		Category:  models.CategoryVegetable,
		Per100g:   models.NutrientProfile{Calories: 44, Protein: 1.6, Fat: 0.2, Carbs: 10.0},
		FiberG:    2.0,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostMedium,
	},
	{
		Name:      "Rainbow Bell Peppers",
		Category:  models.CategoryVegetable,
		Per100g:   models.NutrientProfile{Calories: 31, Protein: 1.0, Fat: 0.3, Carbs: 7.3},
		FiberG:    2.5,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostMedium,
	},
	{
		Name:      "Spiralized Zucchini (zoodles)",
		Category:  models.CategoryVegetable,
		Per100g:   models.NutrientProfile{Calories: 17, Protein: 1.2, Fat: 0.3, Carbs: 3.1},
		FiberG:    1.0,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostLow,
	},

	// Fruits
	{
		Name:      "Organic Mixed Berries",
		Category:  models.CategoryFruit,
		Per100g:   models.NutrientProfile{Calories: 57, Protein: 0.7, Fat: 0.3, Carbs: 14.5},
		FiberG:    2.4,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostHigh,
	},
	{
		Name:      "Hass Avocado",
		Category:  models.CategoryFruit,
		Per100g:   models.NutrientProfile{Calories: 160, Protein: 2.0, Fat: 14.7, Carbs: 8.5},
		FiberG:    6.7,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostMedium,
	},
	{
		Name:      "Honeycrisp Apple",
		Category:  models.CategoryFruit,
		Per100g:   models.NutrientProfile{Calories: 52, Protein: 0.3, Fat: 0.2, Carbs: 13.8},
		FiberG:    2.4,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostLow,
	},
	{
		Name:      "Organic Banana",
		Category:  models.CategoryFruit,
		Per100g:   models.NutrientProfile{Calories: 89, Protein: 1.1, Fat: 0.3, Carbs: 22.8},
		FiberG:    2.6,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostLow,
	},

	// Fats
	{
		Name:      "Extra Virgin Olive Oil",
		Category:  models.CategoryFat,
		Per100g:   models.NutrientProfile{Calories: 884, Protein: 0.0, Fat: 100.0, Carbs: 0.0},
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostMedium,
	},
	{
		Name:      "Raw Almonds",
		Category:  models.CategoryFat,
		Per100g:   models.NutrientProfile{Calories: 579, Protein: 21.2, Fat: 49.9, Carbs: 21.6},
		FiberG:    12.5,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostHigh,
	},
	{
		Name:      "Walnut Halves",
		Category:  models.CategoryFat,
		Per100g:   models.NutrientProfile{Calories: 654, Protein: 15.2, Fat: 65.2, Carbs: 13.7},
		FiberG:    6.7,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostHigh,
	},
	{
		Name:      "Organic Chia Seeds",
		Category:  models.CategoryFat,
		Per100g:   models.NutrientProfile{Calories: 486, Protein: 16.5, Fat: 30.7, Carbs: 42.1},
		FiberG:    34.4,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostMedium,
	},

	// Complete meals
	{
		Name:      "Mediterranean Chickpea Salad",
		Category:  models.CategoryCompleteMeal,
		Per100g:   models.NutrientProfile{Calories: 152, Protein: 6.2, Fat: 8.1, Carbs: 16.8},
		FiberG:    4.2,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostMedium,
	},
	{
		Name:      "Quinoa Power Bowl",
		Category:  models.CategoryCompleteMeal,
		Per100g:   models.NutrientProfile{Calories: 180, Protein: 8.5, Fat: 6.2, Carbs: 24.3},
		FiberG:    5.1,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostMedium,
	},
	{
		Name:      "Grilled Salmon with Roasted Vegetables",
		Category:  models.CategoryCompleteMeal,
		Per100g:   models.NutrientProfile{Calories: 145, Protein: 18.2, Fat: 6.8, Carbs: 5.2},
		FiberG:    2.1,
		Tags:      []models.DietTag{models.TagNonVeg, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostHigh,
	},
	{
		Name:      "Hearty Lentil Vegetable Soup",
		Category:  models.CategoryCompleteMeal,
		Per100g:   models.NutrientProfile{Calories: 95, Protein: 6.8, Fat: 0.8, Carbs: 16.2},
		FiberG:    6.2,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostLow,
	},
	{
		Name:      "Asian Tofu Vegetable Stir Fry",
		Category:  models.CategoryCompleteMeal,
		Per100g:   models.NutrientProfile{Calories: 112, Protein: 8.9, Fat: 6.2, Carbs: 8.1},
		FiberG:    2.8,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostLow,
	},

	// Snacks and beverages
	{
		Name:      "Green Smoothie (spinach, banana, berries)",
		Category:  models.CategoryBeverage,
		Per100g:   models.NutrientProfile{Calories: 65, Protein: 2.1, Fat: 0.5, Carbs: 14.8},
		FiberG:    2.8,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostMedium,
	},
	{
		Name:      "Classic Hummus",
		Category:  models.CategorySnack,
		Per100g:   models.NutrientProfile{Calories: 166, Protein: 8.0, Fat: 9.6, Carbs: 14.3},
		FiberG:    6.0,
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan, models.TagHalal, models.TagLactoseFree},
		CostLevel: models.CostLow,
	},
	{
		Name:      "Post-Workout Protein Smoothie",
		Category:  models.CategoryBeverage,
		Per100g:   models.NutrientProfile{Calories: 95, Protein: 12.5, Fat: 1.2, Carbs: 8.8},
		FiberG:    1.5,
		Tags:      []models.DietTag{models.TagVeg, models.TagHalal},
		CostLevel: models.CostMedium,
	},
}
