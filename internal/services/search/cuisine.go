package search

// cuisineLabels maps upstream place categories to display cuisine tags.
var cuisineLabels = map[string]string{
	"american_restaurant":       "American",
	"bakery":                    "Bakery",
	"bar":                       "Bar",
	"barbecue_restaurant":       "Barbecue",
	"brazilian_restaurant":      "Brazilian",
	"breakfast_restaurant":      "Breakfast",
	"brunch_restaurant":         "Brunch",
	"cafe":                      "Cafe",
	"chinese_restaurant":        "Chinese",
	"fast_food_restaurant":      "Fast Food",
	"french_restaurant":         "French",
	"greek_restaurant":          "Greek",
	"hamburger_restaurant":      "Burgers",
	"indian_restaurant":         "Indian",
	"indonesian_restaurant":     "Indonesian",
	"italian_restaurant":        "Italian",
	"japanese_restaurant":       "Japanese",
	"korean_restaurant":         "Korean",
	"lebanese_restaurant":       "Lebanese",
	"meal_delivery":             "Delivery",
	"meal_takeaway":             "Takeaway",
	"mediterranean_restaurant":  "Mediterranean",
	"mexican_restaurant":        "Mexican",
	"middle_eastern_restaurant": "Middle Eastern",
	"pizza_restaurant":          "Pizza",
	"ramen_restaurant":          "Ramen",
	"sandwich_shop":             "Sandwiches",
	"seafood_restaurant":        "Seafood",
	"spanish_restaurant":        "Spanish",
	"steak_house":               "Steakhouse",
	"sushi_restaurant":          "Sushi",
	"thai_restaurant":           "Thai",
	"turkish_restaurant":        "Turkish",
	"vegan_restaurant":          "Vegan",
	"vegetarian_restaurant":     "Vegetarian",
	"vietnamese_restaurant":     "Vietnamese",
}

// genericTypes are categories that mark a place as a restaurant without
// implying a cuisine.
var genericTypes = map[string]bool{
	"restaurant":        true,
	"food":              true,
	"point_of_interest": true,
	"establishment":     true,
}

// deriveCuisineTags maps upstream categories to cuisine tags, preserving
// upstream order. A place with only generic categories gets a single
// "Restaurant" tag; a place with no recognizable category gets none.
func deriveCuisineTags(types []string) []string {
	var tags []string
	seen := make(map[string]bool)
	generic := false

	for _, t := range types {
		if label, ok := cuisineLabels[t]; ok {
			if !seen[label] {
				seen[label] = true
				tags = append(tags, label)
			}
			continue
		}
		if genericTypes[t] {
			generic = true
		}
	}

	if len(tags) == 0 && generic {
		return []string{"Restaurant"}
	}
	return tags
}
