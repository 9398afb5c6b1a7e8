package extract

// foodLexicon is the fixed set of food words the part-of-speech pass is
// allowed to promote to ingredient candidates. Multi-word ingredients are
// written with underscores, matching the command syntax help text.
var foodLexicon = map[string]struct{}{}

func init() {
	words := []string{
		// proteins
		"chicken", "beef", "pork", "lamb", "turkey", "duck", "bacon", "ham",
		"sausage", "fish", "salmon", "tuna", "cod", "shrimp", "prawns", "crab",
		"tofu", "tempeh", "eggs", "egg",
		// grains and starches
		"rice", "pasta", "noodles", "spaghetti", "bread", "tortilla", "quinoa",
		"oats", "oatmeal", "couscous", "barley", "flour", "potatoes", "potato",
		"fries",
		// legumes
		"beans", "lentils", "chickpeas", "peas",
		// vegetables
		"vegetables", "broccoli", "spinach", "kale", "lettuce", "cabbage",
		"carrots", "carrot", "onion", "onions", "garlic", "ginger", "tomato",
		"tomatoes", "pepper", "peppers", "mushroom", "mushrooms", "zucchini",
		"eggplant", "cucumber", "celery", "corn", "cauliflower", "asparagus",
		"avocado",
		// fruit
		"apple", "apples", "banana", "bananas", "orange", "oranges", "lemon",
		"lime", "berries", "strawberries", "blueberries", "mango", "pineapple",
		// dairy
		"milk", "cheese", "butter", "cream", "yogurt", "mozzarella", "parmesan",
		"cheddar", "feta",
		// pantry
		"oil", "olive_oil", "vinegar", "soy_sauce", "salt", "sugar", "honey",
		"basil", "oregano", "cilantro", "parsley", "cumin", "paprika", "curry",
		"chili", "salsa", "hummus", "mayonnaise", "mustard", "ketchup",
		// prepared
		"soup", "salad", "stew", "pizza", "tacos", "burrito", "sandwich",
		"burger", "sushi", "pancakes", "waffles",
	}
	for _, w := range words {
		foodLexicon[w] = struct{}{}
	}
}
