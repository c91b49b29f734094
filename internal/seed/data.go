package seed

// entry is one conversion row of the starter database. Count units carry
// singular/plural forms and leave the plain unit blank.
type entry struct {
	name         string
	category     string
	fromAmount   float64
	fromUnit     string
	fromSingular string
	fromPlural   string
	toAmount     float64
	toUnit       string
}

// entries is the curated starter database: the essential baking and cooking
// ingredients with cup/tablespoon/teaspoon/piece weights in grams. The
// numbers follow common published ingredient weight charts and are meant to
// be reviewed before shipping, which is why the emitted spreadsheet carries
// Verified and Notes columns.
var entries = []entry{
	// Flours
	{"All-purpose flour", "Flour", 1, "cup", "", "", 120, "gram"},
	{"All-purpose flour", "Flour", 1, "tablespoon", "", "", 8, "gram"},
	{"Bread flour", "Flour", 1, "cup", "", "", 127, "gram"},
	{"Cake flour", "Flour", 1, "cup", "", "", 114, "gram"},
	{"Whole wheat flour", "Flour", 1, "cup", "", "", 120, "gram"},
	{"Self-rising flour", "Flour", 1, "cup", "", "", 125, "gram"},
	{"Almond flour", "Flour", 1, "cup", "", "", 96, "gram"},
	{"Coconut flour", "Flour", 1, "cup", "", "", 112, "gram"},
	{"Rice flour", "Flour", 1, "cup", "", "", 158, "gram"},
	{"Cornmeal", "Flour", 1, "cup", "", "", 138, "gram"},

	// Sugars and sweeteners
	{"Granulated sugar", "Sugar", 1, "cup", "", "", 200, "gram"},
	{"Granulated sugar", "Sugar", 1, "tablespoon", "", "", 12.5, "gram"},
	{"Granulated sugar", "Sugar", 1, "teaspoon", "", "", 4, "gram"},
	{"Brown sugar, packed", "Sugar", 1, "cup", "", "", 220, "gram"},
	{"Brown sugar, packed", "Sugar", 1, "tablespoon", "", "", 14, "gram"},
	{"Powdered sugar", "Sugar", 1, "cup", "", "", 120, "gram"},
	{"Powdered sugar", "Sugar", 1, "tablespoon", "", "", 8, "gram"},
	{"Honey", "Sugar", 1, "cup", "", "", 340, "gram"},
	{"Honey", "Sugar", 1, "tablespoon", "", "", 21, "gram"},
	{"Maple syrup", "Sugar", 1, "cup", "", "", 322, "gram"},
	{"Maple syrup", "Sugar", 1, "tablespoon", "", "", 20, "gram"},
	{"Corn syrup", "Sugar", 1, "cup", "", "", 328, "gram"},
	{"Molasses", "Sugar", 1, "cup", "", "", 337, "gram"},
	{"Molasses", "Sugar", 1, "tablespoon", "", "", 21, "gram"},

	// Fats
	{"Butter", "Fat", 1, "cup", "", "", 227, "gram"},
	{"Butter", "Fat", 1, "tablespoon", "", "", 14, "gram"},
	{"Butter", "Fat", 1, "teaspoon", "", "", 5, "gram"},
	{"Butter", "Fat", 1, "", "stick", "sticks", 113, "gram"},
	{"Vegetable oil", "Fat", 1, "cup", "", "", 218, "gram"},
	{"Vegetable oil", "Fat", 1, "tablespoon", "", "", 14, "gram"},
	{"Olive oil", "Fat", 1, "cup", "", "", 216, "gram"},
	{"Olive oil", "Fat", 1, "tablespoon", "", "", 14, "gram"},
	{"Coconut oil", "Fat", 1, "cup", "", "", 218, "gram"},
	{"Shortening", "Fat", 1, "cup", "", "", 191, "gram"},
	{"Lard", "Fat", 1, "cup", "", "", 205, "gram"},

	// Dairy
	{"Whole milk", "Dairy", 1, "cup", "", "", 244, "gram"},
	{"Whole milk", "Dairy", 1, "tablespoon", "", "", 15, "gram"},
	{"Heavy cream", "Dairy", 1, "cup", "", "", 238, "gram"},
	{"Heavy cream", "Dairy", 1, "tablespoon", "", "", 15, "gram"},
	{"Sour cream", "Dairy", 1, "cup", "", "", 230, "gram"},
	{"Plain yogurt", "Dairy", 1, "cup", "", "", 245, "gram"},
	{"Greek yogurt", "Dairy", 1, "cup", "", "", 280, "gram"},
	{"Buttermilk", "Dairy", 1, "cup", "", "", 245, "gram"},
	{"Cream cheese", "Dairy", 1, "cup", "", "", 232, "gram"},
	{"Cream cheese", "Dairy", 1, "tablespoon", "", "", 14.5, "gram"},
	{"Ricotta cheese", "Dairy", 1, "cup", "", "", 246, "gram"},
	{"Grated parmesan", "Dairy", 1, "cup", "", "", 100, "gram"},
	{"Shredded cheddar", "Dairy", 1, "cup", "", "", 113, "gram"},
	{"Shredded mozzarella", "Dairy", 1, "cup", "", "", 112, "gram"},

	// Baking essentials
	{"Baking powder", "Baking", 1, "tablespoon", "", "", 14, "gram"},
	{"Baking powder", "Baking", 1, "teaspoon", "", "", 5, "gram"},
	{"Baking soda", "Baking", 1, "tablespoon", "", "", 18, "gram"},
	{"Baking soda", "Baking", 1, "teaspoon", "", "", 6, "gram"},
	{"Active dry yeast", "Baking", 1, "tablespoon", "", "", 9, "gram"},
	{"Cornstarch", "Baking", 1, "cup", "", "", 128, "gram"},
	{"Cornstarch", "Baking", 1, "tablespoon", "", "", 8, "gram"},
	{"Vanilla extract", "Baking", 1, "teaspoon", "", "", 4, "gram"},
	{"Cream of tartar", "Baking", 1, "teaspoon", "", "", 3, "gram"},
	{"Powdered gelatin", "Baking", 1, "tablespoon", "", "", 10, "gram"},

	// Chocolate and cocoa
	{"Cocoa powder", "Chocolate", 1, "cup", "", "", 100, "gram"},
	{"Cocoa powder", "Chocolate", 1, "tablespoon", "", "", 6, "gram"},
	{"Chocolate chips", "Chocolate", 1, "cup", "", "", 170, "gram"},
	{"Chopped chocolate", "Chocolate", 1, "cup", "", "", 150, "gram"},

	// Nuts and seeds
	{"Whole almonds", "Nut", 1, "cup", "", "", 143, "gram"},
	{"Sliced almonds", "Nut", 1, "cup", "", "", 92, "gram"},
	{"Chopped walnuts", "Nut", 1, "cup", "", "", 120, "gram"},
	{"Walnut halves", "Nut", 1, "cup", "", "", 100, "gram"},
	{"Chopped pecans", "Nut", 1, "cup", "", "", 120, "gram"},
	{"Cashews", "Nut", 1, "cup", "", "", 130, "gram"},
	{"Peanuts", "Nut", 1, "cup", "", "", 146, "gram"},
	{"Peanut butter", "Nut", 1, "cup", "", "", 258, "gram"},
	{"Peanut butter", "Nut", 1, "tablespoon", "", "", 16, "gram"},
	{"Sunflower seeds", "Nut", 1, "cup", "", "", 140, "gram"},

	// Grains and pasta
	{"White rice, uncooked", "Grain", 1, "cup", "", "", 185, "gram"},
	{"Brown rice, uncooked", "Grain", 1, "cup", "", "", 190, "gram"},
	{"Rolled oats", "Grain", 1, "cup", "", "", 90, "gram"},
	{"Quinoa, uncooked", "Grain", 1, "cup", "", "", 170, "gram"},
	{"Dry breadcrumbs", "Grain", 1, "cup", "", "", 108, "gram"},
	{"Fresh breadcrumbs", "Grain", 1, "cup", "", "", 45, "gram"},
	{"Panko breadcrumbs", "Grain", 1, "cup", "", "", 50, "gram"},

	// Dried fruits
	{"Raisins", "Dried Fruit", 1, "cup", "", "", 165, "gram"},
	{"Chopped dates", "Dried Fruit", 1, "cup", "", "", 147, "gram"},
	{"Dried cranberries", "Dried Fruit", 1, "cup", "", "", 120, "gram"},
	{"Dried apricots", "Dried Fruit", 1, "cup", "", "", 130, "gram"},

	// Vegetables
	{"Chopped onion", "Vegetable", 1, "cup", "", "", 160, "gram"},
	{"Minced garlic", "Vegetable", 1, "tablespoon", "", "", 10, "gram"},
	{"Garlic", "Vegetable", 1, "", "clove", "cloves", 3, "gram"},
	{"Chopped tomato", "Vegetable", 1, "cup", "", "", 180, "gram"},
	{"Diced potato", "Vegetable", 1, "cup", "", "", 150, "gram"},
	{"Chopped carrot", "Vegetable", 1, "cup", "", "", 128, "gram"},
	{"Chopped bell pepper", "Vegetable", 1, "cup", "", "", 149, "gram"},
	{"Sliced mushrooms", "Vegetable", 1, "cup", "", "", 70, "gram"},
	{"Fresh spinach", "Vegetable", 1, "cup", "", "", 30, "gram"},

	// Fresh fruits
	{"Medium apple", "Fruit", 1, "", "apple", "apples", 182, "gram"},
	{"Medium banana", "Fruit", 1, "", "banana", "bananas", 118, "gram"},
	{"Medium lemon", "Fruit", 1, "", "lemon", "lemons", 58, "gram"},
	{"Blueberries", "Fruit", 1, "cup", "", "", 148, "gram"},
	{"Sliced strawberries", "Fruit", 1, "cup", "", "", 166, "gram"},

	// Spices
	{"Table salt", "Spice", 1, "teaspoon", "", "", 6, "gram"},
	{"Kosher salt", "Spice", 1, "teaspoon", "", "", 5, "gram"},
	{"Ground black pepper", "Spice", 1, "teaspoon", "", "", 2, "gram"},
	{"Ground cinnamon", "Spice", 1, "teaspoon", "", "", 3, "gram"},
	{"Ground ginger", "Spice", 1, "teaspoon", "", "", 2, "gram"},
	{"Ground cumin", "Spice", 1, "teaspoon", "", "", 2, "gram"},
	{"Paprika", "Spice", 1, "teaspoon", "", "", 2, "gram"},
	{"Garlic powder", "Spice", 1, "teaspoon", "", "", 3, "gram"},
	{"Onion powder", "Spice", 1, "teaspoon", "", "", 2, "gram"},
	{"Chili powder", "Spice", 1, "teaspoon", "", "", 3, "gram"},

	// Eggs
	{"Large egg, whole", "Egg", 1, "", "egg", "eggs", 50, "gram"},
	{"Medium egg, whole", "Egg", 1, "", "egg", "eggs", 44, "gram"},
	{"Extra large egg, whole", "Egg", 1, "", "egg", "eggs", 56, "gram"},
	{"Large egg white", "Egg", 1, "", "white", "whites", 33, "gram"},
	{"Large egg yolk", "Egg", 1, "", "yolk", "yolks", 17, "gram"},

	// Miscellaneous
	{"Water", "Other", 1, "cup", "", "", 237, "gram"},
	{"Graham crackers", "Other", 8, "", "cracker", "crackers", 28, "gram"},
	{"Crushed graham crackers", "Other", 1, "cup", "", "", 84, "gram"},
}
