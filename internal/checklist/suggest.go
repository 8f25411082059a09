package checklist

// Templates are the default packing suggestions per category.
var Templates = map[Category][]string{
	CategoryClothing:    {"T-shirts", "Pants", "Underwear", "Socks", "Jacket", "Comfortable shoes", "Sleepwear", "Swimsuit"},
	CategoryToiletries:  {"Toothbrush", "Toothpaste", "Shampoo", "Deodorant", "Sunscreen", "Medications"},
	CategoryDocuments:   {"Passport", "Visa", "Travel insurance", "Boarding pass", "Hotel confirmation", "ID card"},
	CategoryElectronics: {"Phone charger", "Power bank", "Travel adapter", "Headphones", "Camera"},
	CategoryOther:       {"Reusable water bottle", "Snacks", "Umbrella"},
}
