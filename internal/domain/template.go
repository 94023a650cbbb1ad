package domain

// Template is a named bundle pairing a display icon with a fixed list of
// starter item titles. Templates are not persisted — they exist only to
// bulk-seed a new category at packing-creation time.
type Template struct {
	Title string
	Icon  string
}

// DefaultTemplates returns the built-in templates, in display order.
func DefaultTemplates() []Template {
	return []Template{
		{Title: "Clothing", Icon: "tshirt"},
		{Title: "Documents", Icon: "doc"},
		{Title: "Toiletries", Icon: "toilet"},
		{Title: "Tech & Gadgets", Icon: "smartphone"},
		{Title: "Health & Safety", Icon: "pill"},
	}
}

// templateItems maps a template title to its fixed, ordered item titles.
var templateItems = map[string][]string{
	"Clothing": {
		"Shirts", "Pants", "Shorts", "Underwear", "Sweater",
		"Socks", "Sleepwear", "Hat", "Shoes", "Sandals",
	},
	"Documents": {
		"Passport", "Boarding Pass", "Flight Ticket", "Visa",
		"Travel Insurance", "Hotel Reservation", "Driver's License", "ID",
	},
	"Toiletries": {
		"Toothbrush", "Toothpaste", "Shampoo", "Conditioner", "Body Wash",
		"Deodorant", "Face Wash", "Perfume", "Sunscreen", "Comb",
	},
	"Tech & Gadgets": {
		"Smartphone", "Laptop", "Tablet", "Chargers", "Power Bank",
		"Headphones", "Camera", "Travel Adapter", "Portable Speaker", "Smartwatch",
	},
	"Health & Safety": {
		"First Aid Kit", "Prescription Medication", "Face Masks", "Hand Sanitizer",
		"Insect Repellent", "Antibacterial Wipes", "Band-Aids", "Pain Relievers",
	},
}

// TemplateItems returns the fixed item titles for the named template.
// An unknown name yields nil — callers treat that as "no template",
// not as an error.
func TemplateItems(name string) []string {
	titles, ok := templateItems[name]
	if !ok {
		return nil
	}
	out := make([]string, len(titles))
	copy(out, titles)
	return out
}

// TemplateByTitle returns the built-in template with the given title.
// The second return value is false for unknown titles.
func TemplateByTitle(name string) (Template, bool) {
	for _, t := range DefaultTemplates() {
		if t.Title == name {
			return t, true
		}
	}
	return Template{}, false
}
