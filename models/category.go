package models

// Category is read-only reference data for grouping projects. The ID is a
// URL-safe slug ("web", "mobile", ...), not a surrogate key.
type Category struct {
	ID   string `json:"id" db:"id" gorm:"type:text;primaryKey;not null"`
	Name string `json:"name" db:"name" gorm:"type:text;not null"`
	Icon string `json:"icon" db:"icon" gorm:"type:text;not null;default:''"`
}

// FallbackCategories is the fixed six-category set served when the categories
// table has no rows yet.
func FallbackCategories() []Category {
	return []Category{
		{ID: "web", Name: "Web Development", Icon: "🌐"},
		{ID: "mobile", Name: "Mobile App", Icon: "📱"},
		{ID: "ai", Name: "AI & Machine Learning", Icon: "🤖"},
		{ID: "cloud", Name: "Cloud Solutions", Icon: "☁️"},
		{ID: "ecommerce", Name: "E-commerce", Icon: "🛒"},
		{ID: "enterprise", Name: "Enterprise Software", Icon: "🏢"},
	}
}

// CategoriesOrFallback substitutes the fallback set for an empty collection.
func CategoriesOrFallback(categories []Category) []Category {
	if len(categories) == 0 {
		return FallbackCategories()
	}
	return categories
}
