package domain

// Category classifies a transaction. The set is closed: validation rejects
// anything outside it, and the UI selector offers exactly these labels.
type Category string

const (
	CategoryFoodDining     Category = "Food & Dining"
	CategoryShopping       Category = "Shopping"
	CategoryTransportation Category = "Transportation"
	CategoryEntertainment  Category = "Entertainment"
	CategoryBillsUtilities Category = "Bills & Utilities"
	CategoryHealthFitness  Category = "Health & Fitness"
	CategoryTravel         Category = "Travel"
	CategoryIncome         Category = "Income"
	CategoryOther          Category = "Other"
)

// Categories returns all categories in selector display order.
func Categories() []Category {
	return []Category{
		CategoryFoodDining,
		CategoryShopping,
		CategoryTransportation,
		CategoryEntertainment,
		CategoryBillsUtilities,
		CategoryHealthFitness,
		CategoryTravel,
		CategoryIncome,
		CategoryOther,
	}
}

// ParseCategory validates a raw label against the closed set.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	switch c {
	case CategoryFoodDining, CategoryShopping, CategoryTransportation,
		CategoryEntertainment, CategoryBillsUtilities, CategoryHealthFitness,
		CategoryTravel, CategoryIncome, CategoryOther:
		return c, nil
	}
	return "", ErrInvalidCategory
}

// Color returns the badge color classes the UI renders for the category.
func (c Category) Color() string {
	switch c {
	case CategoryFoodDining:
		return "bg-blue-100 text-blue-800"
	case CategoryShopping:
		return "bg-purple-100 text-purple-800"
	case CategoryTransportation:
		return "bg-indigo-100 text-indigo-800"
	case CategoryEntertainment:
		return "bg-pink-100 text-pink-800"
	case CategoryIncome:
		return "bg-green-100 text-green-800"
	case CategoryBillsUtilities, CategoryHealthFitness, CategoryTravel, CategoryOther:
		return "bg-gray-100 text-gray-800"
	default:
		return "bg-gray-100 text-gray-800"
	}
}
