package rating

// Category is one of the three fixed axes an entry is rated on.
type Category string

const (
	CategoryTaste      Category = "TASTE"
	CategoryAppearance Category = "APPEARANCE"
	CategoryNutrition  Category = "NUTRITION"
)

// MinRatingValue is the lowest value the rating form offers in any category.
const MinRatingValue = 1

// maxima per category; taste weighs the most
var categoryMaxValue = map[Category]int{
	CategoryTaste:      5,
	CategoryAppearance: 3,
	CategoryNutrition:  2,
}

// MaxValue returns the maximum allowed value for the category and
// whether the category is known at all.
func (c Category) MaxValue() (int, bool) {
	max, ok := categoryMaxValue[c]
	return max, ok
}

func validateRating(category Category, value int) error {
	max, ok := category.MaxValue()
	if !ok {
		return newErrUnknownCategory(string(category))
	}
	if value < MinRatingValue || value > max {
		return newErrValueOutOfRange(string(category), MinRatingValue, max)
	}
	return nil
}
