package model

// Category is a health dimension covered by the survey
type Category string

const (
	CategoryDiet     Category = "diet"
	CategoryEnergy   Category = "energy"
	CategoryStool    Category = "stool"
	CategoryBehavior Category = "behavior"
	CategoryJoints   Category = "joints"
	CategorySkin     Category = "skin"
)

// AllCategories returns every category in presentation order.
func AllCategories() []Category {
	return []Category{
		CategoryDiet,
		CategoryEnergy,
		CategoryStool,
		CategoryBehavior,
		CategoryJoints,
		CategorySkin,
	}
}

// FreeCategories returns the categories surveyed on the free plan, in the
// fixed order they are presented.
func FreeCategories() []Category {
	return []Category{
		CategoryDiet,
		CategoryEnergy,
		CategoryStool,
		CategoryBehavior,
	}
}

// Option is one selectable answer for a question
type Option struct {
	Value string `json:"value" bson:"value"`
	Text  string `json:"text" bson:"text"`
}

// Question is a catalog entry. Scores maps option values to a 0-100 score;
// Recommendations maps a subset of option values to advisory text.
type Question struct {
	ID              string            `json:"id" bson:"_id,omitempty"`
	Category        Category          `json:"category" bson:"category"`
	SubKey          string            `json:"subKey" bson:"subKey"` // answer field key, unique within a category
	Text            string            `json:"text" bson:"text"`
	Options         []Option          `json:"options" bson:"options"`
	Scores          map[string]int    `json:"scores" bson:"scores"`
	Recommendations map[string]string `json:"recommendations,omitempty" bson:"recommendations,omitempty"`
}

// HasOption reports whether value is one of the question's options.
func (q *Question) HasOption(value string) bool {
	for _, opt := range q.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}
