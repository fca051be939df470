package catalog

import (
	"fmt"

	"pawbody/internal/model"
)

// Validate checks catalog authoring invariants: option values are unique
// within a question, every option has a score in [0,100], and recommendation
// keys are a subset of option values. SubKeys must be unique per category.
func Validate(questions []model.Question) error {
	seen := make(map[model.Category]map[string]bool)
	for _, q := range questions {
		if q.SubKey == "" {
			return fmt.Errorf("question %q in %s has no subKey", q.Text, q.Category)
		}
		if seen[q.Category] == nil {
			seen[q.Category] = make(map[string]bool)
		}
		if seen[q.Category][q.SubKey] {
			return fmt.Errorf("duplicate subKey %q in category %s", q.SubKey, q.Category)
		}
		seen[q.Category][q.SubKey] = true

		if len(q.Options) == 0 {
			return fmt.Errorf("%s/%s has no options", q.Category, q.SubKey)
		}
		values := make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			if values[opt.Value] {
				return fmt.Errorf("%s/%s has duplicate option value %q", q.Category, q.SubKey, opt.Value)
			}
			values[opt.Value] = true

			score, ok := q.Scores[opt.Value]
			if !ok {
				return fmt.Errorf("%s/%s option %q has no score", q.Category, q.SubKey, opt.Value)
			}
			if score < 0 || score > 100 {
				return fmt.Errorf("%s/%s option %q score %d out of range", q.Category, q.SubKey, opt.Value, score)
			}
		}
		for v := range q.Recommendations {
			if !values[v] {
				return fmt.Errorf("%s/%s recommendation key %q is not an option", q.Category, q.SubKey, v)
			}
		}
	}
	return nil
}
