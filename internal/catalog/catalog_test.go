package catalog

import (
	"testing"

	"pawbody/internal/model"
)

func TestShippedCatalogIsValid(t *testing.T) {
	if err := Validate(Questions()); err != nil {
		t.Fatalf("shipped catalog invalid: %v", err)
	}
}

func TestShippedCatalogCoverage(t *testing.T) {
	questions := Questions()
	byCategory := make(map[model.Category]int)
	for _, q := range questions {
		byCategory[q.Category]++
	}
	for _, cat := range model.AllCategories() {
		if byCategory[cat] == 0 {
			t.Fatalf("category %s has no questions", cat)
		}
	}
	if len(questions) < 20 {
		t.Fatalf("catalog has %d questions, premium surveys need 20", len(questions))
	}
}

func TestValidateRejectsBadCatalogs(t *testing.T) {
	base := model.Question{
		Category: model.CategoryDiet,
		SubKey:   "appetite",
		Text:     "q",
		Options:  []model.Option{{Value: "a", Text: "a"}},
		Scores:   map[string]int{"a": 50},
	}

	cases := []struct {
		name   string
		mutate func(q *model.Question)
	}{
		{"missing score", func(q *model.Question) { q.Scores = map[string]int{} }},
		{"score out of range", func(q *model.Question) { q.Scores = map[string]int{"a": 101} }},
		{"orphan recommendation", func(q *model.Question) { q.Recommendations = map[string]string{"zzz": "advice"} }},
		{"no options", func(q *model.Question) { q.Options = nil }},
		{"empty subKey", func(q *model.Question) { q.SubKey = "" }},
		{"duplicate option value", func(q *model.Question) {
			q.Options = append(q.Options, model.Option{Value: "a", Text: "again"})
		}},
	}
	for _, c := range cases {
		q := base
		c.mutate(&q)
		if err := Validate([]model.Question{q}); err == nil {
			t.Fatalf("%s: Validate accepted a broken catalog", c.name)
		}
	}

	dup := base
	if err := Validate([]model.Question{base, dup}); err == nil {
		t.Fatalf("duplicate subKey accepted")
	}
}
