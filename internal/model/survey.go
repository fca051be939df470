package model

import "time"

// Answers collects one chosen option value per selected question, keyed by
// category then subKey. Built incrementally while the owner works through a
// session; complete only when every selected question has an entry.
type Answers struct {
	Plan   Plan                           `json:"plan"`
	Values map[Category]map[string]string `json:"values"` // category -> subKey -> option value
}

// NewAnswers returns an empty answer set for the given plan.
func NewAnswers(plan Plan) *Answers {
	return &Answers{
		Plan:   plan,
		Values: make(map[Category]map[string]string),
	}
}

// Set records the chosen option value for (category, subKey).
func (a *Answers) Set(category Category, subKey, value string) {
	if a.Values == nil {
		a.Values = make(map[Category]map[string]string)
	}
	if a.Values[category] == nil {
		a.Values[category] = make(map[string]string)
	}
	a.Values[category][subKey] = value
}

// Get returns the chosen option value for (category, subKey).
func (a *Answers) Get(category Category, subKey string) (string, bool) {
	if a.Values == nil {
		return "", false
	}
	v, ok := a.Values[category][subKey]
	return v, ok
}

// SurveySession is the Redis-held state of an in-progress survey: the exact
// question list the selector produced, the partial answers, and a cursor.
type SurveySession struct {
	ID        string     `json:"id"`
	PetID     string     `json:"petId"`
	Plan      Plan       `json:"plan"`
	Questions []Question `json:"questions"`
	Answers   *Answers   `json:"answers"`
	Cursor    int        `json:"cursor"`
	StartedAt time.Time  `json:"startedAt"`
}

// Current returns the question the cursor points at, or nil past the end.
func (s *SurveySession) Current() *Question {
	if s.Cursor < 0 || s.Cursor >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Cursor]
}

// Done reports whether every question has been passed.
func (s *SurveySession) Done() bool {
	return s.Cursor >= len(s.Questions)
}
