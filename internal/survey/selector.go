package survey

import (
	"math/rand"
	"time"

	"pawbody/internal/model"
)

// PremiumTarget is the number of questions a premium survey aims for. The
// result is shorter only when the catalog cannot supply that many.
const PremiumTarget = 20

// Selector produces the ordered question list for one survey session.
type Selector struct {
	rng *rand.Rand
}

// NewSelector builds a selector around the given PRNG. Pass nil for a
// time-seeded source; tests pass a fixed seed.
func NewSelector(rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rng: rng}
}

// Select returns the questions for a session. Free plan: one random question
// per free category, in fixed category order. Premium plan: one random
// question per category (coverage guarantee), topped up from the shuffled
// remainder to PremiumTarget, then shuffled again so the guaranteed picks are
// not clustered at the front.
//
// A category with no questions in the pool is skipped. An empty result is
// returned as an empty slice; the caller decides how to surface that.
func (s *Selector) Select(plan model.Plan, pool []model.Question) []model.Question {
	if plan == model.PlanPremium {
		return s.selectPremium(pool)
	}
	return s.selectFree(pool)
}

func (s *Selector) selectFree(pool []model.Question) []model.Question {
	byCategory := groupByCategory(pool)
	result := make([]model.Question, 0, len(model.FreeCategories()))
	for _, cat := range model.FreeCategories() {
		qs := byCategory[cat]
		if len(qs) == 0 {
			continue
		}
		result = append(result, qs[s.rng.Intn(len(qs))])
	}
	return result
}

func (s *Selector) selectPremium(pool []model.Question) []model.Question {
	remaining := make([]model.Question, len(pool))
	copy(remaining, pool)

	// One question per category, removed from the pool as drawn.
	guaranteed := make([]model.Question, 0, len(model.AllCategories()))
	for _, cat := range model.AllCategories() {
		idxs := indexesOf(remaining, cat)
		if len(idxs) == 0 {
			continue
		}
		pick := idxs[s.rng.Intn(len(idxs))]
		guaranteed = append(guaranteed, remaining[pick])
		remaining = append(remaining[:pick], remaining[pick+1:]...)
	}

	// Fisher-Yates over the remainder, then top up to the target.
	s.rng.Shuffle(len(remaining), func(i, j int) {
		remaining[i], remaining[j] = remaining[j], remaining[i]
	})

	result := guaranteed
	for _, q := range remaining {
		if len(result) >= PremiumTarget {
			break
		}
		result = append(result, q)
	}

	// Final shuffle so guaranteed picks are interleaved.
	s.rng.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})
	return result
}

func groupByCategory(pool []model.Question) map[model.Category][]model.Question {
	grouped := make(map[model.Category][]model.Question)
	for _, q := range pool {
		grouped[q.Category] = append(grouped[q.Category], q)
	}
	return grouped
}

func indexesOf(pool []model.Question, cat model.Category) []int {
	var idxs []int
	for i, q := range pool {
		if q.Category == cat {
			idxs = append(idxs, i)
		}
	}
	return idxs
}
