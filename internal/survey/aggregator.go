package survey

import (
	"log"
	"math"
	"time"

	"pawbody/internal/model"
)

// warningThreshold splits triggered advisory text: option scores below it are
// warnings, the rest recommendations. Matches the concern band boundary.
const warningThreshold = 40

const dateLayout = "2006-01-02"

// Aggregate turns a completed answer set into an InBodyReport. The question
// list must be the exact ordered list the selector produced for this session;
// aggregation never re-derives or re-randomizes it.
//
// Every selected question must have an answer, otherwise an
// *IncompleteSurveyError is returned and no report is produced.
func Aggregate(questions []model.Question, answers *model.Answers, now time.Time) (*model.InBodyReport, error) {
	if missing := missingAnswers(questions, answers); len(missing) > 0 {
		return nil, &IncompleteSurveyError{Missing: missing}
	}

	type bucket struct {
		sum   int
		count int
	}
	buckets := make(map[model.Category]*bucket)
	var warnings, recommendations []string

	for _, q := range questions {
		value, _ := answers.Get(q.Category, q.SubKey)
		score, ok := q.Scores[value]
		if !ok {
			// Catalog authoring bug: the chosen option has no score entry.
			// Score 0 keeps the flow alive; the catalog validator catches
			// this before it ships.
			log.Printf("survey: no score for %s/%s value %q, defaulting to 0", q.Category, q.SubKey, value)
			score = 0
		}

		b := buckets[q.Category]
		if b == nil {
			b = &bucket{}
			buckets[q.Category] = b
		}
		b.sum += score
		b.count++

		if text, ok := q.Recommendations[value]; ok {
			if score < warningThreshold {
				warnings = append(warnings, text)
			} else {
				recommendations = append(recommendations, text)
			}
		}
	}

	scores := make(map[model.Category]int, len(buckets))
	total, categories := 0, 0
	for _, cat := range model.AllCategories() {
		b, ok := buckets[cat]
		if !ok {
			// Categories with no contributing question are omitted, not
			// treated as zero.
			continue
		}
		scores[cat] = roundHalfUp(b.sum, b.count)
		total += scores[cat]
		categories++
	}

	overall := roundHalfUp(total, categories)
	band := Band(overall)

	return &model.InBodyReport{
		Date:            now.Format(dateLayout),
		Plan:            answers.Plan,
		OverallScore:    overall,
		Band:            band,
		Scores:          scores,
		Summary:         summaryFor(band),
		Warnings:        warnings,
		Recommendations: recommendations,
	}, nil
}

// Band maps a score onto its qualitative tier: >70 good, 41-70 caution,
// <=40 concern.
func Band(score int) model.Band {
	switch {
	case score > 70:
		return model.BandGood
	case score > 40:
		return model.BandCaution
	default:
		return model.BandConcern
	}
}

func summaryFor(band model.Band) string {
	switch band {
	case model.BandGood:
		return "Overall condition looks good. Keep up the current routine."
	case model.BandCaution:
		return "A few areas need attention. Review the recommendations below."
	default:
		return "Several answers point at possible health issues. A vet visit is advised."
	}
}

func missingAnswers(questions []model.Question, answers *model.Answers) []QuestionRef {
	var missing []QuestionRef
	for _, q := range questions {
		if answers == nil {
			missing = append(missing, QuestionRef{Category: q.Category, SubKey: q.SubKey})
			continue
		}
		if _, ok := answers.Get(q.Category, q.SubKey); !ok {
			missing = append(missing, QuestionRef{Category: q.Category, SubKey: q.SubKey})
		}
	}
	return missing
}

// roundHalfUp is the standard round-half-up integer mean.
func roundHalfUp(sum, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Floor(float64(sum)/float64(count) + 0.5))
}
