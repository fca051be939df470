package model

import "time"

// Band is the qualitative rating derived from a score
type Band string

const (
	BandGood    Band = "good"    // score > 70
	BandCaution Band = "caution" // 41-70
	BandConcern Band = "concern" // <= 40
)

// InBodyReport is the scored output of a completed survey. Warnings and
// Recommendations preserve question traversal order, duplicates allowed.
type InBodyReport struct {
	Date            string           `json:"date" bson:"date"` // YYYY-MM-DD
	Plan            Plan             `json:"plan" bson:"plan"`
	OverallScore    int              `json:"overallScore" bson:"overallScore"`
	Band            Band             `json:"band" bson:"band"`
	Scores          map[Category]int `json:"scores" bson:"scores"`
	Summary         string           `json:"summary" bson:"summary"`
	Warnings        []string         `json:"warnings" bson:"warnings"`
	Recommendations []string         `json:"recommendations" bson:"recommendations"`
}

// AIReportStatus tracks async generation progress
type AIReportStatus string

const (
	AIReportPending AIReportStatus = "pending"
	AIReportDone    AIReportStatus = "done"
	AIReportFailed  AIReportStatus = "failed"
)

// AIReport is the narrative report produced by the mock generator. It is a
// separate artifact from the answer-driven InBodyReport and is stored in its
// own collection.
type AIReport struct {
	ID          string         `json:"id" bson:"_id,omitempty"`
	PetID       string         `json:"petId" bson:"petId"`
	Status      AIReportStatus `json:"status" bson:"status"`
	Summary     string         `json:"summary,omitempty" bson:"summary,omitempty"`
	Advice      []string       `json:"advice,omitempty" bson:"advice,omitempty"`
	BasedOnDate string         `json:"basedOnDate,omitempty" bson:"basedOnDate,omitempty"` // InBody report date the narrative derives from
	CreatedAt   time.Time      `json:"createdAt" bson:"createdAt"`
	CompletedAt *time.Time     `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
}
