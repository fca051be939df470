package model

import "time"

// Plan is the owner's subscription tier, gating survey depth
type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
)

// PetType is the species of a pet
type PetType string

const (
	PetTypeDog PetType = "dog"
	PetTypeCat PetType = "cat"
)

// MissionItem is a single daily-care mission
type MissionItem struct {
	Text string `json:"text" bson:"text"`
	Done bool   `json:"done" bson:"done"`
}

// WeightRecord is one weight log entry
type WeightRecord struct {
	Date string  `json:"date" bson:"date"` // YYYY-MM-DD
	Kg   float64 `json:"kg" bson:"kg"`
}

// HealthNote is a free-text health observation
type HealthNote struct {
	Date string `json:"date" bson:"date"`
	Text string `json:"text" bson:"text"`
}

// HeatCycle records one heat cycle period
type HeatCycle struct {
	StartDate string `json:"startDate" bson:"startDate"`
	EndDate   string `json:"endDate,omitempty" bson:"endDate,omitempty"`
}

// Pet is the long-lived record owned by the pet repository. In-memory copies
// held elsewhere are caches; every mutation is written back through the
// repository.
type Pet struct {
	ID       string  `json:"id" bson:"_id,omitempty"`
	OwnerID  string  `json:"ownerId" bson:"ownerId"`
	Name     string  `json:"name" bson:"name"`
	Type     PetType `json:"type" bson:"type"`
	Breed    string  `json:"breed" bson:"breed"`
	Gender   string  `json:"gender" bson:"gender"`
	DOB      string  `json:"dob" bson:"dob"` // YYYY-MM-DD
	Plan     Plan    `json:"plan" bson:"plan"`
	ImageURL string  `json:"imageUrl" bson:"imageUrl"`

	SurveyCount      int    `json:"surveyCount" bson:"surveyCount"`
	FreeReportCount  int    `json:"freeReportCount" bson:"freeReportCount"`
	LastSurveyDate   string `json:"lastSurveyDate" bson:"lastSurveyDate"`
	LastMissionDate  string `json:"lastMissionDate" bson:"lastMissionDate"`
	HasRerolledToday bool   `json:"hasRerolledToday" bson:"hasRerolledToday"`

	DailyMission  []MissionItem  `json:"dailyMission" bson:"dailyMission"`
	WeightRecords []WeightRecord `json:"weightRecords" bson:"weightRecords"`
	HealthNotes   []HealthNote   `json:"healthNotes" bson:"healthNotes"`
	HeatCycles    []HeatCycle    `json:"heatCycles" bson:"heatCycles"`
	AIReports     []string       `json:"aiReports" bson:"aiReports"` // ai_reports collection IDs
	InBodyReports []InBodyReport `json:"inBodyReports" bson:"inBodyReports"`

	SchemaVersion int       `json:"schemaVersion" bson:"schemaVersion"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}

// LatestInBodyReport returns the most recently appended report, or nil.
func (p *Pet) LatestInBodyReport() *InBodyReport {
	if len(p.InBodyReports) == 0 {
		return nil
	}
	return &p.InBodyReports[len(p.InBodyReports)-1]
}
