package service

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"pawbody/internal/migrate"
	"pawbody/internal/model"
	"pawbody/internal/survey"
)

var surveyNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return surveyNow }

// currentPet returns a record already on the current schema so load-time
// migration is a no-op in these tests.
func currentPet(plan model.Plan, freeReports int) *model.Pet {
	return &model.Pet{
		ID:              "pet-1",
		OwnerID:         "owner-1",
		Name:            "Mossy",
		Type:            model.PetTypeDog,
		Plan:            plan,
		ImageURL:        "/media/placeholders/dog.png",
		FreeReportCount: freeReports,
		LastMissionDate: "2026-03-14",
		DailyMission:    []model.MissionItem{{Text: "walk", Done: false}},
		AIReports:       []string{},
		SchemaVersion:   migrate.CurrentSchemaVersion,
	}
}

func serviceTestPool() []model.Question {
	var pool []model.Question
	for _, cat := range model.AllCategories() {
		for i := 0; i < 4; i++ {
			pool = append(pool, model.Question{
				Category: cat,
				SubKey:   string(cat) + string(rune('a'+i)),
				Text:     "q",
				Options: []model.Option{
					{Value: "good", Text: "doing fine"},
					{Value: "bad", Text: "not great"},
				},
				Scores:          map[string]int{"good": 80, "bad": 20},
				Recommendations: map[string]string{"bad": "keep an eye on this"},
			})
		}
	}
	return pool
}

type surveyFixture struct {
	svc       *SurveyService
	petSvc    *PetService
	petRepo   *fakePetRepo
	sessions  *fakeSessionCache
	snapshots *fakeSnapshotCache
	bcast     *fakeBroadcaster
}

func newSurveyFixture(t *testing.T, pet *model.Pet) *surveyFixture {
	t.Helper()
	petRepo := newFakePetRepo()
	if err := petRepo.Create(context.Background(), pet); err != nil {
		t.Fatalf("seed pet: %v", err)
	}

	sessions := newFakeSessionCache()
	snapshots := newFakeSnapshotCache()
	petSvc := NewPetService(petRepo, sessions, snapshots, rand.New(rand.NewSource(1)), fixedNow)
	bcast := &fakeBroadcaster{}

	svc := NewSurveyService(
		&fakeQuestionRepo{pool: serviceTestPool()},
		petSvc,
		sessions,
		snapshots,
		survey.NewSelector(rand.New(rand.NewSource(2))),
		fixedNow,
	)
	svc.SetBroadcaster(bcast)

	return &surveyFixture{
		svc:       svc,
		petSvc:    petSvc,
		petRepo:   petRepo,
		sessions:  sessions,
		snapshots: snapshots,
		bcast:     bcast,
	}
}

func TestSurveyFlowFreePlan(t *testing.T) {
	f := newSurveyFixture(t, currentPet(model.PlanFree, 3))
	ctx := context.Background()

	start, err := f.svc.Start(ctx, "owner-1", "pet-1")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if start.TotalQuestions != 4 {
		t.Fatalf("free survey has %d questions, want 4", start.TotalQuestions)
	}
	if start.Question == nil {
		t.Fatalf("Start returned no first question")
	}

	question := start.Question
	for i := 0; i < start.TotalQuestions; i++ {
		resp, err := f.svc.Answer(ctx, "owner-1", "pet-1", question.Options[0].Value)
		if err != nil {
			t.Fatalf("Answer %d: %v", i, err)
		}
		if i < start.TotalQuestions-1 {
			if resp.Done || resp.Question == nil {
				t.Fatalf("Answer %d: done=%v question=%v, survey ended early", i, resp.Done, resp.Question)
			}
			question = resp.Question
		} else if !resp.Done {
			t.Fatalf("last answer did not finish the survey")
		}
	}

	report, err := f.svc.Complete(ctx, "owner-1", "pet-1")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if report.OverallScore != 80 || report.Band != model.BandGood {
		t.Fatalf("report = %d/%s, want 80/good", report.OverallScore, report.Band)
	}
	if report.Date != "2026-03-14" {
		t.Fatalf("report date = %s", report.Date)
	}

	pet, err := f.petRepo.GetByID(ctx, "pet-1")
	if err != nil {
		t.Fatalf("reload pet: %v", err)
	}
	if len(pet.InBodyReports) != 1 {
		t.Fatalf("pet has %d reports, want 1", len(pet.InBodyReports))
	}
	if pet.SurveyCount != 1 {
		t.Fatalf("surveyCount = %d, want 1", pet.SurveyCount)
	}
	if pet.FreeReportCount != 2 {
		t.Fatalf("freeReportCount = %d, want 2", pet.FreeReportCount)
	}
	if pet.LastSurveyDate != "2026-03-14" {
		t.Fatalf("lastSurveyDate = %q", pet.LastSurveyDate)
	}

	if session, _ := f.sessions.Get(ctx, "pet-1"); session != nil {
		t.Fatalf("session not dropped after completion")
	}
	if cached, _ := f.snapshots.GetLatest(ctx, "pet-1"); cached == nil {
		t.Fatalf("latest report not cached")
	}
	if types := f.bcast.types(); len(types) != 1 || types[0] != "report_ready" {
		t.Fatalf("broadcast events = %v, want [report_ready]", types)
	}
}

func TestSurveyFlowPremiumPlan(t *testing.T) {
	f := newSurveyFixture(t, currentPet(model.PlanPremium, 0))
	ctx := context.Background()

	start, err := f.svc.Start(ctx, "owner-1", "pet-1")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if start.TotalQuestions != survey.PremiumTarget {
		t.Fatalf("premium survey has %d questions, want %d", start.TotalQuestions, survey.PremiumTarget)
	}

	question := start.Question
	for question != nil {
		resp, err := f.svc.Answer(ctx, "owner-1", "pet-1", question.Options[1].Value)
		if err != nil {
			t.Fatalf("Answer: %v", err)
		}
		question = resp.Question
	}

	report, err := f.svc.Complete(ctx, "owner-1", "pet-1")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if len(report.Scores) != len(model.AllCategories()) {
		t.Fatalf("premium report covers %d categories, want %d", len(report.Scores), len(model.AllCategories()))
	}
	if report.Band != model.BandConcern {
		t.Fatalf("all-bad answers banded %s, want concern", report.Band)
	}
	if len(report.Warnings) == 0 {
		t.Fatalf("concern report carries no warnings")
	}

	pet, _ := f.petRepo.GetByID(ctx, "pet-1")
	if pet.FreeReportCount != 0 {
		t.Fatalf("premium completion touched freeReportCount: %d", pet.FreeReportCount)
	}
}

func TestStartBlockedWithoutFreeReports(t *testing.T) {
	f := newSurveyFixture(t, currentPet(model.PlanFree, 0))

	if _, err := f.svc.Start(context.Background(), "owner-1", "pet-1"); !errors.Is(err, ErrNoFreeReports) {
		t.Fatalf("err = %v, want ErrNoFreeReports", err)
	}
}

func TestStartUnknownPet(t *testing.T) {
	f := newSurveyFixture(t, currentPet(model.PlanFree, 3))

	if _, err := f.svc.Start(context.Background(), "owner-1", "no-such-pet"); !errors.Is(err, ErrPetNotFound) {
		t.Fatalf("unknown pet: err = %v, want ErrPetNotFound", err)
	}
	if _, err := f.svc.Start(context.Background(), "someone-else", "pet-1"); !errors.Is(err, ErrPetNotFound) {
		t.Fatalf("foreign owner: err = %v, want ErrPetNotFound", err)
	}
}

func TestAnswerRejectsUnknownOption(t *testing.T) {
	f := newSurveyFixture(t, currentPet(model.PlanFree, 3))
	ctx := context.Background()

	if _, err := f.svc.Start(ctx, "owner-1", "pet-1"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := f.svc.Answer(ctx, "owner-1", "pet-1", "no-such-option"); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("err = %v, want ErrInvalidOption", err)
	}
}

func TestAnswerWithoutSession(t *testing.T) {
	f := newSurveyFixture(t, currentPet(model.PlanFree, 3))

	if _, err := f.svc.Answer(context.Background(), "owner-1", "pet-1", "good"); !errors.Is(err, ErrNoActiveSurvey) {
		t.Fatalf("err = %v, want ErrNoActiveSurvey", err)
	}
}

func TestCompleteIncompleteSurvey(t *testing.T) {
	f := newSurveyFixture(t, currentPet(model.PlanFree, 3))
	ctx := context.Background()

	if _, err := f.svc.Start(ctx, "owner-1", "pet-1"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := f.svc.Answer(ctx, "owner-1", "pet-1", "good"); err != nil {
		t.Fatalf("Answer: %v", err)
	}

	_, err := f.svc.Complete(ctx, "owner-1", "pet-1")
	var incomplete *survey.IncompleteSurveyError
	if !errors.As(err, &incomplete) {
		t.Fatalf("err = %v, want IncompleteSurveyError", err)
	}
	if len(incomplete.Missing) != 3 {
		t.Fatalf("missing = %v, want 3 refs", incomplete.Missing)
	}

	pet, _ := f.petRepo.GetByID(ctx, "pet-1")
	if pet.SurveyCount != 0 || pet.FreeReportCount != 3 || len(pet.InBodyReports) != 0 {
		t.Fatalf("incomplete completion persisted changes: %+v", pet)
	}
	if session, _ := f.sessions.Get(ctx, "pet-1"); session == nil {
		t.Fatalf("session dropped on failed completion")
	}
}

func TestLatestFallsBackToPetRecord(t *testing.T) {
	pet := currentPet(model.PlanFree, 3)
	pet.InBodyReports = []model.InBodyReport{
		{Date: "2026-03-01", OverallScore: 60, Band: model.BandCaution},
		{Date: "2026-03-10", OverallScore: 75, Band: model.BandGood},
	}
	f := newSurveyFixture(t, pet)
	ctx := context.Background()

	report, err := f.svc.Latest(ctx, "owner-1", "pet-1")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if report == nil || report.Date != "2026-03-10" {
		t.Fatalf("latest = %+v, want the 2026-03-10 report", report)
	}

	// The fallback read warms the snapshot cache.
	if cached, _ := f.snapshots.GetLatest(ctx, "pet-1"); cached == nil || cached.Date != "2026-03-10" {
		t.Fatalf("snapshot not warmed: %+v", cached)
	}
}

func TestDeleteClearsCachedState(t *testing.T) {
	f := newSurveyFixture(t, currentPet(model.PlanFree, 3))
	ctx := context.Background()

	if _, err := f.svc.Start(ctx, "owner-1", "pet-1"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	f.snapshots.SetLatest(ctx, "pet-1", &model.InBodyReport{Date: "2026-03-10"})

	if err := f.petSvc.Delete(ctx, "owner-1", "pet-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if session, _ := f.sessions.Get(ctx, "pet-1"); session != nil {
		t.Fatalf("session survived pet deletion")
	}
	if cached, _ := f.snapshots.GetLatest(ctx, "pet-1"); cached != nil {
		t.Fatalf("snapshot survived pet deletion")
	}
}

func TestLatestWithoutReports(t *testing.T) {
	f := newSurveyFixture(t, currentPet(model.PlanFree, 3))

	report, err := f.svc.Latest(context.Background(), "owner-1", "pet-1")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if report != nil {
		t.Fatalf("report = %+v, want nil for a pet with no surveys", report)
	}
}
