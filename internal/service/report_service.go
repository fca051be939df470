package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"pawbody/internal/model"
	"pawbody/internal/repository"

	"github.com/google/uuid"
)

var ErrNoSurveyReports = errors.New("no survey reports to base a narrative on")

// ReportService produces the narrative "AI" report. It is a deliberate mock:
// the text is derived from the latest InBody report with canned phrasing, no
// external calls. It stays separate from the answer-driven aggregation.
type ReportService struct {
	reportRepo  repository.ReportRepo
	petSvc      *PetService
	now         func() time.Time
	broadcaster Broadcaster
}

// NewReportService creates a new report service
func NewReportService(reportRepo repository.ReportRepo, petSvc *PetService, now func() time.Time) *ReportService {
	if now == nil {
		now = time.Now
	}
	return &ReportService{
		reportRepo: reportRepo,
		petSvc:     petSvc,
		now:        now,
	}
}

// SetBroadcaster sets the broadcaster for push events
func (s *ReportService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Trigger creates a pending report and generates it asynchronously.
func (s *ReportService) Trigger(ctx context.Context, ownerID, petID string) (*model.AIReport, error) {
	pet, err := s.petSvc.Get(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}
	latest := pet.LatestInBodyReport()
	if latest == nil {
		return nil, ErrNoSurveyReports
	}

	report := &model.AIReport{
		ID:          uuid.New().String(),
		PetID:       pet.ID,
		Status:      model.AIReportPending,
		BasedOnDate: latest.Date,
		CreatedAt:   s.now(),
	}
	if err := s.reportRepo.Save(ctx, report); err != nil {
		return nil, fmt.Errorf("save pending report: %w", err)
	}

	pet.AIReports = append(pet.AIReports, report.ID)
	if err := s.petSvc.Save(ctx, pet); err != nil {
		return nil, fmt.Errorf("link report to pet: %w", err)
	}

	go s.generate(context.Background(), ownerID, pet.Name, report.ID, latest)

	return report, nil
}

// Get returns the most recent narrative report for the pet.
func (s *ReportService) Get(ctx context.Context, ownerID, petID string) (*model.AIReport, error) {
	if _, err := s.petSvc.Get(ctx, ownerID, petID); err != nil {
		return nil, err
	}
	return s.reportRepo.GetLatestByPet(ctx, petID)
}

func (s *ReportService) generate(ctx context.Context, ownerID, petName, reportID string, basis *model.InBodyReport) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("recovered from panic in report generation: %v\n", r)
		}
	}()

	report, err := s.reportRepo.GetByID(ctx, reportID)
	if err != nil || report == nil {
		fmt.Printf("report %s disappeared before generation: %v\n", reportID, err)
		return
	}

	report.Summary, report.Advice = buildNarrative(petName, basis)
	report.Status = model.AIReportDone
	done := s.now()
	report.CompletedAt = &done

	if err := s.reportRepo.Save(ctx, report); err != nil {
		fmt.Printf("save generated report %s: %v\n", reportID, err)
		return
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToUser(ownerID, "ai_report_ready", map[string]string{
			"reportId": report.ID,
			"petId":    report.PetID,
		})
	}
}

// buildNarrative turns the scored report into canned prose: a band-keyed
// opening, the weakest categories called out, and the triggered advice
// carried over (capped).
func buildNarrative(petName string, basis *model.InBodyReport) (string, []string) {
	var summary string
	switch basis.Band {
	case model.BandGood:
		summary = fmt.Sprintf("%s is in good shape overall (score %d). The routine is working; the notes below keep it that way.", petName, basis.OverallScore)
	case model.BandCaution:
		summary = fmt.Sprintf("%s's results are mixed (score %d). A few areas are trending the wrong way and are worth correcting now.", petName, basis.OverallScore)
	default:
		summary = fmt.Sprintf("%s's results raise real concerns (score %d). Please discuss them with a veterinarian.", petName, basis.OverallScore)
	}

	type catScore struct {
		cat   model.Category
		score int
	}
	ranked := make([]catScore, 0, len(basis.Scores))
	for cat, score := range basis.Scores {
		ranked = append(ranked, catScore{cat, score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score < ranked[j].score
		}
		return ranked[i].cat < ranked[j].cat
	})

	var advice []string
	for i, cs := range ranked {
		if i >= 2 || cs.score > 70 {
			break
		}
		advice = append(advice, fmt.Sprintf("Focus area: %s scored %d. Track it over the next two weeks.", cs.cat, cs.score))
	}
	for _, w := range basis.Warnings {
		advice = append(advice, w)
	}
	for _, r := range basis.Recommendations {
		advice = append(advice, r)
	}
	if len(advice) > 5 {
		advice = advice[:5]
	}
	return summary, advice
}
