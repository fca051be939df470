package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pawbody/internal/cache"
	"pawbody/internal/catalog"
	"pawbody/internal/model"
	"pawbody/internal/repository"
	"pawbody/internal/survey"

	"github.com/google/uuid"
)

var (
	ErrNoFreeReports  = errors.New("no free reports left on this plan")
	ErrNoActiveSurvey = errors.New("no survey in progress for this pet")
	ErrInvalidOption  = errors.New("value is not an option of the current question")
)

// SurveyService drives the survey flow: question selection on start, one
// answer at a time against the Redis-held session, aggregation on complete.
type SurveyService struct {
	questionRepo  repository.QuestionRepo
	petSvc        *PetService
	sessions      cache.SessionCache
	snapshots     cache.SnapshotCache
	selector      *survey.Selector
	now          func() time.Time
	broadcaster  Broadcaster
}

// NewSurveyService creates a new survey service
func NewSurveyService(
	questionRepo repository.QuestionRepo,
	petSvc *PetService,
	sessions cache.SessionCache,
	snapshots cache.SnapshotCache,
	selector *survey.Selector,
	now func() time.Time,
) *SurveyService {
	if selector == nil {
		selector = survey.NewSelector(nil)
	}
	if now == nil {
		now = time.Now
	}
	return &SurveyService{
		questionRepo: questionRepo,
		petSvc:       petSvc,
		sessions:     sessions,
		snapshots:    snapshots,
		selector:     selector,
		now:          now,
	}
}

// SetBroadcaster sets the broadcaster for push events
func (s *SurveyService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// StartResponse is returned when a survey session begins
type StartResponse struct {
	SessionID      string          `json:"sessionId"`
	TotalQuestions int             `json:"totalQuestions"`
	Question       *model.Question `json:"question"`
}

// AnswerResponse is returned after each submitted answer
type AnswerResponse struct {
	Done      bool            `json:"done"`
	Remaining int             `json:"remaining"`
	Question  *model.Question `json:"question,omitempty"`
}

// Start selects this session's questions and stores the session. Free-plan
// pets must still have free reports left. An existing session for the pet is
// replaced.
func (s *SurveyService) Start(ctx context.Context, ownerID, petID string) (*StartResponse, error) {
	pet, err := s.petSvc.Get(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}
	if pet.Plan != model.PlanPremium && pet.FreeReportCount <= 0 {
		return nil, ErrNoFreeReports
	}

	pool, err := s.questionPool(ctx)
	if err != nil {
		return nil, err
	}

	questions := s.selector.Select(pet.Plan, pool)
	if len(questions) == 0 {
		return nil, survey.ErrEmptyQuestionPool
	}

	session := &model.SurveySession{
		ID:        uuid.New().String(),
		PetID:     pet.ID,
		Plan:      pet.Plan,
		Questions: questions,
		Answers:   model.NewAnswers(pet.Plan),
		StartedAt: s.now(),
	}
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("store survey session: %w", err)
	}

	return &StartResponse{
		SessionID:      session.ID,
		TotalQuestions: len(session.Questions),
		Question:       session.Current(),
	}, nil
}

// Answer records the chosen value for the current question and advances the
// cursor.
func (s *SurveyService) Answer(ctx context.Context, ownerID, petID, value string) (*AnswerResponse, error) {
	if _, err := s.petSvc.Get(ctx, ownerID, petID); err != nil {
		return nil, err
	}
	session, err := s.sessions.Get(ctx, petID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNoActiveSurvey
	}

	current := session.Current()
	if current == nil {
		return &AnswerResponse{Done: true}, nil
	}
	if !current.HasOption(value) {
		return nil, ErrInvalidOption
	}

	session.Answers.Set(current.Category, current.SubKey, value)
	session.Cursor++
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("store survey session: %w", err)
	}

	return &AnswerResponse{
		Done:      session.Done(),
		Remaining: len(session.Questions) - session.Cursor,
		Question:  session.Current(),
	}, nil
}

// Complete aggregates the session into an InBodyReport, appends it to the
// pet, bumps the counters, and drops the session. An incomplete session
// surfaces *survey.IncompleteSurveyError and nothing is persisted.
func (s *SurveyService) Complete(ctx context.Context, ownerID, petID string) (*model.InBodyReport, error) {
	pet, err := s.petSvc.Get(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}
	session, err := s.sessions.Get(ctx, petID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNoActiveSurvey
	}

	report, err := survey.Aggregate(session.Questions, session.Answers, s.now())
	if err != nil {
		return nil, err
	}

	pet.InBodyReports = append(pet.InBodyReports, *report)
	pet.SurveyCount++
	pet.LastSurveyDate = report.Date
	if pet.Plan != model.PlanPremium && pet.FreeReportCount > 0 {
		pet.FreeReportCount--
	}
	if err := s.petSvc.Save(ctx, pet); err != nil {
		return nil, fmt.Errorf("persist survey result: %w", err)
	}

	if err := s.snapshots.SetLatest(ctx, pet.ID, report); err != nil {
		// Cache miss on the next read is the only cost.
		fmt.Printf("snapshot cache write failed for pet %s: %v\n", pet.ID, err)
	}
	if err := s.sessions.Delete(ctx, petID); err != nil {
		fmt.Printf("session cleanup failed for pet %s: %v\n", petID, err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToUser(ownerID, "report_ready", map[string]interface{}{
			"petId":        pet.ID,
			"date":         report.Date,
			"overallScore": report.OverallScore,
			"band":         report.Band,
		})
	}
	return report, nil
}

// Latest returns the most recent InBody report, preferring the Redis
// snapshot over the pet record.
func (s *SurveyService) Latest(ctx context.Context, ownerID, petID string) (*model.InBodyReport, error) {
	pet, err := s.petSvc.Get(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}

	if cached, err := s.snapshots.GetLatest(ctx, pet.ID); err == nil && cached != nil {
		return cached, nil
	}

	report := pet.LatestInBodyReport()
	if report == nil {
		return nil, nil
	}
	if err := s.snapshots.SetLatest(ctx, pet.ID, report); err != nil {
		fmt.Printf("snapshot cache write failed for pet %s: %v\n", pet.ID, err)
	}
	return report, nil
}

func (s *SurveyService) questionPool(ctx context.Context) ([]model.Question, error) {
	pool, err := s.questionRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load question catalog: %w", err)
	}
	if len(pool) == 0 {
		// Collection not seeded yet; fall back to the built-in bank.
		pool = catalog.Questions()
	}
	return pool, nil
}
