package service

import (
	"context"
	"sync"

	"pawbody/internal/model"
)

// In-memory stand-ins for the Mongo repositories and Redis caches.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User // by ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

type fakePetRepo struct {
	mu   sync.Mutex
	pets map[string]*model.Pet
}

func newFakePetRepo() *fakePetRepo {
	return &fakePetRepo{pets: make(map[string]*model.Pet)}
}

func (r *fakePetRepo) Create(ctx context.Context, pet *model.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *pet
	r.pets[pet.ID] = &copied
	return nil
}

func (r *fakePetRepo) GetByID(ctx context.Context, id string) (*model.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pet, ok := r.pets[id]
	if !ok {
		return nil, nil
	}
	copied := *pet
	return &copied, nil
}

func (r *fakePetRepo) GetByOwner(ctx context.Context, ownerID string) ([]*model.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.Pet
	for _, pet := range r.pets {
		if pet.OwnerID == ownerID {
			copied := *pet
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakePetRepo) Update(ctx context.Context, pet *model.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *pet
	r.pets[pet.ID] = &copied
	return nil
}

func (r *fakePetRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pets, id)
	return nil
}

type fakeQuestionRepo struct {
	pool []model.Question
}

func (r *fakeQuestionRepo) GetAll(ctx context.Context) ([]model.Question, error) {
	return r.pool, nil
}

func (r *fakeQuestionRepo) GetByCategory(ctx context.Context, category model.Category) ([]model.Question, error) {
	var out []model.Question
	for _, q := range r.pool {
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeQuestionRepo) ReplaceAll(ctx context.Context, questions []model.Question) error {
	r.pool = questions
	return nil
}

type fakeReportRepo struct {
	mu      sync.Mutex
	reports map[string]*model.AIReport
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[string]*model.AIReport)}
}

func (r *fakeReportRepo) Save(ctx context.Context, report *model.AIReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *report
	r.reports[report.ID] = &copied
	return nil
}

func (r *fakeReportRepo) GetByID(ctx context.Context, id string) (*model.AIReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	report, ok := r.reports[id]
	if !ok {
		return nil, nil
	}
	copied := *report
	return &copied, nil
}

func (r *fakeReportRepo) GetLatestByPet(ctx context.Context, petID string) (*model.AIReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *model.AIReport
	for _, report := range r.reports {
		if report.PetID != petID {
			continue
		}
		if latest == nil || report.CreatedAt.After(latest.CreatedAt) {
			latest = report
		}
	}
	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}

type fakeSessionCache struct {
	mu       sync.Mutex
	sessions map[string]*model.SurveySession
}

func newFakeSessionCache() *fakeSessionCache {
	return &fakeSessionCache{sessions: make(map[string]*model.SurveySession)}
}

func (c *fakeSessionCache) Set(ctx context.Context, session *model.SurveySession) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	copied := *session
	c.sessions[session.PetID] = &copied
	return nil
}

func (c *fakeSessionCache) Get(ctx context.Context, petID string) (*model.SurveySession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	session, ok := c.sessions[petID]
	if !ok {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (c *fakeSessionCache) Delete(ctx context.Context, petID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, petID)
	return nil
}

type fakeSnapshotCache struct {
	mu        sync.Mutex
	snapshots map[string]*model.InBodyReport
}

func newFakeSnapshotCache() *fakeSnapshotCache {
	return &fakeSnapshotCache{snapshots: make(map[string]*model.InBodyReport)}
}

func (c *fakeSnapshotCache) SetLatest(ctx context.Context, petID string, report *model.InBodyReport) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	copied := *report
	c.snapshots[petID] = &copied
	return nil
}

func (c *fakeSnapshotCache) GetLatest(ctx context.Context, petID string) (*model.InBodyReport, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	report, ok := c.snapshots[petID]
	if !ok {
		return nil, nil
	}
	copied := *report
	return &copied, nil
}

func (c *fakeSnapshotCache) Invalidate(ctx context.Context, petID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.snapshots, petID)
	return nil
}

type recordedEvent struct {
	userID  string
	msgType string
}

type fakeBroadcaster struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (b *fakeBroadcaster) BroadcastToUser(userID string, msgType string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, recordedEvent{userID: userID, msgType: msgType})
}

func (b *fakeBroadcaster) types() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []string
	for _, e := range b.events {
		out = append(out, e.msgType)
	}
	return out
}
