package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"pawbody/internal/cache"
	"pawbody/internal/migrate"
	"pawbody/internal/model"
	"pawbody/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrPetNotFound       = errors.New("pet not found")
	ErrRerollUsed        = errors.New("daily mission already rerolled today")
	ErrMissionOutOfRange = errors.New("mission index out of range")
)

const dateLayout = "2006-01-02"

// PetService owns the pet record lifecycle. Every read path runs the schema
// migration pass and writes changed records back, so stored shapes converge
// on the current schema.
type PetService struct {
	petRepo     repository.PetRepo
	sessions    cache.SessionCache
	snapshots   cache.SnapshotCache
	rng         *rand.Rand
	now         func() time.Time
	broadcaster Broadcaster
}

// NewPetService creates a new pet service. The caches are cleaned up when a
// pet is deleted; pass nil to skip. rng and now are injectable for tests;
// pass nil to use time-seeded randomness and the wall clock.
func NewPetService(
	petRepo repository.PetRepo,
	sessions cache.SessionCache,
	snapshots cache.SnapshotCache,
	rng *rand.Rand,
	now func() time.Time,
) *PetService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &PetService{
		petRepo:   petRepo,
		sessions:  sessions,
		snapshots: snapshots,
		rng:       rng,
		now:       now,
	}
}

// SetBroadcaster sets the broadcaster for push events
func (s *PetService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// RegisterPetRequest carries the owner-supplied pet profile
type RegisterPetRequest struct {
	Name   string        `json:"name"`
	Type   model.PetType `json:"type"`
	Breed  string        `json:"breed"`
	Gender string        `json:"gender"`
	DOB    string        `json:"dob"`
	Plan   model.Plan    `json:"plan"`
}

// Register creates a pet record with current-schema defaults.
func (s *PetService) Register(ctx context.Context, ownerID string, req *RegisterPetRequest) (*model.Pet, error) {
	if req.Name == "" {
		return nil, errors.New("pet name is required")
	}
	plan := req.Plan
	if plan == "" {
		plan = model.PlanFree
	}
	now := s.now()
	pet := &model.Pet{
		ID:              uuid.New().String(),
		OwnerID:         ownerID,
		Name:            req.Name,
		Type:            req.Type,
		Breed:           req.Breed,
		Gender:          req.Gender,
		DOB:             req.DOB,
		Plan:            plan,
		ImageURL:        migrate.PlaceholderImage(req.Type),
		FreeReportCount: 3,
		LastMissionDate: now.Format(dateLayout),
		DailyMission:    migrate.RollMissions(req.Type, s.rng),
		AIReports:       []string{},
		SchemaVersion:   migrate.CurrentSchemaVersion,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.petRepo.Create(ctx, pet); err != nil {
		return nil, fmt.Errorf("create pet: %w", err)
	}
	return pet, nil
}

// List returns the owner's pets, migrated.
func (s *PetService) List(ctx context.Context, ownerID string) ([]*model.Pet, error) {
	pets, err := s.petRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for _, pet := range pets {
		if err := s.migrateAndSave(ctx, pet); err != nil {
			return nil, err
		}
	}
	return pets, nil
}

// Get returns one pet scoped to its owner, migrated.
func (s *PetService) Get(ctx context.Context, ownerID, petID string) (*model.Pet, error) {
	pet, err := s.petRepo.GetByID(ctx, petID)
	if err != nil {
		return nil, err
	}
	if pet == nil || pet.OwnerID != ownerID {
		return nil, ErrPetNotFound
	}
	if err := s.migrateAndSave(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

// UpdatePetRequest carries the mutable profile fields
type UpdatePetRequest struct {
	Name   string     `json:"name"`
	Breed  string     `json:"breed"`
	Gender string     `json:"gender"`
	DOB    string     `json:"dob"`
	Plan   model.Plan `json:"plan"`
}

// Update applies profile changes and writes the record back.
func (s *PetService) Update(ctx context.Context, ownerID, petID string, req *UpdatePetRequest) (*model.Pet, error) {
	pet, err := s.Get(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		pet.Name = req.Name
	}
	if req.Breed != "" {
		pet.Breed = req.Breed
	}
	if req.Gender != "" {
		pet.Gender = req.Gender
	}
	if req.DOB != "" {
		pet.DOB = req.DOB
	}
	if req.Plan != "" {
		pet.Plan = req.Plan
	}
	return pet, s.save(ctx, pet)
}

// Delete removes the record and any cached state keyed on it.
func (s *PetService) Delete(ctx context.Context, ownerID, petID string) error {
	pet, err := s.Get(ctx, ownerID, petID)
	if err != nil {
		return err
	}
	if err := s.petRepo.Delete(ctx, pet.ID); err != nil {
		return err
	}
	// Leftover Redis keys would only expire with their TTLs.
	if s.sessions != nil {
		if err := s.sessions.Delete(ctx, pet.ID); err != nil {
			fmt.Printf("session cleanup failed for pet %s: %v\n", pet.ID, err)
		}
	}
	if s.snapshots != nil {
		if err := s.snapshots.Invalidate(ctx, pet.ID); err != nil {
			fmt.Printf("snapshot invalidation failed for pet %s: %v\n", pet.ID, err)
		}
	}
	return nil
}

// AddWeight appends a weight log entry.
func (s *PetService) AddWeight(ctx context.Context, ownerID, petID string, kg float64) (*model.Pet, error) {
	pet, err := s.Get(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}
	pet.WeightRecords = append(pet.WeightRecords, model.WeightRecord{
		Date: s.now().Format(dateLayout),
		Kg:   kg,
	})
	return pet, s.save(ctx, pet)
}

// AddNote appends a health note.
func (s *PetService) AddNote(ctx context.Context, ownerID, petID, text string) (*model.Pet, error) {
	pet, err := s.Get(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}
	pet.HealthNotes = append(pet.HealthNotes, model.HealthNote{
		Date: s.now().Format(dateLayout),
		Text: text,
	})
	return pet, s.save(ctx, pet)
}

// AddHeatCycle appends a heat cycle record.
func (s *PetService) AddHeatCycle(ctx context.Context, ownerID, petID string, cycle model.HeatCycle) (*model.Pet, error) {
	pet, err := s.Get(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}
	if cycle.StartDate == "" {
		cycle.StartDate = s.now().Format(dateLayout)
	}
	pet.HeatCycles = append(pet.HeatCycles, cycle)
	return pet, s.save(ctx, pet)
}

// ToggleMission flips the done flag on one daily mission item.
func (s *PetService) ToggleMission(ctx context.Context, ownerID, petID string, index int) (*model.Pet, error) {
	pet, err := s.Get(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(pet.DailyMission) {
		return nil, ErrMissionOutOfRange
	}
	pet.DailyMission[index].Done = !pet.DailyMission[index].Done
	return pet, s.save(ctx, pet)
}

// RerollMissions redraws the daily mission, once per day.
func (s *PetService) RerollMissions(ctx context.Context, ownerID, petID string) (*model.Pet, error) {
	pet, err := s.Get(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}
	if pet.HasRerolledToday {
		return nil, ErrRerollUsed
	}
	pet.DailyMission = migrate.RollMissions(pet.Type, s.rng)
	pet.HasRerolledToday = true
	if err := s.save(ctx, pet); err != nil {
		return nil, err
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToUser(ownerID, "mission_refreshed", map[string]interface{}{
			"petId":        pet.ID,
			"dailyMission": pet.DailyMission,
		})
	}
	return pet, nil
}

// Save persists a mutated pet through the repository. Exposed for sibling
// services that hold a migrated record.
func (s *PetService) Save(ctx context.Context, pet *model.Pet) error {
	return s.save(ctx, pet)
}

func (s *PetService) save(ctx context.Context, pet *model.Pet) error {
	pet.UpdatedAt = s.now()
	return s.petRepo.Update(ctx, pet)
}

func (s *PetService) migrateAndSave(ctx context.Context, pet *model.Pet) error {
	if migrate.Apply(pet, s.now(), s.rng) {
		if err := s.petRepo.Update(ctx, pet); err != nil {
			return fmt.Errorf("write back migrated pet %s: %w", pet.ID, err)
		}
	}
	return nil
}
