package service

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"pawbody/internal/migrate"
	"pawbody/internal/model"
)

func newPetFixture(t *testing.T, pets ...*model.Pet) (*PetService, *fakePetRepo) {
	t.Helper()
	repo := newFakePetRepo()
	for _, pet := range pets {
		if err := repo.Create(context.Background(), pet); err != nil {
			t.Fatalf("seed pet: %v", err)
		}
	}
	return NewPetService(repo, nil, nil, rand.New(rand.NewSource(1)), fixedNow), repo
}

func TestRegisterPetDefaults(t *testing.T) {
	svc, _ := newPetFixture(t)

	pet, err := svc.Register(context.Background(), "owner-1", &RegisterPetRequest{
		Name: "Mossy",
		Type: model.PetTypeCat,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if pet.Plan != model.PlanFree {
		t.Fatalf("plan = %s, want free by default", pet.Plan)
	}
	if pet.FreeReportCount != 3 {
		t.Fatalf("freeReportCount = %d, want 3", pet.FreeReportCount)
	}
	if pet.ImageURL != "/media/placeholders/cat.png" {
		t.Fatalf("imageUrl = %q", pet.ImageURL)
	}
	if n := len(pet.DailyMission); n < 1 || n > 5 {
		t.Fatalf("dailyMission length = %d, want 1..5", n)
	}
	if pet.LastMissionDate != "2026-03-14" {
		t.Fatalf("lastMissionDate = %q", pet.LastMissionDate)
	}
	if pet.SchemaVersion != migrate.CurrentSchemaVersion {
		t.Fatalf("schemaVersion = %d, want %d", pet.SchemaVersion, migrate.CurrentSchemaVersion)
	}

	if _, err := svc.Register(context.Background(), "owner-1", &RegisterPetRequest{Type: model.PetTypeDog}); err == nil {
		t.Fatalf("Register accepted a pet without a name")
	}
}

func TestGetMigratesLegacyRecord(t *testing.T) {
	legacy := &model.Pet{
		ID:      "pet-1",
		OwnerID: "owner-1",
		Name:    "Mossy",
		Type:    model.PetTypeDog,
		Plan:    model.PlanFree,
	}
	svc, repo := newPetFixture(t, legacy)

	pet, err := svc.Get(context.Background(), "owner-1", "pet-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if pet.SchemaVersion != migrate.CurrentSchemaVersion {
		t.Fatalf("schemaVersion = %d, want %d", pet.SchemaVersion, migrate.CurrentSchemaVersion)
	}

	// Migration must be written back, not just applied in memory.
	stored, err := repo.GetByID(context.Background(), "pet-1")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.SchemaVersion != migrate.CurrentSchemaVersion || stored.FreeReportCount != 3 {
		t.Fatalf("migrated record not persisted: version=%d freeReports=%d", stored.SchemaVersion, stored.FreeReportCount)
	}
}

func TestGetScopesToOwner(t *testing.T) {
	svc, _ := newPetFixture(t, currentPet(model.PlanFree, 3))

	if _, err := svc.Get(context.Background(), "someone-else", "pet-1"); !errors.Is(err, ErrPetNotFound) {
		t.Fatalf("err = %v, want ErrPetNotFound", err)
	}
}

func TestToggleMission(t *testing.T) {
	svc, _ := newPetFixture(t, currentPet(model.PlanFree, 3))
	ctx := context.Background()

	pet, err := svc.ToggleMission(ctx, "owner-1", "pet-1", 0)
	if err != nil {
		t.Fatalf("ToggleMission: %v", err)
	}
	if !pet.DailyMission[0].Done {
		t.Fatalf("mission not marked done")
	}

	pet, err = svc.ToggleMission(ctx, "owner-1", "pet-1", 0)
	if err != nil {
		t.Fatalf("ToggleMission back: %v", err)
	}
	if pet.DailyMission[0].Done {
		t.Fatalf("mission not toggled back")
	}

	if _, err := svc.ToggleMission(ctx, "owner-1", "pet-1", 99); !errors.Is(err, ErrMissionOutOfRange) {
		t.Fatalf("err = %v, want ErrMissionOutOfRange", err)
	}
}

func TestRerollMissionsOncePerDay(t *testing.T) {
	svc, repo := newPetFixture(t, currentPet(model.PlanFree, 3))
	bcast := &fakeBroadcaster{}
	svc.SetBroadcaster(bcast)
	ctx := context.Background()

	pet, err := svc.RerollMissions(ctx, "owner-1", "pet-1")
	if err != nil {
		t.Fatalf("RerollMissions: %v", err)
	}
	if !pet.HasRerolledToday {
		t.Fatalf("hasRerolledToday not set")
	}
	if types := bcast.types(); len(types) != 1 || types[0] != "mission_refreshed" {
		t.Fatalf("broadcast events = %v, want [mission_refreshed]", types)
	}

	if _, err := svc.RerollMissions(ctx, "owner-1", "pet-1"); !errors.Is(err, ErrRerollUsed) {
		t.Fatalf("second reroll: err = %v, want ErrRerollUsed", err)
	}

	stored, _ := repo.GetByID(ctx, "pet-1")
	if !stored.HasRerolledToday {
		t.Fatalf("reroll flag not persisted")
	}
}

func TestAddWeightAndNote(t *testing.T) {
	svc, _ := newPetFixture(t, currentPet(model.PlanFree, 3))
	ctx := context.Background()

	pet, err := svc.AddWeight(ctx, "owner-1", "pet-1", 12.4)
	if err != nil {
		t.Fatalf("AddWeight: %v", err)
	}
	if len(pet.WeightRecords) != 1 || pet.WeightRecords[0].Kg != 12.4 || pet.WeightRecords[0].Date != "2026-03-14" {
		t.Fatalf("weightRecords = %+v", pet.WeightRecords)
	}

	pet, err = svc.AddNote(ctx, "owner-1", "pet-1", "scratching less")
	if err != nil {
		t.Fatalf("AddNote: %v", err)
	}
	if len(pet.HealthNotes) != 1 || pet.HealthNotes[0].Text != "scratching less" {
		t.Fatalf("healthNotes = %+v", pet.HealthNotes)
	}
}
