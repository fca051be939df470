// Package migrate reconciles persisted pet records with the current schema.
// The pass runs on every load and is idempotent: re-running it on a migrated
// record changes nothing except the date-keyed daily-mission refresh.
package migrate

import (
	"math/rand"
	"strings"
	"time"

	"pawbody/internal/model"
)

// CurrentSchemaVersion is bumped whenever stored records need backfilling.
// Version history:
//
//	0 - pre-versioning records (may lack counters, aiReports, dailyMission)
//	1 - counters and aiReports present
//	2 - freeReportCount and imageUrl normalization
const CurrentSchemaVersion = 2

const (
	defaultFreeReports = 3
	dateLayout         = "2006-01-02"

	// Images the service stores itself live under this prefix. Anything
	// else (old external URLs, data URIs from earlier clients) is replaced
	// with the species placeholder.
	storedMediaPrefix = "/media/pets/"
)

// Apply migrates a single record in place and reports whether it changed.
// Callers write changed records back through the repository so the stored
// shape converges.
func Apply(pet *model.Pet, now time.Time, rng *rand.Rand) bool {
	changed := false

	if pet.SchemaVersion < 1 {
		if pet.AIReports == nil {
			pet.AIReports = []string{}
		}
		// SurveyCount and LastSurveyDate zero-values are already the
		// documented defaults.
		pet.SchemaVersion = 1
		changed = true
	}
	if pet.SchemaVersion < 2 {
		pet.FreeReportCount = defaultFreeReports
		pet.SchemaVersion = 2
		changed = true
	}

	if url := NormalizeImageURL(pet.ImageURL, pet.Type); url != pet.ImageURL {
		pet.ImageURL = url
		changed = true
	}

	today := now.Format(dateLayout)
	if pet.LastMissionDate != today || pet.DailyMission == nil {
		pet.DailyMission = RollMissions(pet.Type, rng)
		pet.LastMissionDate = today
		pet.HasRerolledToday = false
		changed = true
	}

	return changed
}

// NormalizeImageURL keeps recognized stored-media references and replaces
// everything else with a deterministic per-species placeholder.
func NormalizeImageURL(url string, petType model.PetType) string {
	if strings.HasPrefix(url, storedMediaPrefix) {
		return url
	}
	return PlaceholderImage(petType)
}

// PlaceholderImage returns the per-species fallback image path.
func PlaceholderImage(petType model.PetType) string {
	if petType == model.PetTypeCat {
		return "/media/placeholders/cat.png"
	}
	return "/media/placeholders/dog.png"
}
