package migrate

import (
	"math/rand"

	"pawbody/internal/model"
)

// Per-species pools the daily mission is drawn from.
var dogMissions = []string{
	"Take a 20 minute walk",
	"Practice one obedience command",
	"Brush the coat for 5 minutes",
	"Play fetch for 10 minutes",
	"Check paws for cuts or debris",
	"Refresh the water bowl",
	"Give a dental chew",
	"Practice loose-leash walking",
}

var catMissions = []string{
	"Play with a wand toy for 10 minutes",
	"Brush the coat for 5 minutes",
	"Scoop the litter box",
	"Check ears for discharge",
	"Rotate in a new toy",
	"Refresh the water fountain",
	"Give a treat puzzle",
	"Trim one paw's claws",
}

// RollMissions draws a random-length subset (1 to 5 items) from the species
// pool, without repeats, all unchecked.
func RollMissions(petType model.PetType, rng *rand.Rand) []model.MissionItem {
	pool := dogMissions
	if petType == model.PetTypeCat {
		pool = catMissions
	}

	n := 1 + rng.Intn(5)
	if n > len(pool) {
		n = len(pool)
	}

	idxs := rng.Perm(len(pool))[:n]
	items := make([]model.MissionItem, n)
	for i, idx := range idxs {
		items[i] = model.MissionItem{Text: pool[idx]}
	}
	return items
}
