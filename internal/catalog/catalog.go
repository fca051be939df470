package catalog

import (
	"pawbody/internal/model"
)

// Questions returns the built-in survey question bank. The seed command
// pushes this into Mongo; the survey service falls back to it when the
// questions collection is empty.
func Questions() []model.Question {
	return []model.Question{
		// diet
		{
			Category: model.CategoryDiet,
			SubKey:   "appetite",
			Text:     "How has your pet's appetite been over the last week?",
			Options: []model.Option{
				{Value: "normal", Text: "Finishes meals as usual"},
				{Value: "reduced", Text: "Leaves food more often than before"},
				{Value: "increased", Text: "Begs or eats noticeably more"},
				{Value: "refusing", Text: "Refuses meals entirely some days"},
			},
			Scores: map[string]int{
				"normal": 95, "reduced": 55, "increased": 60, "refusing": 20,
			},
			Recommendations: map[string]string{
				"reduced":  "Try warming food slightly or splitting meals; persistent appetite loss over 3 days warrants a vet visit.",
				"refusing": "Refusing food for more than 24 hours is a red flag. Contact your vet.",
			},
		},
		{
			Category: model.CategoryDiet,
			SubKey:   "mealRoutine",
			Text:     "Does your pet eat on a regular schedule?",
			Options: []model.Option{
				{Value: "fixed", Text: "Same times every day"},
				{Value: "loose", Text: "Roughly regular"},
				{Value: "freefeed", Text: "Food is always out"},
			},
			Scores: map[string]int{
				"fixed": 95, "loose": 75, "freefeed": 45,
			},
			Recommendations: map[string]string{
				"freefeed": "Free feeding makes appetite changes hard to spot. Consider two fixed meals a day.",
			},
		},
		{
			Category: model.CategoryDiet,
			SubKey:   "waterIntake",
			Text:     "How much water does your pet drink?",
			Options: []model.Option{
				{Value: "normal", Text: "About the usual amount"},
				{Value: "low", Text: "Noticeably less than usual"},
				{Value: "high", Text: "Noticeably more than usual"},
			},
			Scores: map[string]int{
				"normal": 95, "low": 40, "high": 35,
			},
			Recommendations: map[string]string{
				"low":  "Low water intake risks dehydration, especially on dry food. Add water bowls around the home.",
				"high": "Excessive thirst can signal kidney or endocrine issues. Worth mentioning to your vet.",
			},
		},
		{
			Category: model.CategoryDiet,
			SubKey:   "treats",
			Text:     "What share of your pet's daily food is treats or table scraps?",
			Options: []model.Option{
				{Value: "rare", Text: "Rarely any"},
				{Value: "some", Text: "Under 10%"},
				{Value: "lots", Text: "More than 10%"},
			},
			Scores: map[string]int{
				"rare": 90, "some": 75, "lots": 35,
			},
			Recommendations: map[string]string{
				"lots": "Treats above 10% of daily calories unbalance the diet. Swap in low-calorie options.",
			},
		},

		// energy
		{
			Category: model.CategoryEnergy,
			SubKey:   "activity",
			Text:     "How active is your pet during the day?",
			Options: []model.Option{
				{Value: "playful", Text: "Playful and engaged as usual"},
				{Value: "calm", Text: "Calm but responsive"},
				{Value: "lethargic", Text: "Sleeps most of the day, hard to engage"},
			},
			Scores: map[string]int{
				"playful": 95, "calm": 70, "lethargic": 25,
			},
			Recommendations: map[string]string{
				"lethargic": "A sudden drop in energy lasting more than a couple of days deserves a checkup.",
			},
		},
		{
			Category: model.CategoryEnergy,
			SubKey:   "walks",
			Text:     "How does your pet behave on walks or during play sessions?",
			Options: []model.Option{
				{Value: "eager", Text: "Eager to go, keeps pace"},
				{Value: "slows", Text: "Starts fine but tires quickly"},
				{Value: "reluctant", Text: "Reluctant to move at all"},
			},
			Scores: map[string]int{
				"eager": 95, "slows": 55, "reluctant": 25,
			},
			Recommendations: map[string]string{
				"slows":     "Early fatigue can reflect heart or weight issues. Keep sessions short and watch for heavy panting.",
				"reluctant": "Reluctance to move is often pain-related. Have joints and paws checked.",
			},
		},
		{
			Category: model.CategoryEnergy,
			SubKey:   "sleep",
			Text:     "Has your pet's sleep pattern changed recently?",
			Options: []model.Option{
				{Value: "steady", Text: "Same as always"},
				{Value: "restless", Text: "Restless at night"},
				{Value: "oversleeping", Text: "Sleeping much more than before"},
			},
			Scores: map[string]int{
				"steady": 90, "restless": 50, "oversleeping": 40,
			},
			Recommendations: map[string]string{
				"restless": "Night restlessness in older pets can indicate discomfort or cognitive change.",
			},
		},
		{
			Category: model.CategoryEnergy,
			SubKey:   "mood",
			Text:     "How would you describe your pet's overall mood?",
			Options: []model.Option{
				{Value: "bright", Text: "Bright and affectionate"},
				{Value: "flat", Text: "Flat, less interested in people"},
				{Value: "withdrawn", Text: "Hiding or avoiding contact"},
			},
			Scores: map[string]int{
				"bright": 95, "flat": 50, "withdrawn": 25,
			},
			Recommendations: map[string]string{
				"withdrawn": "Hiding is a common pain signal, particularly in cats. Don't wait it out.",
			},
		},

		// stool
		{
			Category: model.CategoryStool,
			SubKey:   "consistency",
			Text:     "What does your pet's stool usually look like?",
			Options: []model.Option{
				{Value: "firm", Text: "Firm and well formed"},
				{Value: "soft", Text: "Soft but holds shape"},
				{Value: "loose", Text: "Loose or watery"},
				{Value: "hard", Text: "Hard, dry pellets"},
			},
			Scores: map[string]int{
				"firm": 95, "soft": 65, "loose": 25, "hard": 40,
			},
			Recommendations: map[string]string{
				"loose": "Watery stool for more than 48 hours risks dehydration. Withhold treats and see a vet if it persists.",
				"hard":  "Dry stool suggests low water intake or fiber. Increase both gradually.",
			},
		},
		{
			Category: model.CategoryStool,
			SubKey:   "frequency",
			Text:     "How often does your pet defecate?",
			Options: []model.Option{
				{Value: "regular", Text: "Once or twice a day, predictable"},
				{Value: "often", Text: "More often than usual"},
				{Value: "rare", Text: "Skips days"},
			},
			Scores: map[string]int{
				"regular": 95, "often": 50, "rare": 35,
			},
			Recommendations: map[string]string{
				"rare": "Skipping days can mean constipation. Check activity and water intake first.",
			},
		},
		{
			Category: model.CategoryStool,
			SubKey:   "color",
			Text:     "Have you noticed unusual stool color?",
			Options: []model.Option{
				{Value: "normal", Text: "Normal brown"},
				{Value: "dark", Text: "Very dark or tarry"},
				{Value: "pale", Text: "Pale or greyish"},
			},
			Scores: map[string]int{
				"normal": 95, "dark": 15, "pale": 30,
			},
			Recommendations: map[string]string{
				"dark": "Tarry stool can indicate digested blood. This needs prompt veterinary attention.",
				"pale": "Pale stool can point at liver or bile issues. Mention it at your next visit.",
			},
		},
		{
			Category: model.CategoryStool,
			SubKey:   "straining",
			Text:     "Does your pet strain or show discomfort when defecating?",
			Options: []model.Option{
				{Value: "never", Text: "No"},
				{Value: "sometimes", Text: "Occasionally"},
				{Value: "often", Text: "Frequently"},
			},
			Scores: map[string]int{
				"never": 95, "sometimes": 55, "often": 25,
			},
			Recommendations: map[string]string{
				"often": "Frequent straining is uncomfortable and can worsen. Book a checkup.",
			},
		},

		// behavior
		{
			Category: model.CategoryBehavior,
			SubKey:   "sociability",
			Text:     "How does your pet react to family members?",
			Options: []model.Option{
				{Value: "seeks", Text: "Seeks attention as usual"},
				{Value: "neutral", Text: "Indifferent"},
				{Value: "avoids", Text: "Avoids or hides"},
			},
			Scores: map[string]int{
				"seeks": 95, "neutral": 60, "avoids": 30,
			},
			Recommendations: map[string]string{
				"avoids": "A social pet turning avoidant is usually telling you something hurts.",
			},
		},
		{
			Category: model.CategoryBehavior,
			SubKey:   "vocalizing",
			Text:     "Has vocalizing (barking, meowing, whining) changed?",
			Options: []model.Option{
				{Value: "usual", Text: "About the same"},
				{Value: "more", Text: "Noticeably more"},
				{Value: "less", Text: "Noticeably less"},
			},
			Scores: map[string]int{
				"usual": 90, "more": 50, "less": 55,
			},
			Recommendations: map[string]string{
				"more": "Increased vocalizing can reflect anxiety or pain. Note when it happens and share with your vet.",
			},
		},
		{
			Category: model.CategoryBehavior,
			SubKey:   "destructive",
			Text:     "Any destructive behavior or house-soiling lately?",
			Options: []model.Option{
				{Value: "none", Text: "None"},
				{Value: "occasional", Text: "Occasionally"},
				{Value: "frequent", Text: "Frequently"},
			},
			Scores: map[string]int{
				"none": 95, "occasional": 55, "frequent": 30,
			},
			Recommendations: map[string]string{
				"frequent": "Frequent accidents in a house-trained pet are medical until proven behavioral.",
			},
		},
		{
			Category: model.CategoryBehavior,
			SubKey:   "aggression",
			Text:     "Has your pet shown unusual irritability when touched?",
			Options: []model.Option{
				{Value: "no", Text: "No"},
				{Value: "spots", Text: "Only when specific spots are touched"},
				{Value: "general", Text: "Generally irritable"},
			},
			Scores: map[string]int{
				"no": 95, "spots": 35, "general": 40,
			},
			Recommendations: map[string]string{
				"spots": "Flinching at a specific spot points at localized pain. Have that area examined.",
			},
		},

		// joints
		{
			Category: model.CategoryJoints,
			SubKey:   "stiffness",
			Text:     "Does your pet seem stiff after resting?",
			Options: []model.Option{
				{Value: "never", Text: "No"},
				{Value: "morning", Text: "Briefly, after long rests"},
				{Value: "persistent", Text: "Stiff for a while, most days"},
			},
			Scores: map[string]int{
				"never": 95, "morning": 55, "persistent": 25,
			},
			Recommendations: map[string]string{
				"morning":    "Post-rest stiffness is an early arthritis sign. Keep weight down and exercise gentle.",
				"persistent": "Daily stiffness merits a mobility exam and possibly joint support.",
			},
		},
		{
			Category: model.CategoryJoints,
			SubKey:   "stairs",
			Text:     "How does your pet handle stairs or jumping onto furniture?",
			Options: []model.Option{
				{Value: "easily", Text: "No hesitation"},
				{Value: "hesitates", Text: "Hesitates or takes them slowly"},
				{Value: "refuses", Text: "Avoids them entirely"},
			},
			Scores: map[string]int{
				"easily": 95, "hesitates": 50, "refuses": 20,
			},
			Recommendations: map[string]string{
				"refuses": "Refusing stairs or jumps usually means joint pain. Ramps help; a vet visit helps more.",
			},
		},
		{
			Category: model.CategoryJoints,
			SubKey:   "limping",
			Text:     "Have you seen limping or favoring a leg?",
			Options: []model.Option{
				{Value: "no", Text: "No"},
				{Value: "occasional", Text: "Occasionally, resolves quickly"},
				{Value: "regular", Text: "Regularly or worsening"},
			},
			Scores: map[string]int{
				"no": 95, "occasional": 45, "regular": 15,
			},
			Recommendations: map[string]string{
				"occasional": "Intermittent limping still deserves a look if it recurs within a week.",
				"regular":    "A persistent limp should be examined promptly to rule out injury.",
			},
		},

		// skin
		{
			Category: model.CategorySkin,
			SubKey:   "scratching",
			Text:     "How often does your pet scratch, lick, or chew its skin?",
			Options: []model.Option{
				{Value: "grooming", Text: "Normal grooming only"},
				{Value: "frequent", Text: "Frequently, at specific spots"},
				{Value: "constant", Text: "Almost constantly"},
			},
			Scores: map[string]int{
				"grooming": 95, "frequent": 45, "constant": 20,
			},
			Recommendations: map[string]string{
				"frequent": "Spot-scratching suggests parasites or allergy. Check the coat and consider flea prevention.",
				"constant": "Constant scratching breaks skin fast. See a vet before it becomes a hot spot.",
			},
		},
		{
			Category: model.CategorySkin,
			SubKey:   "coat",
			Text:     "How does your pet's coat look?",
			Options: []model.Option{
				{Value: "glossy", Text: "Glossy and full"},
				{Value: "dull", Text: "Dull or flaky"},
				{Value: "patchy", Text: "Thinning or bald patches"},
			},
			Scores: map[string]int{
				"glossy": 95, "dull": 55, "patchy": 25,
			},
			Recommendations: map[string]string{
				"dull":   "A dull coat often tracks diet quality. Look at fatty-acid content in the food.",
				"patchy": "Bald patches need a skin scrape to rule out mites or fungal infection.",
			},
		},
		{
			Category: model.CategorySkin,
			SubKey:   "irritation",
			Text:     "Any redness, bumps, or sores on the skin?",
			Options: []model.Option{
				{Value: "none", Text: "None found"},
				{Value: "minor", Text: "Small red areas"},
				{Value: "open", Text: "Open sores or scabs"},
			},
			Scores: map[string]int{
				"none": 95, "minor": 50, "open": 15,
			},
			Recommendations: map[string]string{
				"minor": "Keep an eye on red areas; photograph them so you can tell if they spread.",
				"open":  "Open sores are infection-prone and need treatment now, not later.",
			},
		},
	}
}
