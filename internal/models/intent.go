package models

type IntentType string

const (
	IntentHousing    IntentType = "housing"
	IntentEmployment IntentType = "employment"
	IntentStartup    IntentType = "startup"
	IntentEducation  IntentType = "education"
	IntentSavings    IntentType = "savings"
	IntentPopular    IntentType = "popular"
	IntentAgeBand20s IntentType = "ageBand20s"
	IntentAgeBand30s IntentType = "ageBand30s"
	IntentRegional   IntentType = "regional"
	IntentSelfIntro  IntentType = "selfIntro"
	IntentGreeting   IntentType = "greeting"
	IntentThanks     IntentType = "thanks"
	IntentGeneral    IntentType = "general"
)

type AgeBand string

const (
	AgeBand20s AgeBand = "20s"
	AgeBand30s AgeBand = "30s"
)

// Intent is derived from a single request and discarded afterwards.
type Intent struct {
	Type    IntentType
	Region  string
	AgeBand AgeBand
}

// Category maps an intent type to the policy category it filters on.
// Intents without a category mapping return false.
func (t IntentType) Category() (Category, bool) {
	switch t {
	case IntentHousing:
		return CategoryHousing, true
	case IntentEmployment:
		return CategoryEmployment, true
	case IntentStartup:
		return CategoryStartup, true
	case IntentEducation:
		return CategoryEducation, true
	case IntentSavings:
		return CategoryAssetBuilding, true
	}
	return "", false
}

// KeepsZeroScores reports whether zero-scored candidates stay in the
// ranking for this intent. General and age-band questions should always
// surface something; topical intents drop non-matches so an empty result
// can signal "no relevant policy found".
func (t IntentType) KeepsZeroScores() bool {
	switch t {
	case IntentGeneral, IntentAgeBand20s, IntentAgeBand30s:
		return true
	}
	return false
}
