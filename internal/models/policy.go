package models

import "time"

type Category string

const (
	CategoryHousing       Category = "housing"
	CategoryEmployment    Category = "employment"
	CategoryStartup       Category = "startup"
	CategoryEducation     Category = "education"
	CategoryAssetBuilding Category = "assetBuilding"
	CategoryWelfare       Category = "welfare"
	CategoryCulture       Category = "culture"
	CategoryOther         Category = "other"
)

// Categories lists every valid category in a fixed order. The order is part
// of the external /api/policies/:category contract and of the no-match
// guidance message, so it must stay stable across versions.
var Categories = []Category{
	CategoryHousing,
	CategoryEmployment,
	CategoryStartup,
	CategoryEducation,
	CategoryAssetBuilding,
	CategoryWelfare,
	CategoryCulture,
	CategoryOther,
}

// ValidCategory reports whether c belongs to the closed category set.
func ValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// RegionNationwide is the wildcard region value matched by any region filter.
const RegionNationwide = "nationwide"

// ApplicationWindow is the optional structured form of an application period.
type ApplicationWindow struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Display string    `json:"display"`
}

// PolicyRecord is one youth-support program. Records are immutable once
// loaded into a store snapshot; id is unique within a snapshot.
type PolicyRecord struct {
	ID                string             `json:"id" db:"id"`
	Title             string             `json:"title" db:"title"`
	Category          Category           `json:"category" db:"category"`
	Region            string             `json:"region" db:"region"`
	Description       string             `json:"description" db:"description"`
	SupportAmount     string             `json:"supportAmount" db:"support_amount"`
	EligibilityText   string             `json:"eligibilityText" db:"eligibility_text"`
	ApplicationPeriod string             `json:"applicationPeriod" db:"application_period"`
	ApplicationMethod string             `json:"applicationMethod" db:"application_method"`
	ContactInfo       string             `json:"contactInfo,omitempty" db:"contact_info"`
	URL               string             `json:"url,omitempty" db:"url"`
	ApplicationWindow *ApplicationWindow `json:"applicationWindow,omitempty" db:"-"`
}

// Validate reports why a record cannot enter a store snapshot, or nil.
func (p *PolicyRecord) Validate() error {
	switch {
	case p.ID == "":
		return ErrMissingID
	case p.Title == "":
		return ErrMissingTitle
	case !ValidCategory(p.Category):
		return ErrUnknownCategory
	}
	return nil
}

// ScoredPolicy pairs a record with its relevance score. Similarity is set
// only on results produced by the semantic fallback search.
type ScoredPolicy struct {
	Policy     PolicyRecord `json:"policy"`
	Score      float64      `json:"score"`
	Similarity float64      `json:"similarity,omitempty"`
}
