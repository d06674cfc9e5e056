package repository

import (
	"testing"

	"youthy-chat/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSeedPoliciesAreValid(t *testing.T) {
	seen := map[string]struct{}{}
	categories := map[models.Category]struct{}{}

	for _, p := range SeedPolicies() {
		assert.NoError(t, p.Validate(), "seed policy %q must be loadable", p.ID)

		_, dup := seen[p.ID]
		assert.False(t, dup, "seed policy id %q duplicated", p.ID)
		seen[p.ID] = struct{}{}

		categories[p.Category] = struct{}{}
		assert.NotEmpty(t, p.Region)
		assert.NotEmpty(t, p.Description)
	}

	// The demo dataset should give every major category something to
	// answer with.
	for _, c := range []models.Category{
		models.CategoryHousing, models.CategoryEmployment, models.CategoryStartup,
		models.CategoryEducation, models.CategoryAssetBuilding,
		models.CategoryWelfare, models.CategoryCulture,
	} {
		assert.Contains(t, categories, c)
	}
}
