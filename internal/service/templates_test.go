package service

import (
	"testing"

	"youthy-chat/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRenderTemplateIsTotal(t *testing.T) {
	intents := []models.IntentType{
		models.IntentGreeting, models.IntentThanks, models.IntentSelfIntro,
		models.IntentHousing, models.IntentEmployment, models.IntentStartup,
		models.IntentEducation, models.IntentSavings, models.IntentPopular,
		models.IntentAgeBand20s, models.IntentAgeBand30s, models.IntentRegional,
		models.IntentGeneral, models.IntentType("unknown"),
	}

	for _, it := range intents {
		t.Run(string(it), func(t *testing.T) {
			// Even with zero matched policies every intent renders a
			// non-empty message.
			msg := RenderTemplate(models.Intent{Type: it}, nil, 0)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestHousingTemplateRendersPolicies(t *testing.T) {
	policies := []models.ScoredPolicy{
		{Policy: models.PolicyRecord{
			ID:            "seoul-rent",
			Title:         "서울 월세 지원",
			Category:      models.CategoryHousing,
			SupportAmount: "월 20만원",
		}},
	}

	msg := RenderTemplate(models.Intent{Type: models.IntentHousing, Region: "서울"}, policies, 1)
	assert.Contains(t, msg, "🏠")
	assert.Contains(t, msg, "서울 월세 지원")
	assert.Contains(t, msg, "월 20만원")
	assert.Contains(t, msg, "서울")
}

func TestTemplateClosingNote(t *testing.T) {
	policies := []models.ScoredPolicy{
		{Policy: models.PolicyRecord{ID: "a", Title: "정책 A", Category: models.CategoryHousing}},
	}

	withMore := RenderTemplate(models.Intent{Type: models.IntentHousing}, policies, 7)
	assert.Contains(t, withMore, "6개의 정책이 더 있어요")

	exact := RenderTemplate(models.Intent{Type: models.IntentHousing}, policies, 1)
	assert.NotContains(t, exact, "더 있어요")
}

func TestNoMatchMessageEnumeratesCategories(t *testing.T) {
	msg := NoMatchMessage()
	assert.NotEmpty(t, msg)
	for _, c := range models.Categories {
		meta := CategoryMetaFor(c)
		assert.Contains(t, msg, meta.Label)
		assert.Contains(t, msg, meta.Emoji)
	}
}

func TestTopicTemplateZeroMatch(t *testing.T) {
	msg := RenderTemplate(models.Intent{Type: models.IntentSavings}, nil, 0)
	assert.Equal(t, NoMatchMessage(), msg)
}

func TestCategoryMetaForUnknown(t *testing.T) {
	meta := CategoryMetaFor(models.Category("weird"))
	assert.Equal(t, "기타", meta.Label)
}
