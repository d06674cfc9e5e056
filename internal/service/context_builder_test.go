package service

import (
	"strings"
	"testing"

	"youthy-chat/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestContextBuilderRendersFields(t *testing.T) {
	b := NewContextBuilder(5)
	block := b.Build([]models.ScoredPolicy{
		{Policy: models.PolicyRecord{
			ID:                "p1",
			Title:             "서울 월세 지원",
			SupportAmount:     "월 20만원",
			EligibilityText:   "만 19세~34세",
			ApplicationPeriod: "연중 상시",
			ApplicationMethod: "온라인 신청",
			ContactInfo:       "02-1234-5678",
			URL:               "https://example.org/",
		}},
	})

	assert.Contains(t, block, "[정책 1] 서울 월세 지원")
	assert.Contains(t, block, "지원 내용: 월 20만원")
	assert.Contains(t, block, "신청 자격: 만 19세~34세")
	assert.Contains(t, block, "신청 기간: 연중 상시")
	assert.Contains(t, block, "문의: 02-1234-5678")
	assert.Contains(t, block, "URL: https://example.org/")
}

func TestContextBuilderPlaceholders(t *testing.T) {
	b := NewContextBuilder(5)
	block := b.Build([]models.ScoredPolicy{
		{Policy: models.PolicyRecord{ID: "p1", Title: "필드 없는 정책"}},
	})

	// Missing fields keep their slot with a placeholder instead of
	// disappearing.
	assert.Equal(t, 6, strings.Count(block, "정보 없음"))
}

func TestContextBuilderTruncatesLongFields(t *testing.T) {
	b := NewContextBuilder(5)
	long := strings.Repeat("가", 500)
	block := b.Build([]models.ScoredPolicy{
		{Policy: models.PolicyRecord{ID: "p1", Title: "정책", EligibilityText: long}},
	})

	assert.NotContains(t, block, long)
	assert.Contains(t, block, strings.Repeat("가", fieldRuneBudget)+"...")
}

func TestContextBuilderCapsPolicies(t *testing.T) {
	b := NewContextBuilder(2)
	policies := []models.ScoredPolicy{
		{Policy: models.PolicyRecord{ID: "1", Title: "첫째"}},
		{Policy: models.PolicyRecord{ID: "2", Title: "둘째"}},
		{Policy: models.PolicyRecord{ID: "3", Title: "셋째"}},
	}

	block := b.Build(policies)
	assert.Contains(t, block, "첫째")
	assert.Contains(t, block, "둘째")
	assert.NotContains(t, block, "셋째")
}

func TestContextBuilderEmptyInput(t *testing.T) {
	b := NewContextBuilder(5)
	assert.NotEmpty(t, b.Build(nil))
}
