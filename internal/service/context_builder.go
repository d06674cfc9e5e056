package service

import (
	"fmt"
	"strings"

	"youthy-chat/internal/models"
)

// fieldRuneBudget caps every single field in the context block, so the
// total prompt size stays proportional to the policy cap.
const fieldRuneBudget = 300

// ContextBuilder turns ranked policies into the plain-text block handed
// to the answer generator. Pure and total: missing fields become
// placeholders rather than disappearing, which keeps the block's shape
// stable for the prompt.
type ContextBuilder struct {
	topK int
}

func NewContextBuilder(topK int) *ContextBuilder {
	return &ContextBuilder{topK: topK}
}

// Build renders up to topK policies into the context block. An empty
// input yields a fixed no-data line, never an empty string.
func (b *ContextBuilder) Build(policies []models.ScoredPolicy) string {
	if len(policies) == 0 {
		return "관련 정책을 찾지 못했습니다."
	}
	if len(policies) > b.topK {
		policies = policies[:b.topK]
	}

	var sb strings.Builder
	sb.WriteString("다음은 관련 청년 정책 정보입니다:\n")
	for i, sp := range policies {
		p := sp.Policy
		fmt.Fprintf(&sb, "\n[정책 %d] %s\n", i+1, truncateField(p.Title))
		fmt.Fprintf(&sb, "- 신청 자격: %s\n", contextField(p.EligibilityText))
		fmt.Fprintf(&sb, "- 지원 내용: %s\n", contextField(p.SupportAmount))
		fmt.Fprintf(&sb, "- 신청 기간: %s\n", contextField(p.ApplicationPeriod))
		fmt.Fprintf(&sb, "- 신청 방법: %s\n", contextField(p.ApplicationMethod))
		fmt.Fprintf(&sb, "- 문의: %s\n", contextField(p.ContactInfo))
		fmt.Fprintf(&sb, "- URL: %s\n", contextField(p.URL))
	}
	return sb.String()
}

func contextField(s string) string {
	return truncateField(orPlaceholder(s))
}

func truncateField(s string) string {
	runes := []rune(s)
	if len(runes) <= fieldRuneBudget {
		return s
	}
	return string(runes[:fieldRuneBudget]) + "..."
}
