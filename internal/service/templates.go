package service

import (
	"fmt"
	"strings"

	"youthy-chat/internal/models"
)

// CategoryMeta is the presentation table for a policy category: the
// Korean label and emoji used in rendered answers, the keywords used
// for suggestion matching, and the canned follow-up questions.
// The emoji and field ordering are part of the rendered output contract
// and are covered by golden-substring tests.
type CategoryMeta struct {
	Label       string
	Emoji       string
	Description string
	Keywords    []string
	FollowUps   []string
}

var categoryMeta = map[models.Category]CategoryMeta{
	models.CategoryHousing: {
		Label:       "주거",
		Emoji:       "🏠",
		Description: "월세, 전세, 임대주택 등 주거 지원",
		Keywords:    []string{"주거", "임대", "전세", "월세", "주택", "자취"},
		FollowUps: []string{
			"전세 대출도 받을 수 있나요?",
			"임대주택 입주 조건은 어떻게 되나요?",
			"주거 지원 외에 생활비 지원도 있나요?",
		},
	},
	models.CategoryEmployment: {
		Label:       "취업",
		Emoji:       "💼",
		Description: "일자리, 구직, 채용, 인턴 지원",
		Keywords:    []string{"취업", "일자리", "구직", "채용", "면접"},
		FollowUps: []string{
			"취업 교육 프로그램도 있나요?",
			"인턴십 기회는 어떻게 찾나요?",
			"구직활동 지원금도 받을 수 있나요?",
		},
	},
	models.CategoryStartup: {
		Label:       "창업",
		Emoji:       "🚀",
		Description: "사업, 스타트업, 기업가 지원",
		Keywords:    []string{"창업", "사업", "스타트업", "기업가"},
		FollowUps: []string{
			"창업 교육은 어디서 받을 수 있나요?",
			"사업자 등록 지원도 있나요?",
			"창업 멘토링 프로그램이 있을까요?",
		},
	},
	models.CategoryEducation: {
		Label:       "교육",
		Emoji:       "📚",
		Description: "학습, 강의, 자격증, 직업 훈련",
		Keywords:    []string{"교육", "학습", "강의", "자격증", "연수"},
		FollowUps: []string{
			"온라인 교육 프로그램도 있나요?",
			"교육비 지원은 어떻게 받나요?",
			"직업 훈련 과정은 어떤 것들이 있나요?",
		},
	},
	models.CategoryAssetBuilding: {
		Label:       "자산형성",
		Emoji:       "💰",
		Description: "적금, 저축, 목돈 마련 지원",
		Keywords:    []string{"금융", "적금", "저축", "자산", "통장"},
		FollowUps: []string{
			"청년 적금 가입 조건은 어떻게 되나요?",
			"정부 매칭 지원금은 얼마나 받나요?",
			"중도 해지하면 어떻게 되나요?",
		},
	},
	models.CategoryWelfare: {
		Label:       "복지",
		Emoji:       "🤝",
		Description: "생활비, 의료, 상담 등 생활 지원",
		Keywords:    []string{"복지", "지원금", "수당", "생활비", "의료"},
		FollowUps: []string{
			"의료비 지원도 받을 수 있나요?",
			"심리상담 서비스는 어떻게 이용하나요?",
			"생활비 지원 외에 다른 복지 혜택은?",
		},
	},
	models.CategoryCulture: {
		Label:       "문화",
		Emoji:       "🎨",
		Description: "문화, 예술, 공연, 전시 지원",
		Keywords:    []string{"문화", "예술", "공연", "전시"},
		FollowUps: []string{
			"예술 활동 지원은 어떻게 받나요?",
			"문화 체험 프로그램 신청 방법은?",
			"공연 관람 할인 혜택도 있나요?",
		},
	},
	models.CategoryOther: {
		Label:       "기타",
		Emoji:       "📋",
		Description: "그 밖의 청년 지원 정책",
		Keywords:    []string{"정책", "지원", "혜택"},
		FollowUps: []string{
			"다른 카테고리 정책도 궁금해요",
			"신청 방법을 자세히 알려주세요",
			"비슷한 다른 정책도 있나요?",
		},
	},
}

// CategoryMetaFor returns the presentation table entry for a category,
// defaulting to the "other" entry for unknown values.
func CategoryMetaFor(c models.Category) CategoryMeta {
	if meta, ok := categoryMeta[c]; ok {
		return meta
	}
	return categoryMeta[models.CategoryOther]
}

// defaultFollowUps is used when no matched category contributes any.
var defaultFollowUps = []string{
	"다른 카테고리 정책도 궁금해요",
	"신청 방법을 자세히 알려주세요",
	"비슷한 다른 정책도 있나요?",
}

// baseSuggestions are the starter questions surfaced before the user
// has asked anything.
var baseSuggestions = []string{
	"청년들이 받을 수 있는 주거 지원 정책은 어떤 것들이 있나요?",
	"대학생도 신청할 수 있는 취업 지원 프로그램을 알려주세요.",
	"청년 창업을 준비하는데 도움받을 수 있는 정책이 있을까요?",
	"청년 적금이나 자산형성 지원 정책 알려주세요.",
	"지역별로 다른 청년 정책이 있나요?",
	"대학생 생활비 지원 정책은 어떤 게 있나요?",
}

// templateFunc renders a complete answer for one intent type.
type templateFunc func(intent models.Intent, policies []models.ScoredPolicy, totalFound int) string

// intentTemplates is a dispatch table rather than a switch: adding an
// intent is a data change, and a missing entry falls through to the
// general template instead of panicking.
var intentTemplates map[models.IntentType]templateFunc

func init() {
	intentTemplates = map[models.IntentType]templateFunc{
		models.IntentGreeting:   renderGreeting,
		models.IntentThanks:     renderThanks,
		models.IntentSelfIntro:  renderSelfIntro,
		models.IntentHousing:    topicTemplate(models.CategoryHousing),
		models.IntentEmployment: topicTemplate(models.CategoryEmployment),
		models.IntentStartup:    topicTemplate(models.CategoryStartup),
		models.IntentEducation:  topicTemplate(models.CategoryEducation),
		models.IntentSavings:    topicTemplate(models.CategoryAssetBuilding),
		models.IntentPopular:    renderPopular,
		models.IntentAgeBand20s: renderAgeBand,
		models.IntentAgeBand30s: renderAgeBand,
		models.IntentRegional:   renderRegional,
		models.IntentGeneral:    renderGeneral,
	}
}

// RenderTemplate produces the deterministic answer for an intent. It is
// total: every intent renders a non-empty message, and the zero-match
// case yields the fixed guidance message.
func RenderTemplate(intent models.Intent, policies []models.ScoredPolicy, totalFound int) string {
	render, ok := intentTemplates[intent.Type]
	if !ok {
		render = renderGeneral
	}
	return render(intent, policies, totalFound)
}

func renderGreeting(models.Intent, []models.ScoredPolicy, int) string {
	return "안녕하세요! 청년 정책 안내 챗봇 유씨입니다. 😊\n\n" +
		"주거, 취업, 창업, 교육, 자산형성, 복지, 문화 분야의 청년 정책을 안내해 드려요.\n" +
		"궁금한 정책이 있으면 편하게 물어보세요!\n\n" +
		"예시: \"서울 월세 지원 정책 알려주세요\", \"청년 적금 뭐가 있나요?\""
}

func renderThanks(models.Intent, []models.ScoredPolicy, int) string {
	return "도움이 되었다니 기뻐요! 😊 청년 정책에 대해 더 궁금한 점이 있으면 언제든지 물어보세요."
}

func renderSelfIntro(models.Intent, []models.ScoredPolicy, int) string {
	var b strings.Builder
	b.WriteString("저는 청년 정책 안내 챗봇 유씨예요! 🤖\n\n이런 분야의 정책을 찾아드릴 수 있어요:\n")
	for _, c := range models.Categories {
		meta := categoryMeta[c]
		fmt.Fprintf(&b, "%s **%s**: %s\n", meta.Emoji, meta.Label, meta.Description)
	}
	b.WriteString("\n궁금한 분야를 말씀해 주세요!")
	return b.String()
}

// topicTemplate builds the renderer for a single-category topical intent.
func topicTemplate(category models.Category) templateFunc {
	return func(intent models.Intent, policies []models.ScoredPolicy, totalFound int) string {
		meta := categoryMeta[category]
		if len(policies) == 0 {
			return NoMatchMessage()
		}

		var b strings.Builder
		fmt.Fprintf(&b, "%s %s 분야에서 이런 정책을 찾았어요!\n", meta.Emoji, meta.Label)
		if intent.Region != "" && intent.Region != models.RegionNationwide {
			fmt.Fprintf(&b, "(%s 지역과 전국 단위 정책 기준)\n", intent.Region)
		}
		b.WriteString(renderPolicyList(policies))
		appendClosingNote(&b, len(policies), totalFound)
		return b.String()
	}
}

func renderPopular(_ models.Intent, policies []models.ScoredPolicy, totalFound int) string {
	if len(policies) == 0 {
		return NoMatchMessage()
	}
	var b strings.Builder
	b.WriteString("✨ 청년들이 많이 찾는 정책을 모아봤어요!\n")
	b.WriteString(renderPolicyList(policies))
	appendClosingNote(&b, len(policies), totalFound)
	return b.String()
}

func renderAgeBand(intent models.Intent, policies []models.ScoredPolicy, totalFound int) string {
	if len(policies) == 0 {
		return NoMatchMessage()
	}
	label := "청년"
	switch intent.AgeBand {
	case models.AgeBand20s:
		label = "20대"
	case models.AgeBand30s:
		label = "30대"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "🎯 %s 청년이 신청할 수 있는 정책이에요!\n", label)
	b.WriteString(renderPolicyList(policies))
	appendClosingNote(&b, len(policies), totalFound)
	return b.String()
}

func renderRegional(intent models.Intent, policies []models.ScoredPolicy, totalFound int) string {
	if len(policies) == 0 {
		return NoMatchMessage()
	}
	var b strings.Builder
	if intent.Region != "" && intent.Region != models.RegionNationwide {
		fmt.Fprintf(&b, "📍 %s 지역 청년 정책을 찾았어요!\n", intent.Region)
	} else {
		b.WriteString("📍 지역별 청년 정책을 찾았어요!\n")
	}
	b.WriteString(renderPolicyList(policies))
	appendClosingNote(&b, len(policies), totalFound)
	return b.String()
}

func renderGeneral(_ models.Intent, policies []models.ScoredPolicy, totalFound int) string {
	if len(policies) == 0 {
		return NoMatchMessage()
	}
	var b strings.Builder
	b.WriteString("질문과 관련해 이런 정책을 찾았어요!\n")
	b.WriteString(renderPolicyList(policies))
	appendClosingNote(&b, len(policies), totalFound)
	return b.String()
}

// renderPolicyList formats each policy with a fixed field order: title,
// support amount, eligibility, period, method, contact, URL.
func renderPolicyList(policies []models.ScoredPolicy) string {
	var b strings.Builder
	for i, sp := range policies {
		p := sp.Policy
		meta := CategoryMetaFor(p.Category)
		fmt.Fprintf(&b, "\n%s **%d. %s**\n", meta.Emoji, i+1, p.Title)
		fmt.Fprintf(&b, "   💰 지원 내용: %s\n", orPlaceholder(p.SupportAmount))
		fmt.Fprintf(&b, "   ✅ 신청 자격: %s\n", orPlaceholder(p.EligibilityText))
		fmt.Fprintf(&b, "   📅 신청 기간: %s\n", orPlaceholder(p.ApplicationPeriod))
		fmt.Fprintf(&b, "   📝 신청 방법: %s\n", orPlaceholder(p.ApplicationMethod))
		fmt.Fprintf(&b, "   ☎️ 문의: %s\n", orPlaceholder(p.ContactInfo))
		if p.URL != "" {
			fmt.Fprintf(&b, "   🔗 %s\n", p.URL)
		}
	}
	return b.String()
}

func appendClosingNote(b *strings.Builder, shown, totalFound int) {
	if totalFound > shown {
		fmt.Fprintf(b, "\n이 외에도 %d개의 정책이 더 있어요. 조건을 좁혀서 다시 물어보시면 더 정확히 찾아드릴게요!", totalFound-shown)
	}
}

// NoMatchMessage is the fixed zero-match answer. It enumerates the
// supported categories so the user can reformulate.
func NoMatchMessage() string {
	var b strings.Builder
	b.WriteString("죄송해요, 조건에 맞는 정책을 찾지 못했어요. 😢\n\n이런 분야로 다시 물어봐 주시겠어요?\n")
	for _, c := range models.Categories {
		meta := categoryMeta[c]
		fmt.Fprintf(&b, "%s **%s**: %s\n", meta.Emoji, meta.Label, meta.Description)
	}
	b.WriteString("\n예시: \"서울 월세 지원 정책 알려주세요\"")
	return b.String()
}

func orPlaceholder(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "정보 없음"
	}
	return s
}
