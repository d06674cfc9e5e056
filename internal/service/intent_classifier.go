package service

import (
	"regexp"
	"strings"

	"youthy-chat/internal/models"
)

type intentRule struct {
	Type     models.IntentType
	Keywords []string
}

// intentRules is the classification priority order: the first rule whose
// keyword appears in the text wins. The order is behavior-visible and must
// stay stable across versions: conversational intents outrank topical
// ones so that "고마워, 취업 정보 잘 봤어" still closes the conversation,
// and topical intents outrank the age-band catch-alls.
var intentRules = []intentRule{
	{models.IntentGreeting, []string{"안녕", "하이", "반가워", "hello", "hi "}},
	{models.IntentThanks, []string{"고마워", "고맙습니다", "감사"}},
	{models.IntentSelfIntro, []string{"누구야", "누구니", "자기소개", "넌 뭐", "너는 뭐", "소개해"}},
	{models.IntentHousing, []string{"주거", "월세", "전세", "임대", "주택", "자취", "보증금"}},
	{models.IntentEmployment, []string{"취업", "일자리", "구직", "채용", "면접", "인턴"}},
	{models.IntentStartup, []string{"창업", "스타트업", "벤처", "사업"}},
	{models.IntentEducation, []string{"교육", "학습", "강의", "자격증", "훈련", "연수"}},
	{models.IntentSavings, []string{"적금", "저축", "자산", "목돈", "통장", "재테크"}},
	{models.IntentPopular, []string{"인기", "많이 찾는", "추천해", "핫한"}},
	{models.IntentAgeBand20s, []string{"20대", "이십대"}},
	{models.IntentAgeBand30s, []string{"30대", "삼십대"}},
	{models.IntentRegional, []string{"지역", "동네", "우리 구", "자치구"}},
}

var (
	age20sPattern = regexp.MustCompile(`\b2[0-9]세`)
	age30sPattern = regexp.MustCompile(`\b3[0-9]세`)
)

// IntentClassifier maps free text to a discrete intent, an optional
// region and an optional age band. Classification is total: every input
// maps to exactly one type, defaulting to general.
type IntentClassifier struct {
	regions *RegionTable
}

func NewIntentClassifier(regions *RegionTable) *IntentClassifier {
	return &IntentClassifier{regions: regions}
}

// Classify runs three independent passes over the message: ordered rule
// matching for the type, region-table scanning on the raw text, and
// age-band detection.
func (c *IntentClassifier) Classify(raw string) models.Intent {
	normalized := strings.ToLower(strings.TrimSpace(raw))

	intent := models.Intent{Type: models.IntentGeneral}
	for _, rule := range intentRules {
		if containsAny(normalized, rule.Keywords) {
			intent.Type = rule.Type
			break
		}
	}

	// Region names are matched against the raw text: the tables carry
	// proper names whose casing and spacing must survive normalization.
	intent.Region = c.regions.Extract(raw)
	intent.AgeBand = detectAgeBand(normalized)

	return intent
}

func detectAgeBand(text string) models.AgeBand {
	switch {
	case strings.Contains(text, "20대"), strings.Contains(text, "이십대"), age20sPattern.MatchString(text):
		return models.AgeBand20s
	case strings.Contains(text, "30대"), strings.Contains(text, "삼십대"), age30sPattern.MatchString(text):
		return models.AgeBand30s
	}
	return ""
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
