package service

import "youthy-chat/internal/models"

// maxFollowUps bounds the suggested next questions per answer.
const maxFollowUps = 3

// GenerateFollowUps maps the categories of the matched policies to a
// deduplicated list of canned follow-up questions. Pure, no state.
// Categories contribute in match order, so the first matched category's
// questions come first; with no matches the default set applies.
func GenerateFollowUps(policies []models.ScoredPolicy) []string {
	seenCategory := make(map[models.Category]struct{})
	seenQuestion := make(map[string]struct{})

	followUps := make([]string, 0, maxFollowUps)
	appendQuestions := func(questions []string) {
		for _, q := range questions {
			if len(followUps) >= maxFollowUps {
				return
			}
			if _, dup := seenQuestion[q]; dup {
				continue
			}
			seenQuestion[q] = struct{}{}
			followUps = append(followUps, q)
		}
	}

	for _, sp := range policies {
		if len(followUps) >= maxFollowUps {
			break
		}
		c := sp.Policy.Category
		if _, done := seenCategory[c]; done {
			continue
		}
		seenCategory[c] = struct{}{}
		appendQuestions(CategoryMetaFor(c).FollowUps)
	}

	if len(followUps) == 0 {
		appendQuestions(defaultFollowUps)
	}
	return followUps
}
