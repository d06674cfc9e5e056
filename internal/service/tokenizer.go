package service

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// stopWords are filler tokens that carry no retrieval signal.
var stopWords = map[string]struct{}{
	"그리고": {}, "그런데": {}, "하지만": {}, "그래서": {},
	"있나요": {}, "있을까요": {}, "있어요": {}, "어떤": {}, "어떻게": {},
	"무엇": {}, "뭐가": {}, "궁금해요": {}, "궁금합니다": {},
	"알려줘": {}, "알려주세요": {}, "해주세요": {}, "주세요": {},
	"대해": {}, "대한": {}, "관련": {}, "관해": {},
	"the": {}, "and": {}, "for": {}, "about": {}, "what": {}, "how": {},
}

// Tokenize splits raw text into lower-cased keyword tokens. Tokens of a
// single rune and stop-words are dropped. Pure: the same input always
// yields the same sequence, and empty input yields an empty sequence.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)
	fields := strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) < 2 {
			continue
		}
		if _, stop := stopWords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
