package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "korean query",
			in:   "서울 월세 지원 알려줘",
			want: []string{"서울", "월세", "지원"},
		},
		{
			name: "punctuation split",
			in:   "취업/창업, 교육!",
			want: []string{"취업", "창업", "교육"},
		},
		{
			name: "single rune dropped",
			in:   "집 구하기",
			want: []string{"구하기"},
		},
		{
			name: "stop words dropped",
			in:   "청년 적금에 대해 알려주세요",
			want: []string{"청년", "적금에"},
		},
		{
			name: "mixed case english",
			in:   "What about Youth Housing",
			want: []string{"youth", "housing"},
		},
		{
			name: "empty",
			in:   "",
			want: []string{},
		},
		{
			name: "whitespace only",
			in:   "   \t  ",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}
}

func TestTokenizeDeterminism(t *testing.T) {
	in := "부산 청년 창업 지원금 신청 방법"
	first := Tokenize(in)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Tokenize(in))
	}
}
