package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"youthy-chat/internal/dto"
	"youthy-chat/internal/models"
	"youthy-chat/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCompleter struct {
	answer string
	err    error
	prompt string
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func newTestChatService(t *testing.T, completer Completer, policies []models.PolicyRecord) *ChatService {
	t.Helper()
	cfg := testChatConfig()
	cfg.CacheTTL = 30 * time.Minute
	cfg.LLMTimeout = time.Second
	return newTestChatServiceWithConfig(t, cfg, completer, policies)
}

func newTestChatServiceWithConfig(t *testing.T, cfg *config.ChatConfig, completer Completer, policies []models.PolicyRecord) *ChatService {
	t.Helper()
	logger := zap.NewNop()

	store := NewPolicyStore(logger)
	store.Reload(policies)

	embeddings := NewEmbeddingService(cfg, nil, &fakeClock{now: time.Now()}, logger)
	require.NoError(t, embeddings.Rebuild(context.Background(), store.All()))

	regions, err := LoadRegionTable("")
	require.NoError(t, err)

	return NewChatService(
		cfg,
		store,
		NewIntentClassifier(regions),
		NewSearchService(cfg, logger),
		embeddings,
		completer,
		logger,
	)
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	svc := newTestChatService(t, nil, testPolicies())

	_, err := svc.Chat(context.Background(), dto.ChatRequest{Message: "   "})
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestChatSeoulRentScenario(t *testing.T) {
	svc := newTestChatService(t, nil, testPolicies())

	resp, err := svc.Chat(context.Background(), dto.ChatRequest{Message: "서울 월세 지원"})
	require.NoError(t, err)

	assert.Equal(t, "housing", resp.Intent)
	// Template path: the answer names the top policy and its amount.
	assert.Contains(t, resp.Message, "서울 월세 지원")
	assert.Contains(t, resp.Message, "월 20만원")
	assert.Len(t, resp.FollowUpQuestions, 3)
	assert.Equal(t, categoryMeta[models.CategoryHousing].FollowUps, resp.FollowUpQuestions)

	for _, p := range resp.Policies {
		assert.Contains(t, []string{"서울", models.RegionNationwide}, p.Region)
	}

	assert.NotEmpty(t, resp.ConversationID)
	_, err = time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, err)
}

func TestChatNonsenseQueryStillAnswers(t *testing.T) {
	svc := newTestChatService(t, nil, testPolicies())

	resp, err := svc.Chat(context.Background(), dto.ChatRequest{Message: "ㅁㅁㅁ"})
	require.NoError(t, err)

	// No keyword hits: the semantic fallback supplies an ordering and
	// the answer stays non-empty.
	assert.Equal(t, "general", resp.Intent)
	assert.NotEmpty(t, resp.Message)
	assert.Positive(t, resp.TotalFound)
}

func TestChatEmptyCollectionStillAnswers(t *testing.T) {
	svc := newTestChatService(t, nil, nil)

	resp, err := svc.Chat(context.Background(), dto.ChatRequest{Message: "서울 월세 지원"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Message)
	assert.Zero(t, resp.TotalFound)
	assert.Empty(t, resp.References)
}

func TestChatConversationalShortCircuit(t *testing.T) {
	svc := newTestChatService(t, nil, testPolicies())

	resp, err := svc.Chat(context.Background(), dto.ChatRequest{Message: "안녕하세요"})
	require.NoError(t, err)

	assert.Equal(t, "greeting", resp.Intent)
	assert.NotEmpty(t, resp.Message)
	assert.Empty(t, resp.Policies)
	assert.Zero(t, resp.TotalFound)
}

func TestChatBoundedOutputs(t *testing.T) {
	var many []models.PolicyRecord
	for i := 0; i < 30; i++ {
		many = append(many, models.PolicyRecord{
			ID:          fmt.Sprintf("policy-%02d", i),
			Title:       fmt.Sprintf("청년 주거 지원 %d", i),
			Category:    models.CategoryHousing,
			Region:      models.RegionNationwide,
			Description: "월세 지원",
		})
	}
	svc := newTestChatService(t, nil, many)

	resp, err := svc.Chat(context.Background(), dto.ChatRequest{Message: "월세 지원"})
	require.NoError(t, err)

	assert.LessOrEqual(t, len(resp.References), 5)
	assert.LessOrEqual(t, len(resp.Policies), 5)
	assert.LessOrEqual(t, len(resp.FollowUpQuestions), 3)
	assert.LessOrEqual(t, resp.TotalFound, 10)
}

func TestChatUsesLLMAnswer(t *testing.T) {
	completer := &fakeCompleter{answer: "서울 월세 지원 정책을 추천드려요."}
	svc := newTestChatService(t, completer, testPolicies())

	resp, err := svc.Chat(context.Background(), dto.ChatRequest{
		Message: "서울 월세 지원",
		Context: &dto.ChatContext{History: []dto.ChatTurn{
			{User: "첫 질문", AI: "첫 답변"},
			{User: "둘째 질문", AI: "둘째 답변"},
			{User: "셋째 질문", AI: "셋째 답변"},
			{User: "넷째 질문", AI: "넷째 답변"},
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, completer.answer, resp.Message)
	// The prompt carries the policy context and the last three turns only.
	assert.Contains(t, completer.prompt, "서울 월세 지원")
	assert.Contains(t, completer.prompt, "둘째 질문")
	assert.NotContains(t, completer.prompt, "첫 질문")
}

func TestChatFallsBackOnLLMFailure(t *testing.T) {
	completer := &fakeCompleter{err: fmt.Errorf("provider down")}
	svc := newTestChatService(t, completer, testPolicies())

	resp, err := svc.Chat(context.Background(), dto.ChatRequest{Message: "서울 월세 지원"})
	require.NoError(t, err)

	// Template fallback still names the top policy.
	assert.Contains(t, resp.Message, "서울 월세 지원")
	assert.NotEmpty(t, resp.Message)
}

func TestChatExplicitRegionOverridesDetected(t *testing.T) {
	svc := newTestChatService(t, nil, testPolicies())

	resp, err := svc.Chat(context.Background(), dto.ChatRequest{
		Message: "서울 월세 지원",
		Region:  "부산",
	})
	require.NoError(t, err)

	for _, p := range resp.Policies {
		assert.Contains(t, []string{"부산", models.RegionNationwide}, p.Region)
	}
}
