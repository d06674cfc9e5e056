package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"youthy-chat/internal/dto"
	"youthy-chat/internal/models"
	"youthy-chat/pkg/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxReferences bounds the cited sources per answer.
const maxReferences = 5

// maxHistoryTurns bounds how much client-carried history enters the prompt.
const maxHistoryTurns = 3

// snippetRuneBudget caps a reference snippet.
const snippetRuneBudget = 150

// Completer generates a single answer for a prompt. LLMService
// satisfies this; a nil Completer means template-only operation.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ChatService runs the full question pipeline: tokenize, classify,
// rank, semantically backfill thin results, then synthesize an answer.
// Every dependency failure degrades the answer instead of failing the
// request; the only caller-visible error is an empty message.
type ChatService struct {
	cfg        *config.ChatConfig
	store      *PolicyStore
	classifier *IntentClassifier
	search     *SearchService
	embeddings *EmbeddingService
	ctxBuilder *ContextBuilder
	completer  Completer
	logger     *zap.Logger
}

func NewChatService(
	cfg *config.ChatConfig,
	store *PolicyStore,
	classifier *IntentClassifier,
	search *SearchService,
	embeddings *EmbeddingService,
	completer Completer,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		cfg:        cfg,
		store:      store,
		classifier: classifier,
		search:     search,
		embeddings: embeddings,
		ctxBuilder: NewContextBuilder(cfg.ContextTopK),
		completer:  completer,
		logger:     logger,
	}
}

// ErrEmptyMessage rejects requests with no question text.
var ErrEmptyMessage = fmt.Errorf("message is empty")

// Chat answers one user question.
func (s *ChatService) Chat(ctx context.Context, req dto.ChatRequest) (*dto.ChatResponse, error) {
	start := time.Now()

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	intent := s.classifier.Classify(message)

	// An explicit region filter from the client wins over one detected
	// in the text.
	region := strings.TrimSpace(req.Region)
	if region == "" {
		region = intent.Region
	}

	// Conversational intents skip retrieval entirely.
	if isConversational(intent.Type) {
		return s.respond(start, intent, RenderTemplate(intent, nil, 0), nil, 0), nil
	}

	tokens := Tokenize(message)
	ranked := s.search.Rank(tokens, intent, region, s.store.All())

	// Thin keyword results trigger the semantic fallback; its results
	// backfill the list without displacing keyword matches. The same
	// region and category constraints apply to both branches.
	if len(ranked) < s.cfg.MinKeywordResults {
		semantic := s.embeddings.Search(ctx, message, s.store, s.cfg.TopK)
		semantic = filterCandidates(semantic, intent, region)
		ranked = mergeResults(ranked, semantic, s.cfg.TopK)
	}

	contextPolicies := ranked
	if len(contextPolicies) > s.cfg.ContextTopK {
		contextPolicies = contextPolicies[:s.cfg.ContextTopK]
	}

	answer := s.synthesize(ctx, message, req.Context, intent, contextPolicies, len(ranked))

	return s.respond(start, intent, answer, ranked, len(ranked)), nil
}

// synthesize produces the answer text: one LLM attempt bounded by the
// configured timeout, then the template path on any failure.
func (s *ChatService) synthesize(
	ctx context.Context,
	message string,
	chatCtx *dto.ChatContext,
	intent models.Intent,
	policies []models.ScoredPolicy,
	totalFound int,
) string {
	if s.completer != nil {
		llmCtx, cancel := context.WithTimeout(ctx, s.cfg.LLMTimeout)
		defer cancel()

		prompt := s.buildPrompt(message, chatCtx, policies)
		answer, err := s.completer.Complete(llmCtx, prompt)
		if err == nil && strings.TrimSpace(answer) != "" {
			return answer
		}
		s.logger.Warn("LLM answer generation failed, using template",
			zap.String("intent", string(intent.Type)),
			zap.Error(err),
		)
	}
	return RenderTemplate(intent, policies, totalFound)
}

func (s *ChatService) buildPrompt(message string, chatCtx *dto.ChatContext, policies []models.ScoredPolicy) string {
	var b strings.Builder
	b.WriteString(s.ctxBuilder.Build(policies))

	if chatCtx != nil && len(chatCtx.History) > 0 {
		history := chatCtx.History
		if len(history) > maxHistoryTurns {
			history = history[len(history)-maxHistoryTurns:]
		}
		b.WriteString("\n이전 대화:\n")
		for _, turn := range history {
			fmt.Fprintf(&b, "사용자: %s\nAI: %s\n", turn.User, turn.AI)
		}
	}

	b.WriteString("\n사용자 질문: ")
	b.WriteString(message)
	return b.String()
}

func (s *ChatService) respond(
	start time.Time,
	intent models.Intent,
	answer string,
	ranked []models.ScoredPolicy,
	totalFound int,
) *dto.ChatResponse {
	topPolicies := ranked
	if len(topPolicies) > maxReferences {
		topPolicies = topPolicies[:maxReferences]
	}

	references := make([]dto.Reference, 0, len(topPolicies))
	policies := make([]models.PolicyRecord, 0, len(topPolicies))
	for _, sp := range topPolicies {
		policies = append(policies, sp.Policy)
		references = append(references, dto.Reference{
			Title:   sp.Policy.Title,
			URL:     sp.Policy.URL,
			Snippet: snippet(sp.Policy.Description),
		})
	}

	return &dto.ChatResponse{
		Message:           answer,
		References:        references,
		FollowUpQuestions: GenerateFollowUps(ranked),
		Intent:            string(intent.Type),
		Policies:          policies,
		TotalFound:        totalFound,
		ConversationID:    uuid.New().String(),
		ResponseTimeMs:    time.Since(start).Milliseconds(),
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
	}
}

// Categories returns the category table for the client UI.
func (s *ChatService) Categories() dto.CategoriesResponse {
	infos := make([]dto.CategoryInfo, 0, len(models.Categories))
	for _, c := range models.Categories {
		meta := CategoryMetaFor(c)
		infos = append(infos, dto.CategoryInfo{
			ID:          string(c),
			Label:       meta.Label,
			Emoji:       meta.Emoji,
			Keywords:    meta.Keywords,
			Description: meta.Description,
		})
	}
	return dto.CategoriesResponse{
		Categories: infos,
		TotalCount: len(infos),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
}

// Suggestions returns starter questions, tailored when a known category
// is requested.
func (s *ChatService) Suggestions(category string) dto.SuggestionsResponse {
	now := time.Now().UTC().Format(time.RFC3339)

	c := models.Category(category)
	if category != "" && models.ValidCategory(c) {
		meta := CategoryMetaFor(c)
		suggestions := []string{fmt.Sprintf("%s %s 관련 정책을 알려주세요", meta.Emoji, meta.Label)}
		suggestions = append(suggestions, baseSuggestions[:3]...)
		return dto.SuggestionsResponse{
			Suggestions: suggestions,
			Category:    category,
			Timestamp:   now,
		}
	}

	suggestions := make([]string, len(baseSuggestions))
	copy(suggestions, baseSuggestions)
	return dto.SuggestionsResponse{Suggestions: suggestions, Timestamp: now}
}

func isConversational(t models.IntentType) bool {
	switch t {
	case models.IntentGreeting, models.IntentThanks, models.IntentSelfIntro:
		return true
	}
	return false
}

// filterCandidates applies the ranker's region and category filters to
// semantic results, so the fallback cannot smuggle in policies the
// keyword path would have excluded.
func filterCandidates(candidates []models.ScoredPolicy, intent models.Intent, region string) []models.ScoredPolicy {
	wantCategory, hasCategory := intent.Type.Category()

	out := candidates[:0:0]
	for _, sp := range candidates {
		if region != "" && region != models.RegionNationwide {
			if sp.Policy.Region != region && sp.Policy.Region != models.RegionNationwide {
				continue
			}
		}
		if hasCategory && sp.Policy.Category != wantCategory {
			continue
		}
		out = append(out, sp)
	}
	return out
}

// mergeResults appends semantic results that keyword ranking did not
// already surface, up to limit.
func mergeResults(keyword, semantic []models.ScoredPolicy, limit int) []models.ScoredPolicy {
	seen := make(map[string]struct{}, len(keyword))
	for _, sp := range keyword {
		seen[sp.Policy.ID] = struct{}{}
	}

	merged := keyword
	for _, sp := range semantic {
		if len(merged) >= limit {
			break
		}
		if _, dup := seen[sp.Policy.ID]; dup {
			continue
		}
		seen[sp.Policy.ID] = struct{}{}
		merged = append(merged, sp)
	}
	return merged
}

func snippet(description string) string {
	runes := []rune(strings.TrimSpace(description))
	if len(runes) <= snippetRuneBudget {
		return string(runes)
	}
	return string(runes[:snippetRuneBudget]) + "..."
}
