package service

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"youthy-chat/pkg/config"

	"github.com/Role1776/gigago"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LLMService wraps the GigaChat API for answer generation and text
// embeddings. Generation goes through the gigago client; embeddings use
// the REST API directly with a cached access token, since the client
// does not expose the embeddings endpoint.
type LLMService struct {
	client      *gigago.Client
	model       *gigago.GenerativeModel
	config      *config.GigaChatConfig
	logger      *zap.Logger
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

// buildSystemInstruction returns the persona prompt for the assistant.
func buildSystemInstruction() string {
	return `당신은 '유씨'라는 이름의 청년 정책 안내 챗봇입니다. 대한민국 청년을 위한 주거, 취업, 창업, 교육, 자산형성, 복지, 문화 정책 정보를 안내합니다.

## 답변 원칙
1. 제공된 정책 정보만을 근거로 답변합니다. 정보에 없는 내용을 지어내지 않습니다.
2. 친근하고 공손한 말투를 사용하되, 핵심 정보(지원 내용, 신청 자격, 신청 방법, 신청 기간)를 빠뜨리지 않습니다.
3. 금액, 기간, 자격 요건은 제공된 정보 그대로 전달합니다.
4. 관련 정책이 여러 개면 가장 관련성 높은 것부터 소개합니다.
5. 제공된 정보로 답할 수 없는 질문에는 모른다고 솔직하게 말하고, 관련 기관이나 온통청년(www.youthcenter.go.kr) 확인을 안내합니다.
6. 답변은 간결하게, 필요하면 목록 형식을 사용합니다.`
}

func NewLLMService(cfg *config.GigaChatConfig, logger *zap.Logger) (*LLMService, error) {
	ctx := context.Background()

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel("GigaChat")
	model.SystemInstruction = buildSystemInstruction()
	model.Temperature = 0.3

	httpClient := &http.Client{}
	if cfg.InsecureSkipVerify {
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	accessToken, err := getAccessToken(ctx, cfg, httpClient, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to get access token: %w", err)
	}

	return &LLMService{
		client:      client,
		model:       model,
		config:      cfg,
		logger:      logger,
		httpClient:  httpClient,
		accessToken: accessToken,
		// Documentation: https://developers.sber.ru/docs/ru/gigachat/api/main
		baseURL: "https://gigachat.devices.sberbank.ru/api/v1",
	}, nil
}

// getAccessToken obtains an access token from the GigaChat OAuth endpoint.
// The API key is expected to be Base64-encoded already.
func getAccessToken(ctx context.Context, cfg *config.GigaChatConfig, httpClient *http.Client, logger *zap.Logger) (string, error) {
	oauthURL := "https://ngw.devices.sberbank.ru:9443/api/v2/oauth"

	rqUID := uuid.New().String()

	formData := url.Values{}
	formData.Set("scope", cfg.Scope)

	req, err := http.NewRequestWithContext(ctx, "POST", oauthURL, strings.NewReader(formData.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create OAuth request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("RqUID", rqUID)
	req.Header.Set("Authorization", "Basic "+cfg.APIKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to get access token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		logger.Error("OAuth request failed",
			zap.Int("status", resp.StatusCode),
			zap.String("response", string(bodyBytes)),
			zap.String("rq_uid", rqUID),
		)
		return "", fmt.Errorf("OAuth failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var oauthResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&oauthResp); err != nil {
		return "", fmt.Errorf("failed to decode OAuth response: %w", err)
	}
	if oauthResp.AccessToken == "" {
		return "", fmt.Errorf("empty access token in OAuth response")
	}

	logger.Info("Access token obtained", zap.Int("expires_in", oauthResp.ExpiresIn))
	return oauthResp.AccessToken, nil
}

// Complete generates a single answer for the prompt. One attempt, no
// retries; callers bound the call with a context deadline and fall back
// to templates on error.
func (s *LLMService) Complete(ctx context.Context, prompt string) (string, error) {
	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	}

	resp, err := s.model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty response from LLM")
	}
	return content, nil
}

// Embed computes an embedding vector for text via the REST API.
// Endpoint: POST /embeddings
func (s *LLMService) Embed(ctx context.Context, text string) ([]float32, error) {
	requestBody := map[string]interface{}{
		"model": "Embeddings",
		"input": []string{text},
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/embeddings", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get embeddings: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		accessToken, err := getAccessToken(ctx, s.config, s.httpClient, s.logger)
		if err != nil {
			return nil, fmt.Errorf("embeddings failed with 401, token refresh also failed: %w", err)
		}
		s.accessToken = accessToken
		return nil, fmt.Errorf("token expired, please retry the operation")
	}

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("embeddings failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var embResp struct {
		Data []struct {
			Embedding []float32 `json:"embedding"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&embResp); err != nil {
		return nil, fmt.Errorf("failed to decode embeddings response: %w", err)
	}
	if len(embResp.Data) == 0 || len(embResp.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("empty embedding in response")
	}

	return embResp.Data[0].Embedding, nil
}

func (s *LLMService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}
