package dto

import "youthy-chat/internal/models"

// ChatTurn is one past exchange carried by the client.
type ChatTurn struct {
	User string `json:"user"`
	AI   string `json:"ai"`
}

type ChatContext struct {
	History []ChatTurn `json:"history,omitempty"`
}

type ChatRequest struct {
	Message string       `json:"message"`
	Region  string       `json:"region,omitempty"`
	Context *ChatContext `json:"context,omitempty"`
}

type Reference struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

type ChatResponse struct {
	Message           string                `json:"message"`
	References        []Reference           `json:"references"`
	FollowUpQuestions []string              `json:"followUpQuestions"`
	Intent            string                `json:"intent"`
	Policies          []models.PolicyRecord `json:"policies"`
	TotalFound        int                   `json:"totalFound"`
	ConversationID    string                `json:"conversationId"`
	ResponseTimeMs    int64                 `json:"responseTimeMs"`
	Timestamp         string                `json:"timestamp"`
}

type CategoryInfo struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Emoji       string   `json:"emoji"`
	Keywords    []string `json:"keywords"`
	Description string   `json:"description"`
}

type CategoriesResponse struct {
	Categories []CategoryInfo `json:"categories"`
	TotalCount int            `json:"totalCount"`
	Timestamp  string         `json:"timestamp"`
}

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
	Category    string   `json:"category,omitempty"`
	Timestamp   string   `json:"timestamp"`
}

type RefreshResponse struct {
	Message     string `json:"message"`
	LoadedCount int    `json:"loadedCount"`
	Source      string `json:"source"`
	RefreshedAt string `json:"refreshedAt"`
}

type HealthResponse struct {
	Status          string            `json:"status"`
	Components      map[string]string `json:"components"`
	PolicyCount     int               `json:"policyCount"`
	Recommendations []string          `json:"recommendations"`
	Timestamp       string            `json:"timestamp"`
}
