package handlers

import (
	"errors"
	"time"

	"youthy-chat/internal/dto"
	"youthy-chat/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService *service.ChatService
	loader      *service.PolicyLoader
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, loader *service.PolicyLoader, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		loader:      loader,
		logger:      logger,
	}
}

// Chat godoc
// @Summary Ask a youth-policy question
// @Description Answers a free-text question using the policy collection, with suggested follow-up questions
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Question with optional region filter and chat history"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.chatService.Chat(c.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Message is required",
			})
		}
		h.logger.Error("Chat request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process chat request",
		})
	}

	return c.JSON(resp)
}

// Categories godoc
// @Summary List policy categories
// @Description Returns the supported policy categories with labels and keywords
// @Tags chat
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Router /api/v1/chat/categories [get]
func (h *ChatHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.chatService.Categories())
}

// Suggestions godoc
// @Summary Suggest starter questions
// @Description Returns suggested questions, tailored when a category is given
// @Tags chat
// @Produce json
// @Param category query string false "Category id to tailor suggestions"
// @Success 200 {object} dto.SuggestionsResponse
// @Router /api/v1/chat/suggestions [get]
func (h *ChatHandler) Suggestions(c *fiber.Ctx) error {
	return c.JSON(h.chatService.Suggestions(c.Query("category")))
}

// Refresh godoc
// @Summary Reload the policy collection
// @Description Reloads policies from the database (seed fallback) and rebuilds the embedding index
// @Tags chat
// @Produce json
// @Success 200 {object} dto.RefreshResponse
// @Failure 500 {object} map[string]string
// @Router /api/v1/chat/refresh [post]
func (h *ChatHandler) Refresh(c *fiber.Ctx) error {
	count, source, err := h.loader.Load(c.Context())
	if err != nil {
		h.logger.Error("Policy refresh failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to refresh policy collection",
		})
	}

	return c.JSON(dto.RefreshResponse{
		Message:     "정책 데이터를 갱신했습니다.",
		LoadedCount: count,
		Source:      source,
		RefreshedAt: time.Now().UTC().Format(time.RFC3339),
	})
}
