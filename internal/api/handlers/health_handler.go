package handlers

import (
	"time"

	"youthy-chat/internal/dto"
	"youthy-chat/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthHandler struct {
	db           *pgxpool.Pool
	store        *service.PolicyStore
	llmAvailable bool
}

func NewHealthHandler(db *pgxpool.Pool, store *service.PolicyStore, llmAvailable bool) *HealthHandler {
	return &HealthHandler{
		db:           db,
		store:        store,
		llmAvailable: llmAvailable,
	}
}

// Health godoc
// @Summary Service health
// @Description Reports component status and loaded policy count
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	components := map[string]string{}
	var recommendations []string
	status := "ok"

	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			components["database"] = "unavailable"
			recommendations = append(recommendations, "데이터베이스 연결을 확인하세요.")
			status = "degraded"
		} else {
			components["database"] = "ok"
		}
	} else {
		components["database"] = "not_configured"
	}

	if h.llmAvailable {
		components["llm"] = "ok"
	} else {
		components["llm"] = "not_configured"
		recommendations = append(recommendations, "GIGACHAT_API_KEY를 설정하면 자연어 답변 품질이 좋아집니다.")
	}

	policyCount := h.store.Len()
	components["policy_store"] = "ok"
	if policyCount == 0 {
		components["policy_store"] = "empty"
		recommendations = append(recommendations, "정책 데이터를 불러오려면 /api/v1/chat/refresh를 호출하세요.")
		status = "degraded"
	}

	return c.JSON(dto.HealthResponse{
		Status:          status,
		Components:      components,
		PolicyCount:     policyCount,
		Recommendations: recommendations,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	})
}
