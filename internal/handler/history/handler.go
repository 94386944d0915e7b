package history

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	chatService "github.com/contra-ai/contra/backend/internal/service/chat"
	"github.com/contra-ai/contra/backend/pkg/utils"
)

// MaxLimit caps the ?limit query parameter.
const MaxLimit = 500

// Handler 交互历史的HTTP处理器
type Handler struct {
	chatSvc      *chatService.Service
	defaultLimit int
}

// New 创建历史处理器，defaultLimit 为未指定 limit 时返回的条数
func New(chatSvc *chatService.Service, defaultLimit int) *Handler {
	if defaultLimit <= 0 {
		defaultLimit = 50
	}
	return &Handler{chatSvc: chatSvc, defaultLimit: defaultLimit}
}

// RegisterRoutes 注册历史相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/history", h.handleListHistory)
}

// handleListHistory 按 id 倒序返回最近的交互记录
func (h *Handler) handleListHistory(w http.ResponseWriter, r *http.Request) {
	limit := h.defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > MaxLimit {
			utils.RespondError(w, http.StatusBadRequest, "limit must be an integer between 1 and "+strconv.Itoa(MaxLimit))
			return
		}
		limit = parsed
	}

	records, err := h.chatSvc.History(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Int("limit", limit).Msg("failed to load history")
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, records)
}
