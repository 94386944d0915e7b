package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	chatService "github.com/contra-ai/contra/backend/internal/service/chat"
	"github.com/contra-ai/contra/backend/pkg/utils"
)

// ExchangeHeader carries the id assigned to each chat exchange.
const ExchangeHeader = "X-Exchange-Id"

const maxBodyBytes = 1 << 20

// Handler 聊天服务的HTTP处理器
type Handler struct {
	chatSvc *chatService.Service
}

// New 创建聊天处理器
func New(chatSvc *chatService.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// RegisterRoutes 注册聊天相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

// Request is the body accepted by POST /chat.
type Request struct {
	Culture string `json:"culture"`
	Message string `json:"message"`
}

// Response is the body returned by POST /chat.
type Response struct {
	Response string `json:"response"`
	Culture  string `json:"culture"`
}

// handleChat 生成人设回复并记录交互
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input: ensure JSON body is present.")
		return
	}

	reply, err := h.chatSvc.Reply(r.Context(), payload.Culture, payload.Message)
	if err != nil {
		if errors.Is(err, chatService.ErrMessageRequired) {
			utils.RespondError(w, http.StatusBadRequest, "Message cannot be empty.")
			return
		}
		log.Error().Err(err).Str("culture", payload.Culture).Msg("chat request failed")
		utils.RespondFailure(w, err)
		return
	}

	w.Header().Set(ExchangeHeader, reply.ExchangeID)
	utils.RespondJSON(w, http.StatusOK, Response{
		Response: reply.Response,
		Culture:  reply.Culture,
	})
}
