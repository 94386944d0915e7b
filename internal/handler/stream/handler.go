package stream

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	chatService "github.com/contra-ai/contra/backend/internal/service/chat"
	"github.com/contra-ai/contra/backend/pkg/utils"
)

const maxBodyBytes = 1 << 20

// Handler 以 Server-Sent Events 形式逐段推送人设回复
type Handler struct {
	chatSvc *chatService.Service
}

// New creates a new stream handler
func New(chatSvc *chatService.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// RegisterRoutes 注册流式聊天路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat/stream", h.handleStream)
}

// Request is the body accepted by POST /chat/stream.
type Request struct {
	Culture string `json:"culture"`
	Message string `json:"message"`
}

// StreamResponse represents a streaming response chunk
type StreamResponse struct {
	Event      string `json:"event"`
	Content    string `json:"content,omitempty"`
	Culture    string `json:"culture,omitempty"`
	ExchangeID string `json:"exchangeId,omitempty"`
	Finished   bool   `json:"finished,omitempty"`
	Error      string `json:"error,omitempty"`
}

// handleStream 生成完整回复后按词切片推送，最后发送完整消息与结束事件
func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	var payload Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input: ensure JSON body is present.")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	reply, err := h.chatSvc.Reply(r.Context(), payload.Culture, payload.Message)
	if err != nil {
		if errors.Is(err, chatService.ErrMessageRequired) {
			utils.RespondError(w, http.StatusBadRequest, "Message cannot be empty.")
			return
		}
		log.Error().Err(err).Str("culture", payload.Culture).Msg("stream request failed")
		utils.RespondFailure(w, err)
		return
	}

	utils.SetupSSEHeaders(w)
	w.WriteHeader(http.StatusOK)

	utils.SendSSEChunk(w, flusher, StreamResponse{
		Event:      "start",
		Culture:    reply.Culture,
		ExchangeID: reply.ExchangeID,
	})

	for _, chunk := range Chunks(reply.Response) {
		if r.Context().Err() != nil {
			return
		}
		utils.SendSSEChunk(w, flusher, StreamResponse{
			Event:      "delta",
			ExchangeID: reply.ExchangeID,
			Content:    chunk,
		})
	}

	utils.SendSSEChunk(w, flusher, StreamResponse{
		Event:      "message",
		Culture:    reply.Culture,
		ExchangeID: reply.ExchangeID,
		Content:    reply.Response,
	})
	utils.SendSSEChunk(w, flusher, StreamResponse{
		Event:      "end",
		ExchangeID: reply.ExchangeID,
		Finished:   true,
	})
}

// Chunks 按空格切分回复，拼接后与原文逐字节一致
func Chunks(text string) []string {
	parts := strings.SplitAfter(text, " ")
	chunks := parts[:0]
	for _, part := range parts {
		if part != "" {
			chunks = append(chunks, part)
		}
	}
	return chunks
}
