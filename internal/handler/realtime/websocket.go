package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	chatservice "github.com/contra-ai/contra/backend/internal/service/chat"
)

const (
	readTimeout  = 60 * time.Second
	writeTimeout = 10 * time.Second
	pingInterval = 30 * time.Second
)

// WebSocketHandler 通过 WebSocket 提供与 POST /chat 等价的对话通道
type WebSocketHandler struct {
	chatSvc  *chatservice.Service
	upgrader websocket.Upgrader
}

// NewWebSocketHandler 创建WebSocket处理器
func NewWebSocketHandler(chatSvc *chatservice.Service) *WebSocketHandler {
	return &WebSocketHandler{
		chatSvc: chatSvc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes 注册WebSocket路由
func (h *WebSocketHandler) RegisterRoutes(r chi.Router) {
	r.Get("/chat/ws", h.handleWebSocket)
}

// InboundMessage is a client frame. Type is "chat" or "config".
type InboundMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ChatMessage 对话消息，culture 为空时使用连接默认人设
type ChatMessage struct {
	Culture string `json:"culture"`
	Message string `json:"message"`
}

// ConfigMessage 配置消息
type ConfigMessage struct {
	Culture string `json:"culture"`
}

// OutgoingMessage is a server frame.
type OutgoingMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// ReplyData is the payload of a "reply" frame.
type ReplyData struct {
	Response string `json:"response"`
	Culture  string `json:"culture"`
}

// ErrorData is the payload of an "error" frame.
type ErrorData struct {
	Error string `json:"error"`
}

type connectionState struct {
	culture string
	logger  zerolog.Logger
}

// handleWebSocket 处理WebSocket连接
func (h *WebSocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	culture := r.URL.Query().Get("culture")
	if culture == "" {
		culture = "Universal"
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	state := &connectionState{
		culture: culture,
		logger:  log.With().Str("component", "websocket").Str("remote", r.RemoteAddr).Logger(),
	}
	state.logger.Info().Str("culture", culture).Msg("websocket connected")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readTimeout))
	})

	writes := make(chan OutgoingMessage, 8)
	go h.writeLoop(ctx, cancel, conn, writes)

	send(ctx, writes, "connected", map[string]string{"culture": state.culture})

	for {
		var msg InboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				state.logger.Warn().Err(err).Msg("websocket read error")
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))

		h.handleMessage(ctx, writes, state, &msg)
	}
}

func (h *WebSocketHandler) handleMessage(ctx context.Context, writes chan<- OutgoingMessage, state *connectionState, msg *InboundMessage) {
	switch msg.Type {
	case "chat":
		var payload ChatMessage
		if err := json.Unmarshal(msg.Data, &payload); err != nil {
			send(ctx, writes, "error", ErrorData{Error: "invalid chat payload"})
			return
		}
		culture := payload.Culture
		if culture == "" {
			culture = state.culture
		}

		reply, err := h.chatSvc.Reply(ctx, culture, payload.Message)
		if err != nil {
			if errors.Is(err, chatservice.ErrMessageRequired) {
				send(ctx, writes, "error", ErrorData{Error: "Message cannot be empty."})
				return
			}
			state.logger.Error().Err(err).Msg("websocket chat failed")
			send(ctx, writes, "error", ErrorData{Error: "Internal Server Error"})
			return
		}
		send(ctx, writes, "reply", ReplyData{Response: reply.Response, Culture: reply.Culture})
	case "config":
		var cfg ConfigMessage
		if err := json.Unmarshal(msg.Data, &cfg); err != nil {
			send(ctx, writes, "error", ErrorData{Error: "invalid config payload"})
			return
		}
		if cfg.Culture != "" {
			state.culture = cfg.Culture
		}
		send(ctx, writes, "config", map[string]string{"culture": state.culture})
	default:
		send(ctx, writes, "error", ErrorData{Error: "unsupported message type: " + msg.Type})
	}
}

func send(ctx context.Context, writes chan<- OutgoingMessage, kind string, data interface{}) {
	msg := OutgoingMessage{Type: kind, Data: data, Timestamp: time.Now().UnixMilli()}
	select {
	case writes <- msg:
	case <-ctx.Done():
	}
}

// writeLoop owns all writes to conn, including keepalive pings.
func (h *WebSocketHandler) writeLoop(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, writes <-chan OutgoingMessage) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	// A failed write tears the connection down so the read loop unblocks.
	fail := func() {
		cancel()
		_ = conn.Close()
	}

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-writes:
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(msg); err != nil {
				log.Debug().Err(err).Msg("websocket write failed")
				fail()
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				fail()
				return
			}
		}
	}
}
