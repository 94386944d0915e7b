package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/contra-ai/contra/backend/internal/config"
	"github.com/contra-ai/contra/backend/internal/handler/chat"
	"github.com/contra-ai/contra/backend/internal/handler/history"
	"github.com/contra-ai/contra/backend/internal/handler/persona"
	"github.com/contra-ai/contra/backend/internal/handler/realtime"
	"github.com/contra-ai/contra/backend/internal/handler/stream"
	middlewarePkg "github.com/contra-ai/contra/backend/internal/middleware"
	personaModel "github.com/contra-ai/contra/backend/internal/model/persona"
	chatService "github.com/contra-ai/contra/backend/internal/service/chat"
	"github.com/contra-ai/contra/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(serverCfg config.ServerConfig, personas personaModel.Store, chatSvc *chatService.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewarePkg.RequestLogger)
	r.Use(middlewarePkg.Recoverer)
	r.Use(middlewarePkg.CORS)

	// Create handlers
	personaHandler := persona.New(personas)
	chatHandler := chat.New(chatSvc)
	streamHandler := stream.New(chatSvc)
	historyHandler := history.New(chatSvc, serverCfg.HistoryLimit)
	wsHandler := realtime.NewWebSocketHandler(chatSvc)

	serviceName := serverCfg.ServiceName
	if serviceName == "" {
		serviceName = "Contra.AI Backend"
	}

	r.Route("/api", func(api chi.Router) {
		api.Get("/status", func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{
				"status":  "ok",
				"service": serviceName,
			})
		})

		personaHandler.RegisterRoutes(api)
		chatHandler.RegisterRoutes(api)
		streamHandler.RegisterRoutes(api)
		historyHandler.RegisterRoutes(api)
		wsHandler.RegisterRoutes(api)
	})

	return r
}
