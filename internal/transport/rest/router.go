package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"triage-chatbot/internal/cache"
	"triage-chatbot/internal/service"
	"triage-chatbot/internal/transport/rest/handler"
	"triage-chatbot/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	ChatService  *service.ChatService
	TokenService *service.TokenService
	StateCache   cache.StateCache
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	chatHandler := handler.NewChatHandler(c.ChatService, c.TokenService, c.StateCache)
	wsHandler := ws.NewHandler(c.ChatService, c.TokenService, c.StateCache)

	r.Use(corsMiddleware)

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/chat", chatHandler.Turn).Methods("POST", "OPTIONS")
	v1.HandleFunc("/ws/chat", wsHandler.ChatWS).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
