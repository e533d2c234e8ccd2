package ws

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"triage-chatbot/internal/cache"
	"triage-chatbot/internal/model"
	"triage-chatbot/internal/service"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Handler serves the turn protocol over a websocket: one JSON request in,
// one JSON response out, per message. Each connection is its own
// conversation; the chat state still lives in the shared state cache so
// turn handling is identical to the REST path.
type Handler struct {
	chatSvc  *service.ChatService
	tokenSvc *service.TokenService
	states   cache.StateCache
}

// NewHandler creates a websocket chat handler
func NewHandler(chatSvc *service.ChatService, tokenSvc *service.TokenService, states cache.StateCache) *Handler {
	return &Handler{
		chatSvc:  chatSvc,
		tokenSvc: tokenSvc,
		states:   states,
	}
}

// ChatWS handles GET /v1/ws/chat
func (h *Handler) ChatWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	cid := h.tokenSvc.NewConversationID()
	ctx := r.Context()

	for {
		var req model.TurnRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws: read failed for %s: %v", cid, err)
			}
			return
		}

		state, err := h.states.Get(ctx, cid)
		if err != nil {
			log.Printf("ws: state load failed for %s: %v", cid, err)
			state = &model.ChatState{}
		}

		var resp *model.TurnResponse
		switch {
		case req.Action == "" && req.Message != nil:
			resp, err = h.chatSvc.HandleMessage(ctx, state, *req.Message)
			if err != nil {
				log.Printf("ws: turn failed for %s: %v", cid, err)
				resp = model.TextReply(service.ReplyTurnFailure)
				break
			}
			if err := h.states.Set(ctx, cid, state); err != nil {
				log.Printf("ws: state save failed for %s: %v", cid, err)
			}

		case req.Action == model.ActionBatchSubmit:
			resp = h.chatSvc.HandleSubmit(state, req.Answers)
			if err := h.states.Delete(ctx, cid); err != nil {
				log.Printf("ws: state clear failed for %s: %v", cid, err)
			}

		default:
			if err := conn.WriteJSON(map[string]string{"error": "bad request"}); err != nil {
				return
			}
			continue
		}

		if err := conn.WriteJSON(resp); err != nil {
			log.Printf("ws: write failed for %s: %v", cid, err)
			return
		}
	}
}
