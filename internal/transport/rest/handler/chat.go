package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"triage-chatbot/internal/cache"
	"triage-chatbot/internal/model"
	"triage-chatbot/internal/service"
)

// ChatHandler handles the conversational turn endpoint
type ChatHandler struct {
	chatSvc  *service.ChatService
	tokenSvc *service.TokenService
	states   cache.StateCache
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatSvc *service.ChatService, tokenSvc *service.TokenService, states cache.StateCache) *ChatHandler {
	return &ChatHandler{
		chatSvc:  chatSvc,
		tokenSvc: tokenSvc,
		states:   states,
	}
}

// Turn handles POST /v1/chat. A free-text request body carries "message";
// a scoring request carries action "batch_submit" with "answers".
// Conversation identity travels as a bearer token; a missing or invalid
// token starts a fresh conversation and the new token is returned in the
// response body.
func (h *ChatHandler) Turn(w http.ResponseWriter, r *http.Request) {
	var req model.TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cid, issuedToken := h.conversation(r)
	ctx := r.Context()

	state, err := h.states.Get(ctx, cid)
	if err != nil {
		// state store unavailable: run the turn on a fresh state rather
		// than failing the conversation
		log.Printf("chat: state load failed for %s: %v", cid, err)
		state = &model.ChatState{}
	}

	var resp *model.TurnResponse
	switch {
	case req.Action == "" && req.Message != nil:
		resp, err = h.chatSvc.HandleMessage(ctx, state, *req.Message)
		if err != nil {
			log.Printf("chat: turn failed for %s: %v", cid, err)
			resp = model.TextReply(service.ReplyTurnFailure)
			break
		}
		if err := h.states.Set(ctx, cid, state); err != nil {
			log.Printf("chat: state save failed for %s: %v", cid, err)
		}

	case req.Action == model.ActionBatchSubmit:
		resp = h.chatSvc.HandleSubmit(state, req.Answers)
		// the cycle ends here either way; a fresh message starts a new one
		if err := h.states.Delete(ctx, cid); err != nil {
			log.Printf("chat: state clear failed for %s: %v", cid, err)
		}

	default:
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}

	resp.SessionToken = issuedToken
	writeJSON(w, http.StatusOK, resp)
}

// conversation resolves the conversation id from the bearer token, or
// starts a new conversation. The second return value is the freshly issued
// token, empty when the client presented a valid one.
func (h *ChatHandler) conversation(r *http.Request) (string, string) {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		if cid, err := h.tokenSvc.Validate(strings.TrimPrefix(auth, "Bearer ")); err == nil {
			return cid, ""
		}
	}

	cid := h.tokenSvc.NewConversationID()
	token, err := h.tokenSvc.Issue(cid)
	if err != nil {
		log.Printf("chat: token issue failed: %v", err)
		return cid, ""
	}
	return cid, token
}
