package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"triage-chatbot/internal/model"
)

// ErrInvalidToken is returned for unparseable or expired conversation
// tokens. Callers start a fresh conversation instead of failing the turn.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenService issues and validates signed conversation tokens. The token
// only carries the opaque conversation id used to key the chat state.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service. The token lifetime matches the
// chat-state TTL so a live token always points at a resolvable state key.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// NewConversationID generates a fresh opaque conversation id
func (s *TokenService) NewConversationID() string {
	return "conv_" + uuid.New().String()
}

// Issue signs a conversation token for the given id
func (s *TokenService) Issue(conversationID string) (string, error) {
	claims := &model.ConversationClaims{
		ConversationID: conversationID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses a conversation token and returns its conversation id
func (s *TokenService) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.ConversationClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*model.ConversationClaims)
	if !ok || !token.Valid || claims.ConversationID == "" {
		return "", ErrInvalidToken
	}
	return claims.ConversationID, nil
}
