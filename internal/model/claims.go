package model

import "github.com/golang-jwt/jwt/v5"

// ConversationClaims is the JWT payload of a conversation token. The
// conversation id keys the ChatState in Redis; everything else about the
// visitor stays opaque to this service.
type ConversationClaims struct {
	ConversationID string `json:"cid"`
	jwt.RegisteredClaims
}
