package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	Title string `json:"title"`
}

type CreateSessionResponse struct {
	Id uuid.UUID `json:"id"`
}

type SessionResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type SendMessageRequest struct {
	SessionId uuid.UUID
	Message   string `json:"message" validate:"required"`
}

type SendMessageResponse struct {
	SessionId uuid.UUID `json:"session_id"`
	Response  string    `json:"response"`
	ModelTier string    `json:"model_tier"`
	Agents    []string  `json:"agents"`
}

type MessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	ModelTier string    `json:"model_tier,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ClearSessionResponse struct {
	Cleared bool `json:"cleared"`
}
