package entity

import (
	"time"

	"github.com/google/uuid"
)

type ConversationTurn struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// WorkingSession is the per-(user, session) conversational state. It lives in
// a TTL-bounded store and is recreated transparently on first write after
// expiry.
type WorkingSession struct {
	UserId         uuid.UUID              `json:"user_id"`
	SessionId      uuid.UUID              `json:"session_id"`
	Conversation   []ConversationTurn     `json:"conversation"`
	CurrentAgent   string                 `json:"current_agent,omitempty"`
	PendingContext map[string]interface{} `json:"pending_context,omitempty"`
}
