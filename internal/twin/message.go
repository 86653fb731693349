package twin

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single message in a conversation
type Message struct {
	ID        string    `json:"id"`        // UUID v4
	Role      Role      `json:"role"`      // "user" or "assistant"
	Content   string    `json:"content"`   // Message content
	Timestamp time.Time `json:"timestamp"` // Creation time
}

// NewMessage creates a message with a fresh id stamped with the current time.
func NewMessage(role Role, content string) Message {
	return Message{
		ID:        uuid.New().String(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// Label returns the speaker label used when printing the message.
func (m Message) Label() string {
	if m.Role == RoleAssistant {
		return "Twin"
	}
	return "You"
}
