// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the drivematch engine:
// conversation messages, extracted profiles, the vehicle catalog record,
// scoring structures, and engine configuration.
package types

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// ConversationMessage is a single message in the conversation history.
// The history is ordered, immutable, and supplied whole on every call;
// the engine holds no conversation state of its own.
type ConversationMessage struct {
	// Role is the message author: "user" or "agent".
	Role Role `json:"role" yaml:"role"`

	// Text is the raw message text.
	Text string `json:"text" yaml:"text"`
}

// UserMessages returns the user-authored subset of messages in order.
// Extraction only ever reads what the user said, never the agent.
func UserMessages(messages []ConversationMessage) []ConversationMessage {
	var out []ConversationMessage
	for _, m := range messages {
		if m.Role == RoleUser {
			out = append(out, m)
		}
	}
	return out
}

// LastUserMessage returns the text of the most recent user message, or ""
// when the user has not said anything yet.
func LastUserMessage(messages []ConversationMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == RoleUser {
			return messages[i].Text
		}
	}
	return ""
}
