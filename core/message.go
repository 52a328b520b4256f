package core

import "time"

// Message is one rendered line of the conversation transcript handed to the
// presentation layer. After emission it should be treated as immutable.
type Message struct {
	Content   string    `json:"content"`
	IsBot     bool      `json:"is_bot"`
	Timestamp time.Time `json:"timestamp"`
}

// NewUserMessage creates a user-authored transcript message.
func NewUserMessage(content string) Message {
	return Message{Content: content, IsBot: false, Timestamp: time.Now().UTC()}
}

// NewBotMessage creates a bot-authored transcript message.
func NewBotMessage(content string) Message {
	return Message{Content: content, IsBot: true, Timestamp: time.Now().UTC()}
}
