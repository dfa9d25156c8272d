package ui

import (
	"time"
)

// Message represents a status message with timestamp
type Message struct {
	Text      string
	Timestamp time.Time
}

// MessageLogger tracks the last N status messages
type MessageLogger struct {
	messages []*Message
	maxSize  int
}

// NewMessageLogger creates a new message logger with the specified max size
func NewMessageLogger(maxSize int) *MessageLogger {
	return &MessageLogger{
		messages: make([]*Message, 0, maxSize),
		maxSize:  maxSize,
	}
}

// AddMessage adds a new status message to the history
func (ml *MessageLogger) AddMessage(text string) {
	if text == "" {
		return // Don't log empty messages
	}

	ml.messages = append(ml.messages, &Message{
		Text:      text,
		Timestamp: time.Now(),
	})

	if len(ml.messages) > ml.maxSize {
		ml.messages = ml.messages[len(ml.messages)-ml.maxSize:]
	}
}

// Latest returns the most recent message, or nil
func (ml *MessageLogger) Latest() *Message {
	if len(ml.messages) == 0 {
		return nil
	}
	return ml.messages[len(ml.messages)-1]
}

// All returns the logged messages, oldest first
func (ml *MessageLogger) All() []*Message {
	return ml.messages
}
