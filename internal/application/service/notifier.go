package service

import "context"

const NotificationNewMessage = "NEW_MESSAGE"

// NotificationEvent is the payload pushed to the notify topic when a user
// receives a message.
type NotificationEvent struct {
	Type      string `json:"type"`
	MessageID string `json:"message_id"`
	To        string `json:"to"`
}

// NotificationPublisher is best effort: callers must treat a publish failure
// as a log line, never as a request failure.
type NotificationPublisher interface {
	Publish(ctx context.Context, event NotificationEvent) error
}
