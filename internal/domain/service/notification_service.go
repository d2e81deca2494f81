package service

import (
	"context"
)

// PushMessage is a notification addressed to a set of device tokens.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushResult summarises a multicast send.
type PushResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string // Tokens the provider reported as unregistered.
}

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendMulticast sends msg to all tokens, batching as the provider requires.
	SendMulticast(ctx context.Context, tokens []string, msg PushMessage) (*PushResult, error)
}
