// Package notification sends push notifications through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"lastseen/config"
	"lastseen/internal/domain/service"
	"lastseen/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// maxMulticastTokens is the FCM limit per multicast request.
const maxMulticastTokens = 500

// multicastSender is the part of *messaging.Client the service uses.
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
	logger *slog.Logger
}

// Params defines the dependencies of the notification service.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New builds the FCM-backed service. Without credentials it falls back to a
// service that only logs, which keeps local development free of Firebase.
func New(params Params) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Warn("[Notifier] Firebase credentials not configured, push messages are logged only")
		return &logOnlyService{logger: params.Logger}, nil
	}

	return NewFirebaseService(params.Ctx, cfg.ProjectID, cfg.CredentialsPath, params.Logger)
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string, logger *slog.Logger) (service.NotificationService, error) {
	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client, logger: logger}, nil
}

// SendMulticast sends msg to all tokens in chunks of the provider limit.
// A failed chunk aborts the remaining ones and returns the partial result.
func (s *firebaseService) SendMulticast(ctx context.Context, tokens []string, msg service.PushMessage) (*service.PushResult, error) {
	result := &service.PushResult{InvalidTokens: []string{}}

	for start := 0; start < len(tokens); start += maxMulticastTokens {
		chunk := tokens[start:min(start+maxMulticastTokens, len(tokens))]

		response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: chunk,
			Notification: &messaging.Notification{
				Title: msg.Title,
				Body:  msg.Body,
			},
			Data: msg.Data,
		})
		if err != nil {
			return result, errors.Wrap(err, "failed to send multicast notification")
		}

		result.SuccessCount += response.SuccessCount
		result.FailureCount += response.FailureCount
		for idx, sendResponse := range response.Responses {
			if sendResponse.Error != nil && isInvalidTokenError(sendResponse.Error) {
				result.InvalidTokens = append(result.InvalidTokens, chunk[idx])
			}
		}
	}

	return result, nil
}

func isInvalidTokenError(err error) bool {
	return messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err)
}

type logOnlyService struct {
	logger *slog.Logger
}

func (s *logOnlyService) SendMulticast(ctx context.Context, tokens []string, msg service.PushMessage) (*service.PushResult, error) {
	s.logger.InfoContext(ctx, "[Notifier] Push message (not sent)",
		slog.String("title", msg.Title),
		slog.String("body", msg.Body),
		slog.Int("token_count", len(tokens)),
	)

	return &service.PushResult{SuccessCount: len(tokens), InvalidTokens: []string{}}, nil
}
