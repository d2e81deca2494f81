package pubsub

import (
	"encoding/base64"
	"encoding/json"

	"lastseen/internal/domain/service"

	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/location-events-sub"

// PushMessage is the envelope Pub/Sub uses when pushing to an HTTP endpoint.
// The local publisher produces the same shape so the worker has one decoder.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// DecodeLocationEvent extracts the event carried by a push envelope.
func (m *PushMessage) DecodeLocationEvent() (*service.LocationEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode push message data")
	}

	var event service.LocationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "unmarshal location event")
	}
	if event.RequestID == "" {
		event.RequestID = m.Message.Attributes["request_id"]
	}

	return &event, nil
}

// eventAttributes are attached to every message for subscription filtering and tracing.
func eventAttributes(event *service.LocationEvent) map[string]string {
	attributes := map[string]string{
		"type":     event.Type,
		"owner_id": event.OwnerID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
