package services

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/IBM/sarama"
)

// EventService publishes activity events to Kafka. A nil service or nil
// producer disables publishing, so callers never need to guard.
type EventService struct {
	producer sarama.SyncProducer
	topic    string
}

func NewEventService(producer sarama.SyncProducer, topic string) *EventService {
	return &EventService{producer: producer, topic: topic}
}

type activityEvent struct {
	Type       string    `json:"type"`
	Actor      string    `json:"actor"`
	Subject    string    `json:"subject,omitempty"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

func (s *EventService) UserRegistered(userID string) {
	s.publish(activityEvent{Type: "user.registered", Actor: userID})
}

func (s *EventService) FriendRequestSent(senderID, requestID string) {
	s.publish(activityEvent{Type: "friend.request.sent", Actor: senderID, Subject: requestID})
}

func (s *EventService) FriendRequestResolved(actorID, requestID, status string) {
	s.publish(activityEvent{Type: "friend.request.resolved", Actor: actorID, Subject: requestID, Status: status})
}

func (s *EventService) PostCreated(authorID, postID string) {
	s.publish(activityEvent{Type: "post.created", Actor: authorID, Subject: postID})
}

func (s *EventService) PostCommented(authorID, postID string) {
	s.publish(activityEvent{Type: "post.commented", Actor: authorID, Subject: postID})
}

func (s *EventService) publish(event activityEvent) {
	if s == nil || s.producer == nil {
		return
	}

	event.OccurredAt = time.Now().UTC()
	payload, err := json.Marshal(event)
	if err != nil {
		slog.Warn("failed to encode activity event", "type", event.Type, "error", err)
		return
	}

	_, _, err = s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(event.Actor),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		slog.Warn("failed to publish activity event", "type", event.Type, "error", err)
	}
}
