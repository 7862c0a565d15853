package gateway

import (
	"context"

	"github.com/piresc/evoting/internal/pkg/models"
	"github.com/piresc/evoting/internal/pkg/nsq"
)

// EventsGW publishes settlement events to NSQ
type EventsGW struct {
	publisher nsq.Publisher
}

// NewEventsGW creates a new events gateway
func NewEventsGW(publisher nsq.Publisher) *EventsGW {
	return &EventsGW{publisher: publisher}
}

// PublishVoteSettled announces a completed transition
func (g *EventsGW) PublishVoteSettled(ctx context.Context, event models.VoteSettledEvent) error {
	return g.publisher.Publish(ctx, nsq.TopicVotesSettled, event)
}
