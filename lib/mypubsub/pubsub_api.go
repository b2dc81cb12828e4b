package mypubsub

import "context"

// PubSub carries order events between the shop services.
//
// Order placement stores an event envelope in the outbox within its own transaction; the outbox publisher
// relays it with Publish. The order service receives events of its topic on /api/orders/event by a push
// subscription. Locally events are kept in memory and push subscriptions are not delivered.
//
//go:generate mockgen -source=pubsub_api.go -package mypubsub -destination pubsub_mock.go PubSub
type PubSub interface {
	// Publish sends a json encoded envelope to all subscribers of topic
	Publish(c context.Context, topic string, envelope string) error
	// CreateTopic succeeds when the topic already exists
	CreateTopic(c context.Context, topic string) error
	// Subscribe makes pubsub push every envelope of topic to pushURL
	Subscribe(c context.Context, topic string, pushURL string) error
}

// New is assigned at init by the implementation selected for the environment the shop runs in
var New func(c context.Context) (PubSub, func(), error)
