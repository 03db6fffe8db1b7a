package event

import (
	"context"
	"fmt"

	"github.com/asaskevich/EventBus"
)

// HandlerFunc receives the payload published on a topic.
type HandlerFunc func(ctx context.Context, payload any)

// Publisher is what services depend on to announce state changes.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload any)
}

var _ Publisher = (*Bus)(nil)

// Bus dispatches events synchronously, in the publisher's call.
type Bus struct {
	bus EventBus.Bus
}

func NewBus() *Bus {
	return &Bus{bus: EventBus.New()}
}

func (b *Bus) Publish(ctx context.Context, topic string, payload any) {
	b.bus.Publish(topic, ctx, payload)
}

func (b *Bus) Subscribe(topic string, fn HandlerFunc) error {
	if err := b.bus.Subscribe(topic, fn); err != nil {
		return fmt.Errorf("subscribe %s: %w", topic, err)
	}
	return nil
}

func (b *Bus) Unsubscribe(topic string, fn HandlerFunc) error {
	if err := b.bus.Unsubscribe(topic, fn); err != nil {
		return fmt.Errorf("unsubscribe %s: %w", topic, err)
	}
	return nil
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) {}
