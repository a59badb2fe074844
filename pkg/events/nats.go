package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"task-assistant/pkg/log"
)

// Bus publishes and consumes events on a JetStream stream.
type Bus struct {
	nc  *nats.Conn
	js  jetstream.JetStream
	cfg Config
	l   log.Logger
}

// Connect dials NATS and makes sure the stream exists.
func Connect(ctx context.Context, cfg Config, l log.Logger) (*Bus, error) {
	nc, err := nats.Connect(cfg.URL, nats.Name("task-assistant"))
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("jetstream init: %w", err)
	}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.Stream,
		Subjects: []string{cfg.SubjectPrefix + ".>"},
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("jetstream stream create: %w", err)
	}

	l.Infof(ctx, "events.Connect: connected url=%s stream=%s", cfg.URL, cfg.Stream)
	return &Bus{nc: nc, js: js, cfg: cfg, l: l}, nil
}

// Subject returns the subject an event type is published on.
func Subject(prefix, eventType string) string {
	return prefix + "." + eventType
}

func (b *Bus) Publish(ctx context.Context, evt Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	subject := Subject(b.cfg.SubjectPrefix, evt.Type)
	if _, err := b.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("nats publish %s: %w", subject, err)
	}
	return nil
}

// Subscribe attaches a durable consumer to every event on the stream.
// The returned func stops consumption.
func (b *Bus) Subscribe(ctx context.Context, durable string, handler Handler) (func(), error) {
	consumer, err := b.js.CreateOrUpdateConsumer(ctx, b.cfg.Stream, jetstream.ConsumerConfig{
		Durable:       durable,
		FilterSubject: b.cfg.SubjectPrefix + ".>",
		AckPolicy:     jetstream.AckExplicitPolicy,
	})
	if err != nil {
		return nil, fmt.Errorf("nats consumer create: %w", err)
	}

	cons, err := consumer.Consume(func(msg jetstream.Msg) {
		var evt Event
		if err := json.Unmarshal(msg.Data(), &evt); err != nil {
			// Undecodable payloads are dropped; redelivery cannot fix them.
			b.l.Warnf(ctx, "events.Subscribe: drop malformed message on %s: %v", msg.Subject(), err)
			_ = msg.Term()
			return
		}
		if err := handler(ctx, evt); err != nil {
			b.l.Errorf(ctx, "events.Subscribe: handler failed subject=%s: %v", msg.Subject(), err)
			if nakErr := msg.Nak(); nakErr != nil {
				b.l.Errorf(ctx, "events.Subscribe: nak failed: %v", nakErr)
			}
			return
		}
		if ackErr := msg.Ack(); ackErr != nil {
			b.l.Errorf(ctx, "events.Subscribe: ack failed: %v", ackErr)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("nats consume: %w", err)
	}

	return cons.Stop, nil
}

func (b *Bus) Close() error {
	return b.nc.Drain()
}
