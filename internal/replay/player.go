package replay

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/saaga0h/arwn-bridge/pkg/mqtt"
)

// Player publishes scenario events to a broker, spacing them by their
// recorded offsets.
type Player struct {
	mqtt   mqtt.Client
	root   string
	logger *slog.Logger
}

// NewPlayer creates a player publishing under the given topic root.
func NewPlayer(mqttClient mqtt.Client, root string, logger *slog.Logger) *Player {
	return &Player{
		mqtt:   mqttClient,
		root:   root,
		logger: logger,
	}
}

// Run plays a scenario from the beginning. It returns early if the
// context is cancelled while waiting for the next event.
func (p *Player) Run(ctx context.Context, s *Scenario) error {
	if err := Validate(s); err != nil {
		return err
	}

	p.logger.Info("Replaying scenario", "name", s.Name, "events", len(s.Events))
	start := time.Now()

	for i, event := range s.Events {
		due := start.Add(time.Duration(event.At) * time.Second)
		if wait := time.Until(due); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}

		if err := p.publish(event); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
	}

	p.logger.Info("Scenario complete", "name", s.Name, "elapsed", time.Since(start))
	return nil
}

func (p *Player) publish(event Event) error {
	topic := mqtt.Join(p.root, event.Topic)

	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload for %s: %w", topic, err)
	}

	if err := p.mqtt.Publish(topic, 0, false, payload); err != nil {
		return err
	}

	p.logger.Debug("Published event", "topic", topic, "description", event.Description)
	return nil
}
