package arwn

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/saaga0h/arwn-bridge/pkg/config"
	"github.com/saaga0h/arwn-bridge/pkg/mqtt"
)

// Router subscribes to the whole ARWN namespace and turns inbound
// messages into sensor discovery and updates.
//
// Per sensor the flow is a one-way transition: undiscovered until the
// first message classifying to its identity, then active. Activation
// registers the sensor, seeds it with the triggering payload, announces
// it to the host, and adds a direct subscription from the sensor's own
// topic to its Update, mirroring the discovery route. Known identities
// are left to that direct subscription.
type Router struct {
	mqtt     mqtt.Client
	registry *Registry
	events   Events
	cfg      *config.Config
	logger   *slog.Logger
}

// NewRouter creates a router over the given registry. events may be nil.
func NewRouter(mqttClient mqtt.Client, registry *Registry, events Events, cfg *config.Config, logger *slog.Logger) *Router {
	return &Router{
		mqtt:     mqttClient,
		registry: registry,
		events:   events,
		cfg:      cfg,
		logger:   logger,
	}
}

// Start connects to the broker, subscribes to the namespace wildcard and
// blocks until the context is cancelled.
func (r *Router) Start(ctx context.Context) error {
	r.logger.Info("Starting ARWN router",
		"service_name", r.cfg.ServiceName,
		"mqtt_broker", r.cfg.MQTTAddress(),
		"topic_root", r.cfg.TopicRoot)

	if err := r.mqtt.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to MQTT: %w", err)
	}

	wildcard := mqtt.Wildcard(r.cfg.TopicRoot)
	if err := r.mqtt.Subscribe(wildcard, 0, r.handleMessage); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", wildcard, err)
	}

	r.logger.Info("ARWN router ready", "subscription", wildcard)

	<-ctx.Done()
	r.logger.Info("ARWN router stopping")

	return nil
}

// Stop disconnects from the broker, tearing down all subscriptions.
func (r *Router) Stop() {
	r.logger.Info("Stopping ARWN router")
	r.mqtt.Disconnect()
}

// handleMessage processes one message from the namespace wildcard.
// Per-message failures are logged and dropped; the router keeps going.
func (r *Router) handleMessage(msg mqtt.Message) {
	topic := msg.Topic()

	event, ok := r.decode(msg)
	if !ok {
		return
	}

	descriptors := Classify(topic, event)
	if len(descriptors) == 0 {
		// Normal for housekeeping topics outside the five domains.
		r.logger.Debug("Ignoring unclassified topic", "topic", topic)
		return
	}

	for _, d := range descriptors {
		sensor, isNew := r.registry.RegisterIfAbsent(d)
		if !isNew {
			// The sensor's own subscription already delivers this message.
			continue
		}

		sensor.Update(event)

		r.logger.Info("Registered new sensor",
			"identity", sensor.Identity(),
			"name", sensor.Name(),
			"unit", sensor.Unit(),
			"topic", d.Topic)

		if r.events != nil {
			r.events.SensorAdded(sensor)
		}

		if err := r.mqtt.Subscribe(d.Topic, 0, r.sensorHandler(sensor)); err != nil {
			// The wildcard route keeps covering this topic, so the
			// sensor still exists; it just never leaves the router path.
			r.logger.Error("Failed to subscribe sensor topic",
				"identity", sensor.Identity(),
				"topic", d.Topic,
				"error", err)
		}
	}
}

// sensorHandler returns the direct delivery path for one sensor: decode
// and apply, no classification.
func (r *Router) sensorHandler(sensor *Sensor) mqtt.MessageHandler {
	return func(msg mqtt.Message) {
		event, ok := r.decode(msg)
		if !ok {
			return
		}
		sensor.Update(event)
	}
}

func (r *Router) decode(msg mqtt.Message) (map[string]any, bool) {
	var event map[string]any
	if err := json.Unmarshal(msg.Payload(), &event); err != nil {
		r.logger.Warn("Dropping malformed payload",
			"topic", msg.Topic(),
			"size", len(msg.Payload()),
			"error", err)
		return nil, false
	}
	return event, true
}
