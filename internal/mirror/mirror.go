// Package mirror maintains a Redis copy of every sensor's latest state,
// so dashboards can read current values without speaking MQTT. The
// mirror is write-through and latest-only: each change overwrites the
// sensor's hash, nothing is appended and no history is kept.
package mirror

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/saaga0h/arwn-bridge/internal/arwn"
	"github.com/saaga0h/arwn-bridge/pkg/redis"
)

// Mirror implements arwn.Events by copying sensor state into Redis.
//
// Keys:
//   - arwn:sensors             set of known identities
//   - arwn:sensor:{identity}   hash with name, unit, icon, topic, state
//     and the JSON-encoded attribute map
type Mirror struct {
	redis    redis.Client
	registry *arwn.Registry
	logger   *slog.Logger
}

// NewMirror creates a mirror over the given registry.
func NewMirror(redisClient redis.Client, registry *arwn.Registry, logger *slog.Logger) *Mirror {
	return &Mirror{
		redis:    redisClient,
		registry: registry,
		logger:   logger,
	}
}

// SensorAdded records the new identity and writes its initial state.
func (m *Mirror) SensorAdded(s *arwn.Sensor) {
	ctx := context.Background()

	if err := m.redis.SAdd(ctx, redis.SensorSetKey, s.Identity()); err != nil {
		m.logger.Error("Failed to record sensor identity", "identity", s.Identity(), "error", err)
	}

	if err := m.writeSensor(ctx, s); err != nil {
		m.logger.Error("Failed to mirror new sensor", "identity", s.Identity(), "error", err)
	}
}

// SensorChanged rewrites the sensor's hash with its current state.
func (m *Mirror) SensorChanged(identity string) {
	sensor, ok := m.registry.Get(identity)
	if !ok {
		// Updates only fire for registered sensors.
		return
	}

	if err := m.writeSensor(context.Background(), sensor); err != nil {
		m.logger.Error("Failed to mirror sensor change", "identity", identity, "error", err)
	}
}

func (m *Mirror) writeSensor(ctx context.Context, s *arwn.Sensor) error {
	key := redis.SensorStateKey(s.Identity())

	attrs, err := json.Marshal(s.Attributes())
	if err != nil {
		return fmt.Errorf("failed to marshal attributes: %w", err)
	}

	fields := map[string]string{
		"name":       s.Name(),
		"unit":       s.Unit(),
		"icon":       s.Icon(),
		"topic":      s.Topic(),
		"attributes": string(attrs),
	}
	if state := s.State(); state != nil {
		fields["state"] = fmt.Sprintf("%v", state)
	}

	for field, value := range fields {
		if err := m.redis.HSet(ctx, key, field, value); err != nil {
			return err
		}
	}

	m.logger.Debug("Mirrored sensor state", "identity", s.Identity())
	return nil
}
