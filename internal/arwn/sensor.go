package arwn

import "sync"

// Sensor holds the live state of one discovered sensor. A sensor is
// created exactly once, at first sight of its identity, and lives for
// the rest of the process; only Update mutates it.
type Sensor struct {
	identity string
	name     string
	stateKey string
	unit     string
	icon     string
	topic    string

	mu    sync.RWMutex
	attrs map[string]any

	events Events
}

func newSensor(identity string, d Descriptor, events Events) *Sensor {
	return &Sensor{
		identity: identity,
		name:     d.Name,
		stateKey: d.StateKey,
		unit:     d.Unit,
		icon:     d.Icon,
		topic:    d.Topic,
		attrs:    map[string]any{},
		events:   events,
	}
}

// Update replaces the sensor's attributes wholesale with the given
// payload, minus any timestamp key, and notifies the host. Updates may
// arrive concurrently from the discovery route and the sensor's own
// subscription; the wholesale replace makes redundant delivery of the
// same message harmless.
func (s *Sensor) Update(payload map[string]any) {
	next := make(map[string]any, len(payload))
	for k, v := range payload {
		if k == "timestamp" {
			continue
		}
		next[k] = v
	}

	s.mu.Lock()
	s.attrs = next
	s.mu.Unlock()

	if s.events != nil {
		s.events.SensorChanged(s.identity)
	}
}

// State returns the primary reading, or nil if no payload carrying the
// state key has been received yet.
func (s *Sensor) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attrs[s.stateKey]
}

// Attributes returns a snapshot of the full last-received payload.
func (s *Sensor) Attributes() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[string]any, len(s.attrs))
	for k, v := range s.attrs {
		snapshot[k] = v
	}
	return snapshot
}

// Identity returns the stable external identifier, e.g. "sensor.arwn_backyard".
func (s *Sensor) Identity() string { return s.identity }

// Name returns the human-readable display name.
func (s *Sensor) Name() string { return s.name }

// StateKey returns the payload field holding the primary reading.
func (s *Sensor) StateKey() string { return s.stateKey }

// Unit returns the unit of measurement, fixed at discovery.
func (s *Sensor) Unit() string { return s.unit }

// Icon returns the display icon, empty for temperature sensors.
func (s *Sensor) Icon() string { return s.icon }

// Topic returns the topic this sensor receives updates on.
func (s *Sensor) Topic() string { return s.topic }
