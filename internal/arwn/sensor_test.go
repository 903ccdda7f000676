package arwn

import (
	"reflect"
	"sync"
	"testing"
)

func newTestSensor(events Events) *Sensor {
	d := Descriptor{Name: "backyard", StateKey: "temp", Unit: UnitFahrenheit, Topic: "arwn/temperature/backyard"}
	return newSensor(EntityID("arwn", d.Name), d, events)
}

func TestSensorUpdateReplacesAttributes(t *testing.T) {
	s := newTestSensor(nil)

	s.Update(map[string]any{"temp": 72.5, "units": "F", "battery": "ok"})
	s.Update(map[string]any{"temp": 71.0, "units": "F"})

	attrs := s.Attributes()
	if _, ok := attrs["battery"]; ok {
		t.Error("Update() should replace attributes wholesale, not merge")
	}
	if got := s.State(); got != 71.0 {
		t.Errorf("State() = %v, want 71.0", got)
	}
}

func TestSensorUpdateStripsTimestamp(t *testing.T) {
	s := newTestSensor(nil)

	payload := map[string]any{"temp": 72.5, "timestamp": "2026-08-28T10:00:00Z"}
	s.Update(payload)

	if _, ok := s.Attributes()["timestamp"]; ok {
		t.Error("timestamp must never be stored as an attribute")
	}
	if _, ok := payload["timestamp"]; !ok {
		t.Error("Update() must not mutate the caller's payload")
	}
}

func TestSensorUpdateIdempotent(t *testing.T) {
	s := newTestSensor(nil)

	payload := map[string]any{"temp": 72.5, "units": "F"}
	s.Update(payload)
	first := s.Attributes()

	s.Update(payload)
	second := s.Attributes()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("attributes changed after redundant update: %v != %v", first, second)
	}
}

func TestSensorStateBeforeFirstReading(t *testing.T) {
	s := newTestSensor(nil)

	if got := s.State(); got != nil {
		t.Errorf("State() before any update = %v, want nil", got)
	}

	// A payload without the state key still replaces attributes but
	// yields no reading.
	s.Update(map[string]any{"battery": "low"})
	if got := s.State(); got != nil {
		t.Errorf("State() without state key = %v, want nil", got)
	}
}

func TestSensorUpdateNotifiesHost(t *testing.T) {
	rec := &recorderEvents{}
	s := newTestSensor(rec)

	s.Update(map[string]any{"temp": 72.5})
	s.Update(map[string]any{"temp": 72.5})

	if got := rec.changedCount(s.Identity()); got != 2 {
		t.Errorf("expected a change notification per update, got %d", got)
	}
}

func TestSensorAttributesSnapshotIsolated(t *testing.T) {
	s := newTestSensor(nil)
	s.Update(map[string]any{"temp": 72.5})

	snapshot := s.Attributes()
	snapshot["temp"] = -1.0

	if got := s.State(); got != 72.5 {
		t.Errorf("mutating a snapshot must not affect the sensor, State() = %v", got)
	}
}

// recorderEvents records announcements for assertions.
type recorderEvents struct {
	mu      sync.Mutex
	added   []string
	changed []string
}

func (r *recorderEvents) SensorAdded(s *Sensor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.added = append(r.added, s.Identity())
}

func (r *recorderEvents) SensorChanged(identity string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changed = append(r.changed, identity)
}

func (r *recorderEvents) addedIdentities() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.added...)
}

func (r *recorderEvents) changedCount(identity string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, id := range r.changed {
		if id == identity {
			n++
		}
	}
	return n
}
