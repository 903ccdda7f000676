package arwn

import (
	"sort"
	"sync"
)

// Registry is the process-wide map of discovered sensors, keyed by
// identity. It is owned by the hosting session: constructed in main,
// injected into the router, and discarded on shutdown. Entries are never
// removed or replaced.
type Registry struct {
	prefix string
	events Events

	mu      sync.RWMutex
	sensors map[string]*Sensor
}

// NewRegistry creates an empty registry. The prefix feeds entity
// identity derivation.
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix:  prefix,
		sensors: make(map[string]*Sensor),
	}
}

// SetEvents wires the host event sink handed to every sensor the
// registry creates. Event consumers often need the registry themselves,
// so the sink is attached after construction, before traffic starts.
func (r *Registry) SetEvents(events Events) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = events
}

// RegisterIfAbsent returns the sensor for the descriptor's identity,
// creating it when seen for the first time. The check-then-insert is
// atomic: two concurrent first-sight deliveries of the same identity get
// the same *Sensor and exactly one of them observes isNew.
func (r *Registry) RegisterIfAbsent(d Descriptor) (sensor *Sensor, isNew bool) {
	identity := EntityID(r.prefix, d.Name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.sensors[identity]; ok {
		return existing, false
	}

	s := newSensor(identity, d, r.events)
	r.sensors[identity] = s
	return s, true
}

// Get returns the sensor registered under the given identity.
func (r *Registry) Get(identity string) (*Sensor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sensors[identity]
	return s, ok
}

// All returns a snapshot of every registered sensor, sorted by identity
// for stable enumeration. Safe to call concurrently with delivery.
func (r *Registry) All() []*Sensor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Sensor, 0, len(r.sensors))
	for _, s := range r.sensors {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Identity() < result[j].Identity()
	})

	return result
}

// Len returns the number of registered sensors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sensors)
}
