package arwn

// Events is the outbound interface to the hosting application. The router
// announces newly discovered sensors through it, and every sensor reports
// attribute changes so the host can refresh any cached view.
//
// Implementations must tolerate being called from the MQTT delivery
// goroutines.
type Events interface {
	SensorAdded(s *Sensor)
	SensorChanged(identity string)
}

// CombineEvents fans out every event to each sink in order. Nil sinks are
// skipped, so callers can wire optional consumers unconditionally.
func CombineEvents(sinks ...Events) Events {
	var active []Events
	for _, s := range sinks {
		if s != nil {
			active = append(active, s)
		}
	}
	return fanout(active)
}

type fanout []Events

func (f fanout) SensorAdded(s *Sensor) {
	for _, sink := range f {
		sink.SensorAdded(s)
	}
}

func (f fanout) SensorChanged(identity string) {
	for _, sink := range f {
		sink.SensorChanged(identity)
	}
}
