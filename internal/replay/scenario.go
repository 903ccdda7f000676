package replay

import (
	"fmt"
	"strings"
)

// Scenario is a recorded slice of station traffic for replaying against
// a live broker, e.g. to exercise discovery without hardware attached.
type Scenario struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Events      []Event `yaml:"events"`
}

// Event is one message to publish during replay.
type Event struct {
	// At is the publish offset in seconds from scenario start.
	At int `yaml:"at"`

	// Topic is relative to the configured root, e.g. "temperature/backyard".
	Topic string `yaml:"topic"`

	// Payload is marshalled to JSON as the message body.
	Payload map[string]any `yaml:"payload"`

	Description string `yaml:"description,omitempty"`
}

// Validate checks a scenario for structural problems before replay.
func Validate(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("scenario has no name")
	}
	if len(s.Events) == 0 {
		return fmt.Errorf("scenario %q has no events", s.Name)
	}

	last := 0
	for i, e := range s.Events {
		if e.At < 0 {
			return fmt.Errorf("event %d: negative offset %d", i, e.At)
		}
		if e.At < last {
			return fmt.Errorf("event %d: offset %d before previous event at %d", i, e.At, last)
		}
		last = e.At

		if e.Topic == "" {
			return fmt.Errorf("event %d: missing topic", i)
		}
		if strings.HasPrefix(e.Topic, "/") {
			return fmt.Errorf("event %d: topic %q must be relative to the root", i, e.Topic)
		}
		if strings.ContainsAny(e.Topic, "#+") {
			return fmt.Errorf("event %d: topic %q contains wildcard characters", i, e.Topic)
		}
	}

	return nil
}
