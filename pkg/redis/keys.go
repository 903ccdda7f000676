package redis

import "fmt"

// Key construction helpers for the latest-state mirror.

// SensorSetKey is the set holding every discovered sensor identity.
const SensorSetKey = "arwn:sensors"

// SensorStateKey returns the hash key holding a sensor's latest state
// Pattern: arwn:sensor:{identity}
func SensorStateKey(identity string) string {
	return fmt.Sprintf("arwn:sensor:%s", identity)
}
